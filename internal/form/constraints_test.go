package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ameypusalkar001/EPMATest/internal/dto"
)

// adaRecord has every required field filled.
func adaRecord() dto.EmployeeRecord {
	r := dto.DefaultRecord()
	r.FirstName = "Ada"
	r.LastName = "Lovelace"
	r.Email = "ada@x.com"
	r.Phone = "555-0100"
	r.EmployeeID = "E1"
	r.Department = "Engineering"
	r.Position = "Engineer"
	r.StartDate = "2024-01-01"
	r.EmergencyName = "Grace"
	r.EmergencyPhone = "555-0200"
	return r
}

func TestCheckConstraints_Complete(t *testing.T) {
	assert.NoError(t, CheckConstraints(adaRecord()))
}

func TestCheckConstraints_DefaultRecordListsRequired(t *testing.T) {
	err := CheckConstraints(dto.DefaultRecord())

	var v Violations
	require.ErrorAs(t, err, &v)

	var fields []string
	for _, x := range v {
		assert.Equal(t, MsgRequired, x.Message, x.Field)
		fields = append(fields, x.Field)
	}

	assert.Equal(t, []string{
		dto.FieldFirstName, dto.FieldLastName, dto.FieldEmail, dto.FieldPhone,
		dto.FieldEmployeeID, dto.FieldDepartment, dto.FieldPosition, dto.FieldStartDate,
		dto.FieldEmergencyName, dto.FieldEmergencyPhone,
	}, fields)
}

func TestCheckConstraints(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		value   string
		message string
	}{
		{name: "empty first name", field: dto.FieldFirstName, value: "", message: MsgRequired},
		{name: "malformed email", field: dto.FieldEmail, value: "ada.x.com", message: MsgEmail},
		{name: "unknown department", field: dto.FieldDepartment, value: "Legal", message: MsgOption},
		{name: "unknown state", field: dto.FieldState, value: "ZZ", message: MsgOption},
		{name: "unknown employment type", field: dto.FieldEmploymentType, value: "seasonal", message: MsgOption},
		{name: "empty employment type", field: dto.FieldEmploymentType, value: "", message: MsgRequired},
		{name: "unknown work location", field: dto.FieldWorkLocation, value: "moon", message: MsgOption},
		{name: "unknown relationship", field: dto.FieldEmergencyRelationship, value: "Cousin", message: MsgOption},
		{name: "free text salary", field: dto.FieldSalary, value: "lots"},
		{name: "nonsense date", field: dto.FieldDateOfBirth, value: "yesterday"},
		{name: "empty optional select", field: dto.FieldState, value: ""},
		{name: "listed state", field: dto.FieldState, value: "NY"},
		{name: "hr department", field: dto.FieldDepartment, value: "HR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := adaRecord().With(tt.field, tt.value)
			require.NoError(t, err)

			err = CheckConstraints(rec)
			if tt.message == "" {
				assert.NoError(t, err)
				return
			}

			var v Violations
			require.ErrorAs(t, err, &v)
			assert.Equal(t, Violations{{Field: tt.field, Message: tt.message}}, v)
		})
	}
}

func TestCheckField(t *testing.T) {
	assert.NoError(t, CheckField(dto.FieldEmail, "ada@x.com"))
	assert.NoError(t, CheckField(dto.FieldNotes, ""))

	var v Violations
	require.ErrorAs(t, CheckField(dto.FieldEmail, "nope"), &v)
	assert.Equal(t, MsgEmail, v.For(dto.FieldEmail))

	require.ErrorAs(t, CheckField(dto.FieldPosition, ""), &v)
	assert.Equal(t, MsgRequired, v.For(dto.FieldPosition))

	assert.ErrorIs(t, CheckField("nickname", "x"), dto.ErrUnknownField)
}

func TestCheckField_Email(t *testing.T) {
	tests := []struct {
		value   string
		message string
	}{
		{value: "ada@x.com"},
		{value: "ada@localhost"},
		{value: "ada@x"},
		{value: " ada@x.com "},
		{value: "ada.@x.com"},
		{value: "a..b@x.com"},
		{value: "ada@x_y.com", message: MsgEmail},
		{value: "ada+tag@sub.x-y.com"},
		{value: "ada", message: MsgEmail},
		{value: "@x.com", message: MsgEmail},
		{value: "ada@", message: MsgEmail},
		{value: "ada@-x.com", message: MsgEmail},
		{value: "ada@x..com", message: MsgEmail},
		{value: "a da@x.com", message: MsgEmail},
		{value: "   ", message: MsgRequired},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			err := CheckField(dto.FieldEmail, tt.value)
			if tt.message == "" {
				assert.NoError(t, err)
				return
			}

			var v Violations
			require.ErrorAs(t, err, &v)
			assert.Equal(t, tt.message, v.For(dto.FieldEmail))
		})
	}
}

func TestViolations_Error(t *testing.T) {
	v := Violations{
		{Field: "firstName", Message: MsgRequired},
		{Field: "email", Message: MsgEmail},
	}

	assert.Equal(t,
		"constraint violations: firstName: Please fill out this field.; email: Please enter a valid email address.",
		v.Error())
	assert.Empty(t, v.For("phone"))
}
