package console

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ameypusalkar001/EPMATest/internal/dto"
	"github.com/ameypusalkar001/EPMATest/internal/form"
)

func TestRenderTable(t *testing.T) {
	a := dto.DefaultRecord()
	a.FirstName, a.LastName, a.Email, a.Department = "Ada", "Lovelace", "ada@x.com", "HR"
	b := dto.DefaultRecord()
	b.FirstName, b.LastName, b.EmploymentType = "Grace", "Hopper", dto.EmploymentContract

	out := RenderTable([]dto.EmployeeRecord{a, b})

	for _, h := range tableHeaders {
		assert.Contains(t, out, h)
	}
	assert.Contains(t, out, "Human Resources")
	assert.Contains(t, out, "Contract")
	assert.Less(t, strings.Index(out, "Ada Lovelace"), strings.Index(out, "Grace Hopper"))
}

func TestRenderTable_Empty(t *testing.T) {
	assert.Equal(t, "No employees submitted yet.", RenderTable(nil))
}

func TestRenderRecord(t *testing.T) {
	rec := dto.DefaultRecord()
	rec.FirstName = "Ada"
	rec.EmergencyRelationship = "Friend"
	rec.State = "CA"

	out := RenderRecord(2, rec)

	assert.Contains(t, out, "Employee #2: Ada")
	for _, s := range dto.Sections {
		assert.Contains(t, out, string(s))
	}
	for _, f := range dto.Fields {
		assert.Contains(t, out, f.Label+":")
	}
	assert.Contains(t, out, "State: California")
	assert.Contains(t, out, "Work Location: Office")
}

func TestRenderViolations(t *testing.T) {
	out := RenderViolations(form.Violations{
		{Field: dto.FieldEmail, Message: form.MsgEmail},
	})

	assert.Contains(t, out, "Submission blocked:")
	assert.Contains(t, out, "Email Address: Please enter a valid email address.")
}
