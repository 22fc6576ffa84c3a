package dto

// Employment types accepted by the employmentType radio group.
const (
	EmploymentFullTime = "full-time"
	EmploymentPartTime = "part-time"
	EmploymentContract = "contract"
	EmploymentIntern   = "intern"
)

// Work locations accepted by the workLocation radio group.
const (
	LocationOffice = "office"
	LocationRemote = "remote"
	LocationHybrid = "hybrid"
)

// EmployeeRecord is one submitted set of employee details.
//
// Every field is free text as entered; salary and dates are not parsed.
type EmployeeRecord struct {
	// Personal Information
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	Email       string `json:"email" validate:"required,html_email"`
	Phone       string `json:"phone" validate:"required"`
	DateOfBirth string `json:"dateOfBirth"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state" validate:"omitempty,option"`
	ZipCode     string `json:"zipCode"`

	// Employment Information
	EmployeeID     string `json:"employeeId" validate:"required"`
	Department     string `json:"department" validate:"required,option"`
	Position       string `json:"position" validate:"required"`
	StartDate      string `json:"startDate" validate:"required"`
	Salary         string `json:"salary"`
	EmploymentType string `json:"employmentType" validate:"required,option"`
	WorkLocation   string `json:"workLocation" validate:"omitempty,option"`
	Manager        string `json:"manager"`

	// Emergency Contact
	EmergencyName         string `json:"emergencyName" validate:"required"`
	EmergencyPhone        string `json:"emergencyPhone" validate:"required"`
	EmergencyRelationship string `json:"emergencyRelationship" validate:"omitempty,option"`

	// Additional Information
	Skills string `json:"skills"`
	Notes  string `json:"notes"`
}

// DefaultRecord returns the record a fresh form starts from.
func DefaultRecord() EmployeeRecord {
	return EmployeeRecord{
		EmploymentType: EmploymentFullTime,
		WorkLocation:   LocationOffice,
	}
}

// fieldRef maps a field name to the struct member holding it.
func (r *EmployeeRecord) fieldRef(name string) *string {
	switch name {
	case FieldFirstName:
		return &r.FirstName
	case FieldLastName:
		return &r.LastName
	case FieldEmail:
		return &r.Email
	case FieldPhone:
		return &r.Phone
	case FieldDateOfBirth:
		return &r.DateOfBirth
	case FieldAddress:
		return &r.Address
	case FieldCity:
		return &r.City
	case FieldState:
		return &r.State
	case FieldZipCode:
		return &r.ZipCode
	case FieldEmployeeID:
		return &r.EmployeeID
	case FieldDepartment:
		return &r.Department
	case FieldPosition:
		return &r.Position
	case FieldStartDate:
		return &r.StartDate
	case FieldSalary:
		return &r.Salary
	case FieldEmploymentType:
		return &r.EmploymentType
	case FieldWorkLocation:
		return &r.WorkLocation
	case FieldManager:
		return &r.Manager
	case FieldEmergencyName:
		return &r.EmergencyName
	case FieldEmergencyPhone:
		return &r.EmergencyPhone
	case FieldEmergencyRelationship:
		return &r.EmergencyRelationship
	case FieldSkills:
		return &r.Skills
	case FieldNotes:
		return &r.Notes
	}

	return nil
}

// Get returns the value of the named field.
func (r EmployeeRecord) Get(name string) (string, error) {
	ref := r.fieldRef(name)
	if ref == nil {
		return "", unknownField(name)
	}

	return *ref, nil
}

// With returns a copy of r with exactly one field replaced.
func (r EmployeeRecord) With(name, value string) (EmployeeRecord, error) {
	ref := r.fieldRef(name)
	if ref == nil {
		return r, unknownField(name)
	}
	*ref = value

	return r, nil
}

// FieldValue is one named value of a record, in catalogue order.
type FieldValue struct {
	Field Field
	Value string
}

// Values lists every field of r in catalogue order.
func (r EmployeeRecord) Values() []FieldValue {
	out := make([]FieldValue, 0, len(Fields))
	for _, f := range Fields {
		out = append(out, FieldValue{Field: f, Value: *r.fieldRef(f.Name)})
	}

	return out
}

// FullName joins first and last name for table and dialog captions.
func (r EmployeeRecord) FullName() string {
	switch {
	case r.FirstName == "":
		return r.LastName
	case r.LastName == "":
		return r.FirstName
	}

	return r.FirstName + " " + r.LastName
}
