package dto

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Field names, as used by form inputs and JSON.
const (
	FieldFirstName   = "firstName"
	FieldLastName    = "lastName"
	FieldEmail       = "email"
	FieldPhone       = "phone"
	FieldDateOfBirth = "dateOfBirth"
	FieldAddress     = "address"
	FieldCity        = "city"
	FieldState       = "state"
	FieldZipCode     = "zipCode"

	FieldEmployeeID     = "employeeId"
	FieldDepartment     = "department"
	FieldPosition       = "position"
	FieldStartDate      = "startDate"
	FieldSalary         = "salary"
	FieldEmploymentType = "employmentType"
	FieldWorkLocation   = "workLocation"
	FieldManager        = "manager"

	FieldEmergencyName         = "emergencyName"
	FieldEmergencyPhone        = "emergencyPhone"
	FieldEmergencyRelationship = "emergencyRelationship"

	FieldSkills = "skills"
	FieldNotes  = "notes"
)

// Section groups fields for display only; records stay flat.
type Section string

const (
	SectionPersonal   Section = "Personal Information"
	SectionEmployment Section = "Employment Information"
	SectionEmergency  Section = "Emergency Contact"
	SectionAdditional Section = "Additional Information"
)

// Sections in display order.
var Sections = []Section{SectionPersonal, SectionEmployment, SectionEmergency, SectionAdditional}

// Widget is the input control a field is bound to.
type Widget string

const (
	WidgetText     Widget = "text"
	WidgetEmail    Widget = "email"
	WidgetTel      Widget = "tel"
	WidgetDate     Widget = "date"
	WidgetNumber   Widget = "number"
	WidgetSelect   Widget = "select"
	WidgetRadio    Widget = "radio"
	WidgetTextArea Widget = "textarea"
)

// Option is one choice of a select or radio field.
type Option struct {
	Value string
	Label string
}

// Field describes one input of the registration form.
type Field struct {
	Name        string
	Label       string
	Section     Section
	Widget      Widget
	Required    bool
	Placeholder string
	// Prompt is the empty first entry of a select, e.g. "Select State".
	Prompt  string
	Options []Option
}

// HasOption reports whether v is one of f's choices.
func (f Field) HasOption(v string) bool {
	for _, o := range f.Options {
		if o.Value == v {
			return true
		}
	}

	return false
}

// OptionLabel returns the label shown for v, or v itself when it is not a
// known choice.
func (f Field) OptionLabel(v string) string {
	for _, o := range f.Options {
		if o.Value == v {
			return o.Label
		}
	}

	return v
}

// Fields is the fixed form schema in display order.
var Fields = []Field{
	{Name: FieldFirstName, Label: "First Name", Section: SectionPersonal, Widget: WidgetText, Required: true},
	{Name: FieldLastName, Label: "Last Name", Section: SectionPersonal, Widget: WidgetText, Required: true},
	{Name: FieldEmail, Label: "Email Address", Section: SectionPersonal, Widget: WidgetEmail, Required: true},
	{Name: FieldPhone, Label: "Phone Number", Section: SectionPersonal, Widget: WidgetTel, Required: true},
	{Name: FieldDateOfBirth, Label: "Date of Birth", Section: SectionPersonal, Widget: WidgetDate},
	{Name: FieldAddress, Label: "Address", Section: SectionPersonal, Widget: WidgetText, Placeholder: "Street Address"},
	{Name: FieldCity, Label: "City", Section: SectionPersonal, Widget: WidgetText},
	{Name: FieldState, Label: "State", Section: SectionPersonal, Widget: WidgetSelect, Prompt: "Select State",
		Options: []Option{
			{"CA", "California"},
			{"NY", "New York"},
			{"TX", "Texas"},
			{"FL", "Florida"},
			{"IL", "Illinois"},
		}},
	{Name: FieldZipCode, Label: "ZIP Code", Section: SectionPersonal, Widget: WidgetText},

	{Name: FieldEmployeeID, Label: "Employee ID", Section: SectionEmployment, Widget: WidgetText, Required: true},
	{Name: FieldDepartment, Label: "Department", Section: SectionEmployment, Widget: WidgetSelect, Required: true, Prompt: "Select Department",
		Options: []Option{
			{"Engineering", "Engineering"},
			{"Marketing", "Marketing"},
			{"Sales", "Sales"},
			{"HR", "Human Resources"},
			{"Finance", "Finance"},
			{"Operations", "Operations"},
		}},
	{Name: FieldPosition, Label: "Position/Job Title", Section: SectionEmployment, Widget: WidgetText, Required: true},
	{Name: FieldStartDate, Label: "Start Date", Section: SectionEmployment, Widget: WidgetDate, Required: true},
	{Name: FieldSalary, Label: "Annual Salary", Section: SectionEmployment, Widget: WidgetNumber, Placeholder: "50000"},
	{Name: FieldManager, Label: "Reporting Manager", Section: SectionEmployment, Widget: WidgetText},
	{Name: FieldEmploymentType, Label: "Employment Type", Section: SectionEmployment, Widget: WidgetRadio, Required: true,
		Options: radioOptions(EmploymentFullTime, EmploymentPartTime, EmploymentContract, EmploymentIntern)},
	{Name: FieldWorkLocation, Label: "Work Location", Section: SectionEmployment, Widget: WidgetRadio,
		Options: radioOptions(LocationOffice, LocationRemote, LocationHybrid)},

	{Name: FieldEmergencyName, Label: "Contact Name", Section: SectionEmergency, Widget: WidgetText, Required: true},
	{Name: FieldEmergencyPhone, Label: "Contact Phone", Section: SectionEmergency, Widget: WidgetTel, Required: true},
	{Name: FieldEmergencyRelationship, Label: "Relationship", Section: SectionEmergency, Widget: WidgetSelect, Prompt: "Select Relationship",
		Options: []Option{
			{"Spouse", "Spouse"},
			{"Parent", "Parent"},
			{"Sibling", "Sibling"},
			{"Child", "Child"},
			{"Friend", "Friend"},
			{"Other", "Other"},
		}},

	{Name: FieldSkills, Label: "Skills & Qualifications", Section: SectionAdditional, Widget: WidgetTextArea,
		Placeholder: "List relevant skills, certifications, or qualifications..."},
	{Name: FieldNotes, Label: "Additional Notes", Section: SectionAdditional, Widget: WidgetTextArea,
		Placeholder: "Any additional information..."},
}

var fieldIndex = func() map[string]int {
	idx := make(map[string]int, len(Fields))
	for i, f := range Fields {
		idx[f.Name] = i
	}
	return idx
}()

// FieldByName looks up a catalogue entry.
func FieldByName(name string) (Field, bool) {
	i, ok := fieldIndex[name]
	if !ok {
		return Field{}, false
	}

	return Fields[i], true
}

// FieldsIn returns the fields of one section in display order.
func FieldsIn(s Section) []Field {
	var out []Field
	for _, f := range Fields {
		if f.Section == s {
			out = append(out, f)
		}
	}

	return out
}

// radioOptions labels each value the way the form shows it:
// "part-time" reads "Part Time".
func radioOptions(values ...string) []Option {
	title := cases.Title(language.English)

	out := make([]Option, 0, len(values))
	for _, v := range values {
		out = append(out, Option{Value: v, Label: title.String(strings.ReplaceAll(v, "-", " "))})
	}

	return out
}
