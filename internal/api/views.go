package api

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/microcosm-cc/bluemonday"

	"github.com/ameypusalkar001/EPMATest/internal/dto"
	"github.com/ameypusalkar001/EPMATest/internal/form"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

const submittedNotice = "Employee details submitted successfully!"

type views struct {
	page *template.Template
	text PageText
	// intro is text.IntroHTML after sanitizing.
	intro template.HTML
}

func newViews(text PageText) (*views, error) {
	page, err := template.ParseFS(templateFS, "templates/*.gohtml")
	if err != nil {
		return nil, fmt.Errorf("template.ParseFS: %w", err)
	}

	return &views{
		page:  page,
		text:  text,
		intro: template.HTML(bluemonday.UGCPolicy().Sanitize(text.IntroHTML)),
	}, nil
}

type pageData struct {
	Title    string
	Subtitle string
	Intro    template.HTML

	Sections   []sectionView
	Violations form.Violations
	Records    []recordRow

	// Notice is the acknowledgement dialog text, if any.
	Notice string
	// Detail restates one submitted record in a dialog.
	Detail *detailView
}

type sectionView struct {
	Title  string
	Fields []fieldView
}

type fieldView struct {
	Name        string
	Label       string
	Kind        string
	Required    bool
	Placeholder string
	Prompt      string
	Value       string
	Options     []optionView
	Error       string
}

type optionView struct {
	Value    string
	Label    string
	Selected bool
}

type recordRow struct {
	Number         int
	Name           string
	Email          string
	Department     string
	Position       string
	EmploymentType string
	StartDate      string
}

type detailView struct {
	Number   int
	Name     string
	Sections []detailSection
}

type detailSection struct {
	Title string
	Items []detailItem
}

type detailItem struct {
	Label string
	Value string
}

func (v *views) newPage(draft dto.EmployeeRecord, violations form.Violations, records []dto.EmployeeRecord) pageData {
	return pageData{
		Title:      v.text.Title,
		Subtitle:   v.text.Subtitle,
		Intro:      v.intro,
		Sections:   formSections(draft, violations),
		Violations: violations,
		Records:    recordRows(records),
	}
}

func (v *views) render(data pageData) ([]byte, error) {
	var buf bytes.Buffer
	if err := v.page.ExecuteTemplate(&buf, "page", data); err != nil {
		return nil, fmt.Errorf("page.ExecuteTemplate: %w", err)
	}

	return buf.Bytes(), nil
}

func formSections(draft dto.EmployeeRecord, violations form.Violations) []sectionView {
	out := make([]sectionView, 0, len(dto.Sections))
	for _, s := range dto.Sections {
		sv := sectionView{Title: string(s)}
		for _, f := range dto.FieldsIn(s) {
			value, _ := draft.Get(f.Name)
			sv.Fields = append(sv.Fields, fieldView{
				Name:        f.Name,
				Label:       f.Label,
				Kind:        string(f.Widget),
				Required:    f.Required,
				Placeholder: f.Placeholder,
				Prompt:      f.Prompt,
				Value:       value,
				Options:     optionViews(f, value),
				Error:       violations.For(f.Name),
			})
		}
		out = append(out, sv)
	}

	return out
}

func optionViews(f dto.Field, value string) []optionView {
	if len(f.Options) == 0 {
		return nil
	}

	out := make([]optionView, 0, len(f.Options))
	for _, o := range f.Options {
		out = append(out, optionView{Value: o.Value, Label: o.Label, Selected: o.Value == value})
	}

	return out
}

func recordRows(records []dto.EmployeeRecord) []recordRow {
	out := make([]recordRow, 0, len(records))
	for i, r := range records {
		out = append(out, recordRow{
			Number:         i + 1,
			Name:           r.FullName(),
			Email:          r.Email,
			Department:     optionLabel(dto.FieldDepartment, r.Department),
			Position:       r.Position,
			EmploymentType: optionLabel(dto.FieldEmploymentType, r.EmploymentType),
			StartDate:      r.StartDate,
		})
	}

	return out
}

func newDetail(number int, rec dto.EmployeeRecord) *detailView {
	d := &detailView{Number: number, Name: rec.FullName()}

	byName := make(map[string]string, len(dto.Fields))
	for _, fv := range rec.Values() {
		byName[fv.Field.Name] = fv.Value
	}

	for _, s := range dto.Sections {
		ds := detailSection{Title: string(s)}
		for _, f := range dto.FieldsIn(s) {
			ds.Items = append(ds.Items, detailItem{Label: f.Label, Value: f.OptionLabel(byName[f.Name])})
		}
		d.Sections = append(d.Sections, ds)
	}

	return d
}

func optionLabel(field, value string) string {
	f, ok := dto.FieldByName(field)
	if !ok {
		return value
	}

	return f.OptionLabel(value)
}
