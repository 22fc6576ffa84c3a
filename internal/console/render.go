package console

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/ameypusalkar001/EPMATest/internal/dto"
	"github.com/ameypusalkar001/EPMATest/internal/form"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#5B8DEF")).
			MarginBottom(1)
	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#AAAAAA")).
			MarginTop(1)
	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#22C55E")).
			Bold(true)
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(0, 1)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

var tableHeaders = []string{"#", "Name", "Email", "Department", "Position", "Employment Type", "Start Date"}

// RenderTable draws the submitted records in submission order.
func RenderTable(records []dto.EmployeeRecord) string {
	if len(records) == 0 {
		return "No employees submitted yet."
	}

	department, _ := dto.FieldByName(dto.FieldDepartment)
	employment, _ := dto.FieldByName(dto.FieldEmploymentType)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("#444444"))).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(tableHeaders...)

	for i, r := range records {
		t.Row(
			fmt.Sprint(i+1),
			r.FullName(),
			r.Email,
			department.OptionLabel(r.Department),
			r.Position,
			employment.OptionLabel(r.EmploymentType),
			r.StartDate,
		)
	}

	return t.String()
}

// RenderRecord restates every field of one record, grouped by section.
func RenderRecord(number int, rec dto.EmployeeRecord) string {
	var b strings.Builder

	caption := fmt.Sprintf("Employee #%d", number)
	if name := rec.FullName(); name != "" {
		caption += ": " + name
	}
	b.WriteString(titleStyle.UnsetMarginBottom().Render(caption))

	values := rec.Values()
	for _, s := range dto.Sections {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render(string(s)))
		for _, fv := range values {
			if fv.Field.Section != s {
				continue
			}
			fmt.Fprintf(&b, "\n%s: %s", fv.Field.Label, fv.Field.OptionLabel(fv.Value))
		}
	}

	return boxStyle.Render(b.String())
}

// RenderViolations lists the fields that blocked a submission.
func RenderViolations(v form.Violations) string {
	lines := []string{errorStyle.Render("Submission blocked:")}
	for _, x := range v {
		label := x.Field
		if f, ok := dto.FieldByName(x.Field); ok {
			label = f.Label
		}
		lines = append(lines, errorStyle.Render(fmt.Sprintf("  %s: %s", label, x.Message)))
	}

	return strings.Join(lines, "\n")
}
