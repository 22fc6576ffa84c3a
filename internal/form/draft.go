// Package form holds the registration form state: the draft being edited,
// the widget constraints that gate submission, and the session that moves a
// finished draft into the submitted records.
package form

import (
	"github.com/ameypusalkar001/EPMATest/internal/dto"
)

// Draft is the record currently being edited. It is not safe for concurrent
// use; Session serializes access.
type Draft struct {
	rec dto.EmployeeRecord
}

func NewDraft() *Draft {
	return &Draft{rec: dto.DefaultRecord()}
}

// SetField replaces one field. Names outside the form schema are rejected
// and leave the draft unchanged.
func (d *Draft) SetField(name, value string) error {
	next, err := d.rec.With(name, value)
	if err != nil {
		return err
	}
	d.rec = next

	return nil
}

// Reset discards all edits.
func (d *Draft) Reset() {
	d.rec = dto.DefaultRecord()
}

// Snapshot returns a copy of the current values.
func (d *Draft) Snapshot() dto.EmployeeRecord {
	return d.rec
}
