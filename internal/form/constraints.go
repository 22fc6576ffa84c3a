package form

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ameypusalkar001/EPMATest/internal/dto"
)

// Messages shown next to a widget whose constraint fails.
const (
	MsgRequired = "Please fill out this field."
	MsgEmail    = "Please enter a valid email address."
	MsgOption   = "Please select one of the listed options."
)

// Violation is one failed widget constraint.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Violations lists every failed constraint of a record, in form order.
type Violations []Violation

func (v Violations) Error() string {
	parts := make([]string, 0, len(v))
	for _, x := range v {
		parts = append(parts, fmt.Sprintf("%s: %s", x.Field, x.Message))
	}

	return "constraint violations: " + strings.Join(parts, "; ")
}

// For returns the message for field, or "" when it passed.
func (v Violations) For(field string) string {
	for _, x := range v {
		if x.Field == field {
			return x.Message
		}
	}

	return ""
}

// htmlEmail is the valid e-mail address production of the HTML living
// standard, the rule an <input type="email"> applies.
var htmlEmail = regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@" +
	"[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?" +
	"(?:\\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	// option: the value must be one of the field's select/radio choices.
	if err := v.RegisterValidation("option", func(fl validator.FieldLevel) bool {
		f, ok := dto.FieldByName(fl.FieldName())
		return ok && f.HasOption(fl.Field().String())
	}); err != nil {
		panic(err)
	}

	// html_email: browsers strip surrounding whitespace from email inputs
	// before matching.
	if err := v.RegisterValidation("html_email", func(fl validator.FieldLevel) bool {
		return htmlEmail.MatchString(strings.TrimSpace(fl.Field().String()))
	}); err != nil {
		panic(err)
	}

	return v
}

// CheckConstraints applies the constraints the form widgets carry
// (required, email syntax, listed options). Other free text is accepted as
// entered. It returns nil or a Violations error.
func CheckConstraints(rec dto.EmployeeRecord) error {
	err := validate.Struct(rec)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate.Struct: %w", err)
	}

	out := make(Violations, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, Violation{Field: fe.Field(), Message: message(fe)})
	}

	return out
}

// CheckField applies the constraints of a single field, for surfaces that
// validate while the user types.
func CheckField(name, value string) error {
	rec, err := dto.DefaultRecord().With(name, value)
	if err != nil {
		return err
	}

	err = CheckConstraints(rec)

	var all Violations
	if !errors.As(err, &all) {
		return err
	}
	if msg := all.For(name); msg != "" {
		return Violations{{Field: name, Message: msg}}
	}

	return nil
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return MsgRequired
	case "html_email":
		if s, _ := fe.Value().(string); strings.TrimSpace(s) == "" {
			return MsgRequired
		}
		return MsgEmail
	case "option":
		return MsgOption
	}

	return "Please match the requested format."
}
