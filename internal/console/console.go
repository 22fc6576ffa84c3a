// Package console is the terminal surface of the registration form. It
// walks the same form fields the web page shows, submits through the shared
// form session and prints the submitted records as a table.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/ameypusalkar001/EPMATest/internal/dto"
	"github.com/ameypusalkar001/EPMATest/internal/form"
)

// FormSession is the subset of form.Session the console drives.
type FormSession interface {
	SetField(name, value string) error
	Draft() dto.EmployeeRecord
	Cancel()
	Submit(ctx context.Context, edits ...form.Edit) (int, dto.EmployeeRecord, error)
	Records(ctx context.Context) ([]dto.EmployeeRecord, error)
	Record(ctx context.Context, index int) (*dto.EmployeeRecord, error)
}

// Menu entries, in the order shown.
const (
	MenuRegister = iota
	MenuList
	MenuView
	MenuQuit
)

var menuOptions = []string{
	MenuRegister: "Register an employee",
	MenuList:     "List submitted employees",
	MenuView:     "View one employee",
	MenuQuit:     "Quit",
}

const (
	submittedNotice = "Employee details submitted successfully!"
	clearedNotice   = "Form cleared."
)

type Console struct {
	session FormSession
	driver  PromptDriver
	out     io.Writer
	title   string
}

func New(session FormSession, driver PromptDriver, out io.Writer, title string) *Console {
	return &Console{session: session, driver: driver, out: out, title: title}
}

// Run shows the menu until the user quits or aborts.
func (c *Console) Run(ctx context.Context) error {
	fmt.Fprintln(c.out, titleStyle.Render(c.title))

	for {
		choice, err := c.driver.Select(ctx, SelectConfig{
			Name:    "menu",
			Message: "What would you like to do?",
			Options: menuOptions,
		})
		if err != nil {
			return err
		}

		switch choice {
		case MenuRegister:
			err = c.Register(ctx)
		case MenuList:
			err = c.List(ctx)
		case MenuView:
			err = c.View(ctx)
		case MenuQuit:
			return nil
		default:
			err = fmt.Errorf("unknown menu choice %d", choice)
		}
		if err != nil {
			return err
		}
	}
}

// Register prompts every form field, starting from the current draft, and
// then submits or cancels.
func (c *Console) Register(ctx context.Context) error {
	for _, s := range dto.Sections {
		fmt.Fprintln(c.out, sectionStyle.Render(string(s)))

		for _, f := range dto.FieldsIn(s) {
			current, err := c.session.Draft().Get(f.Name)
			if err != nil {
				return err
			}

			value, err := c.ask(ctx, f, current)
			if err != nil {
				return err
			}

			if err := c.session.SetField(f.Name, value); err != nil {
				return fmt.Errorf("session.SetField: %w", err)
			}
		}
	}

	submit, err := c.driver.Confirm(ctx, ConfirmConfig{
		Name:    "submit",
		Message: "Submit employee details?",
		Default: true,
	})
	if err != nil {
		return err
	}
	if !submit {
		c.session.Cancel()
		fmt.Fprintln(c.out, clearedNotice)
		return nil
	}

	_, _, err = c.session.Submit(ctx)

	var violations form.Violations
	switch {
	case errors.As(err, &violations):
		fmt.Fprintln(c.out, RenderViolations(violations))
		return nil
	case err != nil:
		return fmt.Errorf("session.Submit: %w", err)
	}

	fmt.Fprintln(c.out, noticeStyle.Render(submittedNotice))

	return nil
}

// List prints the summary table of submitted records.
func (c *Console) List(ctx context.Context) error {
	records, err := c.session.Records(ctx)
	if err != nil {
		return fmt.Errorf("session.Records: %w", err)
	}

	fmt.Fprintln(c.out, RenderTable(records))

	return nil
}

// View asks for a record number and restates all of its fields.
func (c *Console) View(ctx context.Context) error {
	raw, err := c.driver.Input(ctx, InputConfig{
		Name:    "number",
		Message: "Record number:",
		Validator: func(s string) error {
			if n, err := strconv.Atoi(s); err != nil || n <= 0 {
				return errors.New("enter a positive number")
			}
			return nil
		},
	})
	if err != nil {
		return err
	}

	number, err := strconv.Atoi(raw)
	if err != nil || number <= 0 {
		fmt.Fprintln(c.out, "Enter a positive number.")
		return nil
	}

	rec, err := c.session.Record(ctx, number-1)
	if errors.Is(err, dto.ErrNotFound) {
		fmt.Fprintf(c.out, "No employee #%d.\n", number)
		return nil
	}
	if err != nil {
		return fmt.Errorf("session.Record: %w", err)
	}

	fmt.Fprintln(c.out, RenderRecord(number, *rec))

	return nil
}

func (c *Console) ask(ctx context.Context, f dto.Field, current string) (string, error) {
	message := f.Label
	if f.Required {
		message += " *"
	}

	switch f.Widget {
	case dto.WidgetSelect, dto.WidgetRadio:
		options, values := choices(f)

		idx, err := c.driver.Select(ctx, SelectConfig{
			Name:         f.Name,
			Message:      message,
			Options:      options,
			DefaultIndex: indexOf(values, current),
		})
		if err != nil {
			return "", err
		}
		if idx < 0 || idx >= len(values) {
			return current, nil
		}
		return values[idx], nil

	case dto.WidgetTextArea:
		return c.driver.TextArea(ctx, TextAreaConfig{
			Name:    f.Name,
			Message: message,
			Default: current,
			Help:    f.Placeholder,
		})
	}

	name := f.Name
	return c.driver.Input(ctx, InputConfig{
		Name:    f.Name,
		Message: message,
		Default: current,
		Help:    f.Placeholder,
		Validator: func(v string) error {
			var violations form.Violations
			if errors.As(form.CheckField(name, v), &violations) {
				return errors.New(violations.For(name))
			}
			return nil
		},
	})
}

// choices lists the labels and values a choice field offers. Optional
// selects start with their empty prompt entry.
func choices(f dto.Field) ([]string, []string) {
	var labels, values []string
	if f.Widget == dto.WidgetSelect && !f.Required {
		labels = append(labels, f.Prompt)
		values = append(values, "")
	}
	for _, o := range f.Options {
		labels = append(labels, o.Label)
		values = append(values, o.Value)
	}

	return labels, values
}
