package api

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/valyala/fasthttp"

	"github.com/ameypusalkar001/EPMATest/internal/dto"
	"github.com/ameypusalkar001/EPMATest/internal/form"
)

// @Summary Registration form with the current draft and submitted records
// @Tags    Form
// @Produce html
// @Param   submitted query int false "Number of the record just submitted; shows the acknowledgement when it exists"
// @Success 200
// @Router  / [get]
func (s *Service) formPage(ctx *fasthttp.RequestCtx) {
	page, err := s.formPageData(ctx, s.session.Draft(), nil)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, err)
		return
	}

	if n := ctx.QueryArgs().GetUintOrZero("submitted"); n > 0 {
		total, err := s.session.Submitted(ctx)
		if err != nil {
			writeError(ctx, fasthttp.StatusInternalServerError, fmt.Errorf("session.Submitted: %w", err))
			return
		}
		if n <= total {
			page.Notice = submittedNotice
		}
	}

	s.renderPage(ctx, fasthttp.StatusOK, page)
}

// @Summary Set one field of the draft
// @Tags    Form
// @Accept  x-www-form-urlencoded
// @Produce json
// @Param   name  formData string true  "Field name, e.g. firstName"
// @Param   value formData string false "New value"
// @Success 204
// @Failure 400 {object} errorResponse "unknown or missing field name"
// @Router  /draft [post]
func (s *Service) setDraftField(ctx *fasthttp.RequestCtx) {
	args := ctx.PostArgs()

	name := strings.TrimSpace(string(args.Peek("name")))
	if name == "" {
		writeError(ctx, fasthttp.StatusBadRequest, ErrFieldNameRequired)
		return
	}

	if err := s.session.SetField(name, string(args.Peek("value"))); err != nil {
		if errors.Is(err, dto.ErrUnknownField) {
			writeError(ctx, fasthttp.StatusBadRequest, err)
			return
		}

		writeError(ctx, fasthttp.StatusInternalServerError, fmt.Errorf("session.SetField: %w", err))
		return
	}

	ctx.SetStatusCode(fasthttp.StatusNoContent)
}

// @Summary Submit the form
// @Tags    Form
// @Accept  x-www-form-urlencoded
// @Produce html
// @description Posted fields are applied to the draft first. When every widget
// @description constraint passes the draft is recorded, reset, and the browser
// @description is redirected to / with the acknowledgement; otherwise the form
// @description is shown again with the failing fields marked.
// @Success 303
// @Failure 422 "constraint violations"
// @Router  /submit [post]
func (s *Service) submitForm(ctx *fasthttp.RequestCtx) {
	index, _, err := s.session.Submit(ctx, postedEdits(ctx)...)

	var violations form.Violations
	switch {
	case errors.As(err, &violations):
		page, perr := s.formPageData(ctx, s.session.Draft(), violations)
		if perr != nil {
			writeError(ctx, fasthttp.StatusInternalServerError, perr)
			return
		}
		s.renderPage(ctx, fasthttp.StatusUnprocessableEntity, page)
		return
	case err != nil:
		writeError(ctx, fasthttp.StatusInternalServerError, fmt.Errorf("session.Submit: %w", err))
		return
	}

	seeOther(ctx, fmt.Sprintf("/?submitted=%d", index+1))
}

// @Summary Cancel: reset the draft to its defaults
// @Tags    Form
// @Success 303
// @Router  /reset [post]
func (s *Service) resetForm(ctx *fasthttp.RequestCtx) {
	s.session.Cancel()

	seeOther(ctx, "/")
}

// @Summary Current draft
// @Tags    Form
// @Produce json
// @Success 200 {object} dto.EmployeeRecord
// @Router  /api/draft [get]
func (s *Service) getDraft(ctx *fasthttp.RequestCtx) {
	writeJSON(ctx, fasthttp.StatusOK, s.session.Draft())
}

// postedEdits collects the posted form fields that belong to the record.
// Other keys are ignored.
func postedEdits(ctx *fasthttp.RequestCtx) []form.Edit {
	var edits []form.Edit

	ctx.PostArgs().VisitAll(func(key, value []byte) {
		name := string(key)
		if _, ok := dto.FieldByName(name); !ok {
			log.Debug().Str("request_id", RequestID(ctx)).Str("key", name).Msg("ignoring unknown form key")
			return
		}
		edits = append(edits, form.Edit{Name: name, Value: string(value)})
	})

	return edits
}

func (s *Service) formPageData(ctx *fasthttp.RequestCtx, draft dto.EmployeeRecord, violations form.Violations) (pageData, error) {
	records, err := s.session.Records(ctx)
	if err != nil {
		return pageData{}, fmt.Errorf("session.Records: %w", err)
	}

	return s.views.newPage(draft, violations, records), nil
}

func (s *Service) renderPage(ctx *fasthttp.RequestCtx, status int, page pageData) {
	body, err := s.views.render(page)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, err)
		return
	}

	writeHTML(ctx, status, body)
}
