package api

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/valyala/fasthttp"

	"github.com/ameypusalkar001/EPMATest/internal/dto"
)

// @Summary Submitted records in submission order
// @Tags    Records
// @Produce json
// @Success 200 {object} listResponse
// @Failure 500 {object} errorResponse
// @Router  /api/records [get]
func (s *Service) listRecords(ctx *fasthttp.RequestCtx) {
	rows, err := s.session.Records(ctx)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, fmt.Errorf("session.Records: %w", err))
		return
	}
	if rows == nil {
		rows = []dto.EmployeeRecord{}
	}

	writeJSON(ctx, fasthttp.StatusOK, listResponse{Items: rows, Total: len(rows)})
}

// @Summary Restate every field of one submitted record
// @Tags    Records
// @Produce html
// @Param   number path int true "Record number, starting at 1"
// @Success 200
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router  /records/{number} [get]
func (s *Service) recordPage(ctx *fasthttp.RequestCtx) {
	raw, _ := ctx.UserValue("number").(string)
	number, err := strconv.Atoi(raw)
	if err != nil || number <= 0 {
		writeError(ctx, fasthttp.StatusBadRequest, ErrRecordNumber)
		return
	}

	rec, err := s.session.Record(ctx, number-1)
	if err != nil {
		if errors.Is(err, dto.ErrNotFound) {
			writeError(ctx, fasthttp.StatusNotFound, ErrRecordNotFound)
			return
		}

		writeError(ctx, fasthttp.StatusInternalServerError, fmt.Errorf("session.Record: %w", err))
		return
	}

	page, err := s.formPageData(ctx, s.session.Draft(), nil)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, err)
		return
	}
	page.Detail = newDetail(number, *rec)

	s.renderPage(ctx, fasthttp.StatusOK, page)
}
