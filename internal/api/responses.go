package api

import (
	"encoding/json"
	"errors"

	"github.com/valyala/fasthttp"
)

var (
	ErrFieldNameRequired = errors.New("field name is required")
	ErrRecordNumber      = errors.New("record number must be a positive integer")
	ErrRecordNotFound    = errors.New("record not found")
)

type okResponse struct {
	Status string `json:"status" example:"ok"`
	Msg    string `json:"msg" example:"done"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type listResponse struct {
	Items any `json:"items"`
	Total int `json:"total"`
}

func writeJSON(ctx *fasthttp.RequestCtx, statusCode int, body any) {
	ctx.Response.Header.Set("Content-Type", "application/json; charset=utf-8")
	ctx.SetStatusCode(statusCode)

	_ = json.NewEncoder(ctx).Encode(body)
}

func ok(ctx *fasthttp.RequestCtx, msg string) {
	writeJSON(ctx, fasthttp.StatusOK, okResponse{Status: "ok", Msg: msg})
}

func writeError(ctx *fasthttp.RequestCtx, httpStatus int, err error) {
	writeJSON(ctx, httpStatus, errorResponse{Code: fasthttp.StatusMessage(httpStatus), Message: err.Error()})
}

func writeHTML(ctx *fasthttp.RequestCtx, httpStatus int, body []byte) {
	ctx.Response.Header.Set("Content-Type", "text/html; charset=utf-8")
	ctx.SetStatusCode(httpStatus)
	ctx.SetBody(body)
}

// seeOther redirects the browser after a POST so a reload does not repeat it.
func seeOther(ctx *fasthttp.RequestCtx, location string) {
	ctx.Response.Header.Set("Location", location)
	ctx.SetStatusCode(fasthttp.StatusSeeOther)
}
