package api

import (
	"github.com/valyala/fasthttp"
)

// @Summary Service health check
// @Tags    Admin
// @Success 200 {object} okResponse
// @Router  /health [get]
func (s *Service) healthHandler(ctx *fasthttp.RequestCtx) {
	ok(ctx, "OK")
}
