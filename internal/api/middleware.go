package api

import (
	"runtime"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/valyala/fasthttp"
)

const requestIDKey = "request-id"

func RecoveryMiddleware(next fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		defer func() {
			if rvr := recover(); rvr != nil {
				stack := debug.Stack()

				log.Error().
					Interface("panic", rvr).
					Str("method", string(ctx.Method())).
					Str("url", ctx.URI().String()).
					Str("remote_addr", ctx.RemoteAddr().String()).
					Str("stack_trace", string(stack)).
					Msg("Recovered from panic")

				pc, file, line, ok := runtime.Caller(3)
				if ok {
					log.Error().
						Str("file", file).
						Int("line", line).
						Str("function", runtime.FuncForPC(pc).Name()).
						Msg("Panic occurred here")
				}
				ctx.Error("Internal Server Error", fasthttp.StatusInternalServerError)
			}
		}()

		next(ctx)
	}
}

// LoggingMiddleware logs every request together with its request_id.
func LoggingMiddleware(next fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		requestID, ok := ctx.UserValue(requestIDKey).(string)
		if !ok {
			requestID = uuid.New().String()
			ctx.SetUserValue(requestIDKey, requestID)
		}
		ctx.Response.Header.Set("X-Request-ID", requestID)

		begin := time.Now()
		next(ctx)

		log.Info().
			Str("request_id", requestID).
			Bytes("method", ctx.Method()).
			Str("url", ctx.URI().String()).
			Int("status", ctx.Response.StatusCode()).
			Dur("latency", time.Since(begin)).
			Msg("Completed request")
	}
}

// RequestID returns the id LoggingMiddleware assigned to the request.
func RequestID(ctx *fasthttp.RequestCtx) string {
	id, _ := ctx.UserValue(requestIDKey).(string)
	return id
}
