package handler

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/valyala/fasthttp"
)

const (
	HeaderRequestID = "X-Request-ID"

	requestIDKey = "request_id"
	maxIDLength  = 128
)

// withRequestID reuses the caller's X-Request-ID when present and echoes it
// back on the response.
func withRequestID(next fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		id := string(ctx.Request.Header.Peek(HeaderRequestID))
		if id == "" || len(id) > maxIDLength {
			id = uuid.New().String()
		}
		ctx.SetUserValue(requestIDKey, id)
		ctx.Response.Header.Set(HeaderRequestID, id)
		next(ctx)
	}
}

func withAccessLog(log *slog.Logger, next fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		start := time.Now()
		next(ctx)
		log.Info("request",
			"request_id", requestID(ctx),
			"method", string(ctx.Method()),
			"path", string(ctx.Path()),
			"status", ctx.Response.StatusCode(),
			"duration", time.Since(start),
		)
	}
}

func withRecover(log *slog.Logger, next fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("panic recovered",
					"request_id", requestID(ctx),
					"path", string(ctx.Path()),
					"error", fmt.Sprint(r),
				)
				ctx.ResetBody()
				writeError(ctx, fasthttp.StatusInternalServerError, "Internal server error")
			}
		}()
		next(ctx)
	}
}

func requestID(ctx *fasthttp.RequestCtx) string {
	id, _ := ctx.UserValue(requestIDKey).(string)
	return id
}
