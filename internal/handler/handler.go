package handler

import (
	"log/slog"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"

	"rut-calc-api/internal/model"
	"rut-calc-api/internal/operations"
	"rut-calc-api/internal/rut"
)

const (
	contentTypeJSON = "application/json"
	contentTypeText = "text/plain; charset=utf-8"
)

// Options holds the static values served by the text routes.
type Options struct {
	Greeting string
	APIKey   string
}

type handler struct {
	opts Options
	log  *slog.Logger
}

// New returns the service's request handler with request id, access log and
// panic recovery applied.
func New(opts Options, log *slog.Logger) fasthttp.RequestHandler {
	h := &handler{opts: opts, log: log}
	return withRequestID(withAccessLog(log, withRecover(log, h.route)))
}

func (h *handler) route(ctx *fasthttp.RequestCtx) {
	var next fasthttp.RequestHandler
	switch string(ctx.Path()) {
	case "/":
		next = h.hello
	case "/validate-rut":
		next = h.validateRut
	case "/apikey":
		next = h.apiKey
	case "/operaciones":
		next = h.calculate
	case "/health":
		next = h.health
	default:
		writeError(ctx, fasthttp.StatusNotFound, "Not found")
		return
	}

	if !ctx.IsGet() && !ctx.IsHead() {
		ctx.Response.Header.Set(fasthttp.HeaderAllow, "GET, HEAD")
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	next(ctx)
}

func (h *handler) hello(ctx *fasthttp.RequestCtx) {
	writeText(ctx, h.opts.Greeting+" !!")
}

func (h *handler) apiKey(ctx *fasthttp.RequestCtx) {
	writeText(ctx, h.opts.APIKey+"!!")
}

func (h *handler) health(ctx *fasthttp.RequestCtx) {
	writeJSON(ctx, fasthttp.StatusOK, model.HealthResponse{Status: "ok"})
}

func (h *handler) validateRut(ctx *fasthttp.RequestCtx) {
	raw := string(ctx.QueryArgs().Peek("rut"))

	formatted, ok := rut.Format(raw)
	if !ok {
		h.log.Debug("rut rejected", "request_id", requestID(ctx), "rut", raw)
		writeJSON(ctx, fasthttp.StatusBadRequest, model.MessageResponse{Mensaje: model.MessageRutInvalid})
		return
	}

	h.log.Debug("rut accepted", "request_id", requestID(ctx), "rut", formatted)
	writeJSON(ctx, fasthttp.StatusOK, model.MessageResponse{Mensaje: model.MessageRutValid})
}

func (h *handler) calculate(ctx *fasthttp.RequestCtx) {
	args := ctx.QueryArgs()
	tag := string(args.Peek("operacion"))
	a := operations.Numeric(string(args.Peek("a")))
	b := operations.Numeric(string(args.Peek("b")))

	res := operations.Compute(tag, a, b)
	if !res.OK {
		h.log.Debug("operation failed",
			"request_id", requestID(ctx),
			"operacion", tag,
			"a", a.String(),
			"b", b.String(),
		)
		writeJSON(ctx, fasthttp.StatusBadGateway, model.OperationResponse{
			Resultado: nil,
			Mensaje:   model.MessageOperationFailure,
		})
		return
	}

	writeJSON(ctx, fasthttp.StatusOK, model.OperationResponse{
		Resultado: res.Pointer(),
		Mensaje:   model.MessageOperationSuccess,
	})
}

func writeText(ctx *fasthttp.RequestCtx, body string) {
	ctx.SetContentType(contentTypeText)
	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetBodyString(body)
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		ctx.SetContentType(contentTypeText)
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		ctx.SetBodyString("Internal server error")
		return
	}
	ctx.SetContentType(contentTypeJSON)
	ctx.SetStatusCode(status)
	ctx.SetBody(b)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	writeJSON(ctx, status, model.ErrorResponse{
		Status:  status,
		Message: message,
	})
}
