package viewhttp

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vitalvas/viewkit/views"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const defaultTracerName = "viewkit"

// Config configures the lookup handler.
type Config struct {
	// Logger receives request errors. If nil, slog.Default() is used.
	Logger *slog.Logger

	// TracerName is the OpenTelemetry tracer name. Defaults to "viewkit".
	TracerName string

	// RequestID configures the request ID header set on every response.
	RequestID RequestIDConfig
}

// View describes a registered view.
type View struct {
	Name   string   `json:"name"`
	Route  string   `json:"route"`
	Title  string   `json:"title,omitempty"`
	Params []string `json:"params"`
}

// Resolution is the result of resolving a view with a model.
type Resolution struct {
	View  string `json:"view"`
	Route string `json:"route"`
	Title string `json:"title,omitempty"`
}

// ErrorResponse is the body of error responses.
type ErrorResponse struct {
	Error  string   `json:"error"`
	Params []string `json:"params,omitempty"`
}

type handler struct {
	router *views.Router
	logger *slog.Logger
	tracer trace.Tracer
}

// NewHandler returns a read-only HTTP API over r:
//
//	GET /views         list registered views
//	GET /views/{view}  resolve a view; query values form the model
func NewHandler(r *views.Router, cfg Config) http.Handler {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.TracerName == "" {
		cfg.TracerName = defaultTracerName
	}

	h := &handler{
		router: r,
		logger: cfg.Logger,
		tracer: otel.Tracer(cfg.TracerName),
	}

	mux := chi.NewRouter()
	mux.Use(RequestIDMiddleware(cfg.RequestID))
	mux.Use(RecoveryMiddleware(cfg.Logger))
	mux.Get("/views", h.list)
	mux.Get("/views/{view}", h.resolve)
	return mux
}

func (h *handler) list(w http.ResponseWriter, req *http.Request) {
	_, span := h.tracer.Start(req.Context(), "viewhttp.list")
	defer span.End()

	titles := h.router.Titles()
	names := h.router.ViewNames()
	out := make([]View, 0, len(names))
	for _, name := range names {
		tpl, ok := h.router.GetTemplate(name)
		if !ok {
			continue
		}
		params, err := h.router.GetParamNames(name)
		if err != nil {
			continue
		}
		if params == nil {
			params = []string{}
		}
		out = append(out, View{Name: name, Route: tpl, Title: titles[name], Params: params})
	}

	span.SetAttributes(attribute.Int("views.count", len(out)))
	writeJSON(w, http.StatusOK, out)
}

func (h *handler) resolve(w http.ResponseWriter, req *http.Request) {
	name := chi.URLParam(req, "view")

	_, span := h.tracer.Start(req.Context(), "viewhttp.resolve",
		trace.WithAttributes(
			attribute.String("view.name", name),
			attribute.String("http.request_id", RequestIDFromContext(req.Context())),
		))
	defer span.End()

	model := modelFromQuery(req)

	route, err := h.router.ResolveRoute(name, model)
	if err != nil {
		h.fail(w, req, span, name, err)
		return
	}

	title, _, err := h.router.ResolveTitle(name, model)
	if err != nil {
		h.fail(w, req, span, name, err)
		return
	}

	span.SetAttributes(attribute.String("view.route", route))
	writeJSON(w, http.StatusOK, Resolution{View: name, Route: route, Title: title})
}

func (h *handler) fail(w http.ResponseWriter, req *http.Request, span trace.Span, view string, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	resp := ErrorResponse{Error: err.Error()}
	status := http.StatusInternalServerError

	var (
		unmatched  *views.UnmatchedParameterError
		unresolved *views.UnresolvedPlaceholderError
	)
	switch {
	case errors.Is(err, views.ErrUnknownView):
		status = http.StatusNotFound
	case errors.As(err, &unmatched):
		status = http.StatusUnprocessableEntity
		resp.Params = unmatched.Params
	case errors.As(err, &unresolved):
		status = http.StatusUnprocessableEntity
		resp.Params = unresolved.Placeholders
	default:
		h.logger.Error("view resolution failed",
			"view", view,
			"error", err,
			"request_id", RequestIDFromContext(req.Context()))
	}

	writeJSON(w, status, resp)
}

// modelFromQuery uses the first value of every query parameter.
func modelFromQuery(req *http.Request) views.Attrs {
	query := req.URL.Query()
	m := make(views.Attrs, len(query))
	for key, values := range query {
		if len(values) > 0 {
			m[key] = values[0]
		}
	}
	return m
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(buf.Bytes())
}
