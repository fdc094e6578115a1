// Package server exposes the simulator over HTTP: an HTML widget for the
// embedding page and a JSON API.
package server

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/iwvelando/credit-simulator/internal/config"
	"github.com/iwvelando/credit-simulator/internal/simulator"
	"github.com/iwvelando/credit-simulator/pkg/amortization"
	"github.com/iwvelando/credit-simulator/pkg/constants"
	"github.com/iwvelando/credit-simulator/pkg/format"
	"github.com/iwvelando/credit-simulator/pkg/output"
	"github.com/iwvelando/credit-simulator/pkg/validation"
	"go.uber.org/zap"
)

//go:embed templates/*
var templateFiles embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFiles, "templates/simulator.html.tmpl"))

// Options configure NewHandler.
type Options struct {
	MaxBodySize    int64
	Version        string
	AllowedOrigins []string
}

type handler struct {
	logger      *zap.Logger
	conf        *config.Configuration
	params      simulator.Parameters
	formatter   *format.Formatter
	maxBodySize int64
	version     string
}

// NewHandler constructs the HTTP handler that serves the simulator widget and API.
func NewHandler(logger *zap.Logger, conf *config.Configuration, opts Options) (http.Handler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if conf == nil {
		conf = config.Default()
	}
	if err := conf.Validate(); err != nil {
		return nil, fmt.Errorf("invalid simulator configuration: %w", err)
	}

	formatter, err := format.NewFormatter(conf.Display.Locale)
	if err != nil {
		return nil, err
	}

	maxBodySize := opts.MaxBodySize
	if maxBodySize <= 0 {
		maxBodySize = constants.DefaultMaxBodySizeBytes
	}

	version := strings.TrimSpace(opts.Version)
	if version == "" {
		version = "dev"
	}

	h := &handler{
		logger:      logger,
		conf:        conf,
		params:      conf.Parameters.ToSimulatorParameters(),
		formatter:   formatter,
		maxBodySize: maxBodySize,
		version:     version,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))
	if len(opts.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: opts.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type"},
		}))
	}

	r.Get("/", h.handlePage)
	r.Route("/api", func(r chi.Router) {
		r.Post("/simulate", h.handleSimulate)
		r.Get("/schedule.csv", h.handleScheduleCSV)
		r.Get("/parameters", h.handleParameters)
		r.Get("/version", h.handleVersion)
	})

	return r, nil
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Debug("request served",
				zap.String("op", "server.request"),
				zap.String("requestID", middleware.GetReqID(r.Context())),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}

type simulateRequest struct {
	Mode        string      `json:"mode"`
	Amount      interface{} `json:"amount"`
	Installment interface{} `json:"installment"`
	Term        interface{} `json:"term"`
	ShowDetails *bool       `json:"showDetails"`
	Schedule    bool        `json:"schedule"`
}

type simulateResponse struct {
	Inputs   simulator.Inputs   `json:"inputs"`
	Results  simulator.Results  `json:"results"`
	View     output.View        `json:"view"`
	Schedule []amortization.Row `json:"schedule,omitempty"`
}

func (h *handler) handleSimulate(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleSimulate"

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	var req simulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxBodySize), op)
			return
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), op)
		return
	}

	mode := h.conf.Display.Mode()
	if req.Mode != "" {
		parsed, err := simulator.ParseMode(req.Mode)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, err.Error(), op)
			return
		}
		mode = parsed
	}

	showDetails := h.conf.Display.ShowDetails
	if req.ShowDetails != nil {
		showDetails = *req.ShowDetails
	}

	sim := simulator.New(h.logger, h.params, mode)
	applyInput(req.Amount, sim.UpdateAmount, sim.SetAmount)
	applyInput(req.Installment, sim.UpdateInstallment, sim.SetInstallment)
	applyInput(req.Term, sim.UpdateTerm, sim.SetTerm)

	snap := sim.Snapshot(req.Schedule || (showDetails && mode == simulator.InstallmentToAmount))
	response := simulateResponse{
		Inputs:  snap.Inputs,
		Results: snap.Results,
		View:    output.BuildView(snap, output.Options{ShowDetails: showDetails, Formatter: h.formatter}),
	}
	if req.Schedule {
		response.Schedule = snap.Schedule
	}

	h.logger.Info("simulation computed",
		zap.String("op", op),
		zap.Stringer("mode", mode),
		zap.Int("termMonths", snap.Inputs.TermMonths),
		zap.Int("scheduleRows", len(snap.Schedule)),
	)

	h.writeJSON(w, http.StatusOK, response)
}

// applyInput feeds a JSON value to the simulator the way a form field would:
// strings go through raw text parsing, numbers are truncated, anything else
// counts as 0. A missing value leaves the default in place.
func applyInput(value interface{}, fromText func(string) int, fromNumber func(float64) int) {
	switch v := value.(type) {
	case nil:
		return
	case string:
		fromText(v)
	case float64:
		fromNumber(v)
	default:
		fromNumber(0)
	}
}

type pageData struct {
	View         output.View
	Mode         string
	ToggleURL    string
	ShowDetails  bool
	CostsOpen    bool
	ScheduleOpen bool
	Version      string
}

func (h *handler) handlePage(w http.ResponseWriter, r *http.Request) {
	const op = "server.handlePage"
	query := r.URL.Query()

	mode := h.conf.Display.Mode()
	if value := query.Get("tipo_simulacion"); value != "" {
		if parsed, err := simulator.ParseMode(value); err == nil {
			mode = parsed
		}
	}
	showDetails := queryBool(query.Get("mostrar_detalles"), h.conf.Display.ShowDetails)

	sim := simulator.New(h.logger, h.params, mode)
	if query.Has("monto") {
		sim.UpdateAmount(query.Get("monto"))
	}
	if query.Has("cuota") {
		sim.UpdateInstallment(query.Get("cuota"))
	}
	if query.Has("plazo") {
		sim.UpdateTerm(query.Get("plazo"))
	}

	snap := sim.Snapshot(showDetails && mode == simulator.InstallmentToAmount)
	data := pageData{
		View:         output.BuildView(snap, output.Options{ShowDetails: showDetails, Formatter: h.formatter}),
		Mode:         mode.String(),
		ToggleURL:    fmt.Sprintf("/?tipo_simulacion=%s&mostrar_detalles=%t", mode.Toggle(), showDetails),
		ShowDetails:  showDetails,
		CostsOpen:    queryBool(query.Get("costos"), false),
		ScheduleOpen: queryBool(query.Get("tabla"), false),
		Version:      h.version,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, data); err != nil {
		h.logger.Error("failed to render simulator page",
			zap.String("op", op),
			zap.Error(err),
		)
	}
}

func (h *handler) handleScheduleCSV(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleScheduleCSV"
	query := r.URL.Query()

	sim := simulator.New(h.logger, h.params, simulator.InstallmentToAmount)
	if query.Has("cuota") {
		sim.UpdateInstallment(query.Get("cuota"))
	}
	if query.Has("plazo") {
		sim.UpdateTerm(query.Get("plazo"))
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="amortizacion.csv"`)
	if err := output.CsvFormat(w, sim.Schedule()); err != nil {
		h.logger.Error("failed to write schedule CSV",
			zap.String("op", op),
			zap.Error(err),
		)
	}
}

type parametersResponse struct {
	Parameters              simulator.Parameters `json:"parameters"`
	TotalUpfrontCostPercent float64              `json:"totalUpfrontCostPercent"`
	ShowDetails             bool                 `json:"mostrar_detalles"`
	SimulationType          string               `json:"tipo_simulacion"`
	Locale                  string               `json:"locale"`
}

func (h *handler) handleParameters(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, parametersResponse{
		Parameters:              h.params,
		TotalUpfrontCostPercent: h.params.TotalUpfrontCostPercent(),
		ShowDetails:             h.conf.Display.ShowDetails,
		SimulationType:          h.conf.Display.Mode().String(),
		Locale:                  h.formatter.Locale(),
	})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("simulation request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}

// queryBool parses a query flag, keeping fallback when it is absent or
// unrecognized.
func queryBool(value string, fallback bool) bool {
	parsed, err := validation.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}
