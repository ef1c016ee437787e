// Package server exposes workbook exports and the coordinate helpers over HTTP.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/orayew2002/xlfluent/coord"
	"github.com/orayew2002/xlfluent/sample"
	"github.com/orayew2002/xlfluent/workbook"
	"github.com/sirupsen/logrus"
)

// Server routes export and coordinate requests.
type Server struct {
	engine *workbook.Engine
	log    *logrus.Logger
	mux    *http.ServeMux
}

// New creates a Server using engine for every export.
func New(engine *workbook.Engine, log *logrus.Logger) *Server {
	s := &Server{engine: engine, log: log, mux: http.NewServeMux()}
	s.mux.HandleFunc("GET /export/{file}", s.handleExport)
	s.mux.HandleFunc("GET /coord", s.handleCoord)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

	s.mux.ServeHTTP(rec, r)

	s.log.WithFields(logrus.Fields{
		"method":   r.Method,
		"path":     r.URL.Path,
		"status":   rec.status,
		"duration": time.Since(start),
	}).Info("request")
}

// handleExport serves /export/<sample>.xlsx and /export/<sample>.pdf.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	file := r.PathValue("file")
	ext := path.Ext(file)
	name := strings.TrimSuffix(file, ext)

	build, ok := sample.Builders[name]
	if !ok {
		s.fail(w, http.StatusNotFound, errors.New("unknown workbook "+name))
		return
	}
	if ext != ".xlsx" && ext != ".pdf" {
		s.fail(w, http.StatusNotFound, errors.New("unsupported format "+ext))
		return
	}

	wb, err := build(s.engine)
	if err != nil {
		s.fail(w, http.StatusInternalServerError, err)
		return
	}
	defer wb.Close()

	if ext == ".xlsx" {
		err = wb.BuildResponse(w, file)
	} else {
		page := workbook.PageSetup{
			PaperSize:   r.URL.Query().Get("paper"),
			Orientation: r.URL.Query().Get("orientation"),
		}
		err = wb.BuildPDFResponse(w, file, page)
	}

	switch {
	case errors.Is(err, workbook.ErrInvalidPageSetup):
		s.fail(w, http.StatusBadRequest, err)
	case errors.Is(err, workbook.ErrPDFUnavailable):
		s.fail(w, http.StatusNotImplemented, err)
	case err != nil:
		s.fail(w, http.StatusInternalServerError, err)
	}
}

// CoordResult describes a coordinate string.
type CoordResult struct {
	Input      string `json:"input"`
	Origin     string `json:"origin"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Normalized string `json:"normalized"`
	Translated string `json:"translated,omitempty"`
}

func (s *Server) handleCoord(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	in := q.Get("range")

	rng, err := coord.ParseRange(in)
	if err != nil {
		s.fail(w, http.StatusBadRequest, err)
		return
	}

	res := CoordResult{
		Input:      in,
		Origin:     rng.Origin.String(),
		Width:      rng.Width(),
		Height:     rng.Height(),
		Normalized: rng.Normalize().String(),
	}

	if q.Has("dc") || q.Has("dr") {
		dc, err := intParam(q.Get("dc"))
		if err != nil {
			s.fail(w, http.StatusBadRequest, err)
			return
		}
		dr, err := intParam(q.Get("dr"))
		if err != nil {
			s.fail(w, http.StatusBadRequest, err)
			return
		}

		moved, err := rng.Translate(dc, dr)
		if err != nil {
			s.fail(w, http.StatusBadRequest, err)
			return
		}
		res.Translated = moved.String()
	}

	s.writeJSON(w, http.StatusOK, res)
}

func intParam(v string) (int, error) {
	if v == "" {
		return 0, nil
	}
	return strconv.Atoi(v)
}

func (s *Server) fail(w http.ResponseWriter, status int, err error) {
	entry := s.log.WithError(err).WithField("status", status)
	if status >= http.StatusInternalServerError {
		entry.Error("request failed")
	} else {
		entry.Debug("request rejected")
	}
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.WithError(err).Warn("encode response")
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
