// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package webui provides an interactive calendar page that displays the
// almanac for a selected date along with a JSON API for the same data.
package webui

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/skycal/almanac"
	"cloudeng.io/skycal/calendar"
	"cloudeng.io/webapp/jsonapi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

//go:embed templates/*.html
var templates embed.FS

var calendarTemplate = template.Must(template.ParseFS(templates, "templates/calendar.html"))

// Server serves the calendar pages and API.
type Server struct {
	almanac *almanac.Almanac
	now     func() time.Time
}

// Option represents an option to New.
type Option func(*Server)

// WithClock sets the function used to determine the current date.
func WithClock(now func() time.Time) Option {
	return func(s *Server) {
		s.now = now
	}
}

// New returns a new Server for the supplied almanac.
func New(a *almanac.Almanac, opts ...Option) *Server {
	s := &Server{almanac: a, now: time.Now}
	for _, fn := range opts {
		fn(s)
	}
	return s
}

// Handler returns an http.Handler for all of the server's routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, logRequests, middleware.Recoverer)
	s.Routes(r)
	return r
}

// Routes registers the server's routes with r.
func (s *Server) Routes(r chi.Router) {
	r.Get("/", s.index)
	r.Get("/{year}/{month}", s.month)
	r.Get("/{year}/{month}/{day}", s.day)
	r.Get("/api/{year}/{month}/{day}", s.api)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := ctxlog.ContextWith(r.Context(), "request", middleware.GetReqID(r.Context()))
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r.WithContext(ctx))
		ctxlog.Logger(ctx).Info("http", "method", r.Method, "path", r.URL.Path, "status", ww.Status(), "duration", time.Since(start))
	})
}

func (s *Server) today() calendar.Date {
	return calendar.DateFromTime(s.almanac.Zone().In(s.now()))
}

func monthPath(year int, month calendar.Month) string {
	return fmt.Sprintf("/%d/%d", year, int(month))
}

func dayPath(d calendar.Date) string {
	return fmt.Sprintf("/%d/%d/%d", d.Year, int(d.Month), d.Day)
}

// index redirects to the month selected by the year and month query
// parameters, or to the current month.
func (s *Server) index(w http.ResponseWriter, r *http.Request) {
	today := s.today()
	year, month := today.Year, today.Month
	q := r.URL.Query()
	if v := q.Get("year"); len(v) > 0 {
		y, err := s.parseYear(v)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		year = y
	}
	if v := q.Get("month"); len(v) > 0 {
		m, err := calendar.ParseMonth(v)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		month = m
	}
	http.Redirect(w, r, monthPath(year, month), http.StatusFound)
}

func (s *Server) parseYear(v string) (int, error) {
	y, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid year: %q", v)
	}
	if yr := s.almanac.Config().Years; !yr.Contains(y) {
		return 0, fmt.Errorf("year %d is outside of %v", y, yr)
	}
	return y, nil
}

func (s *Server) parseYearMonth(r *http.Request) (int, calendar.Month, error) {
	year, err := s.parseYear(chi.URLParam(r, "year"))
	if err != nil {
		return 0, 0, err
	}
	month, err := calendar.ParseMonth(chi.URLParam(r, "month"))
	if err != nil {
		return 0, 0, err
	}
	return year, month, nil
}

func (s *Server) parseDate(r *http.Request) (calendar.Date, error) {
	year, month, err := s.parseYearMonth(r)
	if err != nil {
		return calendar.Date{}, err
	}
	day, err := strconv.Atoi(chi.URLParam(r, "day"))
	if err != nil {
		return calendar.Date{}, fmt.Errorf("invalid day: %q", chi.URLParam(r, "day"))
	}
	d := calendar.NewDate(year, month, day)
	return d, d.Validate()
}

func (s *Server) month(w http.ResponseWriter, r *http.Request) {
	year, month, err := s.parseYearMonth(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.render(w, r, s.newPage(year, month, nil), http.StatusOK)
}

func (s *Server) day(w http.ResponseWriter, r *http.Request) {
	year, month, err := s.parseYearMonth(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	d, err := s.parseDate(r)
	if err != nil {
		pg := s.newPage(year, month, nil)
		pg.Error = err.Error()
		s.render(w, r, pg, http.StatusBadRequest)
		return
	}
	pg := s.newPage(year, month, &d)
	day, err := s.almanac.Compute(r.Context(), d)
	if err != nil {
		pg.Error = fmt.Sprintf("failed to compute the almanac: %v", err)
		s.render(w, r, pg, http.StatusInternalServerError)
		return
	}
	summary := day.Summary()
	pg.Day = &summary
	s.render(w, r, pg, http.StatusOK)
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, pg *page, status int) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := calendarTemplate.Execute(w, pg); err != nil {
		ctxlog.Logger(r.Context()).Error("failed to render page", "error", err)
	}
}

var dayEndpoint jsonapi.Endpoint[struct{}, almanac.Summary]

func (s *Server) api(w http.ResponseWriter, r *http.Request) {
	d, err := s.parseDate(r)
	if err != nil {
		jsonapi.WriteErrorMsg(w, err.Error(), http.StatusBadRequest)
		return
	}
	day, err := s.almanac.Compute(r.Context(), d)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, calendar.ErrInvalidDate) {
			status = http.StatusBadRequest
		}
		jsonapi.WriteErrorMsg(w, err.Error(), status)
		return
	}
	if err := dayEndpoint.WriteResponse(w, day.Summary()); err != nil {
		ctxlog.Logger(r.Context()).Error("failed to write response", "error", err)
	}
}
