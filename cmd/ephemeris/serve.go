package main

import (
	"bytes"
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/subtlepseudonym/ephemeris"
	"github.com/subtlepseudonym/ephemeris/render"
	"github.com/subtlepseudonym/ephemeris/timebase"
)

const defaultListenAddr = ":9000"

// utMidnight fires at 00:00 Universal Time regardless of the process
// time zone.
//
// This implements robfig/cron.Schedule
type utMidnight struct{}

func (utMidnight) Next(now time.Time) time.Time {
	utc := now.UTC()
	next := time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// pageServer keeps the current UT day's rendered page and swaps it
// out when the civil day rolls over.
type pageServer struct {
	orchestrator *ephemeris.Orchestrator
	log          *zap.Logger

	mu   sync.RWMutex
	page []byte
}

// Run regenerates the page for the current UT day.
//
// This implements robfig/cron.Job
func (s *pageServer) Run() {
	now := time.Now().UTC()
	date := timebase.Date{Year: now.Year(), Month: now.Month(), Day: now.Day()}

	days, err := s.orchestrator.Run(context.Background(), date, date)
	if err != nil {
		s.log.Error("regenerate page failed", zap.String("date", date.String()), zap.Error(err))
		return
	}

	var buf bytes.Buffer
	err = render.Page(&buf, days[0])
	if err != nil {
		s.log.Error("render page failed", zap.String("date", date.String()), zap.Error(err))
		return
	}

	s.mu.Lock()
	s.page = buf.Bytes()
	s.mu.Unlock()
	s.log.Info("regenerated page", zap.String("date", date.String()))
}

func (s *pageServer) todayHandler(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	page := s.page
	s.mu.RUnlock()

	if page == nil {
		http.Error(w, "page not computed yet", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write(page)
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "serve the current day's page over HTTP, regenerating at 00:00 UT",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, orchestrator, logger, err := setup()
			if err != nil {
				return err
			}
			defer logger.Sync()

			server := &pageServer{
				orchestrator: orchestrator,
				log:          logger,
			}
			server.Run()

			pageCron := cron.New()
			pageCron.Schedule(utMidnight{}, server)
			pageCron.Start()

			mux := http.NewServeMux()
			mux.HandleFunc("/today", server.todayHandler)
			mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			addr := cfg.Listen
			if addr == "" {
				addr = defaultListenAddr
			}

			srv := http.Server{
				Addr:    addr,
				Handler: mux,
			}
			logger.Info("listening", zap.String("addr", srv.Addr))
			return srv.ListenAndServe()
		},
	}
}
