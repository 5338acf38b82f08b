// Package scheduler runs the periodic keep-alive pinger that stops
// free-tier hosting from putting the service and the frontend to sleep.
package scheduler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"resumewise-backend/internal/config"
)

// pingSchedule fires every 10 minutes
const pingSchedule = "*/10 * * * *"

// Scheduler pings the API and the frontend on a fixed cron schedule
type Scheduler struct {
	cron       *cron.Cron
	httpClient *http.Client
	serverURL  string
	clientURL  string
	logger     *zap.Logger
}

// New creates a Scheduler for the given server and client URLs
func New(cfg *config.Config, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		cron:       cron.New(),
		httpClient: &http.Client{Timeout: 10 * time.Second},
		serverURL:  fmt.Sprintf("http://%s:%s/health", cfg.Server.Host, cfg.Server.Port),
		clientURL:  cfg.Scheduler.ClientURL,
		logger:     logger,
	}
}

// Start registers the ping job and starts the cron loop
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(pingSchedule, s.PingServices); err != nil {
		return fmt.Errorf("failed to schedule ping job: %w", err)
	}
	s.cron.Start()
	s.logger.Info("scheduler started", zap.String("schedule", pingSchedule))
	return nil
}

// Stop stops the cron loop and waits for a running job to finish
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("scheduler stopped")
}

// PingServices pings the backend and the frontend. Failures are logged
// and never propagated; a dead frontend must not affect the API.
func (s *Scheduler) PingServices() {
	s.ping("server", s.serverURL)
	if s.clientURL != "" {
		s.ping("client", s.clientURL)
	}
}

func (s *Scheduler) ping(name, url string) {
	resp, err := s.httpClient.Get(url)
	if err != nil {
		s.logger.Warn("keep-alive ping failed", zap.String("target", name), zap.Error(err))
		return
	}
	resp.Body.Close()
	s.logger.Info("keep-alive ping ok", zap.String("target", name), zap.Int("status", resp.StatusCode))
}
