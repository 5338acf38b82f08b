package scheduler

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPingServices(t *testing.T) {
	var serverHits, clientHits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		serverHits.Add(1)
	}))
	defer server.Close()
	client := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientHits.Add(1)
	}))
	defer client.Close()

	s := &Scheduler{
		cron:       cron.New(),
		httpClient: &http.Client{Timeout: time.Second},
		serverURL:  server.URL + "/health",
		clientURL:  client.URL,
		logger:     zap.NewNop(),
	}

	s.PingServices()
	assert.Equal(t, int32(1), serverHits.Load())
	assert.Equal(t, int32(1), clientHits.Load())
}

func TestPingServicesSkipsEmptyClientURL(t *testing.T) {
	var serverHits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		serverHits.Add(1)
	}))
	defer server.Close()

	s := &Scheduler{
		cron:       cron.New(),
		httpClient: &http.Client{Timeout: time.Second},
		serverURL:  server.URL + "/health",
		logger:     zap.NewNop(),
	}

	s.PingServices()
	assert.Equal(t, int32(1), serverHits.Load())
}

func TestPingServicesSurvivesDeadTargets(t *testing.T) {
	dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	dead.Close()

	s := &Scheduler{
		cron:       cron.New(),
		httpClient: &http.Client{Timeout: time.Second},
		serverURL:  dead.URL + "/health",
		clientURL:  dead.URL,
		logger:     zap.NewNop(),
	}

	assert.NotPanics(t, s.PingServices)
}

func TestStartAndStop(t *testing.T) {
	s := &Scheduler{
		cron:       cron.New(),
		httpClient: &http.Client{Timeout: time.Second},
		serverURL:  "http://localhost:0/health",
		logger:     zap.NewNop(),
	}

	require.NoError(t, s.Start())
	s.Stop()
}
