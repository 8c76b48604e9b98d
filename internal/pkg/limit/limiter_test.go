// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package limit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"

	"github.com/elastic/monitoring-adapter/internal/pkg/config"
	testlog "github.com/elastic/monitoring-adapter/internal/pkg/testing/log"
)

type mockIncer struct {
	mock.Mock
}

func (m *mockIncer) IncError(err error) {
	m.Called(err)
}

func (m *mockIncer) IncStart() func() {
	args := m.Called()
	return args.Get(0).(func())
}

func stubHandle(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	w.WriteHeader(http.StatusOK)
}

func Test_limiter_wrap(t *testing.T) {
	tests := []struct {
		name   string
		l      *limiter
		stats  func() *mockIncer
		status int
	}{{
		name: "no limits",
		l:    &limiter{},
		stats: func() *mockIncer {
			m := &mockIncer{}
			m.On("IncStart").Return(noop).Once()
			return m
		},
		status: http.StatusOK,
	}, {
		name: "max limit",
		l: &limiter{
			maxLimit: semaphore.NewWeighted(0),
		},
		stats: func() *mockIncer {
			m := &mockIncer{}
			m.On("IncStart").Return(noop).Once()
			m.On("IncError", ErrMaxLimit).Once()
			return m
		},
		status: http.StatusTooManyRequests,
	}, {
		name: "rate limit",
		l: &limiter{
			rateLimit: rate.NewLimiter(rate.Limit(0), 0),
		},
		stats: func() *mockIncer {
			m := &mockIncer{}
			m.On("IncStart").Return(noop).Once()
			m.On("IncError", ErrRateLimit).Once()
			return m
		},
		status: http.StatusTooManyRequests,
	}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := testlog.SetLogger(t)
			stats := tt.stats()
			h := tt.l.wrap(logger, 0, stubHandle, stats)

			w := httptest.NewRecorder()
			h(w, httptest.NewRequest(http.MethodGet, "/", nil), nil)
			resp := w.Result()
			resp.Body.Close()
			assert.Equal(t, tt.status, resp.StatusCode)
			stats.AssertExpectations(t)
		})
	}
}

func TestLimiterReleasesMax(t *testing.T) {
	l := newLimiter(&config.Limit{Max: 1})

	release, err := l.acquire()
	assert.NoError(t, err)

	_, err = l.acquire()
	assert.ErrorIs(t, err, ErrMaxLimit)

	release()
	release, err = l.acquire()
	assert.NoError(t, err)
	release()
}

func TestNewLimiterFromConfig(t *testing.T) {
	var cfg config.ServerLimits
	cfg.InitDefaults()
	cfg.StatusLimit = config.Limit{}
	cfg.MLJobsLimit = config.Limit{Interval: time.Hour, Burst: 1}

	l := NewLimiter("localhost:5602", &cfg)
	assert.Nil(t, l.status.rateLimit)
	assert.Nil(t, l.status.maxLimit)
	assert.NotNil(t, l.pipelines.rateLimit)
	assert.NotNil(t, l.pipelines.maxLimit)

	stats := &mockIncer{}
	stats.On("IncStart").Return(noop).Twice()
	stats.On("IncError", ErrRateLimit).Once()
	h := l.WrapMLJobs(stubHandle, stats)

	w := httptest.NewRecorder()
	h(w, httptest.NewRequest(http.MethodPost, "/", nil), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	h(w, httptest.NewRequest(http.MethodPost, "/", nil), nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	stats.AssertExpectations(t)
}
