package cron

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockPurger struct {
	mock.Mock
}

func (m *mockPurger) PurgeStale(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockPurger) PurgeExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func TestRunCleanup(t *testing.T) {
	views := new(mockPurger)
	sessions := new(mockPurger)
	views.On("PurgeStale", mock.Anything).Return(int64(4), nil).Once()
	sessions.On("PurgeExpired", mock.Anything).Return(int64(1), nil).Once()

	runCleanup(views, sessions)

	views.AssertExpectations(t)
	sessions.AssertExpectations(t)
}

func TestRunCleanup_ContinuesAfterError(t *testing.T) {
	views := new(mockPurger)
	sessions := new(mockPurger)
	views.On("PurgeStale", mock.Anything).Return(int64(0), errors.New("db down")).Once()
	sessions.On("PurgeExpired", mock.Anything).Return(int64(0), nil).Once()

	runCleanup(views, sessions)

	sessions.AssertExpectations(t)
}

func TestInitCleanupCron_SchedulesHourly(t *testing.T) {
	c := InitCleanupCron(nil, nil)
	if assert.NotNil(t, c) {
		defer c.Stop()
		assert.Len(t, c.Entries(), 1)
	}
}

type stubReloader struct{ reloads int }

func (s *stubReloader) Reload()        { s.reloads++ }
func (s *stubReloader) Source() string { return "https://cdn.ornek.com/site.json" }

func TestInitConfigRefreshCron(t *testing.T) {
	c := InitConfigRefreshCron(&stubReloader{}, "")
	if assert.NotNil(t, c) {
		defer c.Stop()
		assert.Len(t, c.Entries(), 1)
	}

	assert.Nil(t, InitConfigRefreshCron(&stubReloader{}, "gecersiz ifade"))
}
