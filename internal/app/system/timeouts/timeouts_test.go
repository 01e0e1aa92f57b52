package timeouts_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dalemusser/classment/internal/app/system/timeouts"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestDefaults(t *testing.T) {
	timeouts.Reset()
	got := timeouts.Current()
	want := timeouts.Config{
		Ping:      timeouts.DefaultPing,
		Short:     timeouts.DefaultShort,
		Dashboard: timeouts.DefaultDashboard,
		Long:      timeouts.DefaultLong,
	}
	if got != want {
		t.Errorf("Current() = %+v, want %+v", got, want)
	}
}

func TestConfigure_IgnoresZero(t *testing.T) {
	t.Cleanup(timeouts.Reset)

	timeouts.Configure(timeouts.Config{Dashboard: 3 * time.Second})
	if timeouts.Dashboard() != 3*time.Second {
		t.Errorf("Dashboard() = %v, want 3s", timeouts.Dashboard())
	}
	if timeouts.Short() != timeouts.DefaultShort {
		t.Errorf("Short() = %v, want default", timeouts.Short())
	}
}

func TestWithTimeout_LogsDeadline(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	log := zap.New(core)

	ctx, cancel := timeouts.WithTimeout(context.Background(), time.Millisecond, log, "admin dashboard")
	<-ctx.Done()
	cancel()

	if !errors.Is(ctx.Err(), context.DeadlineExceeded) {
		t.Fatalf("ctx.Err() = %v", ctx.Err())
	}
	if logs.FilterMessage("operation timed out").Len() != 1 {
		t.Errorf("expected one timeout warning, got %d entries", logs.Len())
	}
}

func TestWithTimeout_NoLogOnCancel(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)

	_, cancel := timeouts.WithTimeout(context.Background(), time.Minute, zap.New(core), "teacher dashboard")
	cancel()

	if logs.Len() != 0 {
		t.Errorf("expected no warnings, got %d", logs.Len())
	}
}
