package job

import (
	"context"
	"errors"
	"testing"
	"time"

	"gestao_contratos/internal/domain/entities"
	"gestao_contratos/internal/domain/services"

	"github.com/shopspring/decimal"
)

type fakeRefresher struct {
	counts map[entities.ContractStatus]int
	err    error
}

func (f fakeRefresher) RefreshStatuses(context.Context) (map[entities.ContractStatus]int, error) {
	return f.counts, f.err
}

type fakeAlerts struct {
	calls     int
	threshold decimal.Decimal
}

func (f *fakeAlerts) ListAlerts(_ context.Context, threshold decimal.Decimal) ([]services.Alert, error) {
	f.calls++
	f.threshold = threshold
	return []services.Alert{{}}, nil
}

func (f *fakeAlerts) DefaultThreshold() decimal.Decimal { return decimal.NewFromInt(90) }

type fakeCache struct{ resets int }

func (f *fakeCache) InvalidateAll() { f.resets++ }

func TestStatusRefreshJob_Run(t *testing.T) {
	t.Run("refreshes and warms the alert cache", func(t *testing.T) {
		alerts := &fakeAlerts{}
		cache := &fakeCache{}
		j := NewStatusRefreshJob(fakeRefresher{counts: map[entities.ContractStatus]int{entities.ContractStatusAtivo: 2}}, alerts, cache)

		if err := j.Run(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cache.resets != 1 || alerts.calls != 1 || !alerts.threshold.Equal(decimal.NewFromInt(90)) {
			t.Fatalf("unexpected warm-up resets=%d calls=%d threshold=%s", cache.resets, alerts.calls, alerts.threshold)
		}
	})

	t.Run("refresh error stops the run", func(t *testing.T) {
		alerts := &fakeAlerts{}
		boom := errors.New("boom")
		j := NewStatusRefreshJob(fakeRefresher{err: boom}, alerts, nil)

		if err := j.Run(context.Background()); !errors.Is(err, boom) {
			t.Fatalf("expected boom, got %v", err)
		}
		if alerts.calls != 0 {
			t.Fatalf("alerts must not be scanned after a failed refresh")
		}
	})

	t.Run("without alerts", func(t *testing.T) {
		j := NewStatusRefreshJob(fakeRefresher{counts: map[entities.ContractStatus]int{}}, nil, nil)
		if err := j.Run(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestStartCronJob(t *testing.T) {
	j := NewStatusRefreshJob(fakeRefresher{}, nil, nil)

	if _, err := StartCronJob("not a spec", time.UTC, j); err == nil {
		t.Fatalf("expected an invalid spec error")
	}

	c, err := StartCronJob("", nil, j)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer c.Stop()
	if len(c.Entries()) != 1 {
		t.Fatalf("expected one scheduled entry, got %d", len(c.Entries()))
	}
}
