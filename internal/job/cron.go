package job

import (
	"context"
	"log"
	"time"

	"gestao_contratos/internal/domain/entities"
	"gestao_contratos/internal/domain/services"

	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"
)

// DefaultStatusRefreshSpec runs every day at 02:00. Specs have a seconds field.
const DefaultStatusRefreshSpec = "0 0 2 * * *"

const runTimeout = 5 * time.Minute

type StatusRefresher interface {
	RefreshStatuses(ctx context.Context) (map[entities.ContractStatus]int, error)
}

type AlertLister interface {
	ListAlerts(ctx context.Context, threshold decimal.Decimal) ([]services.Alert, error)
	DefaultThreshold() decimal.Decimal
}

// CacheResetter drops every cached balance before the alert scan reloads them.
type CacheResetter interface {
	InvalidateAll()
}

type StatusRefreshJob struct {
	contracts StatusRefresher
	alerts    AlertLister
	cache     CacheResetter
}

// NewStatusRefreshJob accepts nil alerts or cache; the warm-up is then skipped.
func NewStatusRefreshJob(contracts StatusRefresher, alerts AlertLister, cache CacheResetter) *StatusRefreshJob {
	return &StatusRefreshJob{contracts: contracts, alerts: alerts, cache: cache}
}

// Run recounts contract statuses for the new day and rebuilds the alert cache.
func (j *StatusRefreshJob) Run(ctx context.Context) error {
	counts, err := j.contracts.RefreshStatuses(ctx)
	if err != nil {
		log.Printf("[cron][status] refresh failed err=%v", err)
		return err
	}
	log.Printf("[cron][status] ativo=%d vencendo=%d vencido=%d pendente_aprovacao=%d",
		counts[entities.ContractStatusAtivo],
		counts[entities.ContractStatusVencendo],
		counts[entities.ContractStatusVencido],
		counts[entities.ContractStatusPendenteAprovacao])

	if j.alerts == nil {
		return nil
	}
	if j.cache != nil {
		j.cache.InvalidateAll()
	}
	alerts, err := j.alerts.ListAlerts(ctx, j.alerts.DefaultThreshold())
	if err != nil {
		log.Printf("[cron][alerts] warm-up failed err=%v", err)
		return err
	}
	log.Printf("[cron][alerts] %d items at or above %s%%", len(alerts), j.alerts.DefaultThreshold())
	return nil
}

// StartCronJob schedules the job and returns the running scheduler; stop it on shutdown.
func StartCronJob(spec string, loc *time.Location, j *StatusRefreshJob) (*cron.Cron, error) {
	if spec == "" {
		spec = DefaultStatusRefreshSpec
	}
	if loc == nil {
		loc = time.UTC
	}
	c := cron.New(cron.WithSeconds(), cron.WithLocation(loc))
	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
		defer cancel()
		_ = j.Run(ctx)
	})
	if err != nil {
		return nil, err
	}
	c.Start()
	log.Printf("[cron] status refresh scheduled spec=%q location=%s", spec, loc)
	return c, nil
}
