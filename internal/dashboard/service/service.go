package service

import (
	"context"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"lexportal_backend/internal/dashboard/repository"
	"lexportal_backend/internal/dashboard/transport"
	"lexportal_backend/platform/logger"
)

type Service struct {
	repo repository.Reader
	log  *logger.Logger
	now  func() time.Time
}

func NewService(repo repository.Reader, log *logger.Logger) *Service {
	return &Service{repo: repo, log: log, now: time.Now}
}

// Overview fans the four aggregate queries out concurrently and assembles
// the dashboard payload.
func (s *Service) Overview(ctx context.Context) (transport.DashboardResponse, error) {
	now := s.now()

	var (
		agents    repository.EntityCounts
		clients   repository.EntityCounts
		tasks     repository.EntityCounts
		breakdown repository.TaskBreakdown
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		agents, err = s.repo.CountAgents(gctx, now)
		return err
	})
	g.Go(func() error {
		var err error
		clients, err = s.repo.CountClients(gctx, now)
		return err
	})
	g.Go(func() error {
		var err error
		tasks, err = s.repo.CountTasks(gctx, now)
		return err
	})
	g.Go(func() error {
		var err error
		breakdown, err = s.repo.TasksBreakdown(gctx, now)
		return err
	})
	if err := g.Wait(); err != nil {
		return transport.DashboardResponse{}, err
	}

	return transport.DashboardResponse{
		Agents:  toMetric(agents),
		Clients: toMetric(clients),
		Tasks:   toMetric(tasks),
		Summary: transport.TaskSummary{
			Total:      breakdown.Total,
			Pending:    breakdown.ToDo,
			InProgress: breakdown.InProgress,
			Completed:  breakdown.Completed,
			Overdue:    breakdown.Overdue,
		},
	}, nil
}

func toMetric(c repository.EntityCounts) transport.Metric {
	return transport.Metric{
		Count:         c.Current,
		GrowthPercent: growthPercent(c.Current, c.Previous),
	}
}

// growthPercent computes month-over-month growth rounded to one decimal.
// With no prior data the growth is 0 for an empty table and 100 otherwise.
func growthPercent(current, previous int) float64 {
	if previous == 0 {
		if current == 0 {
			return 0
		}
		return 100
	}
	pct := (float64(current-previous) / float64(previous)) * 100
	return math.Round(pct*10) / 10
}
