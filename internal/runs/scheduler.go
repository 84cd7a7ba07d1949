package runs

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"go.uber.org/fx"
)

// ComparisonScheduler periodically re-runs the collector against the
// currently stored rooms so a fresh strategy comparison is always
// available, without a client having to trigger POST /api/simulations.
type ComparisonScheduler struct {
	service *SimulationService
	repo    *SimulationRepository
}

func NewComparisonScheduler(service *SimulationService, repo *SimulationRepository) *ComparisonScheduler {
	return &ComparisonScheduler{service: service, repo: repo}
}

func (s *ComparisonScheduler) Start(lc fx.Lifecycle) {
	intervalStr := os.Getenv("SCHEDULER_INTERVAL_MINUTES")
	interval := 60
	if intervalStr != "" {
		if parsed, err := strconv.Atoi(intervalStr); err == nil && parsed > 0 {
			interval = parsed
		}
	}

	ticker := time.NewTicker(time.Duration(interval) * time.Minute)
	done := make(chan bool)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Printf("Starting comparison scheduler (re-running every %d minutes)...", interval)
			go func() {
				schedulerCtx := context.Background()
				for {
					select {
					case <-ticker.C:
						s.runIfConfigured(schedulerCtx)
					case <-done:
						return
					}
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping comparison scheduler...")
			ticker.Stop()
			done <- true
			return nil
		},
	})
}

// runIfConfigured re-runs the collector with the last simulation's
// request shape. It no-ops if no simulation has ever been requested,
// mirroring the teacher's scheduler no-oping when no notification is due.
func (s *ComparisonScheduler) runIfConfigured(ctx context.Context) {
	last, err := s.repo.FindLatest(ctx)
	if err != nil {
		log.Println("comparison scheduler: failed to load last simulation:", err)
		return
	}
	if last == nil {
		return
	}

	req := SimulationRequest{
		NumSimulations: last.Config.NumSimulations,
		NumCourses:     last.Config.NumCourses,
		MinSize:        last.Config.MinSize,
		MaxSize:        last.Config.MaxSize,
		ChangeSize:     last.Config.ChangeSize,
		Seed:           last.Config.Seed,
		Strategies:     last.Strategies,
	}

	if _, err := s.service.Execute(ctx, req); err != nil {
		log.Println("comparison scheduler: simulation run failed:", err)
	}
}
