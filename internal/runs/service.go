package runs

import (
	"context"
	"fmt"
	"time"

	"RoomAllocator/internal/allocator"
	"RoomAllocator/internal/notify"
	"RoomAllocator/internal/store"
)

type RunService struct {
	rooms   *store.RoomRepository
	courses *store.CourseRepository
	repo    *RunRepository
}

func NewRunService(rooms *store.RoomRepository, courses *store.CourseRepository, repo *RunRepository) *RunService {
	return &RunService{rooms: rooms, courses: courses, repo: repo}
}

// Execute loads rooms/courses from the store (all of them if req names
// none), runs allocator.Allocate, and persists the result.
func (s *RunService) Execute(ctx context.Context, requestedBy string, req AllocationRequest) (*RunRecord, error) {
	rooms, err := s.rooms.FindByNames(ctx, req.RoomNames)
	if err != nil {
		return nil, err
	}
	courses, err := s.courses.FindByNames(ctx, req.CourseNames)
	if err != nil {
		return nil, err
	}

	result, err := allocator.Allocate(rooms, courses)
	if err != nil {
		return nil, err
	}

	record := &RunRecord{
		CreatedAt:   time.Now(),
		RequestedBy: requestedBy,
		RoomNames:   req.RoomNames,
		CourseNames: req.CourseNames,
		Export:      result.BuildExport(rooms, courses),
		Unplaceable: result.Unplaceable,
	}
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func buildStrategies(rooms []*allocator.Room, reqs []StrategyRequest) ([]allocator.Strategy, error) {
	strategies := make([]allocator.Strategy, 0, len(reqs))
	for _, r := range reqs {
		switch r.Kind {
		case "uniform_random":
			strategies = append(strategies, allocator.NewUniformRandomStrategy(r.K))
		case "size_based":
			strategies = append(strategies, allocator.NewSizeBasedStrategy(rooms, r.K, r.Slack))
		case "smart_random":
			strategies = append(strategies, allocator.NewSmartRandomStrategy(rooms, r.K))
		case "satisfaction_weighted":
			strategies = append(strategies, allocator.NewSatisfactionWeightedStrategy(rooms, r.K))
		default:
			return nil, fmt.Errorf("%w: unknown strategy kind: %s", allocator.ErrInvalidInput, r.Kind)
		}
	}
	return strategies, nil
}

type SimulationService struct {
	rooms    *store.RoomRepository
	repo     *SimulationRepository
	notifier *notify.SummaryNotifier
}

func NewSimulationService(rooms *store.RoomRepository, repo *SimulationRepository, notifier *notify.SummaryNotifier) *SimulationService {
	return &SimulationService{rooms: rooms, repo: repo, notifier: notifier}
}

// Execute runs the collector against all currently stored rooms, persists
// the result, and emails a best-effort summary (spec §4.11).
func (s *SimulationService) Execute(ctx context.Context, req SimulationRequest) (*SimulationRecord, error) {
	rooms, err := s.rooms.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	config := allocator.SimulationConfig{
		NumSimulations: req.NumSimulations,
		NumCourses:     req.NumCourses,
		MinSize:        req.MinSize,
		MaxSize:        req.MaxSize,
		ChangeSize:     req.ChangeSize,
		Seed:           req.Seed,
	}

	strategies, err := buildStrategies(rooms, req.Strategies)
	if err != nil {
		return nil, err
	}

	collector := allocator.NewCollector(rooms, config)
	for _, strat := range strategies {
		collector.Register(strat)
	}

	result, err := collector.Run()
	if err != nil {
		return nil, err
	}

	record := toSimulationRecord(config, req.Strategies, result)
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, err
	}

	s.notifier.NotifyRunComplete(ctx, record.Averages)
	return record, nil
}

func toSimulationRecord(config allocator.SimulationConfig, strategies []StrategyRequest, result *allocator.CollectorResult) *SimulationRecord {
	trials := make([]TrialRecord, 0, len(result.Trials))
	for _, t := range result.Trials {
		trials = append(trials, TrialRecord{
			StrategyIdentifier: t.StrategyIdentifier,
			TrialIndex:         t.TrialIndex,
			Statistics:         t.Statistics,
		})
	}
	return &SimulationRecord{
		CreatedAt:  time.Now(),
		Config:     config,
		Strategies: strategies,
		Trials:     trials,
		Averages:   result.Averages,
	}
}
