package planner

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lseveri/shiftplan/pkg/application/dto"
	"github.com/lseveri/shiftplan/pkg/domain/entities"
	"github.com/lseveri/shiftplan/pkg/domain/repositories"
	"github.com/lseveri/shiftplan/pkg/domain/services"
	"github.com/lseveri/shiftplan/pkg/infrastructure/events"
	"github.com/lseveri/shiftplan/pkg/infrastructure/logging"
)

// Service plans production weeks: it resolves demand into shift
// requirements, allocates operators day by day, and tracks completion per
// (project, machine) pair. Each week is planned independently; nothing
// carries over between weeks except the starting stock the caller provides.
type Service struct {
	calendar entities.WeekCalendar
	store    events.EventStore
}

// New creates a planner for the given week calendar.
func New(calendar entities.WeekCalendar) *Service {
	return &Service{calendar: calendar}
}

// NewWithEvents creates a planner that publishes planning events to store.
func NewWithEvents(calendar entities.WeekCalendar, store events.EventStore) *Service {
	return &Service{calendar: calendar, store: store}
}

// PlanHorizon plans every week in the demand data, in column order, up to
// maxWeeks (0 means no limit).
func (s *Service) PlanHorizon(
	ctx context.Context,
	maxWeeks int,
	demandRepo repositories.DemandRepository,
	routingRepo repositories.RoutingRepository,
	rosterRepo repositories.RosterRepository,
	stockRepo repositories.StockRepository,
) ([]*dto.PlanResult, error) {
	weeks, err := demandRepo.Weeks()
	if err != nil {
		return nil, fmt.Errorf("failed to read week labels: %w", err)
	}
	if maxWeeks > 0 && len(weeks) > maxWeeks {
		weeks = weeks[:maxWeeks]
	}

	results := make([]*dto.PlanResult, 0, len(weeks))
	for n, week := range weeks {
		result, err := s.PlanWeek(ctx, week, n+1, demandRepo, routingRepo, rosterRepo, stockRepo)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

// PlanWeek computes the full plan for one demand column.
func (s *Service) PlanWeek(
	ctx context.Context,
	week entities.WeekLabel,
	weekNumber int,
	demandRepo repositories.DemandRepository,
	routingRepo repositories.RoutingRepository,
	rosterRepo repositories.RosterRepository,
	stockRepo repositories.StockRepository,
) (*dto.PlanResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	demands, err := demandRepo.DemandsForWeek(week)
	if err != nil {
		return nil, fmt.Errorf("failed to read demand for %s: %w", week, err)
	}

	ops, err := routingRepo.AllOperations()
	if err != nil {
		return nil, fmt.Errorf("failed to read routing table: %w", err)
	}
	index := services.NewRoutingIndex(ops)

	reqs, totals, err := resolveRequirements(demands, index, stockRepo, s.calendar.ShiftHours)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve requirements for %s: %w", week, err)
	}

	roster, err := rosterRepo.Operators()
	if err != nil {
		return nil, fmt.Errorf("failed to read roster: %w", err)
	}

	assignments := allocate(s.calendar, reqs, roster)
	progress := trackProgress(s.calendar.Days, assignments, totals)

	result := &dto.PlanResult{
		RunID:        uuid.NewString(),
		Week:         week,
		WeekNumber:   weekNumber,
		ComputedAt:   time.Now(),
		Days:         s.calendar.Days,
		ShiftHours:   s.calendar.ShiftHours,
		Requirements: reqs,
		Schedules:    buildSchedules(s.calendar, roster, assignments),
		Progress:     progress,
	}

	s.publish(result)

	logging.Debug("week planned",
		"week", week,
		"requirements", len(reqs),
		"operators", len(roster),
		"ready_pairs", result.ReadyPairs(),
		"progress_pairs", len(progress),
	)

	return result, nil
}

// buildSchedules folds the flat assignment set into one schedule per roster
// operator: one slot per day, on the operator's own shift only.
func buildSchedules(
	cal entities.WeekCalendar,
	roster []*entities.Operator,
	assignments []entities.Assignment,
) []dto.OperatorSchedule {
	type slotKey struct {
		operator string
		day      entities.Weekday
		shift    entities.Shift
	}
	bySlot := make(map[slotKey]entities.Assignment, len(assignments))
	for _, a := range assignments {
		bySlot[slotKey{a.Operator, a.Day, a.Shift}] = a
	}

	schedules := make([]dto.OperatorSchedule, 0, len(roster))
	for _, operator := range roster {
		slots := make([]entities.Assignment, 0, len(cal.Days))
		for _, day := range cal.Days {
			slots = append(slots, bySlot[slotKey{operator.Name, day, operator.Shift}])
		}
		schedules = append(schedules, dto.OperatorSchedule{
			Operator:   operator.Name,
			Shift:      operator.Shift,
			ShiftHours: cal.ShiftHours,
			Slots:      slots,
		})
	}
	return schedules
}

func (s *Service) publish(result *dto.PlanResult) {
	if s.store == nil {
		return
	}
	stream := result.RunID

	for _, req := range result.Requirements {
		_ = s.store.AppendEvent(stream, events.NewEvent(
			events.RequirementCalculatedEvent, stream,
			events.RequirementCalculated{Requirement: req},
		))
	}
	for _, p := range result.Progress {
		if p.Ready {
			continue
		}
		_ = s.store.AppendEvent(stream, events.NewEvent(
			events.ShortfallIdentifiedEvent, stream,
			events.ShortfallIdentified{Progress: p},
		))
	}
	_ = s.store.AppendEvent(stream, events.NewEvent(
		events.WeekPlannedEvent, stream,
		events.WeekPlanned{
			Week:          result.Week,
			WeekNumber:    result.WeekNumber,
			Operators:     len(result.Schedules),
			Requirements:  len(result.Requirements),
			ReadyPairs:    result.ReadyPairs(),
			ProgressPairs: len(result.Progress),
		},
	))
}
