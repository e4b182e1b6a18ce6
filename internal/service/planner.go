package service

import (
	"fmt"
	"time"

	"leave-planner-bot/internal/models"
	"leave-planner-bot/internal/repository"
)

// PlannerService orchestrates the click engine against persisted state:
// it loads the chat's ranges and periods, resolves the click with the pure
// engine, and persists the new range set when anything changed. The engine
// never partially applies a commit, so the stored state is always the last
// valid one.
type PlannerService struct {
	periodRepo repository.PeriodRepository
	rangeRepo  repository.ColoredRangeRepository
}

func NewPlannerService(
	periodRepo repository.PeriodRepository,
	rangeRepo repository.ColoredRangeRepository,
) *PlannerService {
	return &PlannerService{
		periodRepo: periodRepo,
		rangeRepo:  rangeRepo,
	}
}

// GetRanges returns the chat's colored ranges.
func (s *PlannerService) GetRanges(chatID int64) ([]models.ColoredRange, error) {
	return s.rangeRepo.GetByChatID(chatID)
}

// HandleDayClick resolves a day click for one chat and period index,
// persisting any mutation. The returned outcome carries the new selection
// and active-category state for the caller's session.
func (s *PlannerService) HandleDayClick(
	chatID int64,
	periodIndex int,
	date time.Time,
	activeType string,
	sel models.RangeSelection,
) (ClickOutcome, error) {
	periods, err := s.periodRepo.GetByChatID(chatID)
	if err != nil {
		return ClickOutcome{}, fmt.Errorf("failed to load periods: %w", err)
	}
	ranges, err := s.rangeRepo.GetByChatID(chatID)
	if err != nil {
		return ClickOutcome{}, fmt.Errorf("failed to load colored ranges: %w", err)
	}

	inBasePeriod := func(d time.Time) bool {
		return IsDateInBasePeriod(d, periods, periodIndex)
	}

	outcome := HandleDayClick(chatID, date, ranges, activeType, sel, inBasePeriod)
	if outcome.Changed {
		if err := s.rangeRepo.ReplaceAll(chatID, outcome.Ranges); err != nil {
			return ClickOutcome{}, fmt.Errorf("failed to persist colored ranges: %w", err)
		}
	}
	return outcome, nil
}

// CommitLabeled finalizes a suspended label request and persists the result.
func (s *PlannerService) CommitLabeled(req *LabelRequest, label string) ([]models.ColoredRange, error) {
	ranges := req.Commit(label)
	if err := s.rangeRepo.ReplaceAll(req.ChatID, ranges); err != nil {
		return nil, fmt.Errorf("failed to persist colored ranges: %w", err)
	}
	return ranges, nil
}
