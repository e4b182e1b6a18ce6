package service

import (
	"fmt"

	"leave-planner-bot/internal/models"
	"leave-planner-bot/internal/repository"

	"github.com/sirupsen/logrus"
)

// PeriodService manages the base-period lifecycle: creation, date-field
// edits with re-validation, and deletion with its colored-range cascade.
type PeriodService struct {
	periodRepo repository.PeriodRepository
	rangeRepo  repository.ColoredRangeRepository
}

func NewPeriodService(
	periodRepo repository.PeriodRepository,
	rangeRepo repository.ColoredRangeRepository,
) *PeriodService {
	return &PeriodService{
		periodRepo: periodRepo,
		rangeRepo:  rangeRepo,
	}
}

// GetPeriods returns the chat's base periods ordered by position, creating
// the initial empty period on first contact.
func (s *PeriodService) GetPeriods(chatID int64) ([]models.Period, error) {
	periods, err := s.periodRepo.GetByChatID(chatID)
	if err != nil {
		return nil, fmt.Errorf("failed to load periods: %w", err)
	}
	if len(periods) == 0 {
		first := models.Period{ChatID: chatID, Position: 0}
		if err := s.periodRepo.Create(&first); err != nil {
			return nil, fmt.Errorf("failed to create initial period: %w", err)
		}
		periods = []models.Period{first}
	}
	return periods, nil
}

// ValidPeriods filters out periods that are not fully defined yet.
func (s *PeriodService) ValidPeriods(periods []models.Period) []models.Period {
	var valid []models.Period
	for _, p := range periods {
		if p.IsComplete() {
			valid = append(valid, p)
		}
	}
	return valid
}

// AddPeriod appends a new empty period.
func (s *PeriodService) AddPeriod(chatID int64) error {
	periods, err := s.GetPeriods(chatID)
	if err != nil {
		return err
	}
	period := models.Period{ChatID: chatID, Position: len(periods)}
	if err := s.periodRepo.Create(&period); err != nil {
		return fmt.Errorf("failed to add period: %w", err)
	}
	return nil
}

// UpdatePeriodField sets one bound (field "start" or "end") of the period at
// the given index and re-validates the whole list. On a validation error the
// offending field is cleared, mirroring how the planner rejects bad input,
// and the structured result is returned for display.
func (s *PeriodService) UpdatePeriodField(chatID int64, index int, field, value string) (models.ValidationResult, error) {
	periods, err := s.GetPeriods(chatID)
	if err != nil {
		return models.ValidResult(), err
	}
	if index < 0 || index >= len(periods) {
		return models.ValidResult(), fmt.Errorf("period index %d out of range", index)
	}

	switch field {
	case "start":
		periods[index].Start = value
	case "end":
		periods[index].End = value
	default:
		return models.ValidResult(), fmt.Errorf("unknown period field %q", field)
	}

	result := ValidatePeriods(periods)
	if !result.IsValid && result.ErrorIndex >= 0 && result.ErrorIndex < len(periods) {
		switch result.ErrorField {
		case "start":
			periods[result.ErrorIndex].Start = ""
		case "end":
			periods[result.ErrorIndex].End = ""
		default:
			periods[result.ErrorIndex].Start = ""
			periods[result.ErrorIndex].End = ""
		}
	}

	for i := range periods {
		if err := s.periodRepo.Save(&periods[i]); err != nil {
			return result, fmt.Errorf("failed to save period: %w", err)
		}
	}
	return result, nil
}

// DeletePeriod removes the period at the given index. At least one period
// always remains. Deleting a complete period cascades to every colored range
// whose start year matches the period's start year, not ranges overlapping
// the period interval.
func (s *PeriodService) DeletePeriod(chatID int64, index int) error {
	periods, err := s.GetPeriods(chatID)
	if err != nil {
		return err
	}
	if len(periods) <= 1 {
		return fmt.Errorf("nie można usunąć ostatniego okresu")
	}
	if index < 0 || index >= len(periods) {
		return fmt.Errorf("period index %d out of range", index)
	}

	target := periods[index]
	if start, _, ok := target.Bounds(); ok {
		if err := s.rangeRepo.DeleteByStartYear(chatID, start.Year()); err != nil {
			logrus.WithError(err).Warn("failed to cascade colored range deletion")
		}
	}

	if err := s.periodRepo.Delete(target.ID); err != nil {
		return fmt.Errorf("failed to delete period: %w", err)
	}

	// Close the position gap left by the removed period.
	pos := 0
	for i := range periods {
		if i == index {
			continue
		}
		if periods[i].Position != pos {
			periods[i].Position = pos
			if err := s.periodRepo.Save(&periods[i]); err != nil {
				return fmt.Errorf("failed to reindex periods: %w", err)
			}
		}
		pos++
	}
	return nil
}
