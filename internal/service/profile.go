package service

import (
	"fmt"

	"leave-planner-bot/internal/models"
	"leave-planner-bot/internal/repository"
)

// ProfileService manages the planner owner's personal info.
type ProfileService struct {
	repo repository.PersonalInfoRepository
}

func NewProfileService(repo repository.PersonalInfoRepository) *ProfileService {
	return &ProfileService{repo: repo}
}

// GetPersonalInfo returns the stored info, or an empty record when none.
func (s *ProfileService) GetPersonalInfo(chatID int64) (models.PersonalInfo, error) {
	info, err := s.repo.GetByChatID(chatID)
	if err != nil {
		return models.PersonalInfo{}, fmt.Errorf("failed to load personal info: %w", err)
	}
	if info == nil {
		return models.PersonalInfo{ChatID: chatID}, nil
	}
	return *info, nil
}

// SetName stores the owner's first and last name.
func (s *ProfileService) SetName(chatID int64, firstName, lastName string) error {
	info := &models.PersonalInfo{
		ChatID:    chatID,
		FirstName: firstName,
		LastName:  lastName,
	}
	if err := s.repo.Upsert(info); err != nil {
		return fmt.Errorf("failed to save personal info: %w", err)
	}
	return nil
}
