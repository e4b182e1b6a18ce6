package repository

import (
	"leave-planner-bot/internal/models"

	"gorm.io/gorm"
)

type ColoredRangeRepository interface {
	GetByChatID(chatID int64) ([]models.ColoredRange, error)
	// ReplaceAll swaps the whole range set of a chat in one transaction.
	// The mutation engine always produces the full new set, so a wholesale
	// replace keeps the stored state identical to the in-memory result.
	ReplaceAll(chatID int64, ranges []models.ColoredRange) error
	DeleteByStartYear(chatID int64, year int) error
	DeleteByChatID(chatID int64) error
}

type GormColoredRangeRepository struct {
	db *gorm.DB
}

func NewGormColoredRangeRepository(db *gorm.DB) (ColoredRangeRepository, error) {
	if err := db.AutoMigrate(&models.ColoredRange{}); err != nil {
		return nil, err
	}
	return &GormColoredRangeRepository{db: db}, nil
}

func (r *GormColoredRangeRepository) GetByChatID(chatID int64) ([]models.ColoredRange, error) {
	var ranges []models.ColoredRange
	err := r.db.Where("chat_id = ?", chatID).
		Order("id ASC").
		Find(&ranges).Error
	return ranges, err
}

func (r *GormColoredRangeRepository) ReplaceAll(chatID int64, ranges []models.ColoredRange) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("chat_id = ?", chatID).Delete(&models.ColoredRange{}).Error; err != nil {
			return err
		}
		if len(ranges) == 0 {
			return nil
		}
		for i := range ranges {
			ranges[i].ID = 0
			ranges[i].ChatID = chatID
		}
		return tx.Create(&ranges).Error
	})
}

func (r *GormColoredRangeRepository) DeleteByStartYear(chatID int64, year int) error {
	return r.db.Where("chat_id = ? AND start_year = ?", chatID, year).
		Delete(&models.ColoredRange{}).Error
}

func (r *GormColoredRangeRepository) DeleteByChatID(chatID int64) error {
	return r.db.Where("chat_id = ?", chatID).Delete(&models.ColoredRange{}).Error
}
