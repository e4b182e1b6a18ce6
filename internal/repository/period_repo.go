package repository

import (
	"leave-planner-bot/internal/models"

	"gorm.io/gorm"
)

type PeriodRepository interface {
	Create(period *models.Period) error
	GetByChatID(chatID int64) ([]models.Period, error)
	Save(period *models.Period) error
	Delete(id uint) error
	DeleteByChatID(chatID int64) error
}

type GormPeriodRepository struct {
	db *gorm.DB
}

func NewGormPeriodRepository(db *gorm.DB) (PeriodRepository, error) {
	if err := db.AutoMigrate(&models.Period{}); err != nil {
		return nil, err
	}
	return &GormPeriodRepository{db: db}, nil
}

func (r *GormPeriodRepository) Create(period *models.Period) error {
	return r.db.Create(period).Error
}

func (r *GormPeriodRepository) GetByChatID(chatID int64) ([]models.Period, error) {
	var periods []models.Period
	err := r.db.Where("chat_id = ?", chatID).
		Order("position ASC").
		Find(&periods).Error
	return periods, err
}

func (r *GormPeriodRepository) Save(period *models.Period) error {
	return r.db.Save(period).Error
}

func (r *GormPeriodRepository) Delete(id uint) error {
	return r.db.Delete(&models.Period{}, id).Error
}

func (r *GormPeriodRepository) DeleteByChatID(chatID int64) error {
	return r.db.Where("chat_id = ?", chatID).Delete(&models.Period{}).Error
}
