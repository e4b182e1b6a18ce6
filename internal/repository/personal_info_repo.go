package repository

import (
	"errors"

	"leave-planner-bot/internal/models"

	"gorm.io/gorm"
)

type PersonalInfoRepository interface {
	GetByChatID(chatID int64) (*models.PersonalInfo, error)
	Upsert(info *models.PersonalInfo) error
	DeleteByChatID(chatID int64) error
}

type GormPersonalInfoRepository struct {
	db *gorm.DB
}

func NewGormPersonalInfoRepository(db *gorm.DB) (PersonalInfoRepository, error) {
	if err := db.AutoMigrate(&models.PersonalInfo{}); err != nil {
		return nil, err
	}
	return &GormPersonalInfoRepository{db: db}, nil
}

func (r *GormPersonalInfoRepository) GetByChatID(chatID int64) (*models.PersonalInfo, error) {
	var info models.PersonalInfo
	err := r.db.Where("chat_id = ?", chatID).First(&info).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &info, nil
}

func (r *GormPersonalInfoRepository) Upsert(info *models.PersonalInfo) error {
	existing, err := r.GetByChatID(info.ChatID)
	if err != nil {
		return err
	}
	if existing != nil {
		existing.FirstName = info.FirstName
		existing.LastName = info.LastName
		return r.db.Save(existing).Error
	}
	return r.db.Create(info).Error
}

func (r *GormPersonalInfoRepository) DeleteByChatID(chatID int64) error {
	return r.db.Where("chat_id = ?", chatID).Delete(&models.PersonalInfo{}).Error
}
