package repository

import (
	"time"

	"learnhub_backend/internal/model"

	"gorm.io/gorm"
)

type AnnouncementRepository struct {
	DB *gorm.DB
}

func NewAnnouncementRepository(db *gorm.DB) *AnnouncementRepository {
	return &AnnouncementRepository{DB: db}
}

func (r *AnnouncementRepository) Create(announcement *model.Announcement) error {
	return r.DB.Create(announcement).Error
}

func (r *AnnouncementRepository) FindByID(id uint) (*model.Announcement, error) {
	var announcement model.Announcement
	err := r.DB.First(&announcement, id).Error
	if err != nil {
		return nil, err
	}
	return &announcement, nil
}

func (r *AnnouncementRepository) FindAll() ([]model.Announcement, error) {
	var announcements []model.Announcement
	err := r.DB.Preload("Course").Preload("Lecture").Preload("Creator").
		Order("created_at DESC").
		Find(&announcements).Error
	return announcements, err
}

func (r *AnnouncementRepository) Update(announcement *model.Announcement) error {
	return r.DB.Save(announcement).Error
}

func (r *AnnouncementRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Announcement{}, id).Error
}

// NextSchedule returns the nearest upcoming active lecture-schedule
// announcement, if any.
func (r *AnnouncementRepository) NextSchedule(now time.Time) (*model.Announcement, error) {
	var announcement model.Announcement
	err := r.DB.Preload("Course").Preload("Lecture").
		Where("type = ? AND is_active = ? AND scheduled_at > ?", model.AnnouncementTypeLectureSchedule, true, now).
		Order("scheduled_at ASC").
		First(&announcement).Error
	if err != nil {
		return nil, err
	}
	return &announcement, nil
}

// DeactivatePast flips the active flag off for lecture-schedule
// announcements whose time has passed.
func (r *AnnouncementRepository) DeactivatePast(now time.Time) error {
	return r.DB.Model(&model.Announcement{}).
		Where("type = ? AND is_active = ? AND scheduled_at IS NOT NULL AND scheduled_at < ?",
			model.AnnouncementTypeLectureSchedule, true, now).
		Update("is_active", false).Error
}
