package repository

import (
	"learnhub_backend/internal/model"

	"gorm.io/gorm"
)

type LectureRepository struct {
	DB *gorm.DB
}

func NewLectureRepository(db *gorm.DB) *LectureRepository {
	return &LectureRepository{DB: db}
}

func (r *LectureRepository) Create(lecture *model.Lecture) error {
	return r.DB.Create(lecture).Error
}

func (r *LectureRepository) FindByID(id uint) (*model.Lecture, error) {
	var lecture model.Lecture
	err := r.DB.First(&lecture, id).Error
	if err != nil {
		return nil, err
	}
	return &lecture, nil
}

// FindByCourse lists lectures in explicit position order.
func (r *LectureRepository) FindByCourse(courseID uint) ([]model.Lecture, error) {
	var lectures []model.Lecture
	err := r.DB.Where("course_id = ?", courseID).Order("position ASC").Find(&lectures).Error
	return lectures, err
}

func (r *LectureRepository) IDsByCourse(courseID uint) ([]uint, error) {
	var ids []uint
	err := r.DB.Model(&model.Lecture{}).Where("course_id = ?", courseID).Pluck("id", &ids).Error
	return ids, err
}

func (r *LectureRepository) Update(lecture *model.Lecture) error {
	return r.DB.Save(lecture).Error
}

func (r *LectureRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Lecture{}).Count(&count).Error
	return count, err
}
