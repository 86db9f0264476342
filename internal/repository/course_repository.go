package repository

import (
	"learnhub_backend/internal/model"

	"gorm.io/gorm"
)

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

func (r *CourseRepository) Create(course *model.Course) error {
	return r.DB.Create(course).Error
}

func (r *CourseRepository) FindByID(id uint) (*model.Course, error) {
	var course model.Course
	err := r.DB.First(&course, id).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *CourseRepository) FindAll() ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.Preload("Instructor").Order("created_at DESC").Find(&courses).Error
	return courses, err
}

func (r *CourseRepository) Update(course *model.Course) error {
	return r.DB.Save(course).Error
}

func (r *CourseRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Course{}).Count(&count).Error
	return count, err
}

// CourseLectureCount is a dashboard projection row.
type CourseLectureCount struct {
	model.Course
	LectureCount int64 `json:"lectureCount"`
}

func (r *CourseRepository) TopByLectureCount(limit int) ([]CourseLectureCount, error) {
	var rows []CourseLectureCount
	err := r.DB.Model(&model.Course{}).
		Select("courses.*, COUNT(lectures.id) AS lecture_count").
		Joins("LEFT JOIN lectures ON lectures.course_id = courses.id AND lectures.deleted_at IS NULL").
		Group("courses.id").
		Order("lecture_count DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}
