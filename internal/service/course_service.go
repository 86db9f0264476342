package service

import (
	"errors"

	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"

	"gorm.io/gorm"
)

type CourseService struct {
	CourseRepo  *repository.CourseRepository
	LectureRepo *repository.LectureRepository
	DB          *gorm.DB
}

func NewCourseService(
	courseRepo *repository.CourseRepository,
	lectureRepo *repository.LectureRepository,
	db *gorm.DB,
) *CourseService {
	return &CourseService{
		CourseRepo:  courseRepo,
		LectureRepo: lectureRepo,
		DB:          db,
	}
}

type CourseInput struct {
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description"`
}

func (s *CourseService) CreateCourse(input CourseInput, instructorID uint) (*model.Course, error) {
	course := &model.Course{
		Title:        input.Title,
		Description:  input.Description,
		InstructorID: instructorID,
	}
	if err := s.CourseRepo.Create(course); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *CourseService) ListCourses() ([]model.Course, error) {
	return s.CourseRepo.FindAll()
}

func (s *CourseService) UpdateCourse(courseID uint, input CourseInput) (*model.Course, error) {
	course, err := s.CourseRepo.FindByID(courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}

	course.Title = input.Title
	course.Description = input.Description
	if err := s.CourseRepo.Update(course); err != nil {
		return nil, err
	}
	return course, nil
}

// DeleteCourse removes the course and everything under it: lectures,
// quizzes with their questions/answers/submissions, completions and
// attendances. One transaction, children first.
func (s *CourseService) DeleteCourse(courseID uint) error {
	if _, err := s.CourseRepo.FindByID(courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrCourseNotFound
		}
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		quizIDs := tx.Model(&model.Quiz{}).Select("id").Where("course_id = ?", courseID)
		questionIDs := tx.Model(&model.Question{}).Select("id").
			Where("quiz_id IN (?)", tx.Model(&model.Quiz{}).Select("id").Where("course_id = ?", courseID))
		lectureIDs := tx.Model(&model.Lecture{}).Select("id").Where("course_id = ?", courseID)

		if err := tx.Where("question_id IN (?)", questionIDs).Delete(&model.Answer{}).Error; err != nil {
			return err
		}
		if err := tx.Where("quiz_id IN (?)", quizIDs).Delete(&model.Question{}).Error; err != nil {
			return err
		}
		if err := tx.Where("quiz_id IN (?)", tx.Model(&model.Quiz{}).Select("id").Where("course_id = ?", courseID)).
			Delete(&model.Submission{}).Error; err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", courseID).Delete(&model.Quiz{}).Error; err != nil {
			return err
		}
		if err := tx.Where("lecture_id IN (?)", lectureIDs).Delete(&model.LectureCompletion{}).Error; err != nil {
			return err
		}
		if err := tx.Where("lecture_id IN (?)", tx.Model(&model.Lecture{}).Select("id").Where("course_id = ?", courseID)).
			Delete(&model.Attendance{}).Error; err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", courseID).Delete(&model.Lecture{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Course{}, courseID).Error
	})
}

type LectureInput struct {
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description"`
	Position    int    `json:"position"`
	AudioURL    string `json:"audioUrl"`
}

func (s *CourseService) CreateLecture(courseID uint, input LectureInput) (*model.Lecture, error) {
	if _, err := s.CourseRepo.FindByID(courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}

	lecture := &model.Lecture{
		CourseID:    courseID,
		Title:       input.Title,
		Description: input.Description,
		Position:    input.Position,
		AudioURL:    input.AudioURL,
	}
	if err := s.LectureRepo.Create(lecture); err != nil {
		return nil, err
	}
	return lecture, nil
}

func (s *CourseService) ListLectures(courseID uint) ([]model.Lecture, error) {
	if _, err := s.CourseRepo.FindByID(courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}
	return s.LectureRepo.FindByCourse(courseID)
}

// AttachLectureMedia stores the uploaded recording's URL and probed
// duration on the lecture.
func (s *CourseService) AttachLectureMedia(lectureID uint, url string, durationSeconds float64) (*model.Lecture, error) {
	lecture, err := s.LectureRepo.FindByID(lectureID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrLectureNotFound
		}
		return nil, err
	}

	lecture.AudioURL = url
	lecture.DurationSeconds = durationSeconds
	if err := s.LectureRepo.Update(lecture); err != nil {
		return nil, err
	}
	return lecture, nil
}
