package repository

import (
	"learnhub_backend/internal/model"

	"gorm.io/gorm"
)

type QuizRepository struct {
	DB *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: db}
}

func (r *QuizRepository) Create(quiz *model.Quiz) error {
	return r.DB.Create(quiz).Error
}

func (r *QuizRepository) FindByID(id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.DB.First(&quiz, id).Error
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

// FindWithContent loads a quiz with its lecture and the authoritative
// question/answer set.
func (r *QuizRepository) FindWithContent(id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.DB.
		Preload("Lecture").
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Questions.Answers").
		First(&quiz, id).Error
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *QuizRepository) FindByLecture(lectureID uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.DB.Where("lecture_id = ?", lectureID).First(&quiz).Error
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

// FindByCourse lists a course's quizzes newest first with question
// counts attached.
func (r *QuizRepository) FindByCourse(courseID uint) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.DB.Preload("Lecture").
		Where("course_id = ?", courseID).
		Order("created_at DESC").
		Find(&quizzes).Error
	if err != nil {
		return nil, err
	}

	for i := range quizzes {
		var count int64
		if err := r.DB.Model(&model.Question{}).
			Where("quiz_id = ?", quizzes[i].ID).
			Count(&count).Error; err != nil {
			return nil, err
		}
		quizzes[i].QuestionCount = count
	}
	return quizzes, nil
}

// CreateQuestion writes a question and its answers in one transaction.
func (r *QuizRepository) CreateQuestion(question *model.Question) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(question).Error
	})
}
