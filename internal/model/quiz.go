package model

import "time"

// Quiz belongs to exactly one lecture (unique lecture_id). A nil
// LectureID is a legacy quiz attached directly to its course; such a
// quiz has no completion gate.
// swagger:model Quiz
type Quiz struct {
	BaseModel
	CourseID    uint       `gorm:"index;not null" json:"courseId"`
	LectureID   *uint      `gorm:"uniqueIndex" json:"lectureId"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	AvailableAt *time.Time `json:"availableAt"`
	DueAt       *time.Time `json:"dueAt"`
	Lecture     *Lecture   `gorm:"foreignKey:LectureID" json:"lecture,omitempty"`
	Questions   []Question `gorm:"foreignKey:QuizID" json:"questions,omitempty"`

	QuestionCount int64 `gorm:"-" json:"questionCount,omitempty"`
}

func (Quiz) TableName() string {
	return "quizzes"
}
