package model

import "time"

// AnswerPair is one chosen answer in a submission payload, kept raw on
// the submission row for audit and review.
type AnswerPair struct {
	QuestionID uint `json:"question_id" binding:"required"`
	AnswerID   uint `json:"answer_id" binding:"required"`
}

// Submission is immutable once written. MaxScore is captured at
// submission time; later question edits never change history. The
// (quiz, user) unique key is what makes submission exactly-once.
// swagger:model Submission
type Submission struct {
	BaseModel
	QuizID      uint         `gorm:"not null;uniqueIndex:idx_submission_quiz_user" json:"quizId"`
	UserID      uint         `gorm:"not null;uniqueIndex:idx_submission_quiz_user" json:"userId"`
	Score       int          `gorm:"not null" json:"score"`
	MaxScore    int          `gorm:"not null" json:"maxScore"`
	Answers     []AnswerPair `gorm:"serializer:json" json:"answers"`
	SubmittedAt time.Time    `gorm:"not null" json:"submittedAt"`
}

func (Submission) TableName() string {
	return "submissions"
}
