package model

import "time"

// LectureCompletion marks that a user consumed a lecture's content.
// The (user, lecture) pair is unique; repeated completes upsert the
// timestamp instead of adding rows.
// swagger:model LectureCompletion
type LectureCompletion struct {
	BaseModel
	UserID      uint      `gorm:"not null;uniqueIndex:idx_completion_user_lecture" json:"userId"`
	LectureID   uint      `gorm:"not null;uniqueIndex:idx_completion_user_lecture" json:"lectureId"`
	CompletedAt time.Time `gorm:"not null" json:"completedAt"`
}

func (LectureCompletion) TableName() string {
	return "lecture_completions"
}
