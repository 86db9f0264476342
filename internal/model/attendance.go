package model

import "time"

// Attendance marks presence at a lecture session. Distinct from
// LectureCompletion. The table carries no unique key; the attend
// endpoint rejects duplicates but the schema tolerates them, so the
// leaderboard offers a distinct-lectures counting policy.
// swagger:model Attendance
type Attendance struct {
	BaseModel
	UserID     uint      `gorm:"index;not null" json:"userId"`
	LectureID  uint      `gorm:"index;not null" json:"lectureId"`
	AttendedAt time.Time `gorm:"not null" json:"attendedAt"`
}

func (Attendance) TableName() string {
	return "attendances"
}
