package model

import "time"

const (
	AnnouncementTypeLectureSchedule = "lecture_schedule"
	AnnouncementTypeReminder        = "reminder"
	AnnouncementTypeGeneral         = "general"
)

// swagger:model Announcement
type Announcement struct {
	BaseModel
	Title       string     `gorm:"size:255;not null" json:"title"`
	Message     string     `gorm:"type:text" json:"message"`
	Type        string     `gorm:"size:30;not null" json:"type"`
	CourseID    *uint      `gorm:"index" json:"courseId"`
	LectureID   *uint      `gorm:"index" json:"lectureId"`
	ScheduledAt *time.Time `json:"scheduledAt"`
	IsActive    bool       `gorm:"default:true" json:"isActive"`
	CreatedBy   uint       `gorm:"index;not null" json:"createdBy"`
	Course      *Course    `gorm:"foreignKey:CourseID" json:"course,omitempty"`
	Lecture     *Lecture   `gorm:"foreignKey:LectureID" json:"lecture,omitempty"`
	Creator     *User      `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`
}

func (Announcement) TableName() string {
	return "announcements"
}
