package model

const (
	NotificationTypeLectureReminder = "lecture_reminder"
	NotificationTypeGeneral         = "general"
)

// Notification is created in bulk by announcement fan-out and owned by
// its recipient; only the read flag ever changes afterwards.
// swagger:model Notification
type Notification struct {
	BaseModel
	UserID         uint          `gorm:"index;not null" json:"userId"`
	AnnouncementID *uint         `gorm:"index" json:"announcementId"`
	Title          string        `gorm:"size:255;not null" json:"title"`
	Message        string        `gorm:"type:text" json:"message"`
	Type           string        `gorm:"size:30;not null" json:"type"`
	IsRead         bool          `gorm:"default:false" json:"isRead"`
	Announcement   *Announcement `gorm:"foreignKey:AnnouncementID" json:"announcement,omitempty"`
}

func (Notification) TableName() string {
	return "notifications"
}
