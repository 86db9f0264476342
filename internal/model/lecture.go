package model

// Lecture belongs to one course. Position is explicit; lectures are
// listed in position order, never creation order.
// swagger:model Lecture
type Lecture struct {
	BaseModel
	CourseID        uint    `gorm:"index;not null" json:"courseId"`
	Title           string  `gorm:"size:255;not null" json:"title"`
	Description     string  `gorm:"type:text" json:"description"`
	Position        int     `gorm:"default:0" json:"position"`
	AudioURL        string  `gorm:"size:255" json:"audioUrl"`
	DurationSeconds float64 `gorm:"default:0" json:"durationSeconds"`
}

func (Lecture) TableName() string {
	return "lectures"
}
