package model

const (
	VoteTypeSchedule   = "schedule"
	VoteTypeAttendance = "attendance"
)

// VoteValues lists the accepted values per vote category.
var VoteValues = map[string][]string{
	VoteTypeSchedule:   {"thursday_4", "wednesday_6", "online"},
	VoteTypeAttendance: {"yes", "no"},
}

// Vote is unique per (user, type); casting again updates the value.
// swagger:model Vote
type Vote struct {
	BaseModel
	UserID uint   `gorm:"not null;uniqueIndex:idx_vote_user_type" json:"userId"`
	Type   string `gorm:"size:20;not null;uniqueIndex:idx_vote_user_type" json:"type"`
	Value  string `gorm:"size:50;not null" json:"value"`
}

func (Vote) TableName() string {
	return "votes"
}
