package model

const QuestionTypeMCQ = "mcq"

// swagger:model Question
type Question struct {
	BaseModel
	QuizID   uint     `gorm:"index;not null" json:"quizId"`
	Body     string   `gorm:"type:text;not null" json:"body"`
	Points   int      `gorm:"not null" json:"points"`
	Position int      `gorm:"default:0" json:"position"`
	Type     string   `gorm:"size:20;default:'mcq'" json:"type"`
	Answers  []Answer `gorm:"foreignKey:QuestionID" json:"answers,omitempty"`
}

func (Question) TableName() string {
	return "questions"
}
