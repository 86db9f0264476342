package repository

import (
	"learnhub_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VoteRepository struct {
	DB *gorm.DB
}

func NewVoteRepository(db *gorm.DB) *VoteRepository {
	return &VoteRepository{DB: db}
}

// Upsert writes the user's vote for a category; a later vote replaces
// the value (last writer wins on the unique (user, type) key).
func (r *VoteRepository) Upsert(userID uint, voteType, value string) error {
	vote := model.Vote{
		UserID: userID,
		Type:   voteType,
		Value:  value,
	}
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "type"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&vote).Error
}

func (r *VoteRepository) FindByUserAndType(userID uint, voteType string) (*model.Vote, error) {
	var vote model.Vote
	err := r.DB.Where("user_id = ? AND type = ?", userID, voteType).First(&vote).Error
	if err != nil {
		return nil, err
	}
	return &vote, nil
}

// TotalsByType groups vote counts by value for one category.
func (r *VoteRepository) TotalsByType(voteType string) (map[string]int64, error) {
	var rows []struct {
		Value string
		Count int64
	}
	err := r.DB.Model(&model.Vote{}).
		Select("value, COUNT(*) AS count").
		Where("type = ?", voteType).
		Group("value").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	totals := make(map[string]int64, len(rows))
	for _, row := range rows {
		totals[row.Value] = row.Count
	}
	return totals, nil
}
