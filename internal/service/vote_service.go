package service

import (
	"errors"

	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"

	"gorm.io/gorm"
)

type VoteService struct {
	VoteRepo *repository.VoteRepository
}

func NewVoteService(voteRepo *repository.VoteRepository) *VoteService {
	return &VoteService{VoteRepo: voteRepo}
}

type VoteSummary struct {
	Totals  map[string]map[string]int64 `json:"totals"`
	MyVotes map[string]*string          `json:"myVotes"`
}

// Cast upserts the user's vote for a category; a later vote replaces
// the earlier value. Returns the refreshed tallies.
func (s *VoteService) Cast(userID uint, voteType, value string) (*VoteSummary, error) {
	allowed, ok := model.VoteValues[voteType]
	if !ok {
		return nil, util.NewValidationError("type", "unknown vote category")
	}

	valid := false
	for _, v := range allowed {
		if v == value {
			valid = true
			break
		}
	}
	if !valid {
		return nil, util.NewValidationError("value", "invalid value for this category")
	}

	if err := s.VoteRepo.Upsert(userID, voteType, value); err != nil {
		return nil, err
	}
	return s.Summary(userID)
}

// Summary tallies every category by value and includes the caller's
// own current votes (nil where none cast).
func (s *VoteService) Summary(userID uint) (*VoteSummary, error) {
	summary := &VoteSummary{
		Totals:  make(map[string]map[string]int64, len(model.VoteValues)),
		MyVotes: make(map[string]*string, len(model.VoteValues)),
	}

	for voteType := range model.VoteValues {
		totals, err := s.VoteRepo.TotalsByType(voteType)
		if err != nil {
			return nil, err
		}
		summary.Totals[voteType] = totals

		vote, err := s.VoteRepo.FindByUserAndType(userID, voteType)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
			summary.MyVotes[voteType] = nil
			continue
		}
		value := vote.Value
		summary.MyVotes[voteType] = &value
	}

	return summary, nil
}
