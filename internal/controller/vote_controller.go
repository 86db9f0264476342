package controller

import (
	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type VoteController struct {
	VoteService *service.VoteService
}

func NewVoteController(voteService *service.VoteService) *VoteController {
	return &VoteController{VoteService: voteService}
}

// swagger:model CastVoteRequest
type CastVoteRequest struct {
	Type  string `json:"type" binding:"required"`
	Value string `json:"value" binding:"required"`
}

// Cast godoc
// @Summary Cast or change a vote
// @Description A later vote in the same category replaces the earlier one
// @Tags votes
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body CastVoteRequest true "vote payload"
// @Success 200 {object} util.Response{data=service.VoteSummary}
// @Failure 422 {object} util.Response "unknown category or value"
// @Router /api/votes [post]
func (c *VoteController) Cast(ctx *gin.Context) {
	var req CastVoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	summary, err := c.VoteService.Cast(claims.UserID, req.Type, req.Value)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, summary)
}

// Summary godoc
// @Summary Vote tallies plus the caller's own votes
// @Tags votes
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.VoteSummary}
// @Router /api/votes [get]
func (c *VoteController) Summary(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	summary, err := c.VoteService.Summary(claims.UserID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, summary)
}
