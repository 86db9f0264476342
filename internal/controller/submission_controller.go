package controller

import (
	"learnhub_backend/internal/model"
	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SubmissionController struct {
	SubmissionService *service.SubmissionService
}

func NewSubmissionController(submissionService *service.SubmissionService) *SubmissionController {
	return &SubmissionController{SubmissionService: submissionService}
}

// swagger:model SubmitQuizRequest
type SubmitQuizRequest struct {
	Answers []model.AnswerPair `json:"answers" binding:"required"`
}

// Submit godoc
// @Summary Submit quiz answers
// @Description Grades the answer set and records one immutable attempt per user and quiz
// @Tags submissions
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "quiz id"
// @Param   body body SubmitQuizRequest true "answer pairs, one per question"
// @Success 201 {object} util.Response{data=model.Submission}
// @Failure 403 {object} util.Response "lecture not completed"
// @Failure 404 {object} util.Response
// @Failure 409 {object} util.Response "already submitted"
// @Failure 422 {object} util.Response "incomplete or invalid answer set"
// @Router /api/quizzes/{id}/submissions [post]
func (c *SubmissionController) Submit(ctx *gin.Context) {
	quizID, err := parseUintParam(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, "invalid quiz id")
		return
	}

	var req SubmitQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	submission, err := c.SubmissionService.Submit(ctx.Request.Context(), claims.UserID, quizID, req.Answers)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, submission)
}

// Result godoc
// @Summary Fetch the caller's graded attempt for a quiz
// @Tags submissions
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "quiz id"
// @Success 200 {object} util.Response{data=model.Submission}
// @Failure 404 {object} util.Response
// @Router /api/quizzes/{id}/submissions/mine [get]
func (c *SubmissionController) Result(ctx *gin.Context) {
	quizID, err := parseUintParam(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, "invalid quiz id")
		return
	}

	claims := util.GetUserFromContext(ctx)
	submission, err := c.SubmissionService.Result(claims.UserID, quizID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, submission)
}
