package controller

import (
	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

// CompleteLecture godoc
// @Summary Mark a lecture as completed
// @Description Idempotent; repeating the call leaves progress unchanged
// @Tags progress
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "lecture id"
// @Success 200 {object} util.Response{data=service.CompletionResult}
// @Failure 404 {object} util.Response
// @Router /api/lectures/{id}/complete [post]
func (c *ProgressController) CompleteLecture(ctx *gin.Context) {
	lectureID, err := parseUintParam(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, "invalid lecture id")
		return
	}

	claims := util.GetUserFromContext(ctx)
	result, err := c.ProgressService.MarkLectureComplete(claims.UserID, lectureID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// CourseProgress godoc
// @Summary Course completion progress for the caller
// @Tags progress
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "course id"
// @Success 200 {object} util.Response{data=service.CourseProgress}
// @Failure 404 {object} util.Response
// @Router /api/courses/{id}/progress [get]
func (c *ProgressController) CourseProgress(ctx *gin.Context) {
	courseID, err := parseUintParam(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, "invalid course id")
		return
	}

	claims := util.GetUserFromContext(ctx)
	progress, err := c.ProgressService.CourseProgress(claims.UserID, courseID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, progress)
}
