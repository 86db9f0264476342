package controller

import (
	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AttendanceController struct {
	AttendanceService *service.AttendanceService
}

func NewAttendanceController(attendanceService *service.AttendanceService) *AttendanceController {
	return &AttendanceController{AttendanceService: attendanceService}
}

// Attend godoc
// @Summary Record attendance at a lecture
// @Tags attendance
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "lecture id"
// @Success 201 {object} util.Response{data=model.Attendance}
// @Failure 404 {object} util.Response
// @Failure 409 {object} util.Response "already attended"
// @Router /api/lectures/{id}/attend [post]
func (c *AttendanceController) Attend(ctx *gin.Context) {
	lectureID, err := parseUintParam(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, "invalid lecture id")
		return
	}

	claims := util.GetUserFromContext(ctx)
	attendance, err := c.AttendanceService.Attend(ctx.Request.Context(), claims.UserID, lectureID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, attendance)
}
