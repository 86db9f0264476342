package controller

import (
	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AnnouncementController struct {
	AnnouncementService *service.AnnouncementService
}

func NewAnnouncementController(announcementService *service.AnnouncementService) *AnnouncementController {
	return &AnnouncementController{AnnouncementService: announcementService}
}

// Create godoc
// @Summary Publish an announcement
// @Description Optionally fans one notification out to every student
// @Tags announcements
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body service.AnnouncementInput true "announcement payload"
// @Success 201 {object} util.Response{data=object}
// @Failure 422 {object} util.Response "unknown announcement type"
// @Router /api/admin/announcements [post]
func (c *AnnouncementController) Create(ctx *gin.Context) {
	var input service.AnnouncementInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	announcement, notified, err := c.AnnouncementService.Create(input, claims.UserID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{
		"announcement":  announcement,
		"notifiedCount": notified,
	})
}

// List godoc
// @Summary List announcements
// @Tags announcements
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Announcement}
// @Router /api/announcements [get]
func (c *AnnouncementController) List(ctx *gin.Context) {
	announcements, err := c.AnnouncementService.List()
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, announcements)
}

// NextSchedule godoc
// @Summary Next scheduled lecture announcement
// @Tags announcements
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.Announcement}
// @Router /api/announcements/next-schedule [get]
func (c *AnnouncementController) NextSchedule(ctx *gin.Context) {
	announcement, err := c.AnnouncementService.NextSchedule()
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, announcement)
}

// Notify godoc
// @Summary Re-send an announcement to every student
// @Description Each call creates a fresh batch of notifications
// @Tags announcements
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "announcement id"
// @Success 200 {object} util.Response{data=object}
// @Failure 404 {object} util.Response
// @Router /api/admin/announcements/{id}/notify [post]
func (c *AnnouncementController) Notify(ctx *gin.Context) {
	announcementID, err := parseUintParam(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, "invalid announcement id")
		return
	}

	notified, err := c.AnnouncementService.NotifyAllStudents(announcementID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"notifiedCount": notified})
}

// Update godoc
// @Summary Update an announcement
// @Tags announcements
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "announcement id"
// @Param   body body service.AnnouncementUpdate true "fields to change"
// @Success 200 {object} util.Response{data=model.Announcement}
// @Failure 404 {object} util.Response
// @Router /api/admin/announcements/{id} [put]
func (c *AnnouncementController) Update(ctx *gin.Context) {
	announcementID, err := parseUintParam(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, "invalid announcement id")
		return
	}

	var input service.AnnouncementUpdate
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	announcement, err := c.AnnouncementService.Update(announcementID, input)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, announcement)
}

// Delete godoc
// @Summary Delete an announcement
// @Tags announcements
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "announcement id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/announcements/{id} [delete]
func (c *AnnouncementController) Delete(ctx *gin.Context) {
	announcementID, err := parseUintParam(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, "invalid announcement id")
		return
	}

	if err := c.AnnouncementService.Delete(announcementID); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": announcementID})
}
