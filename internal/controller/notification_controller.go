package controller

import (
	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type NotificationController struct {
	NotificationService *service.NotificationService
}

func NewNotificationController(notificationService *service.NotificationService) *NotificationController {
	return &NotificationController{NotificationService: notificationService}
}

// Feed godoc
// @Summary Recent notifications with unread count
// @Tags notifications
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.NotificationFeed}
// @Router /api/notifications [get]
func (c *NotificationController) Feed(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	feed, err := c.NotificationService.FeedForUser(claims.UserID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, feed)
}

// MarkRead godoc
// @Summary Mark one notification as read
// @Tags notifications
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "notification id"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response "not the recipient"
// @Failure 404 {object} util.Response
// @Router /api/notifications/{id}/read [post]
func (c *NotificationController) MarkRead(ctx *gin.Context) {
	notificationID, err := parseUintParam(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, "invalid notification id")
		return
	}

	claims := util.GetUserFromContext(ctx)
	if err := c.NotificationService.MarkRead(claims.UserID, notificationID); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"read": notificationID})
}

// MarkAllRead godoc
// @Summary Mark every notification as read
// @Tags notifications
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/notifications/read-all [post]
func (c *NotificationController) MarkAllRead(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if err := c.NotificationService.MarkAllRead(claims.UserID); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"read": "all"})
}
