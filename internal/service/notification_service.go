package service

import (
	"errors"

	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"

	"gorm.io/gorm"
)

const notificationFeedLimit = 50

type NotificationService struct {
	NotificationRepo *repository.NotificationRepository
}

func NewNotificationService(notificationRepo *repository.NotificationRepository) *NotificationService {
	return &NotificationService{NotificationRepo: notificationRepo}
}

type NotificationFeed struct {
	Notifications []model.Notification `json:"notifications"`
	UnreadCount   int64                `json:"unreadCount"`
}

func (s *NotificationService) FeedForUser(userID uint) (*NotificationFeed, error) {
	notifications, err := s.NotificationRepo.FindByUser(userID, notificationFeedLimit)
	if err != nil {
		return nil, err
	}

	unread, err := s.NotificationRepo.CountUnread(userID)
	if err != nil {
		return nil, err
	}

	return &NotificationFeed{
		Notifications: notifications,
		UnreadCount:   unread,
	}, nil
}

// MarkRead flips the read flag; marking an already-read notification is
// a no-op. Recipients can only touch their own notifications.
func (s *NotificationService) MarkRead(userID, notificationID uint) error {
	notification, err := s.NotificationRepo.FindByID(notificationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrNotificationNotFound
		}
		return err
	}
	if notification.UserID != userID {
		return util.ErrPermissionDenied
	}
	return s.NotificationRepo.MarkRead(notificationID)
}

// MarkAllRead marks every unread notification of the user; idempotent.
func (s *NotificationService) MarkAllRead(userID uint) error {
	return s.NotificationRepo.MarkAllRead(userID)
}
