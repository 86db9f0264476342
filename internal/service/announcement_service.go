package service

import (
	"errors"
	"time"

	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"
	"learnhub_backend/pkg/logger"
	"learnhub_backend/pkg/monitoring"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AnnouncementService owns announcements and their fan-out into
// per-student notifications.
type AnnouncementService struct {
	AnnouncementRepo *repository.AnnouncementRepository
	NotificationRepo *repository.NotificationRepository
	UserRepo         *repository.UserRepository
}

func NewAnnouncementService(
	announcementRepo *repository.AnnouncementRepository,
	notificationRepo *repository.NotificationRepository,
	userRepo *repository.UserRepository,
) *AnnouncementService {
	return &AnnouncementService{
		AnnouncementRepo: announcementRepo,
		NotificationRepo: notificationRepo,
		UserRepo:         userRepo,
	}
}

type AnnouncementInput struct {
	Title            string     `json:"title" binding:"required,max=255"`
	Message          string     `json:"message"`
	Type             string     `json:"type" binding:"required"`
	CourseID         *uint      `json:"courseId"`
	LectureID        *uint      `json:"lectureId"`
	ScheduledAt      *time.Time `json:"scheduledAt"`
	SendNotification bool       `json:"sendNotification"`
}

func validAnnouncementType(t string) bool {
	switch t {
	case model.AnnouncementTypeLectureSchedule,
		model.AnnouncementTypeReminder,
		model.AnnouncementTypeGeneral:
		return true
	}
	return false
}

// Create stores the announcement and, when requested, immediately fans
// it out to every student. Returns the count notified (0 when fan-out
// was not requested).
func (s *AnnouncementService) Create(input AnnouncementInput, creatorID uint) (*model.Announcement, int, error) {
	if !validAnnouncementType(input.Type) {
		return nil, 0, util.NewValidationError("type", "must be one of lecture_schedule, reminder, general")
	}

	announcement := &model.Announcement{
		Title:       input.Title,
		Message:     input.Message,
		Type:        input.Type,
		CourseID:    input.CourseID,
		LectureID:   input.LectureID,
		ScheduledAt: input.ScheduledAt,
		IsActive:    true,
		CreatedBy:   creatorID,
	}
	if err := s.AnnouncementRepo.Create(announcement); err != nil {
		return nil, 0, err
	}

	notified := 0
	if input.SendNotification {
		var err error
		notified, err = s.NotifyAllStudents(announcement.ID)
		if err != nil {
			return nil, 0, err
		}
	}
	return announcement, notified, nil
}

// NotifyAllStudents materializes one unread notification per student in
// one all-or-nothing bulk insert and returns the number created.
// Not idempotent: a second call creates a second notification for every
// student, which is why only the explicit resend endpoint re-triggers
// it.
func (s *AnnouncementService) NotifyAllStudents(announcementID uint) (int, error) {
	announcement, err := s.AnnouncementRepo.FindByID(announcementID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, util.ErrAnnouncementNotFound
		}
		return 0, err
	}

	students, err := s.UserRepo.FindByRole(model.Student)
	if err != nil {
		return 0, err
	}

	notificationType := model.NotificationTypeGeneral
	if announcement.Type == model.AnnouncementTypeLectureSchedule {
		notificationType = model.NotificationTypeLectureReminder
	}

	refID := announcement.ID
	notifications := make([]model.Notification, 0, len(students))
	for _, student := range students {
		notifications = append(notifications, model.Notification{
			UserID:         student.ID,
			AnnouncementID: &refID,
			Title:          announcement.Title,
			Message:        announcement.Message,
			Type:           notificationType,
			IsRead:         false,
		})
	}

	if err := s.NotificationRepo.BulkCreate(notifications); err != nil {
		return 0, err
	}

	monitoring.NotificationsFanned.Add(float64(len(notifications)))
	logger.Log.Info("announcement fanned out",
		zap.Uint("announcement_id", announcement.ID),
		zap.Int("notified", len(notifications)),
	)
	return len(notifications), nil
}

type AnnouncementUpdate struct {
	Title       *string    `json:"title"`
	Message     *string    `json:"message"`
	ScheduledAt *time.Time `json:"scheduledAt"`
	IsActive    *bool      `json:"isActive"`
}

func (s *AnnouncementService) Update(id uint, input AnnouncementUpdate) (*model.Announcement, error) {
	announcement, err := s.AnnouncementRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrAnnouncementNotFound
		}
		return nil, err
	}

	if input.Title != nil {
		announcement.Title = *input.Title
	}
	if input.Message != nil {
		announcement.Message = *input.Message
	}
	if input.ScheduledAt != nil {
		announcement.ScheduledAt = input.ScheduledAt
	}
	if input.IsActive != nil {
		announcement.IsActive = *input.IsActive
	}

	if err := s.AnnouncementRepo.Update(announcement); err != nil {
		return nil, err
	}
	return announcement, nil
}

func (s *AnnouncementService) Delete(id uint) error {
	if _, err := s.AnnouncementRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrAnnouncementNotFound
		}
		return err
	}
	return s.AnnouncementRepo.Delete(id)
}

func (s *AnnouncementService) List() ([]model.Announcement, error) {
	return s.AnnouncementRepo.FindAll()
}

// NextSchedule returns the upcoming lecture-schedule announcement, or
// nil when none is scheduled.
func (s *AnnouncementService) NextSchedule() (*model.Announcement, error) {
	announcement, err := s.AnnouncementRepo.NextSchedule(time.Now())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return announcement, nil
}

// DeactivatePast retires lecture-schedule announcements whose time has
// passed; run periodically. scheduled_at itself never triggers fan-out.
func (s *AnnouncementService) DeactivatePast() error {
	return s.AnnouncementRepo.DeactivatePast(time.Now())
}
