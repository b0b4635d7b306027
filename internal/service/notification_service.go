package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"grantflow-be/internal/model"
	"grantflow-be/internal/pkg/logger"
	"grantflow-be/internal/pkg/mailer"
	"grantflow-be/internal/repository/contract"
	"grantflow-be/internal/repository/unitofwork"
	"grantflow-be/pkg/events"
	pktNats "grantflow-be/pkg/nats"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationDelivery pushes real-time updates. The websocket Hub
// implements it.
type NotificationDelivery interface {
	Send(userID uuid.UUID, notification model.Notification)
	Broadcast(notification model.Notification)
}

// EventSubscriber is the part of *nats.Subscriber the service needs.
type EventSubscriber interface {
	Subscribe(ctx context.Context, subject, durableName string, handler pktNats.EventHandler) error
}

const emailChannel = "email"

type NotificationService struct {
	uowFactory unitofwork.RepositoryFactory
	subscriber EventSubscriber
	delivery   NotificationDelivery
	mailer     mailer.IEmailService
	logger     logger.ILogger
}

func NewNotificationService(
	uowFactory unitofwork.RepositoryFactory,
	sub EventSubscriber,
	delivery NotificationDelivery,
	emailService mailer.IEmailService,
	log logger.ILogger,
) *NotificationService {
	return &NotificationService{
		uowFactory: uowFactory,
		subscriber: sub,
		delivery:   delivery,
		mailer:     emailService,
		logger:     log,
	}
}

// Start subscribes to every domain event with a durable consumer.
func (s *NotificationService) Start(ctx context.Context) error {
	if s.subscriber == nil {
		s.logger.Warn("NotificationService", "No event subscriber, notifications disabled", nil)
		return nil
	}
	if err := s.subscriber.Subscribe(ctx, pktNats.SubjectPrefix+">", "notification-worker", s.handleEvent); err != nil {
		return fmt.Errorf("start notification subscriber: %w", err)
	}
	s.logger.Info("NotificationService", "Notification service started", map[string]interface{}{"subject": pktNats.SubjectPrefix + ">"})
	return nil
}

func (s *NotificationService) handleEvent(ctx context.Context, event events.Event) error {
	typeCode := strings.TrimPrefix(event.EventType(), pktNats.SubjectPrefix)
	uow := s.uowFactory.NewUnitOfWork(ctx)

	config, err := uow.NotificationRepository().GetNotificationTypeByCode(ctx, typeCode)
	if err != nil {
		return err
	}
	if config == nil {
		s.logger.Debug("NotificationService", "No active notification type for event", map[string]interface{}{"type": typeCode})
		return nil
	}

	// Broadcasts are push-only; storing one row per user does not scale.
	if config.TargetType == model.TargetBroadcast {
		if s.delivery != nil {
			s.delivery.Broadcast(buildNotification(uuid.Nil, config, event))
		}
		return nil
	}

	userID, ok := recipient(event)
	if !ok {
		s.logger.Warn("NotificationService", "Event has no user_id, dropping", map[string]interface{}{"type": typeCode})
		return nil
	}

	notif := buildNotification(userID, config, event)
	if err := uow.NotificationRepository().CreateNotification(ctx, &notif); err != nil {
		return err
	}
	if s.delivery != nil {
		s.delivery.Send(userID, notif)
	}

	if config.HasChannel(emailChannel) {
		s.sendEmail(ctx, uow, userID, notif)
	}
	return nil
}

func (s *NotificationService) sendEmail(ctx context.Context, uow unitofwork.UnitOfWork, userID uuid.UUID, notif model.Notification) {
	profile, err := uow.UserProfileRepository().FindByUserId(ctx, userID)
	if err != nil || profile == nil || profile.Email == "" {
		return
	}
	if err := s.mailer.SendNotification(profile.Email, notif.Title, notif.Message); err != nil {
		s.logger.Warn("NotificationService", "Failed to email notification", map[string]interface{}{"user_id": userID, "error": err})
	}
}

func recipient(event events.Event) (uuid.UUID, bool) {
	raw, ok := event.Payload()["user_id"].(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// buildNotification fills {key} placeholders in the type's template from
// the event payload.
func buildNotification(userID uuid.UUID, config *model.NotificationType, event events.Event) model.Notification {
	msg := config.Template
	payload := event.Payload()
	for k, v := range payload {
		msg = strings.ReplaceAll(msg, "{"+k+"}", fmt.Sprintf("%v", v))
	}

	entityType, _ := payload["entity_type"].(string)
	var entityID *uuid.UUID
	if raw, ok := payload["entity_id"].(string); ok {
		if id, err := uuid.Parse(raw); err == nil {
			entityID = &id
		}
	}

	meta := make(map[string]interface{}, len(payload)+1)
	for k, v := range payload {
		meta[k] = v
	}
	if entityType != "" && entityID != nil {
		meta["action_url"] = fmt.Sprintf("/%ss/%s", entityType, entityID)
	}
	metaJSON, _ := json.Marshal(meta)

	title := config.DisplayName
	if t, ok := payload["title"].(string); ok && config.TargetType == model.TargetBroadcast && t != "" {
		title = t
	}

	return model.Notification{
		ID:         uuid.New(),
		UserID:     userID,
		TypeCode:   config.Code,
		Title:      title,
		Message:    msg,
		Metadata:   datatypes.JSON(metaJSON),
		EntityType: entityType,
		EntityID:   entityID,
		CreatedAt:  time.Now(),
	}
}

func (s *NotificationService) GetNotifications(ctx context.Context, userID uuid.UUID, limit, offset int) ([]model.Notification, int64, error) {
	return s.uowFactory.NewUnitOfWork(ctx).NotificationRepository().GetNotificationsByUserID(ctx, userID, limit, offset)
}

func (s *NotificationService) GetUnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.uowFactory.NewUnitOfWork(ctx).NotificationRepository().GetUnreadCount(ctx, userID)
}

func (s *NotificationService) MarkAsRead(ctx context.Context, userID, id uuid.UUID) error {
	err := s.uowFactory.NewUnitOfWork(ctx).NotificationRepository().MarkAsRead(ctx, userID, id)
	if errors.Is(err, contract.ErrNotificationNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *NotificationService) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	return s.uowFactory.NewUnitOfWork(ctx).NotificationRepository().MarkAllAsRead(ctx, userID)
}
