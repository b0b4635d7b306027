package implementation

import (
	"context"
	"errors"
	"time"

	"grantflow-be/internal/model"
	"grantflow-be/internal/repository/contract"
	"grantflow-be/internal/repository/scope"
	"grantflow-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type NotificationRepositoryImpl struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) contract.NotificationRepository {
	return &NotificationRepositoryImpl{db: db}
}

func (r *NotificationRepositoryImpl) owned(ctx context.Context, userID uuid.UUID, specs ...specification.Specification) *gorm.DB {
	db := r.db.WithContext(ctx).Model(&model.Notification{})
	return applySpecifications(db, append([]specification.Specification{specification.UserOwnedBy{UserID: userID}}, specs...)...)
}

func readUpdates() map[string]interface{} {
	return map[string]interface{}{"is_read": true, "read_at": time.Now()}
}

func (r *NotificationRepositoryImpl) CreateNotification(ctx context.Context, notification *model.Notification) error {
	return r.db.WithContext(ctx).Create(notification).Error
}

// GetNotificationsByUserID returns one page, newest first, plus the unpaged total.
func (r *NotificationRepositoryImpl) GetNotificationsByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]model.Notification, int64, error) {
	var total int64
	if err := r.owned(ctx, userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var notifications []model.Notification
	err := r.owned(ctx, userID, specification.Pagination{Limit: limit, Offset: offset}).
		Scopes(scope.OrderByCreatedDesc).
		Find(&notifications).Error
	return notifications, total, err
}

func (r *NotificationRepositoryImpl) GetUnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.owned(ctx, userID, specification.Unread{}).Count(&count).Error
	return count, err
}

// MarkAsRead only touches notifications owned by userID.
func (r *NotificationRepositoryImpl) MarkAsRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	result := r.owned(ctx, userID, specification.ByID{ID: notificationID}).Updates(readUpdates())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return contract.ErrNotificationNotFound
	}
	return nil
}

func (r *NotificationRepositoryImpl) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	return r.owned(ctx, userID, specification.Unread{}).Updates(readUpdates()).Error
}

func (r *NotificationRepositoryImpl) GetNotificationTypeByCode(ctx context.Context, code string) (*model.NotificationType, error) {
	var notifType model.NotificationType
	query := applySpecifications(r.db.WithContext(ctx), specification.ActiveCode{Code: code})
	if err := query.First(&notifType).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &notifType, nil
}

func (r *NotificationRepositoryImpl) UpsertNotificationType(ctx context.Context, notifType *model.NotificationType) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "code"}},
		DoUpdates: clause.AssignmentColumns([]string{"display_name", "template", "target_type", "priority", "channels", "is_active", "updated_at"}),
	}).Create(notifType).Error
}
