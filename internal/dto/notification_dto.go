package dto

import "grantflow-be/internal/model"

type NotificationListResponse struct {
	Items []model.Notification `json:"items"`
	Total int64                `json:"total"`
	Page  int                  `json:"page"`
	Limit int                  `json:"limit"`
}

type UnreadCountResponse struct {
	Count int64 `json:"count"`
}

type BroadcastRequest struct {
	Title   string `json:"title" validate:"required,max=200"`
	Message string `json:"message" validate:"required,max=2000"`
}
