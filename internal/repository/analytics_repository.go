package repository

import (
	"context"

	"cs_chatbot_backend/internal/model"

	"gorm.io/gorm"
)

type AnalyticsRepository struct {
	DB *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{DB: db}
}

func (r *AnalyticsRepository) LogQuery(ctx context.Context, entry *model.AnalyticsEntry) error {
	return r.DB.WithContext(ctx).Create(entry).Error
}

func (r *AnalyticsRepository) LogFeedback(ctx context.Context, entry *model.FeedbackEntry) error {
	return r.DB.WithContext(ctx).Create(entry).Error
}
