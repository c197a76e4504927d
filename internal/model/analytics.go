package model

import (
	"time"
)

// AnalyticsEntry is one append-only row per handled chat request.
type AnalyticsEntry struct {
	ID           uint      `gorm:"primaryKey"`
	User         string    `gorm:"size:100;index"`
	Query        string    `gorm:"type:text"`
	CourseCode   string    `gorm:"size:50"`
	Year         *int      `gorm:"default:null"`
	ResponseType string    `gorm:"size:30;index"`
	Response     string    `gorm:"type:text"`
	Timestamp    time.Time `gorm:"index"`
}

func (AnalyticsEntry) TableName() string {
	return "analytics_entries"
}

// FeedbackEntry is one append-only row per feedback message.
type FeedbackEntry struct {
	ID        uint      `gorm:"primaryKey"`
	User      string    `gorm:"size:100;index"`
	Feedback  string    `gorm:"type:text"`
	Timestamp time.Time `gorm:"index"`
}

func (FeedbackEntry) TableName() string {
	return "feedback_entries"
}
