package models

import (
	"time"

	"github.com/google/uuid"
)

// CheckIn is a weekly progress submission against a goal. Rows are
// append-only; WeekStart is normalized to the Sunday of the submission week.
// The schema does not enforce one check-in per goal per week.
type CheckIn struct {
	BaseModel
	GoalID       uuid.UUID       `json:"goal_id" gorm:"type:uuid;not null;index" validate:"required"`
	UserID       uuid.UUID       `json:"user_id" gorm:"type:uuid;not null;index" validate:"required"`
	Progress     int             `json:"progress" gorm:"not null" validate:"gte=0,lte=100"`
	Confidence   ConfidenceLevel `json:"confidence" gorm:"size:10;not null" validate:"required,oneof=green amber red"`
	Achievements string          `json:"achievements" gorm:"size:2000" validate:"max=2000"`
	Challenges   string          `json:"challenges" gorm:"size:2000" validate:"max=2000"`
	WeekStart    time.Time       `json:"week_start" gorm:"type:date;not null;index"`

	// Relationships
	Goal *Goal `json:"goal,omitempty" gorm:"foreignKey:GoalID;constraint:OnDelete:CASCADE"`
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// TableName returns the table name for CheckIn
func (CheckIn) TableName() string {
	return "check_ins"
}

// WeekStartOf returns the Sunday 00:00 UTC of the calendar week containing t.
func WeekStartOf(t time.Time) time.Time {
	t = t.UTC()
	t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return t.AddDate(0, 0, -int(t.Weekday()))
}

// IsStale reports whether the check-in is older than the week containing now.
func (c *CheckIn) IsStale(now time.Time) bool {
	return c.WeekStart.Before(WeekStartOf(now))
}
