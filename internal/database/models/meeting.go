package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Meeting is a one-on-one between a manager and an employee. Each party keeps
// separate notes; action items are a free-form JSON list.
type Meeting struct {
	BaseModel
	ManagerID     uuid.UUID       `json:"manager_id" gorm:"type:uuid;not null;index" validate:"required"`
	EmployeeID    uuid.UUID       `json:"employee_id" gorm:"type:uuid;not null;index" validate:"required"`
	ScheduledAt   time.Time       `json:"scheduled_at" gorm:"not null" validate:"required"`
	Agenda        string          `json:"agenda" gorm:"size:2000" validate:"max=2000"`
	ManagerNotes  string          `json:"manager_notes" gorm:"size:2000" validate:"max=2000"`
	EmployeeNotes string          `json:"employee_notes" gorm:"size:2000" validate:"max=2000"`
	ActionItems   json.RawMessage `json:"action_items,omitempty" gorm:"type:jsonb"`
	Status        MeetingStatus   `json:"status" gorm:"size:20;not null;default:'scheduled'" validate:"required,oneof=scheduled completed cancelled"`

	// Relationships
	Manager  *User `json:"manager,omitempty" gorm:"foreignKey:ManagerID;constraint:OnDelete:CASCADE"`
	Employee *User `json:"employee,omitempty" gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Meeting
func (Meeting) TableName() string {
	return "meetings"
}
