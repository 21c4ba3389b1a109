package models

import (
	"github.com/google/uuid"
)

// LearningResource is a catalog entry pointing at external training material.
type LearningResource struct {
	BaseModel
	Title           string       `json:"title" gorm:"size:200;not null" validate:"required,min=1,max=200"`
	Type            ResourceType `json:"type" gorm:"size:20;not null" validate:"required,oneof=course video article book workshop"`
	URL             string       `json:"url" gorm:"size:500;not null" validate:"required,url,max=500"`
	DurationMinutes int          `json:"duration_minutes" gorm:"not null;default:0" validate:"gte=0"`
	CompetencyID    *uuid.UUID   `json:"competency_id,omitempty" gorm:"type:uuid;index"`

	// Relationships
	Competency *Competency `json:"competency,omitempty" gorm:"foreignKey:CompetencyID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for LearningResource
func (LearningResource) TableName() string {
	return "learning_resources"
}
