package models

import (
	"time"

	"github.com/google/uuid"
)

// CompanyObjective is the top tier of the OKR alignment chain.
type CompanyObjective struct {
	BaseModel
	Title       string    `json:"title" gorm:"size:200;not null" validate:"required,min=1,max=200"`
	Description string    `json:"description" gorm:"size:1000" validate:"max=1000"`
	StartDate   time.Time `json:"start_date" gorm:"not null" validate:"required"`
	EndDate     time.Time `json:"end_date" gorm:"not null" validate:"required"`
	CreatedBy   uuid.UUID `json:"created_by" gorm:"type:uuid;not null"`
	IsActive    bool      `json:"is_active" gorm:"not null;default:true"`

	// Relationships
	KeyResults []KeyResult `json:"key_results,omitempty" gorm:"foreignKey:ObjectiveID"`
}

// TableName returns the table name for CompanyObjective
func (CompanyObjective) TableName() string {
	return "company_objectives"
}

// Progress returns the objective's completion as the mean of its key results,
// clamped to [0, 100]. An objective with no key results is at 0.
func (o *CompanyObjective) Progress() float64 {
	if len(o.KeyResults) == 0 {
		return 0
	}
	var sum float64
	for i := range o.KeyResults {
		sum += o.KeyResults[i].CompletionPercent()
	}
	return sum / float64(len(o.KeyResults))
}
