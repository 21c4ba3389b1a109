package models

import (
	"github.com/google/uuid"
)

// User is an identity row. ManagerID is a self-reference forming the
// reporting chain; cycle prevention lives in the service layer.
type User struct {
	BaseModel
	Email     string     `json:"email" gorm:"size:255;not null;uniqueIndex" validate:"required,email"`
	FirstName string     `json:"first_name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	LastName  string     `json:"last_name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	Role      UserRole   `json:"role" gorm:"size:30;not null;default:'individual_contributor'" validate:"required,oneof=individual_contributor supervisor leadership"`
	JobTitle  string     `json:"job_title" gorm:"size:100" validate:"max=100"`
	ManagerID *uuid.UUID `json:"manager_id,omitempty" gorm:"type:uuid;index"`
	TeamID    *uuid.UUID `json:"team_id,omitempty" gorm:"type:uuid;index"`
	IsActive  bool       `json:"is_active" gorm:"not null;default:true"`

	// Relationships
	Manager *User `json:"manager,omitempty" gorm:"foreignKey:ManagerID"`
	Team    *Team `json:"team,omitempty" gorm:"foreignKey:TeamID"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// FullName returns the user's display name
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
