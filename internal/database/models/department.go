package models

// Department groups teams and job roles under a unique short code.
// Deletion is blocked at the FK level while anything still references it.
type Department struct {
	BaseModel
	Name      string `json:"name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	Code      string `json:"code" gorm:"size:20;not null;uniqueIndex" validate:"required,min=1,max=20"`
	SortOrder int    `json:"sort_order" gorm:"not null;default:0"`
	IsActive  bool   `json:"is_active" gorm:"not null;default:true"`

	// Relationships
	Teams []Team `json:"teams,omitempty" gorm:"foreignKey:DepartmentID"`
}

// TableName returns the table name for Department
func (Department) TableName() string {
	return "departments"
}
