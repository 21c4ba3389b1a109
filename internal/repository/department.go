package repository

import (
	"peakform-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DepartmentRepositoryInterface defines data access for departments
type DepartmentRepositoryInterface interface {
	Create(department *models.Department) error
	GetByID(id uuid.UUID) (*models.Department, error)
	GetByCode(code string) (*models.Department, error)
	GetAll(activeOnly bool) ([]models.Department, error)
	Update(department *models.Department) error
	Delete(id uuid.UUID) error
}

// DepartmentRepository handles database operations for departments
type DepartmentRepository struct {
	db *gorm.DB
}

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(db *gorm.DB) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

// Create creates a new department
func (r *DepartmentRepository) Create(department *models.Department) error {
	return r.db.Create(department).Error
}

// GetByID retrieves a department by ID
func (r *DepartmentRepository) GetByID(id uuid.UUID) (*models.Department, error) {
	var department models.Department
	err := r.db.First(&department, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &department, nil
}

// GetByCode retrieves a department by its unique code
func (r *DepartmentRepository) GetByCode(code string) (*models.Department, error) {
	var department models.Department
	err := r.db.First(&department, "code = ?", code).Error
	if err != nil {
		return nil, err
	}
	return &department, nil
}

// GetAll retrieves all departments ordered by sort_order, then name
func (r *DepartmentRepository) GetAll(activeOnly bool) ([]models.Department, error) {
	var departments []models.Department
	query := r.db.Order("sort_order ASC, name ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Find(&departments).Error
	if err != nil {
		return nil, err
	}
	return departments, nil
}

// Update updates a department
func (r *DepartmentRepository) Update(department *models.Department) error {
	return r.db.Save(department).Error
}

// Delete deletes a department. Fails with a FK violation while teams still
// reference it.
func (r *DepartmentRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Department{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
