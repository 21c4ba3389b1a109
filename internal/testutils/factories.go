package testutils

import (
	"time"

	"peakform-backend/internal/database/models"

	"github.com/google/uuid"
)

// DepartmentFactory provides methods to create test Department data
type DepartmentFactory struct{}

// NewDepartmentFactory creates a new DepartmentFactory
func NewDepartmentFactory() *DepartmentFactory {
	return &DepartmentFactory{}
}

// Create creates a test Department with default values
func (f *DepartmentFactory) Create() *models.Department {
	id := uuid.New()
	return &models.Department{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:      "Engineering",
		Code:      "ENG-" + id.String()[:6],
		SortOrder: 0,
		IsActive:  true,
	}
}

// WithCode sets a custom code for the department
func (f *DepartmentFactory) WithCode(code string) *models.Department {
	dept := f.Create()
	dept.Code = code
	return dept
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values and a unique email
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Email:     "user-" + id.String()[:8] + "@test.com",
		FirstName: "Jane",
		LastName:  "Doe",
		Role:      models.UserRoleIndividualContributor,
		JobTitle:  "Software Engineer",
		IsActive:  true,
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// WithRole sets a custom role for the user
func (f *UserFactory) WithRole(role models.UserRole) *models.User {
	user := f.Create()
	user.Role = role
	return user
}

// WithManager sets the manager ID for the user
func (f *UserFactory) WithManager(managerID uuid.UUID) *models.User {
	user := f.Create()
	user.ManagerID = &managerID
	return user
}

// WithTeam sets the team ID for the user
func (f *UserFactory) WithTeam(teamID uuid.UUID) *models.User {
	user := f.Create()
	user.TeamID = &teamID
	return user
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with default values. TeamLeadID must reference
// an existing user before persisting.
func (f *TeamFactory) Create(leadID uuid.UUID) *models.Team {
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "Platform Team",
		Description: "A test team",
		TeamLeadID:  leadID,
		IsActive:    true,
	}
}

// WithParent sets the parent team ID
func (f *TeamFactory) WithParent(leadID, parentID uuid.UUID) *models.Team {
	team := f.Create(leadID)
	team.ParentTeamID = &parentID
	return team
}

// CompanyObjectiveFactory provides methods to create test CompanyObjective data
type CompanyObjectiveFactory struct{}

// NewCompanyObjectiveFactory creates a new CompanyObjectiveFactory
func NewCompanyObjectiveFactory() *CompanyObjectiveFactory {
	return &CompanyObjectiveFactory{}
}

// Create creates a test CompanyObjective spanning the current quarter
func (f *CompanyObjectiveFactory) Create(createdBy uuid.UUID) *models.CompanyObjective {
	now := time.Now()
	return &models.CompanyObjective{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:       "Grow recurring revenue",
		Description: "A test company objective",
		StartDate:   now.AddDate(0, -1, 0),
		EndDate:     now.AddDate(0, 2, 0),
		CreatedBy:   createdBy,
		IsActive:    true,
	}
}

// GoalFactory provides methods to create test Goal data
type GoalFactory struct{}

// NewGoalFactory creates a new GoalFactory
func NewGoalFactory() *GoalFactory {
	return &GoalFactory{}
}

// Create creates a test Goal owned by the given user
func (f *GoalFactory) Create(userID uuid.UUID) *models.Goal {
	now := time.Now()
	return &models.Goal{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:       userID,
		Title:        "Ship five features",
		TargetValue:  5,
		CurrentValue: 0,
		Unit:         "features",
		StartDate:    now.AddDate(0, -1, 0),
		EndDate:      now.AddDate(0, 2, 0),
		Confidence:   models.ConfidenceOnTrack,
		IsActive:     true,
	}
}

// WithProgress sets the current value on the goal
func (f *GoalFactory) WithProgress(userID uuid.UUID, current float64) *models.Goal {
	goal := f.Create(userID)
	goal.CurrentValue = current
	return goal
}

// CompetencyFactory provides methods to create test Competency data
type CompetencyFactory struct{}

// NewCompetencyFactory creates a new CompetencyFactory
func NewCompetencyFactory() *CompetencyFactory {
	return &CompetencyFactory{}
}

// Create creates a test Competency with default values
func (f *CompetencyFactory) Create() *models.Competency {
	return &models.Competency{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "Go",
		Category:    "technical",
		Description: "A test competency",
	}
}

// RecognitionFactory provides methods to create test Recognition data
type RecognitionFactory struct{}

// NewRecognitionFactory creates a new RecognitionFactory
func NewRecognitionFactory() *RecognitionFactory {
	return &RecognitionFactory{}
}

// Create creates a public test Recognition between the given users
func (f *RecognitionFactory) Create(fromID, toID uuid.UUID) *models.Recognition {
	return &models.Recognition{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FromUserID: fromID,
		ToUserID:   toID,
		Value:      models.ValueTeamwork,
		Message:    "Great collaboration on the release",
		IsPublic:   true,
	}
}

// WebhookConfigFactory provides methods to create test WebhookConfig data
type WebhookConfigFactory struct{}

// NewWebhookConfigFactory creates a new WebhookConfigFactory
func NewWebhookConfigFactory() *WebhookConfigFactory {
	return &WebhookConfigFactory{}
}

// Create creates an active test WebhookConfig with default values
func (f *WebhookConfigFactory) Create() *models.WebhookConfig {
	return &models.WebhookConfig{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:           "Course completion hook",
		EventType:      models.EventCourseCompleted,
		TargetURL:      "https://hooks.test.com/lms",
		RetryCount:     3,
		TimeoutSeconds: 30,
		IsActive:       true,
	}
}

// WithEventType sets a custom event type on the webhook config
func (f *WebhookConfigFactory) WithEventType(eventType models.WebhookEventType) *models.WebhookConfig {
	cfg := f.Create()
	cfg.EventType = eventType
	return cfg
}
