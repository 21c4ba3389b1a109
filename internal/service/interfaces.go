package service

import (
	"context"

	"peakform-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// DepartmentServiceInterface defines the interface for department service
type DepartmentServiceInterface interface {
	Create(ctx context.Context, req *CreateDepartmentRequest) (*models.Department, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Department, error)
	List(ctx context.Context, activeOnly bool) ([]models.Department, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateDepartmentRequest) (*models.Department, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	Create(ctx context.Context, req *CreateUserRequest) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	List(ctx context.Context, page, pageSize int) (*UserListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateUserRequest) (*models.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetDirectReports(ctx context.Context, id uuid.UUID) ([]models.User, error)
}

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	Create(ctx context.Context, req *CreateTeamRequest) (*models.Team, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Team, error)
	List(ctx context.Context, activeOnly bool) ([]models.Team, error)
	GetMembers(ctx context.Context, id uuid.UUID) ([]models.User, error)
	GetHierarchy(ctx context.Context) (*HierarchyResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateTeamRequest) (*models.Team, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CompanyObjectiveServiceInterface defines the interface for company objective service
type CompanyObjectiveServiceInterface interface {
	Create(ctx context.Context, req *CreateObjectiveRequest) (*models.CompanyObjective, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.CompanyObjective, error)
	List(ctx context.Context, activeOnly bool) ([]models.CompanyObjective, error)
	GetProgress(ctx context.Context, id uuid.UUID) (*ObjectiveProgressResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateObjectiveRequest) (*models.CompanyObjective, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AddKeyResult(ctx context.Context, objectiveID uuid.UUID, req *KeyResultRequest) (*models.KeyResult, error)
	UpdateKeyResult(ctx context.Context, id uuid.UUID, req *KeyResultRequest) (*models.KeyResult, error)
	DeleteKeyResult(ctx context.Context, id uuid.UUID) error
}

// TeamObjectiveServiceInterface defines the interface for team objective service
type TeamObjectiveServiceInterface interface {
	Create(ctx context.Context, req *CreateTeamObjectiveRequest) (*models.TeamObjective, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.TeamObjective, error)
	List(ctx context.Context, teamID *uuid.UUID, activeOnly bool) ([]models.TeamObjective, error)
	GetProgress(ctx context.Context, id uuid.UUID) (*ObjectiveProgressResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateTeamObjectiveRequest) (*models.TeamObjective, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AddKeyResult(ctx context.Context, objectiveID uuid.UUID, req *TeamKeyResultRequest) (*models.TeamKeyResult, error)
	UpdateKeyResult(ctx context.Context, id uuid.UUID, req *TeamKeyResultRequest) (*models.TeamKeyResult, error)
	DeleteKeyResult(ctx context.Context, id uuid.UUID) error
}

// GoalServiceInterface defines the interface for goal service
type GoalServiceInterface interface {
	Create(ctx context.Context, req *CreateGoalRequest) (*GoalResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*GoalResponse, error)
	List(ctx context.Context, userID *uuid.UUID, status GoalStatus) ([]GoalResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateGoalRequest) (*GoalResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SubmitCheckIn(ctx context.Context, goalID uuid.UUID, req *SubmitCheckInRequest) (*models.CheckIn, error)
	ListCheckIns(ctx context.Context, goalID uuid.UUID) ([]models.CheckIn, error)
}

// CompetencyServiceInterface defines the interface for competency service
type CompetencyServiceInterface interface {
	Create(ctx context.Context, req *CompetencyRequest) (*models.Competency, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Competency, error)
	List(ctx context.Context, category string) ([]models.Competency, error)
	Update(ctx context.Context, id uuid.UUID, req *CompetencyRequest) (*models.Competency, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SetUserCompetency(ctx context.Context, userID uuid.UUID, req *UserCompetencyRequest) (*UserCompetencyResponse, error)
	ListUserCompetencies(ctx context.Context, userID uuid.UUID) ([]UserCompetencyResponse, error)
	DeleteUserCompetency(ctx context.Context, id uuid.UUID) error
}

// DevelopmentPlanServiceInterface defines the interface for development plan service
type DevelopmentPlanServiceInterface interface {
	Create(ctx context.Context, req *CreateDevelopmentPlanRequest) (*models.DevelopmentPlan, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.DevelopmentPlan, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.DevelopmentPlan, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateDevelopmentPlanRequest) (*models.DevelopmentPlan, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// LearningResourceServiceInterface defines the interface for learning resource service
type LearningResourceServiceInterface interface {
	Create(ctx context.Context, req *LearningResourceRequest) (*models.LearningResource, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.LearningResource, error)
	List(ctx context.Context, resourceType models.ResourceType, competencyID *uuid.UUID) ([]models.LearningResource, error)
	Update(ctx context.Context, id uuid.UUID, req *LearningResourceRequest) (*models.LearningResource, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// MeetingServiceInterface defines the interface for meeting service
type MeetingServiceInterface interface {
	Create(ctx context.Context, req *CreateMeetingRequest) (*models.Meeting, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Meeting, error)
	ListByParticipant(ctx context.Context, userID uuid.UUID, status models.MeetingStatus) ([]models.Meeting, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateMeetingRequest) (*models.Meeting, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// RecognitionServiceInterface defines the interface for recognition service
type RecognitionServiceInterface interface {
	Create(ctx context.Context, req *CreateRecognitionRequest) (*models.Recognition, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Recognition, error)
	List(ctx context.Context, includePrivate bool, limit, offset int) (*RecognitionListResponse, error)
	GetLeaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// WebhookServiceInterface defines the interface for webhook service
type WebhookServiceInterface interface {
	Create(ctx context.Context, req *WebhookConfigRequest) (*models.WebhookConfig, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.WebhookConfig, error)
	List(ctx context.Context, eventType models.WebhookEventType) ([]models.WebhookConfig, error)
	Update(ctx context.Context, id uuid.UUID, req *WebhookConfigRequest) (*models.WebhookConfig, error)
	Toggle(ctx context.Context, id uuid.UUID) (*models.WebhookConfig, error)
	Test(ctx context.Context, id uuid.UUID) (*TestResult, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ReportsServiceInterface defines the interface for reports service
type ReportsServiceInterface interface {
	GetCompanyReport(ctx context.Context) (*CompanyReport, error)
	GetTeamReport(ctx context.Context, teamID uuid.UUID) (*TeamReport, error)
	GetUserProfile(ctx context.Context, userID uuid.UUID) (*UserProfile, error)
}
