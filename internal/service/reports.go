package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"peakform-backend/internal/cache"
	"peakform-backend/internal/database/models"
	apperrors "peakform-backend/internal/errors"
	"peakform-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReportsService assembles read-only aggregates across the other domains
type ReportsService struct {
	userRepo          repository.UserRepositoryInterface
	teamRepo          repository.TeamRepositoryInterface
	departmentRepo    repository.DepartmentRepositoryInterface
	objectiveRepo     repository.CompanyObjectiveRepositoryInterface
	teamObjectiveRepo repository.TeamObjectiveRepositoryInterface
	goalRepo          repository.GoalRepositoryInterface
	checkInRepo       repository.CheckInRepositoryInterface
	competencyRepo    repository.CompetencyRepositoryInterface
	planRepo          repository.DevelopmentPlanRepositoryInterface
	recognitionRepo   repository.RecognitionRepositoryInterface
	cache             *cache.QueryCache
}

// NewReportsService creates a new reports service
func NewReportsService(
	userRepo repository.UserRepositoryInterface,
	teamRepo repository.TeamRepositoryInterface,
	departmentRepo repository.DepartmentRepositoryInterface,
	objectiveRepo repository.CompanyObjectiveRepositoryInterface,
	teamObjectiveRepo repository.TeamObjectiveRepositoryInterface,
	goalRepo repository.GoalRepositoryInterface,
	checkInRepo repository.CheckInRepositoryInterface,
	competencyRepo repository.CompetencyRepositoryInterface,
	planRepo repository.DevelopmentPlanRepositoryInterface,
	recognitionRepo repository.RecognitionRepositoryInterface,
	qc *cache.QueryCache,
) *ReportsService {
	return &ReportsService{
		userRepo:          userRepo,
		teamRepo:          teamRepo,
		departmentRepo:    departmentRepo,
		objectiveRepo:     objectiveRepo,
		teamObjectiveRepo: teamObjectiveRepo,
		goalRepo:          goalRepo,
		checkInRepo:       checkInRepo,
		competencyRepo:    competencyRepo,
		planRepo:          planRepo,
		recognitionRepo:   recognitionRepo,
		cache:             qc,
	}
}

// GoalStats summarizes a set of goals by the derived completion rule
type GoalStats struct {
	Total       int     `json:"total"`
	Open        int     `json:"open"`
	Completed   int     `json:"completed"`
	AvgProgress float64 `json:"avg_progress"`
}

// ObjectiveSummary is one objective row in a report
type ObjectiveSummary struct {
	ObjectiveID uuid.UUID `json:"objective_id"`
	Title       string    `json:"title"`
	Progress    float64   `json:"progress"`
	IsActive    bool      `json:"is_active"`
}

// CompanyReport is the organization-wide rollup
type CompanyReport struct {
	UserCount              int64                          `json:"user_count"`
	TeamCount              int                            `json:"team_count"`
	DepartmentCount        int                            `json:"department_count"`
	Goals                  GoalStats                      `json:"goals"`
	Objectives             []ObjectiveSummary             `json:"objectives"`
	AvgObjectiveProgress   float64                        `json:"avg_objective_progress"`
	ConfidenceDistribution map[models.ConfidenceLevel]int `json:"confidence_distribution"`
	GeneratedAt            time.Time                      `json:"generated_at"`
}

// TeamMemberReport is one member row in a team report
type TeamMemberReport struct {
	User  models.User `json:"user"`
	Goals GoalStats   `json:"goals"`
}

// TeamReport is the per-team rollup
type TeamReport struct {
	Team        models.Team        `json:"team"`
	MemberCount int                `json:"member_count"`
	Members     []TeamMemberReport `json:"members"`
	Objectives  []ObjectiveSummary `json:"objectives"`
	GeneratedAt time.Time          `json:"generated_at"`
}

// UserProfile is the aggregate view behind a user's profile page
type UserProfile struct {
	User           models.User              `json:"user"`
	Goals          []GoalResponse           `json:"goals"`
	GoalStats      GoalStats                `json:"goal_stats"`
	RecentCheckIns []models.CheckIn         `json:"recent_check_ins"`
	Competencies   []UserCompetencyResponse `json:"competencies"`
	Plans          []models.DevelopmentPlan `json:"plans"`
	Recognitions   []models.Recognition     `json:"recognitions"`
}

const profileCheckInLimit = 10
const profileRecognitionLimit = 10

// companyReportCheckInWeeks is how many weeks of check-ins, counting the
// current week, feed the company confidence distribution.
const companyReportCheckInWeeks = 4

// GetCompanyReport assembles the organization-wide rollup
func (s *ReportsService) GetCompanyReport(ctx context.Context) (*CompanyReport, error) {
	var cached CompanyReport
	if s.cache.Get(ctx, cache.PrefixReports, "company", &cached) {
		return &cached, nil
	}

	_, userCount, err := s.userRepo.GetAll(1, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	teams, err := s.teamRepo.GetAll(false)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	departments, err := s.departmentRepo.GetAll(false)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	goals, err := s.goalRepo.GetAll(false)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	objectives, err := s.objectiveRepo.GetAll(false)
	if err != nil {
		return nil, fmt.Errorf("failed to list objectives: %w", err)
	}

	windowStart := models.WeekStartOf(time.Now()).AddDate(0, 0, -7*(companyReportCheckInWeeks-1))
	checkIns, err := s.checkInRepo.GetSince(windowStart)
	if err != nil {
		return nil, fmt.Errorf("failed to list check-ins: %w", err)
	}
	distribution := map[models.ConfidenceLevel]int{
		models.ConfidenceOnTrack:  0,
		models.ConfidenceAtRisk:   0,
		models.ConfidenceOffTrack: 0,
	}
	for i := range checkIns {
		distribution[checkIns[i].Confidence]++
	}

	summaries := make([]ObjectiveSummary, 0, len(objectives))
	var progressSum float64
	for i := range objectives {
		progress := objectives[i].Progress()
		progressSum += progress
		summaries = append(summaries, ObjectiveSummary{
			ObjectiveID: objectives[i].ID,
			Title:       objectives[i].Title,
			Progress:    progress,
			IsActive:    objectives[i].IsActive,
		})
	}
	avgProgress := 0.0
	if len(objectives) > 0 {
		avgProgress = progressSum / float64(len(objectives))
	}

	report := &CompanyReport{
		UserCount:              userCount,
		TeamCount:              len(teams),
		DepartmentCount:        len(departments),
		Goals:                  computeGoalStats(goals),
		Objectives:             summaries,
		AvgObjectiveProgress:   avgProgress,
		ConfidenceDistribution: distribution,
		GeneratedAt:            time.Now().UTC(),
	}

	s.cache.Set(ctx, cache.PrefixReports, "company", report)
	return report, nil
}

// GetTeamReport assembles the rollup for one team
func (s *ReportsService) GetTeamReport(ctx context.Context, teamID uuid.UUID) (*TeamReport, error) {
	cacheKey := fmt.Sprintf("team:%s", teamID)
	var cached TeamReport
	if s.cache.Get(ctx, cache.PrefixReports, cacheKey, &cached) {
		return &cached, nil
	}

	team, err := s.teamRepo.GetByID(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	members, err := s.userRepo.GetByTeamID(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}

	memberReports := make([]TeamMemberReport, 0, len(members))
	for i := range members {
		goals, err := s.goalRepo.GetByUserID(members[i].ID, false)
		if err != nil {
			return nil, fmt.Errorf("failed to list member goals: %w", err)
		}
		memberReports = append(memberReports, TeamMemberReport{
			User:  members[i],
			Goals: computeGoalStats(goals),
		})
	}

	objectives, err := s.teamObjectiveRepo.GetByTeamID(teamID, false)
	if err != nil {
		return nil, fmt.Errorf("failed to list team objectives: %w", err)
	}
	summaries := make([]ObjectiveSummary, 0, len(objectives))
	for i := range objectives {
		summaries = append(summaries, ObjectiveSummary{
			ObjectiveID: objectives[i].ID,
			Title:       objectives[i].Title,
			Progress:    objectives[i].Progress(),
			IsActive:    objectives[i].IsActive,
		})
	}

	report := &TeamReport{
		Team:        *team,
		MemberCount: len(members),
		Members:     memberReports,
		Objectives:  summaries,
		GeneratedAt: time.Now().UTC(),
	}

	s.cache.Set(ctx, cache.PrefixReports, cacheKey, report)
	return report, nil
}

// GetUserProfile assembles the aggregate behind a user's profile page
func (s *ReportsService) GetUserProfile(ctx context.Context, userID uuid.UUID) (*UserProfile, error) {
	cacheKey := fmt.Sprintf("profile:%s", userID)
	var cached UserProfile
	if s.cache.Get(ctx, cache.PrefixReports, cacheKey, &cached) {
		return &cached, nil
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	goals, err := s.goalRepo.GetByUserID(userID, false)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	goalResponses := make([]GoalResponse, 0, len(goals))
	for i := range goals {
		goalResponses = append(goalResponses, *toGoalResponse(&goals[i]))
	}

	checkIns, err := s.checkInRepo.GetByUserID(userID, profileCheckInLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list check-ins: %w", err)
	}

	competencies, err := s.competencyRepo.GetUserCompetencies(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list competencies: %w", err)
	}
	competencyResponses := make([]UserCompetencyResponse, 0, len(competencies))
	for i := range competencies {
		competencyResponses = append(competencyResponses, *toUserCompetencyResponse(&competencies[i]))
	}

	plans, err := s.planRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list development plans: %w", err)
	}

	recognitions, err := s.recognitionRepo.GetByToUserID(userID, profileRecognitionLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recognitions: %w", err)
	}

	profile := &UserProfile{
		User:           *user,
		Goals:          goalResponses,
		GoalStats:      computeGoalStats(goals),
		RecentCheckIns: checkIns,
		Competencies:   competencyResponses,
		Plans:          plans,
		Recognitions:   recognitions,
	}

	s.cache.Set(ctx, cache.PrefixReports, cacheKey, profile)
	return profile, nil
}

func computeGoalStats(goals []models.Goal) GoalStats {
	stats := GoalStats{Total: len(goals)}
	var progressSum float64
	for i := range goals {
		if goals[i].IsCompleted() {
			stats.Completed++
		} else {
			stats.Open++
		}
		progressSum += goals[i].ProgressPercent()
	}
	if stats.Total > 0 {
		stats.AvgProgress = progressSum / float64(stats.Total)
	}
	return stats
}
