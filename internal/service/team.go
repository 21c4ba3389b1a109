package service

import (
	"context"
	"errors"
	"fmt"

	"peakform-backend/internal/cache"
	"peakform-backend/internal/database/models"
	apperrors "peakform-backend/internal/errors"
	"peakform-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// maxTeamChainDepth bounds the parent-chain walk during cycle checks.
const maxTeamChainDepth = 100

// TeamService handles business logic for teams and the org hierarchy
type TeamService struct {
	repo           repository.TeamRepositoryInterface
	userRepo       repository.UserRepositoryInterface
	departmentRepo repository.DepartmentRepositoryInterface
	cache          *cache.QueryCache
	validator      *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(repo repository.TeamRepositoryInterface, userRepo repository.UserRepositoryInterface, departmentRepo repository.DepartmentRepositoryInterface, qc *cache.QueryCache, validator *validator.Validate) *TeamService {
	return &TeamService{
		repo:           repo,
		userRepo:       userRepo,
		departmentRepo: departmentRepo,
		cache:          qc,
		validator:      validator,
	}
}

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	Name         string     `json:"name" validate:"required,min=1,max=100"`
	Description  string     `json:"description" validate:"max=500"`
	ParentTeamID *uuid.UUID `json:"parent_team_id,omitempty"`
	TeamLeadID   uuid.UUID  `json:"team_lead_id" validate:"required"`
	DepartmentID *uuid.UUID `json:"department_id,omitempty"`
}

// UpdateTeamRequest represents the request to update a team
type UpdateTeamRequest struct {
	Name         string     `json:"name" validate:"required,min=1,max=100"`
	Description  string     `json:"description" validate:"max=500"`
	ParentTeamID *uuid.UUID `json:"parent_team_id,omitempty"`
	TeamLeadID   uuid.UUID  `json:"team_lead_id" validate:"required"`
	DepartmentID *uuid.UUID `json:"department_id,omitempty"`
	IsActive     *bool      `json:"is_active,omitempty"`
}

// TeamNode is one node of the rendered hierarchy
type TeamNode struct {
	Team     models.Team `json:"team"`
	Children []*TeamNode `json:"children"`
}

// HierarchyResponse is the full org forest
type HierarchyResponse struct {
	Roots     []*TeamNode `json:"roots"`
	NodeCount int         `json:"node_count"`
}

// Create creates a new team
func (s *TeamService) Create(ctx context.Context, req *CreateTeamRequest) (*models.Team, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.userRepo.GetByID(req.TeamLeadID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamLeadNotFound
		}
		return nil, fmt.Errorf("failed to verify team lead: %w", err)
	}
	if req.ParentTeamID != nil {
		if _, err := s.repo.GetByID(*req.ParentTeamID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrTeamNotFound
			}
			return nil, fmt.Errorf("failed to verify parent team: %w", err)
		}
	}
	if req.DepartmentID != nil {
		if _, err := s.departmentRepo.GetByID(*req.DepartmentID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrDepartmentNotFound
			}
			return nil, fmt.Errorf("failed to verify department: %w", err)
		}
	}

	team := &models.Team{
		Name:         req.Name,
		Description:  req.Description,
		ParentTeamID: req.ParentTeamID,
		TeamLeadID:   req.TeamLeadID,
		DepartmentID: req.DepartmentID,
		IsActive:     true,
	}

	if err := s.repo.Create(team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	s.cache.Invalidate(ctx, cache.PrefixTeams)
	return team, nil
}

// GetByID retrieves a team by ID
func (s *TeamService) GetByID(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	team, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return team, nil
}

// List retrieves all teams
func (s *TeamService) List(ctx context.Context, activeOnly bool) ([]models.Team, error) {
	cacheKey := "all"
	if activeOnly {
		cacheKey = "active"
	}
	var cached []models.Team
	if s.cache.Get(ctx, cache.PrefixTeams, cacheKey, &cached) {
		return cached, nil
	}

	teams, err := s.repo.GetAll(activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	s.cache.Set(ctx, cache.PrefixTeams, cacheKey, teams)
	return teams, nil
}

// GetMembers retrieves the members of a team
func (s *TeamService) GetMembers(ctx context.Context, id uuid.UUID) ([]models.User, error) {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	members, err := s.userRepo.GetByTeamID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get team members: %w", err)
	}
	return members, nil
}

// GetHierarchy builds the org forest from all teams
func (s *TeamService) GetHierarchy(ctx context.Context) (*HierarchyResponse, error) {
	var cached HierarchyResponse
	if s.cache.Get(ctx, cache.PrefixTeams, "hierarchy", &cached) {
		return &cached, nil
	}

	teams, err := s.repo.GetAll(false)
	if err != nil {
		return nil, fmt.Errorf("failed to load teams: %w", err)
	}

	resp := BuildHierarchy(teams)
	s.cache.Set(ctx, cache.PrefixTeams, "hierarchy", resp)
	return resp, nil
}

// Update updates a team. Parent reassignment is rejected if it would close
// a cycle in the tree.
func (s *TeamService) Update(ctx context.Context, id uuid.UUID, req *UpdateTeamRequest) (*models.Team, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	team, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	if _, err := s.userRepo.GetByID(req.TeamLeadID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamLeadNotFound
		}
		return nil, fmt.Errorf("failed to verify team lead: %w", err)
	}
	if req.ParentTeamID != nil {
		if err := s.checkTeamCycle(id, *req.ParentTeamID); err != nil {
			return nil, err
		}
	}
	if req.DepartmentID != nil {
		if _, err := s.departmentRepo.GetByID(*req.DepartmentID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrDepartmentNotFound
			}
			return nil, fmt.Errorf("failed to verify department: %w", err)
		}
	}

	team.Name = req.Name
	team.Description = req.Description
	team.ParentTeamID = req.ParentTeamID
	team.TeamLeadID = req.TeamLeadID
	team.DepartmentID = req.DepartmentID
	if req.IsActive != nil {
		team.IsActive = *req.IsActive
	}

	if err := s.repo.Update(team); err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}

	s.cache.Invalidate(ctx, cache.PrefixTeams)
	return team, nil
}

// Delete deletes a team. A FK restrict from child teams or members is
// surfaced as an "in use" conflict.
func (s *TeamService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamNotFound
		}
		if repository.IsForeignKeyViolation(err) {
			return apperrors.ErrTeamInUse
		}
		return fmt.Errorf("failed to delete team: %w", err)
	}

	s.cache.Invalidate(ctx, cache.PrefixTeams)
	return nil
}

// checkTeamCycle walks the proposed parent chain upward; finding the team
// being edited means the assignment closes a loop.
func (s *TeamService) checkTeamCycle(teamID, parentID uuid.UUID) error {
	if parentID == teamID {
		return apperrors.ErrTeamCycle
	}

	current := parentID
	for depth := 0; depth < maxTeamChainDepth; depth++ {
		parent, err := s.repo.GetByID(current)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrTeamNotFound
			}
			return fmt.Errorf("failed to walk parent chain: %w", err)
		}
		if parent.ParentTeamID == nil {
			return nil
		}
		if *parent.ParentTeamID == teamID {
			return apperrors.ErrTeamCycle
		}
		current = *parent.ParentTeamID
	}
	return apperrors.ErrTeamCycle
}

// BuildHierarchy arranges a flat team list into a forest with a single
// grouping pass over parent ids. Insertion order among siblings is
// preserved. Teams whose parent is missing become roots, and a visited set
// keeps cyclic parent chains from looping: every team lands in the forest
// exactly once.
func BuildHierarchy(teams []models.Team) *HierarchyResponse {
	byID := make(map[uuid.UUID]*TeamNode, len(teams))
	order := make([]*TeamNode, 0, len(teams))
	for i := range teams {
		node := &TeamNode{Team: teams[i], Children: []*TeamNode{}}
		byID[teams[i].ID] = node
		order = append(order, node)
	}

	resp := &HierarchyResponse{Roots: []*TeamNode{}, NodeCount: len(teams)}
	attached := make(map[uuid.UUID]bool, len(teams))

	for _, node := range order {
		parentID := node.Team.ParentTeamID
		if parentID == nil {
			resp.Roots = append(resp.Roots, node)
			attached[node.Team.ID] = true
			continue
		}
		parent, ok := byID[*parentID]
		if !ok || *parentID == node.Team.ID {
			// Orphaned or self-referencing parent: promote to root
			resp.Roots = append(resp.Roots, node)
			attached[node.Team.ID] = true
			continue
		}
		parent.Children = append(parent.Children, node)
		attached[node.Team.ID] = true
	}

	// A cycle among non-root nodes leaves its members unreachable from any
	// root. Detect by walking the forest and promote one cycle member so
	// every team renders exactly once.
	reachable := make(map[uuid.UUID]bool, len(teams))
	var walk func(n *TeamNode)
	walk = func(n *TeamNode) {
		if reachable[n.Team.ID] {
			return
		}
		reachable[n.Team.ID] = true
		for _, c := range n.Children {
			walk(c)
		}
	}
	for _, root := range resp.Roots {
		walk(root)
	}
	for _, node := range order {
		if !reachable[node.Team.ID] {
			// Break the cycle: detach from parent and promote
			detachChild(byID, node)
			resp.Roots = append(resp.Roots, node)
			walk(node)
		}
	}

	return resp
}

func detachChild(byID map[uuid.UUID]*TeamNode, node *TeamNode) {
	if node.Team.ParentTeamID == nil {
		return
	}
	parent, ok := byID[*node.Team.ParentTeamID]
	if !ok {
		return
	}
	for i, c := range parent.Children {
		if c == node {
			parent.Children = append(parent.Children[:i], parent.Children[i+1:]...)
			return
		}
	}
}

// CollapsedSet tracks which hierarchy nodes are collapsed in a rendering
// session. Collapse-all followed by expand-all round-trips to empty.
type CollapsedSet map[uuid.UUID]bool

// CollapseAll marks every node in the forest collapsed
func (h *HierarchyResponse) CollapseAll() CollapsedSet {
	set := make(CollapsedSet, h.NodeCount)
	var walk func(n *TeamNode)
	walk = func(n *TeamNode) {
		set[n.Team.ID] = true
		for _, c := range n.Children {
			walk(c)
		}
	}
	for _, root := range h.Roots {
		walk(root)
	}
	return set
}

// ExpandAll clears every node in the forest from the collapsed set
func (h *HierarchyResponse) ExpandAll(set CollapsedSet) {
	var walk func(n *TeamNode)
	walk = func(n *TeamNode) {
		delete(set, n.Team.ID)
		for _, c := range n.Children {
			walk(c)
		}
	}
	for _, root := range h.Roots {
		walk(root)
	}
}
