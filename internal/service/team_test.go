package service_test

import (
	"testing"

	"peakform-backend/internal/database/models"
	"peakform-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeTeam(name string, parentID *uuid.UUID) models.Team {
	team := models.Team{Name: name, ParentTeamID: parentID, IsActive: true}
	team.ID = uuid.New()
	return team
}

// collectIDs walks the forest and records every rendered team id
func collectIDs(roots []*service.TeamNode) map[uuid.UUID]int {
	seen := make(map[uuid.UUID]int)
	var walk func(n *service.TeamNode)
	walk = func(n *service.TeamNode) {
		seen[n.Team.ID]++
		for _, c := range n.Children {
			walk(c)
		}
	}
	for _, root := range roots {
		walk(root)
	}
	return seen
}

func TestBuildHierarchyNesting(t *testing.T) {
	root := makeTeam("Engineering", nil)
	platform := makeTeam("Platform", &root.ID)
	infra := makeTeam("Infrastructure", &platform.ID)

	resp := service.BuildHierarchy([]models.Team{root, platform, infra})

	require.Len(t, resp.Roots, 1)
	assert.Equal(t, 3, resp.NodeCount)
	assert.Equal(t, "Engineering", resp.Roots[0].Team.Name)
	require.Len(t, resp.Roots[0].Children, 1)
	assert.Equal(t, "Platform", resp.Roots[0].Children[0].Team.Name)
	require.Len(t, resp.Roots[0].Children[0].Children, 1)
	assert.Equal(t, "Infrastructure", resp.Roots[0].Children[0].Children[0].Team.Name)
}

func TestBuildHierarchySiblingOrder(t *testing.T) {
	root := makeTeam("Engineering", nil)
	alpha := makeTeam("Alpha", &root.ID)
	beta := makeTeam("Beta", &root.ID)
	gamma := makeTeam("Gamma", &root.ID)

	resp := service.BuildHierarchy([]models.Team{root, alpha, beta, gamma})

	require.Len(t, resp.Roots, 1)
	children := resp.Roots[0].Children
	require.Len(t, children, 3)
	assert.Equal(t, "Alpha", children[0].Team.Name)
	assert.Equal(t, "Beta", children[1].Team.Name)
	assert.Equal(t, "Gamma", children[2].Team.Name)
}

func TestBuildHierarchyOrphanedParentPromoted(t *testing.T) {
	missing := uuid.New()
	orphan := makeTeam("Orphan", &missing)

	resp := service.BuildHierarchy([]models.Team{orphan})

	require.Len(t, resp.Roots, 1)
	assert.Equal(t, orphan.ID, resp.Roots[0].Team.ID)
	assert.Equal(t, 1, resp.NodeCount)
}

func TestBuildHierarchySelfParentPromoted(t *testing.T) {
	team := makeTeam("Loop", nil)
	team.ParentTeamID = &team.ID

	resp := service.BuildHierarchy([]models.Team{team})

	require.Len(t, resp.Roots, 1)
	assert.Empty(t, resp.Roots[0].Children)
}

func TestBuildHierarchyCycleRendersEveryTeamOnce(t *testing.T) {
	// A and B reference each other; C hangs off A. No root exists, so the
	// walk must break the cycle and still render all three.
	a := makeTeam("A", nil)
	b := makeTeam("B", nil)
	a.ParentTeamID = &b.ID
	b.ParentTeamID = &a.ID
	c := makeTeam("C", &a.ID)

	resp := service.BuildHierarchy([]models.Team{a, b, c})

	assert.Equal(t, 3, resp.NodeCount)
	seen := collectIDs(resp.Roots)
	require.Len(t, seen, 3)
	for id, count := range seen {
		assert.Equalf(t, 1, count, "team %s rendered %d times", id, count)
	}
}

func TestBuildHierarchyMixedForestVisitsEveryTeamOnce(t *testing.T) {
	root := makeTeam("Engineering", nil)
	child := makeTeam("Platform", &root.ID)
	a := makeTeam("A", nil)
	b := makeTeam("B", nil)
	a.ParentTeamID = &b.ID
	b.ParentTeamID = &a.ID

	resp := service.BuildHierarchy([]models.Team{root, child, a, b})

	assert.Equal(t, 4, resp.NodeCount)
	seen := collectIDs(resp.Roots)
	require.Len(t, seen, 4)
	for _, count := range seen {
		assert.Equal(t, 1, count)
	}
}

func TestCollapseAllExpandAllRoundTrip(t *testing.T) {
	root := makeTeam("Engineering", nil)
	platform := makeTeam("Platform", &root.ID)
	ops := makeTeam("Operations", nil)

	resp := service.BuildHierarchy([]models.Team{root, platform, ops})

	set := resp.CollapseAll()
	require.Len(t, set, 3)
	assert.True(t, set[root.ID])
	assert.True(t, set[platform.ID])
	assert.True(t, set[ops.ID])

	resp.ExpandAll(set)
	assert.Empty(t, set)

	// Expanding an already-empty set stays empty
	resp.ExpandAll(set)
	assert.Empty(t, set)
}
