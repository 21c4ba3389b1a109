package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekStartOf(t *testing.T) {
	// Wednesday 2026-08-26 15:04 UTC falls in the week starting Sunday 2026-08-23.
	wednesday := time.Date(2026, 8, 26, 15, 4, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC), WeekStartOf(wednesday))

	// A Sunday maps to itself at midnight.
	sunday := time.Date(2026, 8, 23, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC), WeekStartOf(sunday))

	// Saturday is the last day of the week.
	saturday := time.Date(2026, 8, 29, 1, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC), WeekStartOf(saturday))
}

func TestWeekStartOfNormalizesTimezone(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	// 02:00 Sunday local time is still Saturday in UTC.
	local := time.Date(2026, 8, 23, 2, 0, 0, 0, loc)
	assert.Equal(t, time.Date(2026, 8, 16, 0, 0, 0, 0, time.UTC), WeekStartOf(local))
}

func TestGoalIsCompleted(t *testing.T) {
	goal := &Goal{TargetValue: 10, CurrentValue: 9.9}
	assert.False(t, goal.IsCompleted())

	goal.CurrentValue = 10
	assert.True(t, goal.IsCompleted())

	goal.CurrentValue = 12
	assert.True(t, goal.IsCompleted())
}

func TestGoalProgressPercentClamps(t *testing.T) {
	goal := &Goal{TargetValue: 10, CurrentValue: 5}
	assert.InDelta(t, 50, goal.ProgressPercent(), 0.001)

	goal.CurrentValue = 25
	assert.Equal(t, float64(100), goal.ProgressPercent())

	goal.CurrentValue = -3
	assert.Equal(t, float64(0), goal.ProgressPercent())

	zeroTarget := &Goal{TargetValue: 0, CurrentValue: 5}
	assert.Equal(t, float64(0), zeroTarget.ProgressPercent())
}

func TestGoalIsOverdue(t *testing.T) {
	now := time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC)
	goal := &Goal{TargetValue: 10, CurrentValue: 5, EndDate: now.AddDate(0, 0, -1)}
	assert.True(t, goal.IsOverdue(now))

	goal.CurrentValue = 10
	assert.False(t, goal.IsOverdue(now))

	goal.CurrentValue = 5
	goal.EndDate = now.AddDate(0, 0, 1)
	assert.False(t, goal.IsOverdue(now))
}

func TestCheckInIsStale(t *testing.T) {
	now := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	current := &CheckIn{WeekStart: WeekStartOf(now)}
	assert.False(t, current.IsStale(now))

	lastWeek := &CheckIn{WeekStart: WeekStartOf(now).AddDate(0, 0, -7)}
	assert.True(t, lastWeek.IsStale(now))
}

func TestObjectiveProgressIsMeanOfKeyResults(t *testing.T) {
	objective := &CompanyObjective{}
	assert.Equal(t, float64(0), objective.Progress())

	objective.KeyResults = []KeyResult{
		{TargetValue: 100, CurrentValue: 50},
		{TargetValue: 10, CurrentValue: 10},
		{TargetValue: 10, CurrentValue: 0},
	}
	assert.InDelta(t, 50, objective.Progress(), 0.001)
}

func TestTeamObjectiveProgressClampsOverachievement(t *testing.T) {
	objective := &TeamObjective{
		KeyResults: []TeamKeyResult{
			{TargetValue: 10, CurrentValue: 30},
			{TargetValue: 10, CurrentValue: 0},
		},
	}
	assert.InDelta(t, 50, objective.Progress(), 0.001)
}

func TestUserCompetencyGap(t *testing.T) {
	uc := &UserCompetency{CurrentLevel: 40, TargetLevel: 70}
	assert.Equal(t, 30, uc.Gap())

	uc.CurrentLevel = 80
	assert.Equal(t, 0, uc.Gap())
}

func TestUserFullName(t *testing.T) {
	user := &User{FirstName: "Ada", LastName: "Lovelace"}
	assert.Equal(t, "Ada Lovelace", user.FullName())
}

func TestWebhookConfigHeaderMap(t *testing.T) {
	cfg := &WebhookConfig{}
	headers, err := cfg.HeaderMap()
	assert.NoError(t, err)
	assert.Empty(t, headers)

	cfg.Headers = json.RawMessage(`{"Authorization":"Bearer token","X-Env":"prod"}`)
	headers, err = cfg.HeaderMap()
	assert.NoError(t, err)
	assert.Equal(t, "Bearer token", headers["Authorization"])
	assert.Equal(t, "prod", headers["X-Env"])

	cfg.Headers = json.RawMessage(`["not","an","object"]`)
	_, err = cfg.HeaderMap()
	assert.Error(t, err)
}

func TestEnumValidity(t *testing.T) {
	assert.True(t, UserRoleSupervisor.IsValid())
	assert.False(t, UserRole("admin").IsValid())

	assert.True(t, ConfidenceAtRisk.IsValid())
	assert.False(t, ConfidenceLevel("blue").IsValid())

	assert.True(t, PlanStatusOnHold.IsValid())
	assert.False(t, PlanStatus("done").IsValid())

	assert.True(t, ResourceTypeWorkshop.IsValid())
	assert.False(t, ResourceType("podcast").IsValid())

	assert.True(t, MeetingStatusCancelled.IsValid())
	assert.False(t, MeetingStatus("postponed").IsValid())

	assert.True(t, ValueInnovation.IsValid())
	assert.False(t, CompanyValue("hustle").IsValid())

	assert.True(t, EventCourseCompleted.IsValid())
	assert.False(t, WebhookEventType("course.started").IsValid())

	assert.True(t, OwnershipAssigned.IsValid())
	assert.False(t, KeyResultOwnership("solo").IsValid())
}
