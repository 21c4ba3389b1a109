package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

//go:generate mockgen -destination=../mocks/repository_mocks.go -package=mocks peakform-backend/internal/repository DepartmentRepositoryInterface,UserRepositoryInterface,TeamRepositoryInterface,CompanyObjectiveRepositoryInterface,TeamObjectiveRepositoryInterface,GoalRepositoryInterface,CheckInRepositoryInterface,CompetencyRepositoryInterface,DevelopmentPlanRepositoryInterface,LearningResourceRepositoryInterface,MeetingRepositoryInterface,RecognitionRepositoryInterface,WebhookConfigRepositoryInterface

// Postgres error codes we branch on.
const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

// IsForeignKeyViolation reports whether err is a Postgres FK restrict
// failure, i.e. a delete blocked because the row is still referenced.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation
}

// IsUniqueViolation reports whether err is a Postgres unique constraint
// failure.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
