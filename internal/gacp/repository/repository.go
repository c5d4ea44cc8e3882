package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jonmaxmore/Botanical-Audit-Framework-sub004/internal/gacp/model"
)

var (
	// ErrDuplicate means a unique index rejected the write.
	ErrDuplicate = errors.New("duplicate record")
	// ErrNotFound means no matching document exists.
	ErrNotFound = errors.New("record not found")
	// ErrStatusConflict means a conditional update matched nothing: the
	// document moved out of the expected status between read and write.
	ErrStatusConflict = errors.New("status conflict")
)

// TransitionUpdate carries the per-operation field changes applied together
// with a status transition. Nil pointers leave the field untouched.
type TransitionUpdate struct {
	ReviewerID    *string
	ReviewComment *string
	SubmittedAt   *time.Time
	ReviewedAt    *time.Time
	CurrentStep   *int
	IncRevision   bool
}

type SurveyRepository interface {
	// Create a new draft survey
	CreateSurvey(ctx context.Context, survey *model.Survey) error
	// Fetch a survey by id (soft-deleted excluded)
	GetSurvey(ctx context.Context, id string) (*model.Survey, error)
	// List surveys with filter and pagination
	FindSurveys(ctx context.Context, filter model.SurveyFilter) ([]*model.Survey, int64, error)
	// Persist one wizard step; the update is conditional on the survey still
	// being editable (status in allowedStatuses)
	SaveSurveyStep(ctx context.Context, id, stepKey string, data model.StepData, currentStep int, allowedStatuses []string) error
	// Apply a status transition conditionally on the current status
	TransitionSurveyStatus(ctx context.Context, id string, from []string, to string, update TransitionUpdate) error
	// Soft delete a draft owned by farmerID
	SoftDeleteSurvey(ctx context.Context, id, farmerID, deletedBy string) error
	// Initialize indexes
	EnsureIndexes(ctx context.Context) error
}

type CertificateRepository interface {
	CreateCertificate(ctx context.Context, cert *model.Certificate) error
	GetCertificate(ctx context.Context, id string) (*model.Certificate, error)
	GetCertificateByNumber(ctx context.Context, number string) (*model.Certificate, error)
	FindCertificates(ctx context.Context, filter model.CertificateFilter) ([]*model.Certificate, int64, error)
	// Revoke conditionally on the certificate still being ACTIVE
	RevokeCertificate(ctx context.Context, id, revokedBy, reason string) error
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, id string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
}

type AuditRepository interface {
	// Append-only
	CreateAudit(ctx context.Context, record *model.AuditRecord) error
	FindAudit(ctx context.Context, surveyID string, page, size int) ([]*model.AuditRecord, int64, error)
}

// Repository is the full persistence surface the service layer depends on.
type Repository interface {
	SurveyRepository
	CertificateRepository
	UserRepository
	AuditRepository
}
