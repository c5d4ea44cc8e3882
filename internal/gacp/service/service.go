package service

import (
	"context"
	"errors"
	"time"

	"github.com/jonmaxmore/Botanical-Audit-Framework-sub004/internal/gacp/event"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub004/internal/gacp/model"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub004/internal/gacp/repository"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub004/internal/gacp/util"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub004/internal/gacp/wizard"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub004/internal/gacp/workflow"
)

var (
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("forbidden")
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("conflict: record already exists")
	ErrBadRequest        = errors.New("bad request")
	ErrInvalidTransition = errors.New("operation not allowed in current status")
)

// IncompleteStepsError reports every unfinished wizard step at submit time.
type IncompleteStepsError struct {
	Steps []wizard.Step
}

func (e *IncompleteStepsError) Error() string {
	return "survey has incomplete steps"
}

// GACPService is the survey certification use-case surface.
type GACPService interface {
	// Accounts
	Register(ctx context.Context, req model.RegisterReq) (*model.LoginResp, error)
	Login(ctx context.Context, req model.LoginReq) (*model.LoginResp, error)
	CreateStaff(ctx context.Context, callerID string, req model.CreateStaffReq) (*model.User, error)

	// Farmer survey lifecycle
	CreateDraft(ctx context.Context, callerID string, req model.CreateSurveyReq) (*model.Survey, error)
	SaveStep(ctx context.Context, callerID, surveyID string, stepID int, req model.SaveStepReq) (*model.Survey, error)
	SubmitSurvey(ctx context.Context, callerID, callerRole, surveyID string) (*model.Survey, error)
	DeleteDraft(ctx context.Context, callerID, surveyID string) error
	GetSurvey(ctx context.Context, callerID, callerRole, surveyID string) (*model.Survey, error)
	ListSurveys(ctx context.Context, callerID, callerRole string, req model.ListSurveysReq) (*model.PagedSurveys, error)
	GetAuditTrail(ctx context.Context, callerID, callerRole, surveyID string, req model.GetAuditTrailReq) (*model.PagedAudit, error)

	// Review lifecycle
	ClaimReview(ctx context.Context, callerID, callerRole, surveyID string) (*model.Survey, error)
	ApproveSurvey(ctx context.Context, callerID, callerRole, surveyID string, req model.ApproveSurveyReq) (*model.Certificate, error)
	RejectSurvey(ctx context.Context, callerID, callerRole, surveyID string, req model.RejectSurveyReq) error
	RequestRevision(ctx context.Context, callerID, callerRole, surveyID string, req model.RequestRevisionReq) error

	// Certificates
	GetCertificate(ctx context.Context, callerID, callerRole, certID string) (*model.Certificate, error)
	ListCertificates(ctx context.Context, callerID, callerRole string, req model.ListCertificatesReq) (*model.PagedCertificates, error)
	VerifyCertificate(ctx context.Context, number string) (*model.CertificateVerification, error)
	RevokeCertificate(ctx context.Context, callerID, certID string, req model.RevokeCertificateReq) (*model.Certificate, error)
}

// Service wires the workflow engine, wizard, event bus and repository together.
type Service struct {
	Repo     repository.Repository
	Workflow *workflow.Engine
	Wizard   *wizard.Wizard
	Bus      *event.Bus

	jwtSecret string
	tokenTTL  time.Duration
}

var _ GACPService = (*Service)(nil)

func NewService(repo repository.Repository, wf *workflow.Engine, wiz *wizard.Wizard, bus *event.Bus, jwtSecret string, tokenTTL time.Duration) *Service {
	return &Service{
		Repo:      repo,
		Workflow:  wf,
		Wizard:    wiz,
		Bus:       bus,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

// audit appends one record for a workflow action. Audit failures are logged,
// not surfaced: the state change already happened.
func (s *Service) audit(ctx context.Context, record *model.AuditRecord) {
	if err := s.Repo.CreateAudit(ctx, record); err != nil {
		util.GetLogger().Error("failed to append audit record",
			"survey_id", record.SurveyID,
			"action", record.Action,
			"error", err,
		)
	}
}

// canReadSurvey: farmers read their own surveys, staff read all.
func canReadSurvey(survey *model.Survey, callerID, callerRole string) bool {
	if callerRole == model.RoleDTAMStaff || callerRole == model.RoleDTAMAdmin {
		return true
	}
	return survey.FarmerID == callerID
}
