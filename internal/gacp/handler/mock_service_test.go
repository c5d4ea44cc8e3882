package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jonmaxmore/Botanical-Audit-Framework-sub004/internal/gacp/model"
)

// MockGACPService is a shared mock implementation of service.GACPService.
type MockGACPService struct {
	mock.Mock
}

func (m *MockGACPService) Register(ctx context.Context, req model.RegisterReq) (*model.LoginResp, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LoginResp), args.Error(1)
}

func (m *MockGACPService) Login(ctx context.Context, req model.LoginReq) (*model.LoginResp, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LoginResp), args.Error(1)
}

func (m *MockGACPService) CreateStaff(ctx context.Context, callerID string, req model.CreateStaffReq) (*model.User, error) {
	args := m.Called(ctx, callerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockGACPService) CreateDraft(ctx context.Context, callerID string, req model.CreateSurveyReq) (*model.Survey, error) {
	args := m.Called(ctx, callerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Survey), args.Error(1)
}

func (m *MockGACPService) SaveStep(ctx context.Context, callerID, surveyID string, stepID int, req model.SaveStepReq) (*model.Survey, error) {
	args := m.Called(ctx, callerID, surveyID, stepID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Survey), args.Error(1)
}

func (m *MockGACPService) SubmitSurvey(ctx context.Context, callerID, callerRole, surveyID string) (*model.Survey, error) {
	args := m.Called(ctx, callerID, callerRole, surveyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Survey), args.Error(1)
}

func (m *MockGACPService) DeleteDraft(ctx context.Context, callerID, surveyID string) error {
	args := m.Called(ctx, callerID, surveyID)
	return args.Error(0)
}

func (m *MockGACPService) GetSurvey(ctx context.Context, callerID, callerRole, surveyID string) (*model.Survey, error) {
	args := m.Called(ctx, callerID, callerRole, surveyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Survey), args.Error(1)
}

func (m *MockGACPService) ListSurveys(ctx context.Context, callerID, callerRole string, req model.ListSurveysReq) (*model.PagedSurveys, error) {
	args := m.Called(ctx, callerID, callerRole, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PagedSurveys), args.Error(1)
}

func (m *MockGACPService) GetAuditTrail(ctx context.Context, callerID, callerRole, surveyID string, req model.GetAuditTrailReq) (*model.PagedAudit, error) {
	args := m.Called(ctx, callerID, callerRole, surveyID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PagedAudit), args.Error(1)
}

func (m *MockGACPService) ClaimReview(ctx context.Context, callerID, callerRole, surveyID string) (*model.Survey, error) {
	args := m.Called(ctx, callerID, callerRole, surveyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Survey), args.Error(1)
}

func (m *MockGACPService) ApproveSurvey(ctx context.Context, callerID, callerRole, surveyID string, req model.ApproveSurveyReq) (*model.Certificate, error) {
	args := m.Called(ctx, callerID, callerRole, surveyID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Certificate), args.Error(1)
}

func (m *MockGACPService) RejectSurvey(ctx context.Context, callerID, callerRole, surveyID string, req model.RejectSurveyReq) error {
	args := m.Called(ctx, callerID, callerRole, surveyID, req)
	return args.Error(0)
}

func (m *MockGACPService) RequestRevision(ctx context.Context, callerID, callerRole, surveyID string, req model.RequestRevisionReq) error {
	args := m.Called(ctx, callerID, callerRole, surveyID, req)
	return args.Error(0)
}

func (m *MockGACPService) GetCertificate(ctx context.Context, callerID, callerRole, certID string) (*model.Certificate, error) {
	args := m.Called(ctx, callerID, callerRole, certID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Certificate), args.Error(1)
}

func (m *MockGACPService) ListCertificates(ctx context.Context, callerID, callerRole string, req model.ListCertificatesReq) (*model.PagedCertificates, error) {
	args := m.Called(ctx, callerID, callerRole, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PagedCertificates), args.Error(1)
}

func (m *MockGACPService) VerifyCertificate(ctx context.Context, number string) (*model.CertificateVerification, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CertificateVerification), args.Error(1)
}

func (m *MockGACPService) RevokeCertificate(ctx context.Context, callerID, certID string, req model.RevokeCertificateReq) (*model.Certificate, error) {
	args := m.Called(ctx, callerID, certID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Certificate), args.Error(1)
}
