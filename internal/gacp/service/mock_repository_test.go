package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jonmaxmore/Botanical-Audit-Framework-sub004/internal/gacp/model"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub004/internal/gacp/repository"
)

// MockRepository is a shared mock implementation of repository.Repository.
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateSurvey(ctx context.Context, survey *model.Survey) error {
	args := m.Called(ctx, survey)
	return args.Error(0)
}

func (m *MockRepository) GetSurvey(ctx context.Context, id string) (*model.Survey, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Survey), args.Error(1)
}

func (m *MockRepository) FindSurveys(ctx context.Context, filter model.SurveyFilter) ([]*model.Survey, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*model.Survey), args.Get(1).(int64), args.Error(2)
}

func (m *MockRepository) SaveSurveyStep(ctx context.Context, id, stepKey string, data model.StepData, currentStep int, allowedStatuses []string) error {
	args := m.Called(ctx, id, stepKey, data, currentStep, allowedStatuses)
	return args.Error(0)
}

func (m *MockRepository) TransitionSurveyStatus(ctx context.Context, id string, from []string, to string, update repository.TransitionUpdate) error {
	args := m.Called(ctx, id, from, to, update)
	return args.Error(0)
}

func (m *MockRepository) SoftDeleteSurvey(ctx context.Context, id, farmerID, deletedBy string) error {
	args := m.Called(ctx, id, farmerID, deletedBy)
	return args.Error(0)
}

func (m *MockRepository) EnsureIndexes(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRepository) CreateCertificate(ctx context.Context, cert *model.Certificate) error {
	args := m.Called(ctx, cert)
	return args.Error(0)
}

func (m *MockRepository) GetCertificate(ctx context.Context, id string) (*model.Certificate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Certificate), args.Error(1)
}

func (m *MockRepository) GetCertificateByNumber(ctx context.Context, number string) (*model.Certificate, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Certificate), args.Error(1)
}

func (m *MockRepository) FindCertificates(ctx context.Context, filter model.CertificateFilter) ([]*model.Certificate, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*model.Certificate), args.Get(1).(int64), args.Error(2)
}

func (m *MockRepository) RevokeCertificate(ctx context.Context, id, revokedBy, reason string) error {
	args := m.Called(ctx, id, revokedBy, reason)
	return args.Error(0)
}

func (m *MockRepository) CreateUser(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockRepository) GetUser(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockRepository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockRepository) CreateAudit(ctx context.Context, record *model.AuditRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockRepository) FindAudit(ctx context.Context, surveyID string, page, size int) ([]*model.AuditRecord, int64, error) {
	args := m.Called(ctx, surveyID, page, size)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*model.AuditRecord), args.Get(1).(int64), args.Error(2)
}
