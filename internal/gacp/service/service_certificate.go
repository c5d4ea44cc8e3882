package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonmaxmore/Botanical-Audit-Framework-sub004/internal/gacp/event"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub004/internal/gacp/model"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub004/internal/gacp/repository"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub004/internal/gacp/util"
)

// newCertificateNumber builds a human-readable certificate number like
// GACP-2026-4F9A01BC. The uniqueness guarantee lives in the index, not here.
func newCertificateNumber(issuedAt time.Time) string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return fmt.Sprintf("GACP-%d-%s", issuedAt.Year(), id[:8])
}

// issueCertificate creates the ACTIVE certificate for an approved survey.
// The partial unique index on survey_id makes re-issuance impossible.
func (s *Service) issueCertificate(ctx context.Context, survey *model.Survey, callerID, callerRole string, issuedAt time.Time) (*model.Certificate, error) {
	cert := &model.Certificate{
		ID:        uuid.NewString(),
		Number:    newCertificateNumber(issuedAt),
		SurveyID:  survey.ID,
		FarmerID:  survey.FarmerID,
		FarmName:  survey.FarmName,
		Status:    model.CertStatusActive,
		IssuedAt:  issuedAt,
		ExpiresAt: issuedAt.AddDate(model.CertificateValidityYears, 0, 0),
	}

	if err := s.Repo.CreateCertificate(ctx, cert); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrConflict
		}
		return nil, err
	}

	s.audit(ctx, &model.AuditRecord{
		SurveyID:  survey.ID,
		Action:    model.ActionIssueCertificate,
		ActorID:   callerID,
		ActorRole: callerRole,
		Comment:   cert.Number,
	})

	s.Bus.Publish(event.Event{
		Type:      event.TypeCertificateIssued,
		SurveyID:  survey.ID,
		ActorID:   callerID,
		ActorRole: callerRole,
		Status:    model.CertStatusActive,
		Comment:   cert.Number,
	})

	util.GetLogger().Info("certificate issued",
		"certificate_id", cert.ID,
		"number", cert.Number,
		"survey_id", survey.ID,
	)

	return cert, nil
}

func (s *Service) GetCertificate(ctx context.Context, callerID, callerRole, certID string) (*model.Certificate, error) {
	if callerID == "" {
		return nil, ErrUnauthorized
	}

	cert, err := s.Repo.GetCertificate(ctx, certID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if callerRole == model.RoleFarmer && cert.FarmerID != callerID {
		return nil, ErrForbidden
	}

	return cert, nil
}

func (s *Service) ListCertificates(ctx context.Context, callerID, callerRole string, req model.ListCertificatesReq) (*model.PagedCertificates, error) {
	if callerID == "" {
		return nil, ErrUnauthorized
	}

	filter := model.CertificateFilter{
		Status: req.Status,
		Page:   req.Page,
		Size:   req.Size,
	}
	if callerRole == model.RoleFarmer {
		filter.FarmerID = callerID
	}

	certs, total, err := s.Repo.FindCertificates(ctx, filter)
	if err != nil {
		return nil, err
	}
	if certs == nil {
		certs = []*model.Certificate{}
	}

	return &model.PagedCertificates{
		Data:       certs,
		Page:       req.Page,
		Size:       req.Size,
		TotalCount: total,
	}, nil
}

// VerifyCertificate is the public lookup by certificate number. An ACTIVE
// certificate past its expiry date reports EXPIRED without being rewritten.
func (s *Service) VerifyCertificate(ctx context.Context, number string) (*model.CertificateVerification, error) {
	number = strings.ToUpper(strings.TrimSpace(number))
	if number == "" {
		return nil, ErrBadRequest
	}

	cert, err := s.Repo.GetCertificateByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &model.CertificateVerification{Valid: false}, nil
		}
		return nil, err
	}

	status := cert.Status
	if status == model.CertStatusActive && time.Now().After(cert.ExpiresAt) {
		status = model.CertStatusExpired
	}

	return &model.CertificateVerification{
		Valid:       status == model.CertStatusActive,
		Status:      status,
		Certificate: cert,
	}, nil
}

func (s *Service) RevokeCertificate(ctx context.Context, callerID, certID string, req model.RevokeCertificateReq) (*model.Certificate, error) {
	if callerID == "" {
		return nil, ErrUnauthorized
	}

	cert, err := s.Repo.GetCertificate(ctx, certID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := s.Repo.RevokeCertificate(ctx, certID, callerID, req.Reason); err != nil {
		if errors.Is(err, repository.ErrStatusConflict) {
			// Already revoked or expired out from underneath us
			return nil, ErrInvalidTransition
		}
		return nil, err
	}

	s.audit(ctx, &model.AuditRecord{
		SurveyID:  cert.SurveyID,
		Action:    model.ActionRevokeCertificate,
		ActorID:   callerID,
		ActorRole: model.RoleDTAMAdmin,
		Comment:   req.Reason,
	})

	s.Bus.Publish(event.Event{
		Type:     event.TypeCertificateRevoked,
		SurveyID: cert.SurveyID,
		ActorID:  callerID,
		Status:   model.CertStatusRevoked,
		Comment:  req.Reason,
	})

	now := time.Now()
	cert.Status = model.CertStatusRevoked
	cert.RevokedAt = &now
	cert.RevokedBy = callerID
	cert.RevokeReason = req.Reason

	return cert, nil
}
