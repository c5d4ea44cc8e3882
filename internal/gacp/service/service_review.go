package service

import (
	"context"
	"errors"
	"time"

	"github.com/jonmaxmore/Botanical-Audit-Framework-sub004/internal/gacp/event"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub004/internal/gacp/model"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub004/internal/gacp/repository"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub004/internal/gacp/util"
)

// ClaimReview moves a SUBMITTED survey to UNDER_REVIEW and records the caller
// as reviewer. The conditional update is the whole race protection: two staff
// claiming the same survey resolve to one winner and one ErrInvalidTransition.
func (s *Service) ClaimReview(ctx context.Context, callerID, callerRole, surveyID string) (*model.Survey, error) {
	if callerID == "" {
		return nil, ErrUnauthorized
	}

	survey, err := s.Repo.GetSurvey(ctx, surveyID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if _, err := s.Workflow.CheckTransition(model.OpClaimReview, survey.Status); err != nil {
		return nil, ErrInvalidTransition
	}

	from, _ := s.Workflow.FromStatuses(model.OpClaimReview)
	update := repository.TransitionUpdate{ReviewerID: &callerID}
	if err := s.Repo.TransitionSurveyStatus(ctx, surveyID, from, model.StatusUnderReview, update); err != nil {
		if errors.Is(err, repository.ErrStatusConflict) {
			return nil, ErrInvalidTransition
		}
		return nil, err
	}

	s.audit(ctx, &model.AuditRecord{
		SurveyID:   surveyID,
		Action:     model.OpClaimReview,
		FromStatus: survey.Status,
		ToStatus:   model.StatusUnderReview,
		ActorID:    callerID,
		ActorRole:  callerRole,
	})

	s.Bus.Publish(event.Event{
		Type:      event.TypeSurveyReviewClaimed,
		SurveyID:  surveyID,
		ActorID:   callerID,
		ActorRole: callerRole,
		Status:    model.StatusUnderReview,
	})

	survey.Status = model.StatusUnderReview
	survey.ReviewerID = callerID
	return survey, nil
}

// reviewable loads the survey and checks the caller may close out its review.
// A survey claimed by one reviewer is not decidable by another.
func (s *Service) reviewable(ctx context.Context, callerID, operation, surveyID string) (*model.Survey, error) {
	if callerID == "" {
		return nil, ErrUnauthorized
	}

	survey, err := s.Repo.GetSurvey(ctx, surveyID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if _, err := s.Workflow.CheckTransition(operation, survey.Status); err != nil {
		return nil, ErrInvalidTransition
	}

	if survey.ReviewerID != "" && survey.ReviewerID != callerID {
		return nil, ErrForbidden
	}

	return survey, nil
}

// ApproveSurvey finishes a review positively and issues the GACP certificate.
func (s *Service) ApproveSurvey(ctx context.Context, callerID, callerRole, surveyID string, req model.ApproveSurveyReq) (*model.Certificate, error) {
	survey, err := s.reviewable(ctx, callerID, model.OpApprove, surveyID)
	if err != nil {
		return nil, err
	}

	from, _ := s.Workflow.FromStatuses(model.OpApprove)
	now := time.Now()
	update := repository.TransitionUpdate{
		ReviewComment: &req.Comment,
		ReviewedAt:    &now,
	}
	if err := s.Repo.TransitionSurveyStatus(ctx, surveyID, from, model.StatusApproved, update); err != nil {
		if errors.Is(err, repository.ErrStatusConflict) {
			return nil, ErrInvalidTransition
		}
		return nil, err
	}

	s.audit(ctx, &model.AuditRecord{
		SurveyID:   surveyID,
		Action:     model.OpApprove,
		FromStatus: survey.Status,
		ToStatus:   model.StatusApproved,
		ActorID:    callerID,
		ActorRole:  callerRole,
		Comment:    req.Comment,
	})

	s.Bus.Publish(event.Event{
		Type:      event.TypeSurveyApproved,
		SurveyID:  surveyID,
		ActorID:   callerID,
		ActorRole: callerRole,
		Status:    model.StatusApproved,
		Comment:   req.Comment,
	})

	cert, err := s.issueCertificate(ctx, survey, callerID, callerRole, now)
	if err != nil {
		return nil, err
	}

	return cert, nil
}

// RejectSurvey finishes a review negatively. The mandatory comment is already
// enforced at the request boundary.
func (s *Service) RejectSurvey(ctx context.Context, callerID, callerRole, surveyID string, req model.RejectSurveyReq) error {
	survey, err := s.reviewable(ctx, callerID, model.OpReject, surveyID)
	if err != nil {
		return err
	}

	from, _ := s.Workflow.FromStatuses(model.OpReject)
	now := time.Now()
	update := repository.TransitionUpdate{
		ReviewComment: &req.Comment,
		ReviewedAt:    &now,
	}
	if err := s.Repo.TransitionSurveyStatus(ctx, surveyID, from, model.StatusRejected, update); err != nil {
		if errors.Is(err, repository.ErrStatusConflict) {
			return ErrInvalidTransition
		}
		return err
	}

	s.audit(ctx, &model.AuditRecord{
		SurveyID:   surveyID,
		Action:     model.OpReject,
		FromStatus: survey.Status,
		ToStatus:   model.StatusRejected,
		ActorID:    callerID,
		ActorRole:  callerRole,
		Comment:    req.Comment,
	})

	s.Bus.Publish(event.Event{
		Type:      event.TypeSurveyRejected,
		SurveyID:  surveyID,
		ActorID:   callerID,
		ActorRole: callerRole,
		Status:    model.StatusRejected,
		Comment:   req.Comment,
	})

	return nil
}

// RequestRevision sends the survey back to the farmer: current_step rewinds
// to the step named in the request (default: the first step) and the revision
// counter goes up.
func (s *Service) RequestRevision(ctx context.Context, callerID, callerRole, surveyID string, req model.RequestRevisionReq) error {
	survey, err := s.reviewable(ctx, callerID, model.OpRequestRevision, surveyID)
	if err != nil {
		return err
	}

	step := req.Step
	if step <= 0 {
		step = 1
	}
	if step > s.Wizard.StepCount() {
		return ErrBadRequest
	}

	from, _ := s.Workflow.FromStatuses(model.OpRequestRevision)
	now := time.Now()
	update := repository.TransitionUpdate{
		ReviewComment: &req.Comment,
		ReviewedAt:    &now,
		CurrentStep:   &step,
		IncRevision:   true,
	}
	if err := s.Repo.TransitionSurveyStatus(ctx, surveyID, from, model.StatusRevisionRequested, update); err != nil {
		if errors.Is(err, repository.ErrStatusConflict) {
			return ErrInvalidTransition
		}
		return err
	}

	s.audit(ctx, &model.AuditRecord{
		SurveyID:   surveyID,
		Action:     model.OpRequestRevision,
		FromStatus: survey.Status,
		ToStatus:   model.StatusRevisionRequested,
		ActorID:    callerID,
		ActorRole:  callerRole,
		Comment:    req.Comment,
	})

	s.Bus.Publish(event.Event{
		Type:      event.TypeSurveyRevisionRequested,
		SurveyID:  surveyID,
		ActorID:   callerID,
		ActorRole: callerRole,
		Status:    model.StatusRevisionRequested,
		Comment:   req.Comment,
	})

	util.GetLogger().Info("revision requested",
		"survey_id", surveyID,
		"reviewer_id", callerID,
		"rewind_to_step", step,
	)

	return nil
}
