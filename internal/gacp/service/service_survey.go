package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/jonmaxmore/Botanical-Audit-Framework-sub004/internal/gacp/event"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub004/internal/gacp/model"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub004/internal/gacp/repository"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub004/internal/gacp/util"
)

// editableStatuses are the statuses in which a farmer may touch wizard steps.
var editableStatuses = []string{model.StatusDraft, model.StatusRevisionRequested}

func (s *Service) CreateDraft(ctx context.Context, callerID string, req model.CreateSurveyReq) (*model.Survey, error) {
	if callerID == "" {
		return nil, ErrUnauthorized
	}

	survey := &model.Survey{
		ID:          uuid.NewString(),
		FarmerID:    callerID,
		FarmName:    req.FarmName,
		Province:    req.Province,
		CropType:    req.CropType,
		Status:      model.StatusDraft,
		Steps:       make(map[string]model.StepData),
		CurrentStep: 1,
	}

	if err := s.Repo.CreateSurvey(ctx, survey); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrConflict
		}
		return nil, err
	}

	s.audit(ctx, &model.AuditRecord{
		SurveyID:  survey.ID,
		Action:    model.ActionCreateDraft,
		ToStatus:  model.StatusDraft,
		ActorID:   callerID,
		ActorRole: model.RoleFarmer,
	})

	util.GetLogger().Info("survey draft created", "survey_id", survey.ID, "farmer_id", callerID)

	return survey, nil
}

// SaveStep validates wizard ordering against the stored draft and persists
// the step. The write is conditional on the survey still being editable, so
// a submit racing a save cannot smuggle answers into a SUBMITTED survey.
func (s *Service) SaveStep(ctx context.Context, callerID, surveyID string, stepID int, req model.SaveStepReq) (*model.Survey, error) {
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
	if survey.FarmerID != callerID {
		return nil, ErrForbidden
	}

	editable := false
	for _, st := range editableStatuses {
		if survey.Status == st {
			editable = true
			break
		}
	}
	if !editable {
		return nil, ErrInvalidTransition
	}

	if err := s.Wizard.ValidateSave(survey, stepID); err != nil {
		return nil, &model.ErrorDetail{Code: "bad_request", Message: err.Error()}
	}

	data, err := s.Wizard.Apply(survey, stepID, req.Answers, time.Now())
	if err != nil {
		return nil, &model.ErrorDetail{Code: "bad_request", Message: err.Error()}
	}

	step, _ := s.Wizard.StepByID(stepID)
	if err := s.Repo.SaveSurveyStep(ctx, surveyID, step.Key, data, survey.CurrentStep, editableStatuses); err != nil {
		if errors.Is(err, repository.ErrStatusConflict) {
			return nil, ErrInvalidTransition
		}
		return nil, err
	}

	s.audit(ctx, &model.AuditRecord{
		SurveyID:  surveyID,
		Action:    model.ActionSaveStep,
		ActorID:   callerID,
		ActorRole: model.RoleFarmer,
		Comment:   step.Key,
	})

	return survey, nil
}

// SubmitSurvey moves an editable survey to SUBMITTED once every wizard step
// is complete. All incomplete steps are reported at once.
func (s *Service) SubmitSurvey(ctx context.Context, callerID, callerRole, surveyID string) (*model.Survey, error) {
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
	if survey.FarmerID != callerID {
		return nil, ErrForbidden
	}

	if _, err := s.Workflow.CheckTransition(model.OpSubmit, survey.Status); err != nil {
		return nil, ErrInvalidTransition
	}

	if missing := s.Wizard.Incomplete(survey); len(missing) > 0 {
		return nil, &IncompleteStepsError{Steps: missing}
	}

	from, _ := s.Workflow.FromStatuses(model.OpSubmit)
	now := time.Now()
	update := repository.TransitionUpdate{SubmittedAt: &now}
	if err := s.Repo.TransitionSurveyStatus(ctx, surveyID, from, model.StatusSubmitted, update); err != nil {
		if errors.Is(err, repository.ErrStatusConflict) {
			return nil, ErrInvalidTransition
		}
		return nil, err
	}

	s.audit(ctx, &model.AuditRecord{
		SurveyID:   surveyID,
		Action:     model.OpSubmit,
		FromStatus: survey.Status,
		ToStatus:   model.StatusSubmitted,
		ActorID:    callerID,
		ActorRole:  callerRole,
	})

	s.Bus.Publish(event.Event{
		Type:      event.TypeSurveySubmitted,
		SurveyID:  surveyID,
		ActorID:   callerID,
		ActorRole: callerRole,
		Status:    model.StatusSubmitted,
	})

	survey.Status = model.StatusSubmitted
	survey.SubmittedAt = &now
	return survey, nil
}

func (s *Service) DeleteDraft(ctx context.Context, callerID, surveyID string) error {
	if callerID == "" {
		return ErrUnauthorized
	}

	survey, err := s.Repo.GetSurvey(ctx, surveyID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if survey.FarmerID != callerID {
		return ErrForbidden
	}

	if err := s.Repo.SoftDeleteSurvey(ctx, surveyID, callerID, callerID); err != nil {
		if errors.Is(err, repository.ErrStatusConflict) {
			// Only drafts may be deleted
			return ErrInvalidTransition
		}
		return err
	}

	s.audit(ctx, &model.AuditRecord{
		SurveyID:   surveyID,
		Action:     model.ActionDeleteDraft,
		FromStatus: survey.Status,
		ActorID:    callerID,
		ActorRole:  model.RoleFarmer,
	})

	return nil
}

func (s *Service) GetSurvey(ctx context.Context, callerID, callerRole, surveyID string) (*model.Survey, error) {
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
	if !canReadSurvey(survey, callerID, callerRole) {
		return nil, ErrForbidden
	}
	return survey, nil
}

// ListSurveys scopes the listing by role: farmers see their own surveys,
// staff see everything.
func (s *Service) ListSurveys(ctx context.Context, callerID, callerRole string, req model.ListSurveysReq) (*model.PagedSurveys, error) {
	if callerID == "" {
		return nil, ErrUnauthorized
	}

	filter := model.SurveyFilter{
		Status:   req.Status,
		Province: req.Province,
		Page:     req.Page,
		Size:     req.Size,
	}
	if callerRole == model.RoleFarmer {
		filter.FarmerID = callerID
	}

	surveys, total, err := s.Repo.FindSurveys(ctx, filter)
	if err != nil {
		return nil, err
	}
	if surveys == nil {
		surveys = []*model.Survey{}
	}

	return &model.PagedSurveys{
		Data:       surveys,
		Page:       req.Page,
		Size:       req.Size,
		TotalCount: total,
	}, nil
}

func (s *Service) GetAuditTrail(ctx context.Context, callerID, callerRole, surveyID string, req model.GetAuditTrailReq) (*model.PagedAudit, error) {
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
	if !canReadSurvey(survey, callerID, callerRole) {
		return nil, ErrForbidden
	}

	records, total, err := s.Repo.FindAudit(ctx, surveyID, req.Page, req.Size)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []*model.AuditRecord{}
	}

	return &model.PagedAudit{
		Data:       records,
		Page:       req.Page,
		Size:       req.Size,
		TotalCount: total,
	}, nil
}
