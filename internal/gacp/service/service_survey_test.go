package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jonmaxmore/Botanical-Audit-Framework-sub004/internal/gacp/event"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub004/internal/gacp/model"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub004/internal/gacp/repository"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub004/internal/gacp/wizard"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub004/internal/gacp/workflow"
)

func newTestService(t *testing.T) (*Service, *MockRepository) {
	t.Helper()

	repo := new(MockRepository)
	engine, err := workflow.NewEngine()
	require.NoError(t, err)
	wiz, err := wizard.New()
	require.NoError(t, err)

	return NewService(repo, engine, wiz, event.NewBus(), "test-secret", time.Hour), repo
}

// completedSurvey builds a survey with every wizard step fully answered.
func completedSurvey(t *testing.T, svc *Service, id, farmerID, status string) *model.Survey {
	t.Helper()

	survey := &model.Survey{
		ID:          id,
		FarmerID:    farmerID,
		FarmName:    "Baan Suan",
		Province:    "Chiang Mai",
		CropType:    "cannabis",
		Status:      status,
		Steps:       make(map[string]model.StepData),
		CurrentStep: 1,
	}
	now := time.Now()
	for _, s := range svc.Wizard.Steps() {
		answers := make(map[string]string, len(s.Required))
		for _, f := range s.Required {
			answers[f] = "answered"
		}
		_, err := svc.Wizard.Apply(survey, s.ID, answers, now)
		require.NoError(t, err)
	}
	return survey
}

func TestCreateDraft(t *testing.T) {
	t.Run("creates a draft at step 1 and records the action", func(t *testing.T) {
		svc, repo := newTestService(t)

		repo.On("CreateSurvey", mock.Anything, mock.MatchedBy(func(s *model.Survey) bool {
			return s.Status == model.StatusDraft && s.CurrentStep == 1 && s.FarmerID == "farmer_1"
		})).Return(nil)
		repo.On("CreateAudit", mock.Anything, mock.MatchedBy(func(r *model.AuditRecord) bool {
			return r.Action == model.ActionCreateDraft && r.ActorID == "farmer_1"
		})).Return(nil)

		survey, err := svc.CreateDraft(context.Background(), "farmer_1", model.CreateSurveyReq{
			FarmName: "Baan Suan", Province: "Chiang Mai", CropType: "cannabis",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, survey.ID)
		assert.Equal(t, model.StatusDraft, survey.Status)
		repo.AssertExpectations(t)
	})

	t.Run("anonymous caller is rejected", func(t *testing.T) {
		svc, _ := newTestService(t)
		_, err := svc.CreateDraft(context.Background(), "", model.CreateSurveyReq{})
		assert.ErrorIs(t, err, ErrUnauthorized)
	})
}

func TestSaveStep(t *testing.T) {
	t.Run("persists a valid step", func(t *testing.T) {
		svc, repo := newTestService(t)
		survey := &model.Survey{ID: "s1", FarmerID: "farmer_1", Status: model.StatusDraft, CurrentStep: 1}

		repo.On("GetSurvey", mock.Anything, "s1").Return(survey, nil)
		repo.On("SaveSurveyStep", mock.Anything, "s1", "farm_profile", mock.Anything, mock.Anything, editableStatuses).Return(nil)
		repo.On("CreateAudit", mock.Anything, mock.Anything).Return(nil)

		_, err := svc.SaveStep(context.Background(), "farmer_1", "s1", 1, model.SaveStepReq{
			Answers: map[string]string{"area_rai": "12"},
		})
		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("other farmer's survey is forbidden", func(t *testing.T) {
		svc, repo := newTestService(t)
		survey := &model.Survey{ID: "s1", FarmerID: "farmer_1", Status: model.StatusDraft}
		repo.On("GetSurvey", mock.Anything, "s1").Return(survey, nil)

		_, err := svc.SaveStep(context.Background(), "farmer_2", "s1", 1, model.SaveStepReq{
			Answers: map[string]string{"area_rai": "12"},
		})
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("submitted survey is no longer editable", func(t *testing.T) {
		svc, repo := newTestService(t)
		survey := &model.Survey{ID: "s1", FarmerID: "farmer_1", Status: model.StatusSubmitted}
		repo.On("GetSurvey", mock.Anything, "s1").Return(survey, nil)

		_, err := svc.SaveStep(context.Background(), "farmer_1", "s1", 1, model.SaveStepReq{
			Answers: map[string]string{"area_rai": "12"},
		})
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("out of order save reports the blocking step", func(t *testing.T) {
		svc, repo := newTestService(t)
		survey := &model.Survey{ID: "s1", FarmerID: "farmer_1", Status: model.StatusDraft, CurrentStep: 1}
		repo.On("GetSurvey", mock.Anything, "s1").Return(survey, nil)

		_, err := svc.SaveStep(context.Background(), "farmer_1", "s1", 4, model.SaveStepReq{
			Answers: map[string]string{"harvest_method": "manual"},
		})
		var detail *model.ErrorDetail
		require.ErrorAs(t, err, &detail)
		assert.Equal(t, "bad_request", detail.Code)
	})

	t.Run("save racing a submit surfaces the status conflict", func(t *testing.T) {
		svc, repo := newTestService(t)
		survey := &model.Survey{ID: "s1", FarmerID: "farmer_1", Status: model.StatusDraft, CurrentStep: 1}
		repo.On("GetSurvey", mock.Anything, "s1").Return(survey, nil)
		repo.On("SaveSurveyStep", mock.Anything, "s1", "farm_profile", mock.Anything, mock.Anything, editableStatuses).
			Return(repository.ErrStatusConflict)

		_, err := svc.SaveStep(context.Background(), "farmer_1", "s1", 1, model.SaveStepReq{
			Answers: map[string]string{"area_rai": "12"},
		})
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestSubmitSurvey(t *testing.T) {
	t.Run("complete draft submits and publishes", func(t *testing.T) {
		svc, repo := newTestService(t)
		survey := completedSurvey(t, svc, "s1", "farmer_1", model.StatusDraft)

		var published []event.Event
		svc.Bus.SubscribeAll(func(ev event.Event) { published = append(published, ev) })

		repo.On("GetSurvey", mock.Anything, "s1").Return(survey, nil)
		repo.On("TransitionSurveyStatus", mock.Anything, "s1", mock.Anything, model.StatusSubmitted, mock.Anything).Return(nil)
		repo.On("CreateAudit", mock.Anything, mock.MatchedBy(func(r *model.AuditRecord) bool {
			return r.Action == model.OpSubmit && r.ToStatus == model.StatusSubmitted
		})).Return(nil)

		out, err := svc.SubmitSurvey(context.Background(), "farmer_1", model.RoleFarmer, "s1")
		require.NoError(t, err)
		assert.Equal(t, model.StatusSubmitted, out.Status)
		assert.NotNil(t, out.SubmittedAt)
		require.Len(t, published, 1)
		assert.Equal(t, event.TypeSurveySubmitted, published[0].Type)
		repo.AssertExpectations(t)
	})

	t.Run("incomplete draft reports every missing step", func(t *testing.T) {
		svc, repo := newTestService(t)
		survey := &model.Survey{ID: "s1", FarmerID: "farmer_1", Status: model.StatusDraft, CurrentStep: 1}
		repo.On("GetSurvey", mock.Anything, "s1").Return(survey, nil)

		_, err := svc.SubmitSurvey(context.Background(), "farmer_1", model.RoleFarmer, "s1")
		var incomplete *IncompleteStepsError
		require.ErrorAs(t, err, &incomplete)
		assert.Len(t, incomplete.Steps, 5)
		repo.AssertNotCalled(t, "TransitionSurveyStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("submit from approved is an invalid transition", func(t *testing.T) {
		svc, repo := newTestService(t)
		survey := completedSurvey(t, svc, "s1", "farmer_1", model.StatusApproved)
		repo.On("GetSurvey", mock.Anything, "s1").Return(survey, nil)

		_, err := svc.SubmitSurvey(context.Background(), "farmer_1", model.RoleFarmer, "s1")
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("resubmit after revision request succeeds", func(t *testing.T) {
		svc, repo := newTestService(t)
		survey := completedSurvey(t, svc, "s1", "farmer_1", model.StatusRevisionRequested)

		repo.On("GetSurvey", mock.Anything, "s1").Return(survey, nil)
		repo.On("TransitionSurveyStatus", mock.Anything, "s1", mock.Anything, model.StatusSubmitted, mock.Anything).Return(nil)
		repo.On("CreateAudit", mock.Anything, mock.Anything).Return(nil)

		out, err := svc.SubmitSurvey(context.Background(), "farmer_1", model.RoleFarmer, "s1")
		require.NoError(t, err)
		assert.Equal(t, model.StatusSubmitted, out.Status)
	})
}

func TestDeleteDraft(t *testing.T) {
	t.Run("owner deletes a draft", func(t *testing.T) {
		svc, repo := newTestService(t)
		survey := &model.Survey{ID: "s1", FarmerID: "farmer_1", Status: model.StatusDraft}
		repo.On("GetSurvey", mock.Anything, "s1").Return(survey, nil)
		repo.On("SoftDeleteSurvey", mock.Anything, "s1", "farmer_1", "farmer_1").Return(nil)
		repo.On("CreateAudit", mock.Anything, mock.Anything).Return(nil)

		assert.NoError(t, svc.DeleteDraft(context.Background(), "farmer_1", "s1"))
		repo.AssertExpectations(t)
	})

	t.Run("non-draft cannot be deleted", func(t *testing.T) {
		svc, repo := newTestService(t)
		survey := &model.Survey{ID: "s1", FarmerID: "farmer_1", Status: model.StatusSubmitted}
		repo.On("GetSurvey", mock.Anything, "s1").Return(survey, nil)
		repo.On("SoftDeleteSurvey", mock.Anything, "s1", "farmer_1", "farmer_1").Return(repository.ErrStatusConflict)

		assert.ErrorIs(t, svc.DeleteDraft(context.Background(), "farmer_1", "s1"), ErrInvalidTransition)
	})

	t.Run("missing survey", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.On("GetSurvey", mock.Anything, "nope").Return(nil, repository.ErrNotFound)

		assert.ErrorIs(t, svc.DeleteDraft(context.Background(), "farmer_1", "nope"), ErrNotFound)
	})
}

func TestListSurveys(t *testing.T) {
	t.Run("farmer listing is scoped to the caller", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.On("FindSurveys", mock.Anything, mock.MatchedBy(func(f model.SurveyFilter) bool {
			return f.FarmerID == "farmer_1"
		})).Return([]*model.Survey{{ID: "s1"}}, int64(1), nil)

		page, err := svc.ListSurveys(context.Background(), "farmer_1", model.RoleFarmer, model.ListSurveysReq{Page: 1, Size: 20})
		require.NoError(t, err)
		assert.Equal(t, int64(1), page.TotalCount)
	})

	t.Run("staff listing is unscoped", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.On("FindSurveys", mock.Anything, mock.MatchedBy(func(f model.SurveyFilter) bool {
			return f.FarmerID == ""
		})).Return([]*model.Survey{}, int64(0), nil)

		page, err := svc.ListSurveys(context.Background(), "staff_1", model.RoleDTAMStaff, model.ListSurveysReq{Page: 1, Size: 20})
		require.NoError(t, err)
		assert.NotNil(t, page.Data)
	})
}

func TestGetAuditTrail(t *testing.T) {
	t.Run("farmer reads own trail", func(t *testing.T) {
		svc, repo := newTestService(t)
		survey := &model.Survey{ID: "s1", FarmerID: "farmer_1", Status: model.StatusSubmitted}
		repo.On("GetSurvey", mock.Anything, "s1").Return(survey, nil)
		repo.On("FindAudit", mock.Anything, "s1", 1, 50).
			Return([]*model.AuditRecord{{SurveyID: "s1", Action: model.OpSubmit}}, int64(1), nil)

		page, err := svc.GetAuditTrail(context.Background(), "farmer_1", model.RoleFarmer, "s1", model.GetAuditTrailReq{Page: 1, Size: 50})
		require.NoError(t, err)
		assert.Len(t, page.Data, 1)
	})

	t.Run("other farmer's trail is forbidden", func(t *testing.T) {
		svc, repo := newTestService(t)
		survey := &model.Survey{ID: "s1", FarmerID: "farmer_1", Status: model.StatusSubmitted}
		repo.On("GetSurvey", mock.Anything, "s1").Return(survey, nil)

		_, err := svc.GetAuditTrail(context.Background(), "farmer_2", model.RoleFarmer, "s1", model.GetAuditTrailReq{Page: 1, Size: 50})
		assert.ErrorIs(t, err, ErrForbidden)
	})
}
