package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSurveyReqNormalizes(t *testing.T) {
	req := CreateSurveyReq{FarmName: "  Baan Suan  ", Province: " Chiang Mai ", CropType: " cannabis "}
	require.NoError(t, req.Validate())
	assert.Equal(t, "Baan Suan", req.FarmName)
	assert.Equal(t, "Chiang Mai", req.Province)

	empty := CreateSurveyReq{FarmName: "   ", Province: "Chiang Mai", CropType: "cannabis"}
	assert.Error(t, empty.Validate())
}

func TestListSurveysReqDefaults(t *testing.T) {
	req := ListSurveysReq{Status: " submitted "}
	require.NoError(t, req.Validate())
	assert.Equal(t, StatusSubmitted, req.Status)
	assert.Equal(t, 1, req.Page)
	assert.Equal(t, 20, req.Size)

	capped := ListSurveysReq{Size: 9999}
	require.NoError(t, capped.Validate())
	assert.Equal(t, 200, capped.Size)

	bad := ListSurveysReq{Status: "LIMBO"}
	assert.Error(t, bad.Validate())
}

func TestSaveStepReqRejectsBlankKeys(t *testing.T) {
	ok := SaveStepReq{Answers: map[string]string{"area_rai": "12"}}
	assert.NoError(t, ok.Validate())

	empty := SaveStepReq{Answers: map[string]string{}}
	assert.Error(t, empty.Validate())

	blankKey := SaveStepReq{Answers: map[string]string{"  ": "v"}}
	assert.Error(t, blankKey.Validate())
}

func TestReviewRequestComments(t *testing.T) {
	approve := ApproveSurveyReq{}
	assert.NoError(t, approve.Validate(), "approval comment is optional")

	reject := RejectSurveyReq{Comment: "   "}
	assert.Error(t, reject.Validate(), "rejection needs a reason")

	revision := RequestRevisionReq{Comment: "fix step 2", Step: 2}
	assert.NoError(t, revision.Validate())
}

func TestRegisterReqNormalizesEmail(t *testing.T) {
	req := RegisterReq{Email: " Farmer@Example.COM ", Password: "secret123", FullName: "Somchai"}
	require.NoError(t, req.Validate())
	assert.Equal(t, "farmer@example.com", req.Email)

	short := RegisterReq{Email: "farmer@example.com", Password: "short", FullName: "Somchai"}
	assert.Error(t, short.Validate())
}

func TestRegisterReqRole(t *testing.T) {
	blank := RegisterReq{Email: "f@example.com", Password: "secret123", FullName: "F"}
	require.NoError(t, blank.Validate())
	assert.Equal(t, RoleFarmer, blank.Role, "role defaults to farmer")

	staff := RegisterReq{Email: "f@example.com", Password: "secret123", FullName: "F", Role: "dtam_staff"}
	assert.Error(t, staff.Validate(), "staff accounts cannot self-register")
}

func TestCreateStaffReqRole(t *testing.T) {
	req := CreateStaffReq{Email: "r@dtam.go.th", Password: "secret123", FullName: "R", Role: " DTAM_STAFF "}
	require.NoError(t, req.Validate())
	assert.Equal(t, RoleDTAMStaff, req.Role)

	bad := CreateStaffReq{Email: "r@dtam.go.th", Password: "secret123", FullName: "R", Role: "farmer"}
	assert.Error(t, bad.Validate())
}
