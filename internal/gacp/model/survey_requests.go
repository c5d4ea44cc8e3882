package model

import "strings"

// CreateSurveyReq opens a new draft survey for the calling farmer.
type CreateSurveyReq struct {
	FarmName string `json:"farm_name" validate:"required,max=200"`
	Province string `json:"province" validate:"required,max=100"`
	CropType string `json:"crop_type" validate:"required,max=100"`
}

func (r *CreateSurveyReq) Validate() error {
	r.FarmName = strings.TrimSpace(r.FarmName)
	r.Province = strings.TrimSpace(r.Province)
	r.CropType = strings.TrimSpace(r.CropType)

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}

// SaveStepReq stores the answers for one wizard step of a draft survey.
type SaveStepReq struct {
	Answers map[string]string `json:"answers" validate:"required"`
}

func (r *SaveStepReq) Validate() error {
	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	if len(r.Answers) == 0 {
		return &ErrorDetail{Code: "bad_request", Message: "answers must not be empty"}
	}
	for k := range r.Answers {
		if strings.TrimSpace(k) == "" {
			return &ErrorDetail{Code: "bad_request", Message: "answer keys must not be blank"}
		}
	}
	return nil
}

// ListSurveysReq filters and paginates survey listings.
type ListSurveysReq struct {
	Status   string `query:"status" validate:"omitempty,oneof=DRAFT SUBMITTED UNDER_REVIEW REVISION_REQUESTED APPROVED REJECTED"`
	Province string `query:"province" validate:"omitempty,max=100"`
	Page     int    `query:"page" validate:"omitempty,min=1"`
	Size     int    `query:"size" validate:"omitempty,min=1,max=200"`
}

func (r *ListSurveysReq) Validate() error {
	r.Status = strings.ToUpper(strings.TrimSpace(r.Status))
	r.Province = strings.TrimSpace(r.Province)

	if r.Page <= 0 {
		r.Page = 1
	}
	if r.Size <= 0 {
		r.Size = 20
	}
	if r.Size > 200 {
		r.Size = 200
	}

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}

// GetAuditTrailReq paginates a survey's audit history.
type GetAuditTrailReq struct {
	Page int `query:"page" validate:"omitempty,min=1"`
	Size int `query:"size" validate:"omitempty,min=1,max=500"`
}

func (r *GetAuditTrailReq) Validate() error {
	if r.Page <= 0 {
		r.Page = 1
	}
	if r.Size <= 0 {
		r.Size = 50
	}
	if r.Size > 500 {
		r.Size = 500
	}

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}
