package model

import "strings"

// ApproveSurveyReq approves a survey under review. Comment is optional.
type ApproveSurveyReq struct {
	Comment string `json:"comment" validate:"omitempty,max=2000"`
}

func (r *ApproveSurveyReq) Validate() error {
	r.Comment = strings.TrimSpace(r.Comment)
	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}

// RejectSurveyReq rejects a survey under review. The farmer needs to know why,
// so the comment is mandatory.
type RejectSurveyReq struct {
	Comment string `json:"comment" validate:"required,max=2000"`
}

func (r *RejectSurveyReq) Validate() error {
	r.Comment = strings.TrimSpace(r.Comment)
	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	if r.Comment == "" {
		return &ErrorDetail{Code: "bad_request", Message: "comment is required for rejection"}
	}
	return nil
}

// RequestRevisionReq sends a survey back to the farmer for changes.
// Step optionally names the first wizard step that needs rework.
type RequestRevisionReq struct {
	Comment string `json:"comment" validate:"required,max=2000"`
	Step    int    `json:"step" validate:"omitempty,min=1"`
}

func (r *RequestRevisionReq) Validate() error {
	r.Comment = strings.TrimSpace(r.Comment)
	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	if r.Comment == "" {
		return &ErrorDetail{Code: "bad_request", Message: "comment is required for a revision request"}
	}
	return nil
}

// RevokeCertificateReq revokes an issued certificate (admin only).
type RevokeCertificateReq struct {
	Reason string `json:"reason" validate:"required,max=2000"`
}

func (r *RevokeCertificateReq) Validate() error {
	r.Reason = strings.TrimSpace(r.Reason)
	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	if r.Reason == "" {
		return &ErrorDetail{Code: "bad_request", Message: "reason is required for revocation"}
	}
	return nil
}

// ListCertificatesReq filters and paginates certificate listings.
type ListCertificatesReq struct {
	Status string `query:"status" validate:"omitempty,oneof=ACTIVE REVOKED EXPIRED"`
	Page   int    `query:"page" validate:"omitempty,min=1"`
	Size   int    `query:"size" validate:"omitempty,min=1,max=200"`
}

func (r *ListCertificatesReq) Validate() error {
	r.Status = strings.ToUpper(strings.TrimSpace(r.Status))

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
