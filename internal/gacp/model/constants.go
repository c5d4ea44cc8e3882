package model

// Survey statuses
const (
	StatusDraft             = "DRAFT"
	StatusSubmitted         = "SUBMITTED"
	StatusUnderReview       = "UNDER_REVIEW"
	StatusRevisionRequested = "REVISION_REQUESTED"
	StatusApproved          = "APPROVED"
	StatusRejected          = "REJECTED"
)

// Workflow operations (one per status transition)
const (
	OpSubmit          = "submit"
	OpClaimReview     = "claim_review"
	OpApprove         = "approve"
	OpReject          = "reject"
	OpRequestRevision = "request_revision"
)

// Certificate statuses
const (
	CertStatusActive  = "ACTIVE"
	CertStatusRevoked = "REVOKED"
	CertStatusExpired = "EXPIRED"
)

// User roles
const (
	RoleFarmer    = "farmer"
	RoleDTAMStaff = "dtam_staff"
	RoleDTAMAdmin = "dtam_admin"
)

// AllowedRegistrationRoles defines which roles may self-register.
// Staff and admin accounts are provisioned by an admin.
var AllowedRegistrationRoles = map[string]bool{
	RoleFarmer: true,
}

// Permission constants for strict typing
const (
	PermSurveyCreate          = "survey.create"
	PermSurveyReadOwn         = "survey.read_own"
	PermSurveyReadAll         = "survey.read_all"
	PermSurveySaveStep        = "survey.save_step"
	PermSurveySubmit          = "survey.submit"
	PermSurveyDeleteOwn       = "survey.delete_own"
	PermSurveyReview          = "survey.review"
	PermSurveyApprove         = "survey.approve"
	PermSurveyReject          = "survey.reject"
	PermSurveyRequestRevision = "survey.request_revision"

	PermCertificateReadOwn = "certificate.read_own"
	PermCertificateReadAll = "certificate.read_all"
	PermCertificateRevoke  = "certificate.revoke"

	PermUserCreateStaff = "user.create_staff"
)

// Audit actions beyond the workflow operations
const (
	ActionCreateDraft       = "create_draft"
	ActionSaveStep          = "save_step"
	ActionDeleteDraft       = "delete_draft"
	ActionIssueCertificate  = "issue_certificate"
	ActionRevokeCertificate = "revoke_certificate"
)

// CertificateValidityYears is the GACP certificate validity period.
const CertificateValidityYears = 3
