package model

import "time"

// StepData holds the answers a farmer saved for one wizard step.
// CompletedAt is set only when every required field of the step is present.
type StepData struct {
	Answers     map[string]string `bson:"answers" json:"answers"`
	CompletedAt *time.Time        `bson:"completed_at,omitempty" json:"completed_at,omitempty"`
	UpdatedAt   time.Time         `bson:"updated_at" json:"updated_at"`
}

// Survey is the farmer questionnaire progressing through the certification workflow.
type Survey struct {
	ID       string `bson:"_id,omitempty" json:"id"`
	FarmerID string `bson:"farmer_id" json:"farmer_id"`
	FarmName string `bson:"farm_name" json:"farm_name"`
	Province string `bson:"province" json:"province"`
	CropType string `bson:"crop_type" json:"crop_type"`

	Status      string              `bson:"status" json:"status"`
	Steps       map[string]StepData `bson:"steps" json:"steps"`
	CurrentStep int                 `bson:"current_step" json:"current_step"`

	// Review Info
	ReviewerID    string `bson:"reviewer_id,omitempty" json:"reviewer_id,omitempty"`
	ReviewComment string `bson:"review_comment,omitempty" json:"review_comment,omitempty"`
	RevisionCount int    `bson:"revision_count" json:"revision_count"`

	// Audit Fields
	CreatedAt   time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `bson:"updated_at" json:"updated_at"`
	SubmittedAt *time.Time `bson:"submitted_at,omitempty" json:"submitted_at,omitempty"`
	ReviewedAt  *time.Time `bson:"reviewed_at,omitempty" json:"reviewed_at,omitempty"`
	DeletedAt   *time.Time `bson:"deleted_at,omitempty" json:"-"`
	DeletedBy   string     `bson:"deleted_by,omitempty" json:"-"`
}

// SurveyFilter narrows survey listings.
type SurveyFilter struct {
	FarmerID string
	Status   string
	Province string
	Page     int
	Size     int
}

// Certificate is issued when a survey is approved.
type Certificate struct {
	ID       string `bson:"_id,omitempty" json:"id"`
	Number   string `bson:"number" json:"number"`
	SurveyID string `bson:"survey_id" json:"survey_id"`
	FarmerID string `bson:"farmer_id" json:"farmer_id"`
	FarmName string `bson:"farm_name" json:"farm_name"`

	Status    string    `bson:"status" json:"status"`
	IssuedAt  time.Time `bson:"issued_at" json:"issued_at"`
	ExpiresAt time.Time `bson:"expires_at" json:"expires_at"`

	RevokedAt    *time.Time `bson:"revoked_at,omitempty" json:"revoked_at,omitempty"`
	RevokedBy    string     `bson:"revoked_by,omitempty" json:"revoked_by,omitempty"`
	RevokeReason string     `bson:"revoke_reason,omitempty" json:"revoke_reason,omitempty"`
}

// CertificateFilter narrows certificate listings.
type CertificateFilter struct {
	FarmerID string
	Status   string
	Page     int
	Size     int
}

// AuditRecord logs one workflow action (append-only, read-only after creation).
type AuditRecord struct {
	ID         string `bson:"_id,omitempty" json:"id"`
	SurveyID   string `bson:"survey_id" json:"survey_id"`
	Action     string `bson:"action" json:"action"`
	FromStatus string `bson:"from_status,omitempty" json:"from_status,omitempty"`
	ToStatus   string `bson:"to_status,omitempty" json:"to_status,omitempty"`
	ActorID    string `bson:"actor_id" json:"actor_id"`
	ActorRole  string `bson:"actor_role" json:"actor_role"`
	Comment    string `bson:"comment,omitempty" json:"comment,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// User is a platform account (farmer or DTAM staff).
type User struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	FullName     string    `bson:"full_name" json:"full_name"`
	Role         string    `bson:"role" json:"role"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

// CertificateVerification is the public verification result. Expiry is
// computed at read time so a lapsed certificate reports EXPIRED without a
// background sweep.
type CertificateVerification struct {
	Valid       bool         `json:"valid"`
	Status      string       `json:"status"`
	Certificate *Certificate `json:"certificate,omitempty"`
}

// ErrorResponse for consistent error handling
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

func (e *ErrorDetail) Error() string {
	return e.Message
}

// PagedSurveys is the paginated survey listing response.
type PagedSurveys struct {
	Data       []*Survey `json:"data"`
	Page       int       `json:"page"`
	Size       int       `json:"size"`
	TotalCount int64     `json:"total_count"`
}

// PagedCertificates is the paginated certificate listing response.
type PagedCertificates struct {
	Data       []*Certificate `json:"data"`
	Page       int            `json:"page"`
	Size       int            `json:"size"`
	TotalCount int64          `json:"total_count"`
}

// PagedAudit is the paginated audit trail response.
type PagedAudit struct {
	Data       []*AuditRecord `json:"data"`
	Page       int            `json:"page"`
	Size       int            `json:"size"`
	TotalCount int64          `json:"total_count"`
}
