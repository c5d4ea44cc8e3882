package model

import "strings"

// RegisterReq self-registers an account. Only farmer accounts may
// self-register; staff and admin accounts come from an admin.
type RegisterReq struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	FullName string `json:"full_name" validate:"required,max=200"`
	Role     string `json:"role" validate:"omitempty"`
}

func (r *RegisterReq) Validate() error {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.FullName = strings.TrimSpace(r.FullName)
	r.Role = strings.ToLower(strings.TrimSpace(r.Role))

	if r.Role == "" {
		r.Role = RoleFarmer
	}
	if !AllowedRegistrationRoles[r.Role] {
		return &ErrorDetail{Code: "bad_request", Message: "only farmer accounts may self-register"}
	}

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}

// LoginReq exchanges credentials for a bearer token.
type LoginReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginReq) Validate() error {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}

// LoginResp carries the signed token back to the client.
type LoginResp struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// CreateStaffReq provisions a DTAM staff or admin account (admin only).
type CreateStaffReq struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	FullName string `json:"full_name" validate:"required,max=200"`
	Role     string `json:"role" validate:"required,oneof=dtam_staff dtam_admin"`
}

func (r *CreateStaffReq) Validate() error {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.FullName = strings.TrimSpace(r.FullName)
	r.Role = strings.ToLower(strings.TrimSpace(r.Role))

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}
