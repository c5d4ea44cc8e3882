package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/jonmaxmore/Botanical-Audit-Framework-sub004/internal/gacp/auth"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub004/internal/gacp/model"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub004/internal/gacp/repository"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub004/internal/gacp/util"
)

// Register creates a farmer account and returns a signed token so the client
// can proceed straight into the wizard.
func (s *Service) Register(ctx context.Context, req model.RegisterReq) (*model.LoginResp, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = model.RoleFarmer
	}

	user := &model.User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		PasswordHash: hash,
		FullName:     req.FullName,
		Role:         role,
	}

	if err := s.Repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrConflict
		}
		return nil, err
	}

	util.GetLogger().Info("farmer registered", "user_id", user.ID)

	return s.loginResponse(user)
}

// Login verifies credentials and mints a bearer token.
func (s *Service) Login(ctx context.Context, req model.LoginReq) (*model.LoginResp, error) {
	user, err := s.Repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Same error as a wrong password; do not leak account existence.
			return nil, ErrUnauthorized
		}
		return nil, err
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, ErrUnauthorized
	}

	return s.loginResponse(user)
}

// CreateStaff provisions a DTAM staff or admin account. Route-level policy
// already requires the user.create_staff permission.
func (s *Service) CreateStaff(ctx context.Context, callerID string, req model.CreateStaffReq) (*model.User, error) {
	if callerID == "" {
		return nil, ErrUnauthorized
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		PasswordHash: hash,
		FullName:     req.FullName,
		Role:         req.Role,
	}

	if err := s.Repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrConflict
		}
		return nil, err
	}

	util.GetLogger().Info("staff account created", "user_id", user.ID, "role", user.Role, "created_by", callerID)

	return user, nil
}

func (s *Service) loginResponse(user *model.User) (*model.LoginResp, error) {
	ttl := s.tokenTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	token, err := auth.GenerateToken(s.jwtSecret, user.ID, user.Email, user.Role, ttl)
	if err != nil {
		return nil, err
	}
	return &model.LoginResp{Token: token, User: user}, nil
}
