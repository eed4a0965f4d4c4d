package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"glassworks/internal/modules/company"
)

type Service struct {
	users       UserRepository
	provisioner CompanyProvisioner
	tokens      TokenIssuer
}

func NewService(users UserRepository, provisioner CompanyProvisioner, tokens TokenIssuer) *Service {
	return &Service{users: users, provisioner: provisioner, tokens: tokens}
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	u, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	// Same error for unknown email and wrong password.
	if u == nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(u.ID, u.CompanyID, string(u.Role))
	if err != nil {
		return nil, err
	}
	return &AuthResponse{Token: token, User: u}, nil
}

// Register provisions a new tenant and logs its admin in.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	_, admin, err := s.provisioner.Provision(ctx, company.ProvisionRequest{
		CompanyName:   req.CompanyName,
		Phone:         req.Phone,
		AdminEmail:    req.Email,
		AdminName:     req.Name,
		AdminPassword: req.Password,
	})
	if errors.Is(err, company.ErrEmailTaken) {
		return nil, ErrEmailTaken
	}
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.GenerateToken(admin.ID, admin.CompanyID, string(admin.Role))
	if err != nil {
		return nil, err
	}
	return &AuthResponse{Token: token, User: admin}, nil
}
