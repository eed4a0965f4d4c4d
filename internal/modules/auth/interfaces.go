package auth

import (
	"context"

	"glassworks/internal/domain"
	"glassworks/internal/modules/company"
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// CompanyProvisioner sets up a new tenant on first registration; implemented
// by the company module service.
type CompanyProvisioner interface {
	Provision(ctx context.Context, req company.ProvisionRequest) (*domain.Company, *domain.User, error)
}

type TokenIssuer interface {
	GenerateToken(userID, companyID int64, role string) (string, error)
}
