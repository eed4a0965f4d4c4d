package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"glassworks/internal/domain"
)

type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) GetByCompany(ctx context.Context, companyID int64) (*domain.Settings, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Settings), args.Error(1)
}

func (m *MockSettingsRepository) Upsert(ctx context.Context, s *domain.Settings) error {
	return m.Called(ctx, s).Error(0)
}

func validRequest() UpdateSettingsRequest {
	return UpdateSettingsRequest{
		Currency:     domain.CurrencyGEL,
		USDRate:      2.7,
		ShowUSD:      true,
		BaseCostMode: domain.BaseCostFixed,
	}
}

func TestGet_MissingRowIsNotConfigured(t *testing.T) {
	repo := new(MockSettingsRepository)
	svc := NewService(repo)

	repo.On("GetByCompany", mock.Anything, int64(1)).Return(nil, nil)

	_, err := svc.Get(context.Background(), 1)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestUpdate_UpsertsAndReturnsFreshRow(t *testing.T) {
	repo := new(MockSettingsRepository)
	svc := NewService(repo)

	repo.On("Upsert", mock.Anything, mock.MatchedBy(func(s *domain.Settings) bool {
		return s.CompanyID == 1 && s.Currency == domain.CurrencyGEL && s.USDRate == 2.7
	})).Return(nil)
	repo.On("GetByCompany", mock.Anything, int64(1)).
		Return(&domain.Settings{ID: 10, CompanyID: 1, Currency: domain.CurrencyGEL, USDRate: 2.7}, nil)

	cfg, err := svc.Update(context.Background(), 1, validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(10), cfg.ID)
	repo.AssertExpectations(t)
}

func TestUpdate_ShowUSDRequiresRate(t *testing.T) {
	svc := NewService(new(MockSettingsRepository))

	req := validRequest()
	req.USDRate = 0

	_, err := svc.Update(context.Background(), 1, req)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdate_NegativeSurchargeRejected(t *testing.T) {
	svc := NewService(new(MockSettingsRepository))

	req := validRequest()
	req.CustomColorSurcharge = -10

	_, err := svc.Update(context.Background(), 1, req)
	assert.ErrorIs(t, err, ErrValidation)
}
