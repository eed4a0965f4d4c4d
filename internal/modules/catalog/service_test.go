package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"glassworks/internal/domain"
)

type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) ListGlass(ctx context.Context, companyID int64) ([]domain.GlassPrice, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GlassPrice), args.Error(1)
}

func (m *MockCatalogRepository) CreateGlass(ctx context.Context, g *domain.GlassPrice) error {
	return m.Called(ctx, g).Error(0)
}

func (m *MockCatalogRepository) UpdateGlass(ctx context.Context, g *domain.GlassPrice) error {
	return m.Called(ctx, g).Error(0)
}

func (m *MockCatalogRepository) DeleteGlass(ctx context.Context, companyID, id int64) error {
	return m.Called(ctx, companyID, id).Error(0)
}

func (m *MockCatalogRepository) ListHardware(ctx context.Context, companyID int64) ([]domain.HardwareItem, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HardwareItem), args.Error(1)
}

func (m *MockCatalogRepository) CreateHardware(ctx context.Context, h *domain.HardwareItem) error {
	return m.Called(ctx, h).Error(0)
}

func (m *MockCatalogRepository) UpdateHardware(ctx context.Context, h *domain.HardwareItem) error {
	return m.Called(ctx, h).Error(0)
}

func (m *MockCatalogRepository) DeleteHardware(ctx context.Context, companyID, id int64) error {
	return m.Called(ctx, companyID, id).Error(0)
}

func (m *MockCatalogRepository) ListServices(ctx context.Context, companyID int64) ([]domain.ServiceItem, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ServiceItem), args.Error(1)
}

func (m *MockCatalogRepository) CreateService(ctx context.Context, s *domain.ServiceItem) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockCatalogRepository) UpdateService(ctx context.Context, s *domain.ServiceItem) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockCatalogRepository) DeleteService(ctx context.Context, companyID, id int64) error {
	return m.Called(ctx, companyID, id).Error(0)
}

func (m *MockCatalogRepository) ListBaseCosts(ctx context.Context, companyID int64) ([]domain.BaseCost, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BaseCost), args.Error(1)
}

func (m *MockCatalogRepository) CreateBaseCost(ctx context.Context, b *domain.BaseCost) error {
	return m.Called(ctx, b).Error(0)
}

func (m *MockCatalogRepository) UpdateBaseCost(ctx context.Context, b *domain.BaseCost) error {
	return m.Called(ctx, b).Error(0)
}

func (m *MockCatalogRepository) DeleteBaseCost(ctx context.Context, companyID, id int64) error {
	return m.Called(ctx, companyID, id).Error(0)
}

func f(v float64) *float64 { return &v }
func s(v string) *string   { return &v }

func TestCreateGlass_SetsCompanyScope(t *testing.T) {
	repo := new(MockCatalogRepository)
	svc := NewService(repo)

	repo.On("CreateGlass", mock.Anything, mock.MatchedBy(func(g *domain.GlassPrice) bool {
		return g.CompanyID == 3 && g.Color == "бронза" && g.PricePerSqm == 75
	})).Return(nil)

	g, err := svc.CreateGlass(context.Background(), 3, GlassPriceRequest{
		Color: "бронза", Thickness: s("10"), PricePerSqm: f(75),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), g.CompanyID)
	repo.AssertExpectations(t)
}

func TestCreateGlass_NegativePriceRejected(t *testing.T) {
	svc := NewService(new(MockCatalogRepository))

	_, err := svc.CreateGlass(context.Background(), 3, GlassPriceRequest{
		Color: "бронза", PricePerSqm: f(-5),
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateHardware_NilUnitPriceAllowed(t *testing.T) {
	repo := new(MockCatalogRepository)
	svc := NewService(repo)

	repo.On("CreateHardware", mock.Anything, mock.MatchedBy(func(h *domain.HardwareItem) bool {
		return h.UnitPrice == nil
	})).Return(nil)

	item, err := svc.CreateHardware(context.Background(), 3, HardwareItemRequest{Name: "Профиль"})
	require.NoError(t, err)
	assert.Nil(t, item.UnitPrice)
}

func TestCreateHardware_PostgresDuplicateMapped(t *testing.T) {
	repo := new(MockCatalogRepository)
	svc := NewService(repo)

	repo.On("CreateHardware", mock.Anything, mock.Anything).
		Return(&pgconn.PgError{Code: "23505", ConstraintName: "idx_hardware_company_name_section"})

	_, err := svc.CreateHardware(context.Background(), 3, HardwareItemRequest{Name: "Профиль"})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestCreateBaseCost_SqliteDuplicateMapped(t *testing.T) {
	repo := new(MockCatalogRepository)
	svc := NewService(repo)

	repo.On("CreateBaseCost", mock.Anything, mock.Anything).
		Return(errors.New("constraint failed: UNIQUE constraint failed: base_costs.company_id, base_costs.name"))

	_, err := svc.CreateBaseCost(context.Background(), 3, BaseCostRequest{Name: "доставка", Value: f(20)})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestUpdateService_OtherErrorsPassThrough(t *testing.T) {
	repo := new(MockCatalogRepository)
	svc := NewService(repo)

	boom := errors.New("connection reset")
	repo.On("UpdateService", mock.Anything, mock.Anything).Return(boom)

	_, err := svc.UpdateService(context.Background(), 3, 7, ServiceItemRequest{Name: "Закалка", Price: f(15)})
	assert.ErrorIs(t, err, boom)
}
