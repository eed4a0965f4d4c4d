package project

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"glassworks/internal/domain"
	"glassworks/internal/modules/quote"
	"glassworks/internal/pricing"
)

type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) Create(ctx context.Context, p *domain.Project, statusName string) error {
	args := m.Called(ctx, p, statusName)
	if args.Error(0) == nil {
		p.ID = 1
	}
	return args.Error(0)
}

func (m *MockProjectRepository) SaveWithSnapshot(ctx context.Context, p *domain.Project) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProjectRepository) SetStatus(ctx context.Context, companyID, projectID int64, status *domain.Status) error {
	return m.Called(ctx, companyID, projectID, status).Error(0)
}

func (m *MockProjectRepository) GetByID(ctx context.Context, companyID, id int64) (*domain.Project, error) {
	args := m.Called(ctx, companyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectRepository) List(ctx context.Context, companyID int64, statusID *int64) ([]domain.Project, error) {
	args := m.Called(ctx, companyID, statusID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

func (m *MockProjectRepository) PriceHistory(ctx context.Context, projectID int64) ([]domain.PriceSnapshot, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PriceSnapshot), args.Error(1)
}

func (m *MockProjectRepository) StatusHistory(ctx context.Context, projectID int64) ([]domain.StatusChange, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StatusChange), args.Error(1)
}

type MockStatusRepository struct {
	mock.Mock
}

func (m *MockStatusRepository) GetByID(ctx context.Context, companyID, id int64) (*domain.Status, error) {
	args := m.Called(ctx, companyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Status), args.Error(1)
}

func (m *MockStatusRepository) GetDefault(ctx context.Context, companyID int64) (*domain.Status, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Status), args.Error(1)
}

type MockPriceComputer struct {
	mock.Mock
}

func (m *MockPriceComputer) ComputePrice(ctx context.Context, companyID int64, req quote.QuoteRequest) (*pricing.Breakdown, error) {
	args := m.Called(ctx, companyID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricing.Breakdown), args.Error(1)
}

func f(v float64) *float64 { return &v }

func saveRequest() SaveProjectRequest {
	return SaveProjectRequest{
		Name:              "Душевая кабина",
		Customer:          "ООО Ремонт",
		ConfigurationType: domain.ConfigStraight,
		Dimensions:        domain.Dimensions{Width: f(1500), Height: f(2000)},
		GlassColor:        "прозрачный",
		GlassThickness:    "10",
		Hardware:          []HardwareItemRequest{{Name: "Профиль", Quantity: 2}},
	}
}

func newStatus() *domain.Status {
	return &domain.Status{ID: 5, CompanyID: 1, Name: "Новый", IsDefault: true}
}

func TestCreate_ComputesPriceAndSeedsLedgers(t *testing.T) {
	projects := new(MockProjectRepository)
	statuses := new(MockStatusRepository)
	pricer := new(MockPriceComputer)
	svc := NewService(projects, statuses, pricer)

	pricer.On("ComputePrice", mock.Anything, int64(1), mock.Anything).
		Return(&pricing.Breakdown{Total: 273, Currency: domain.CurrencyGEL}, nil)
	statuses.On("GetDefault", mock.Anything, int64(1)).Return(newStatus(), nil)
	projects.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.Project) bool {
		return p.CurrentPrice == 273 && p.StatusID == 5 && p.Reference != ""
	}), "Новый").Return(nil)
	projects.On("GetByID", mock.Anything, int64(1), int64(1)).
		Return(&domain.Project{ID: 1, CompanyID: 1, CurrentPrice: 273, StatusID: 5}, nil)
	projects.On("PriceHistory", mock.Anything, int64(1)).
		Return([]domain.PriceSnapshot{{ProjectID: 1, Price: 273}}, nil)
	projects.On("StatusHistory", mock.Anything, int64(1)).
		Return([]domain.StatusChange{{ProjectID: 1, StatusID: 5, StatusName: "Новый"}}, nil)

	p, err := svc.Create(context.Background(), 1, saveRequest())
	require.NoError(t, err)
	assert.Equal(t, 273.0, p.CurrentPrice)
	require.Len(t, p.PriceHistory, 1)
	require.Len(t, p.StatusHistory, 1)
	assert.Equal(t, "Новый", p.StatusHistory[0].StatusName)
	projects.AssertExpectations(t)
}

func TestCreate_ManualPriceSkipsEngine(t *testing.T) {
	projects := new(MockProjectRepository)
	statuses := new(MockStatusRepository)
	pricer := new(MockPriceComputer)
	svc := NewService(projects, statuses, pricer)

	statuses.On("GetDefault", mock.Anything, int64(1)).Return(newStatus(), nil)
	projects.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.Project) bool {
		return p.CurrentPrice == 999.5
	}), "Новый").Return(nil)
	projects.On("GetByID", mock.Anything, int64(1), int64(1)).
		Return(&domain.Project{ID: 1, CompanyID: 1, CurrentPrice: 999.5}, nil)
	projects.On("PriceHistory", mock.Anything, int64(1)).Return([]domain.PriceSnapshot{}, nil)
	projects.On("StatusHistory", mock.Anything, int64(1)).Return([]domain.StatusChange{}, nil)

	req := saveRequest()
	req.ManualPrice = f(999.5)

	p, err := svc.Create(context.Background(), 1, req)
	require.NoError(t, err)
	assert.Equal(t, 999.5, p.CurrentPrice)
	pricer.AssertNotCalled(t, "ComputePrice", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreate_NegativeManualPriceRejected(t *testing.T) {
	svc := NewService(new(MockProjectRepository), new(MockStatusRepository), new(MockPriceComputer))

	req := saveRequest()
	req.ManualPrice = f(-1)

	_, err := svc.Create(context.Background(), 1, req)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreate_NoStatusesConfigured(t *testing.T) {
	projects := new(MockProjectRepository)
	statuses := new(MockStatusRepository)
	pricer := new(MockPriceComputer)
	svc := NewService(projects, statuses, pricer)

	pricer.On("ComputePrice", mock.Anything, int64(1), mock.Anything).
		Return(&pricing.Breakdown{Total: 10}, nil)
	statuses.On("GetDefault", mock.Anything, int64(1)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Create(context.Background(), 1, saveRequest())
	assert.ErrorIs(t, err, ErrNoStatuses)
}

func TestCreate_ConfigurationMissingPropagates(t *testing.T) {
	projects := new(MockProjectRepository)
	statuses := new(MockStatusRepository)
	pricer := new(MockPriceComputer)
	svc := NewService(projects, statuses, pricer)

	pricer.On("ComputePrice", mock.Anything, int64(1), mock.Anything).
		Return(nil, quote.ErrConfigurationMissing)

	_, err := svc.Create(context.Background(), 1, saveRequest())
	assert.ErrorIs(t, err, quote.ErrConfigurationMissing)
	projects.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdate_RecomputesAndSnapshots(t *testing.T) {
	projects := new(MockProjectRepository)
	statuses := new(MockStatusRepository)
	pricer := new(MockPriceComputer)
	svc := NewService(projects, statuses, pricer)

	existing := &domain.Project{ID: 7, CompanyID: 1, CurrentPrice: 100, StatusID: 5}
	projects.On("GetByID", mock.Anything, int64(1), int64(7)).Return(existing, nil)
	pricer.On("ComputePrice", mock.Anything, int64(1), mock.Anything).
		Return(&pricing.Breakdown{Total: 310.4}, nil)
	projects.On("SaveWithSnapshot", mock.Anything, mock.MatchedBy(func(p *domain.Project) bool {
		return p.ID == 7 && p.CurrentPrice == 310.4
	})).Return(nil)
	projects.On("PriceHistory", mock.Anything, int64(7)).
		Return([]domain.PriceSnapshot{{Price: 100}, {Price: 310.4}}, nil)
	projects.On("StatusHistory", mock.Anything, int64(7)).Return([]domain.StatusChange{}, nil)

	p, err := svc.Update(context.Background(), 1, 7, saveRequest())
	require.NoError(t, err)
	assert.Equal(t, 310.4, p.CurrentPrice)
	require.Len(t, p.PriceHistory, 2)
	projects.AssertExpectations(t)
}

func TestUpdate_MissingProject(t *testing.T) {
	projects := new(MockProjectRepository)
	svc := NewService(projects, new(MockStatusRepository), new(MockPriceComputer))

	projects.On("GetByID", mock.Anything, int64(1), int64(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Update(context.Background(), 1, 99, saveRequest())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSetStatus_AppendsHistory(t *testing.T) {
	projects := new(MockProjectRepository)
	statuses := new(MockStatusRepository)
	svc := NewService(projects, statuses, new(MockPriceComputer))

	done := &domain.Status{ID: 9, CompanyID: 1, Name: "Готово"}
	statuses.On("GetByID", mock.Anything, int64(1), int64(9)).Return(done, nil)
	projects.On("SetStatus", mock.Anything, int64(1), int64(7), done).Return(nil)
	projects.On("GetByID", mock.Anything, int64(1), int64(7)).
		Return(&domain.Project{ID: 7, CompanyID: 1, StatusID: 9}, nil)
	projects.On("PriceHistory", mock.Anything, int64(7)).Return([]domain.PriceSnapshot{}, nil)
	projects.On("StatusHistory", mock.Anything, int64(7)).
		Return([]domain.StatusChange{
			{StatusID: 5, StatusName: "Новый"},
			{StatusID: 9, StatusName: "Готово"},
		}, nil)

	p, err := svc.SetStatus(context.Background(), 1, 7, 9)
	require.NoError(t, err)
	assert.Equal(t, int64(9), p.StatusID)
	require.Len(t, p.StatusHistory, 2)
	assert.Equal(t, "Готово", p.StatusHistory[1].StatusName)
}

func TestSetStatus_UnknownStatus(t *testing.T) {
	projects := new(MockProjectRepository)
	statuses := new(MockStatusRepository)
	svc := NewService(projects, statuses, new(MockPriceComputer))

	statuses.On("GetByID", mock.Anything, int64(1), int64(42)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.SetStatus(context.Background(), 1, 7, 42)
	assert.ErrorIs(t, err, ErrStatusNotFound)
	projects.AssertNotCalled(t, "SetStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
