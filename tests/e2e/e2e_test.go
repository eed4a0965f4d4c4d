package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"glassworks/internal/database"
	"glassworks/internal/middleware"
	"glassworks/internal/modules/auth"
	"glassworks/internal/modules/catalog"
	"glassworks/internal/modules/company"
	"glassworks/internal/modules/project"
	"glassworks/internal/modules/quote"
	"glassworks/internal/modules/settings"
	"glassworks/internal/modules/status"
	"glassworks/internal/modules/template"
	jwtsvc "glassworks/internal/pkg/jwt"
	"glassworks/internal/repository"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *errorDetail    `json:"error,omitempty"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type suite struct {
	router *gin.Engine
	db     *gorm.DB
	token  string
}

func setupSuite(t *testing.T) *suite {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	companyRepo := repository.NewCompanyRepository(db)
	userRepo := repository.NewUserRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	templateRepo := repository.NewTemplateRepository(db)
	statusRepo := repository.NewStatusRepository(db)
	projectRepo := repository.NewProjectRepository(db)

	j := jwtsvc.New("test_secret_key_32_characters_min", 24*time.Hour)

	templateService := template.NewService(templateRepo)
	templateHandler := template.NewHandler(templateService)

	companyService := company.NewService(companyRepo, userRepo, settingsRepo, statusRepo, templateRepo)
	companyHandler := company.NewHandler(companyService)

	authService := auth.NewService(userRepo, companyService, j)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(catalogRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	settingsService := settings.NewService(settingsRepo)
	settingsHandler := settings.NewHandler(settingsService)

	statusService := status.NewService(statusRepo)
	statusHandler := status.NewHandler(statusService)

	quoteService := quote.NewService(settingsRepo, catalogRepo, templateService)
	quoteHandler := quote.NewHandler(quoteService)

	projectService := project.NewService(projectRepo, statusRepo, quoteService)
	projectHandler := project.NewHandler(projectService)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery())

	v1 := r.Group("/api/v1")
	authHandler.RegisterRoutes(v1)

	protected := v1.Group("/")
	protected.Use(middleware.Auth(j))
	{
		templateHandler.RegisterRoutes(protected)
		catalogHandler.RegisterRoutes(protected)
		settingsHandler.RegisterRoutes(protected)
		statusHandler.RegisterRoutes(protected)
		projectHandler.RegisterRoutes(protected)
		quoteHandler.RegisterRoutes(protected)

		writer := protected.Group("/")
		writer.Use(middleware.Writer())
		{
			projectHandler.RegisterWriteRoutes(writer)
		}

		admin := protected.Group("/")
		admin.Use(middleware.AdminOnly())
		{
			templateHandler.RegisterWriteRoutes(admin)
			catalogHandler.RegisterWriteRoutes(admin)
			settingsHandler.RegisterWriteRoutes(admin)
			statusHandler.RegisterWriteRoutes(admin)
			companyHandler.RegisterAdminRoutes(admin)
		}
	}

	return &suite{router: r, db: db}
}

func (s *suite) do(t *testing.T, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "body: %s", w.Body.String())
	return w, env
}

func (s *suite) register(t *testing.T) {
	t.Helper()

	w, env := s.do(t, http.MethodPost, "/api/v1/auth/register", gin.H{
		"company_name": "Стекло и Ко",
		"email":        "admin@steklo.ge",
		"name":         "Нино",
		"password":     "correct-horse",
	})
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())

	var res struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &res))
	require.NotEmpty(t, res.Token)
	s.token = res.Token
}

func (s *suite) seedPriceLists(t *testing.T) {
	t.Helper()

	for _, body := range []gin.H{
		{"color": "прозрачный", "thickness": "10", "price_per_sqm": 50},
	} {
		w, _ := s.do(t, http.MethodPost, "/api/v1/catalog/glass", body)
		require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())
	}

	w, _ := s.do(t, http.MethodPost, "/api/v1/catalog/hardware", gin.H{"name": "Профиль", "unit_price": 30})
	require.Equal(t, http.StatusCreated, w.Code)

	for _, body := range []gin.H{
		{"name": "straight", "value": 40},
		{"name": "Доставка", "value": 20},
	} {
		w, _ := s.do(t, http.MethodPost, "/api/v1/catalog/base-costs", body)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w, _ = s.do(t, http.MethodPut, "/api/v1/settings", gin.H{
		"currency":       "GEL",
		"usd_rate":       2.7,
		"show_usd":       true,
		"base_cost_mode": "fixed",
	})
	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())
}

func TestQuoteToProjectFlow(t *testing.T) {
	s := setupSuite(t)
	s.register(t)
	s.seedPriceLists(t)

	// Registration provisions the status pipeline.
	w, env := s.do(t, http.MethodGet, "/api/v1/statuses", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var statuses []struct {
		ID        int64  `json:"id"`
		Name      string `json:"name"`
		IsDefault bool   `json:"is_default"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &statuses))
	require.NotEmpty(t, statuses)
	assert.True(t, statuses[0].IsDefault)

	quoteBody := gin.H{
		"configuration_type": "straight",
		"dimensions":         gin.H{"width": 1500, "height": 2000},
		"glass_color":        "прозрачный",
		"glass_thickness":    "10",
		"hardware":           []gin.H{{"name": "Профиль", "quantity": 2}},
		"options":            gin.H{"delivery": true},
	}

	// Quote without persisting anything.
	w, env = s.do(t, http.MethodPost, "/api/v1/quotes/price", quoteBody)
	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())
	var breakdown struct {
		Total    float64  `json:"total"`
		TotalUSD *float64 `json:"total_usd"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &breakdown))
	assert.InDelta(t, 273.0, breakdown.Total, 0.001)
	require.NotNil(t, breakdown.TotalUSD)
	assert.InDelta(t, 101.11, *breakdown.TotalUSD, 0.001)

	// Persist as a project.
	projectBody := gin.H{"name": "Душевая кабина"}
	for k, v := range quoteBody {
		projectBody[k] = v
	}
	w, env = s.do(t, http.MethodPost, "/api/v1/projects", projectBody)
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())

	var p struct {
		ID           int64   `json:"id"`
		Reference    string  `json:"reference"`
		CurrentPrice float64 `json:"current_price"`
		StatusID     int64   `json:"status_id"`
		PriceHistory []struct {
			Price float64 `json:"price"`
		} `json:"price_history"`
		StatusHistory []struct {
			StatusID   int64  `json:"status_id"`
			StatusName string `json:"status_name"`
		} `json:"status_history"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &p))
	assert.NotEmpty(t, p.Reference)
	assert.InDelta(t, 273.0, p.CurrentPrice, 0.001)
	require.Len(t, p.PriceHistory, 1)
	require.Len(t, p.StatusHistory, 1)
	assert.Equal(t, statuses[0].ID, p.StatusID)

	// Editing appends a second snapshot, even when the price is unchanged.
	w, env = s.do(t, http.MethodPut, fmt.Sprintf("/api/v1/projects/%d", p.ID), projectBody)
	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())
	require.NoError(t, json.Unmarshal(env.Data, &p))
	require.Len(t, p.PriceHistory, 2)
	assert.InDelta(t, p.PriceHistory[0].Price, p.PriceHistory[1].Price, 0.001)

	// Moving through the board appends one history entry per move.
	next := statuses[1]
	w, env = s.do(t, http.MethodPatch, fmt.Sprintf("/api/v1/projects/%d/status", p.ID), gin.H{"status_id": next.ID})
	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())
	require.NoError(t, json.Unmarshal(env.Data, &p))
	require.Len(t, p.StatusHistory, 2)
	assert.Equal(t, next.Name, p.StatusHistory[1].StatusName)

	// Re-assigning the same status still appends.
	w, env = s.do(t, http.MethodPatch, fmt.Sprintf("/api/v1/projects/%d/status", p.ID), gin.H{"status_id": next.ID})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &p))
	require.Len(t, p.StatusHistory, 3)
}

func TestManualPriceOverride(t *testing.T) {
	s := setupSuite(t)
	s.register(t)
	s.seedPriceLists(t)

	w, env := s.do(t, http.MethodPost, "/api/v1/projects", gin.H{
		"name":               "Перегородка по договорённости",
		"configuration_type": "straight",
		"dimensions":         gin.H{"width": 1500, "height": 2000},
		"glass_color":        "прозрачный",
		"glass_thickness":    "10",
		"manual_price":       500,
	})
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())

	var p struct {
		CurrentPrice float64 `json:"current_price"`
		PriceHistory []struct {
			Price float64 `json:"price"`
		} `json:"price_history"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &p))
	assert.InDelta(t, 500.0, p.CurrentPrice, 0.001)
	require.Len(t, p.PriceHistory, 1)
	assert.InDelta(t, 500.0, p.PriceHistory[0].Price, 0.001)
}

func TestPricingRequiresSettings(t *testing.T) {
	s := setupSuite(t)
	s.register(t)

	// Wipe the provisioned settings row to simulate an unconfigured tenant.
	require.NoError(t, s.db.Exec("DELETE FROM settings").Error)

	w, env := s.do(t, http.MethodPost, "/api/v1/quotes/price", gin.H{
		"configuration_type": "straight",
		"dimensions":         gin.H{"width": 1500, "height": 2000},
	})
	require.Equal(t, http.StatusConflict, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "CONFIGURATION_MISSING", env.Error.Code)
}

func TestDuplicateCatalogEntryRejected(t *testing.T) {
	s := setupSuite(t)
	s.register(t)

	body := gin.H{"name": "Профиль", "section": "профили", "unit_price": 30}
	w, _ := s.do(t, http.MethodPost, "/api/v1/catalog/hardware", body)
	require.Equal(t, http.StatusCreated, w.Code)

	w, env := s.do(t, http.MethodPost, "/api/v1/catalog/hardware", body)
	require.Equal(t, http.StatusConflict, w.Code, "body: %s", w.Body.String())
	require.NotNil(t, env.Error)
	assert.Equal(t, "DUPLICATE", env.Error.Code)
}

func TestStatusDeleteBlockedWhenInUse(t *testing.T) {
	s := setupSuite(t)
	s.register(t)
	s.seedPriceLists(t)

	w, env := s.do(t, http.MethodPost, "/api/v1/projects", gin.H{
		"name":               "Кабина",
		"configuration_type": "straight",
		"dimensions":         gin.H{"width": 1000, "height": 2000},
		"glass_color":        "прозрачный",
		"glass_thickness":    "10",
	})
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())

	var p struct {
		StatusID int64 `json:"status_id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &p))

	w, env = s.do(t, http.MethodDelete, fmt.Sprintf("/api/v1/statuses/%d", p.StatusID), nil)
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "STATUS_IN_USE", env.Error.Code)
}

func TestGuestCannotWriteProjects(t *testing.T) {
	s := setupSuite(t)
	s.register(t)

	// Downgrade the user to guest and re-login.
	require.NoError(t, s.db.Exec("UPDATE users SET role = 'guest'").Error)
	w, env := s.do(t, http.MethodPost, "/api/v1/auth/login", gin.H{
		"email":    "admin@steklo.ge",
		"password": "correct-horse",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var res struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &res))
	s.token = res.Token

	w, _ = s.do(t, http.MethodPost, "/api/v1/projects", gin.H{
		"name":               "Кабина",
		"configuration_type": "straight",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Reads stay open to guests.
	w, _ = s.do(t, http.MethodGet, "/api/v1/projects", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
