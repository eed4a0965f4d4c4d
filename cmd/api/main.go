package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"glassworks/internal/config"
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

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	companyRepo := repository.NewCompanyRepository(db)
	userRepo := repository.NewUserRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	templateRepo := repository.NewTemplateRepository(db)
	statusRepo := repository.NewStatusRepository(db)
	projectRepo := repository.NewProjectRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

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

	r := gin.Default()
	r.Use(middleware.CORS())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)

		// any authenticated role, guests included
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			templateHandler.RegisterRoutes(protected)
			catalogHandler.RegisterRoutes(protected)
			settingsHandler.RegisterRoutes(protected)
			statusHandler.RegisterRoutes(protected)
			projectHandler.RegisterRoutes(protected)
			quoteHandler.RegisterRoutes(protected)

			// writes are blocked for guests
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

			superadmin := protected.Group("/")
			superadmin.Use(middleware.SuperadminOnly())
			{
				companyHandler.RegisterSuperadminRoutes(superadmin)
			}
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
