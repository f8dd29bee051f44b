package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"wellbook/internal/config"
	"wellbook/internal/database"
	"wellbook/internal/middleware"
	"wellbook/internal/modules/auth"
	"wellbook/internal/modules/booking"
	"wellbook/internal/modules/catalog"
	"wellbook/internal/modules/company"
	"wellbook/internal/modules/user"
	jwtsvc "wellbook/internal/pkg/jwt"
	"wellbook/internal/repository"
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

	userRepo := repository.NewUserRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	companyServiceRepo := repository.NewCompanyServiceRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.RefreshSecret, cfg.JWTAccessTTL, cfg.RefreshTTL)

	authService := auth.NewService(userRepo, companyRepo, j)
	authHandler := auth.NewHandler(authService)

	companyService := company.NewService(companyRepo, companyServiceRepo, serviceRepo)
	companyHandler := company.NewHandler(companyService)

	catalogService := catalog.NewService(categoryRepo, serviceRepo, companyServiceRepo, companyRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	userService := user.NewService(userRepo, companyRepo)
	userHandler := user.NewHandler(userService)

	bookingService := booking.NewService(bookingRepo, serviceRepo, companyServiceRepo, companyRepo, userRepo)
	bookingHandler := booking.NewHandler(bookingService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterPublicRoutes(v1)
		catalogHandler.RegisterPublicRoutes(v1)
		companyHandler.RegisterPublicRoutes(v1)

		// protected
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			authHandler.RegisterProtectedRoutes(protected, middleware.SuperAdminOnly())
			companyHandler.RegisterRoutes(protected)
			catalogHandler.RegisterRoutes(protected)
			userHandler.RegisterRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
		}
	}

	log.Printf("listening on %s", cfg.HTTPAddr)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
