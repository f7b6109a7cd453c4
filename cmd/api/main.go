package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/flexilease/flexilease-backend/internal/handlers/dto"
	httphandlers "github.com/flexilease/flexilease-backend/internal/handlers/http"
	"github.com/flexilease/flexilease-backend/internal/handlers/middleware"
	"github.com/flexilease/flexilease-backend/internal/infrastructure/config"
	"github.com/flexilease/flexilease-backend/internal/infrastructure/i18n"
	"github.com/flexilease/flexilease-backend/internal/infrastructure/logging"
	"github.com/flexilease/flexilease-backend/internal/infrastructure/persistence/postgres"
	"github.com/flexilease/flexilease-backend/internal/infrastructure/viacep"
	"github.com/flexilease/flexilease-backend/internal/services"
)

func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting flexilease backend",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados
	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	// Inicializar i18n (locales embutidos no binário)
	i18nService, err := i18n.Default()
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// Registrar validações customizadas no binding do Gin
	if err := dto.RegisterCustomValidators(); err != nil {
		logger.Error("failed to register validators", "error", err)
		log.Fatal(err)
	}

	// Inicializar repositories
	userRepo := postgres.NewUserRepository(db)
	carRepo := postgres.NewCarRepository(db)
	reservationRepo := postgres.NewReservationRepository(db)
	uow := postgres.NewUnitOfWork(db)

	// Cliente ViaCEP para enriquecimento de endereço
	postalClient := viacep.NewClient(
		cfg.Postal.BaseURL,
		time.Duration(cfg.Postal.TimeoutSeconds)*time.Second,
	)

	// Inicializar services
	userService := services.NewUserService(userRepo, postalClient, logger)
	authService := services.NewAuthService(
		userRepo,
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.ExpiryHours)*time.Hour,
		logger,
	)
	carService := services.NewCarService(carRepo, logger)
	reservationService := services.NewReservationService(
		reservationRepo, userRepo, carRepo, uow, logger,
	)

	// Inicializar handlers
	userHandler := httphandlers.NewUserHandler(userService)
	authHandler := httphandlers.NewAuthHandler(authService)
	carHandler := httphandlers.NewCarHandler(carService)
	reservationHandler := httphandlers.NewReservationHandler(reservationService)

	// Setup Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Middleware global para adicionar base URL ao contexto
	router.Use(func(c *gin.Context) {
		c.Set("base_url", cfg.Server.BaseURL)
		c.Next()
	})

	// Middleware i18n
	i18nMiddleware := middleware.NewI18nMiddleware(i18nService)
	router.Use(i18nMiddleware.DetectLanguage())

	// Middleware CORS
	router.Use(cors.New(corsConfig(cfg.CORS.AllowedOrigins)))

	// Middleware de autenticação (aplicado por rota)
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret, i18nService, cfg.Server.BaseURL)
	requireAuth := authMiddleware.RequireAuth()

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.Env,
		})
	})

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Cadastro e autenticação ficam fora do guard; todo o resto
		// exige token
		v1.POST("/user", userHandler.Register)
		v1.POST("/authenticate", authHandler.Authenticate)

		user := v1.Group("/user", requireAuth)
		{
			user.GET("", userHandler.ListUsers)
			user.GET("/:id", userHandler.GetUser)
			user.PUT("/:id", userHandler.UpdateUser)
			user.DELETE("/:id", userHandler.DeleteUser)
		}

		car := v1.Group("/car", requireAuth)
		{
			car.POST("", carHandler.CreateCar)
			car.GET("", carHandler.ListCars)
			car.GET("/:id", carHandler.GetCar)
			car.PUT("/:id", carHandler.UpdateCar)
			car.DELETE("/:id", carHandler.DeleteCar)
			car.PATCH("/:id/accessories/:accessoryId", carHandler.UpsertAccessory)
		}

		reserve := v1.Group("/reserve", requireAuth)
		{
			reserve.POST("", reservationHandler.CreateReservation)
			reserve.GET("", reservationHandler.ListReservations)
			reserve.GET("/:id", reservationHandler.GetReservation)
			reserve.PUT("/:id", reservationHandler.UpdateReservation)
			reserve.DELETE("/:id", reservationHandler.DeleteReservation)
		}
	}

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}

// corsConfig monta a configuração de CORS a partir da lista de origens
// separada por vírgula; "*" libera todas
func corsConfig(allowedOrigins string) cors.Config {
	conf := cors.DefaultConfig()
	conf.AllowHeaders = append(conf.AllowHeaders, "Authorization", "Accept-Language")

	if allowedOrigins == "*" {
		conf.AllowAllOrigins = true
		return conf
	}

	origins := strings.Split(allowedOrigins, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}
	conf.AllowOrigins = origins
	return conf
}
