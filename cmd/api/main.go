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
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/postoverde/cashback-backend/docs"
	"github.com/postoverde/cashback-backend/internal/domain/entities"
	"github.com/postoverde/cashback-backend/internal/handlers/dto"
	httphandlers "github.com/postoverde/cashback-backend/internal/handlers/http"
	"github.com/postoverde/cashback-backend/internal/handlers/middleware"
	"github.com/postoverde/cashback-backend/internal/infrastructure/auth"
	"github.com/postoverde/cashback-backend/internal/infrastructure/config"
	"github.com/postoverde/cashback-backend/internal/infrastructure/i18n"
	"github.com/postoverde/cashback-backend/internal/infrastructure/logging"
	"github.com/postoverde/cashback-backend/internal/infrastructure/persistence/postgres"
	"github.com/postoverde/cashback-backend/internal/infrastructure/ratelimit"
	"github.com/postoverde/cashback-backend/internal/services"
)

// @title Posto Verde Cashback API
// @version 1.0
// @description API de fidelidade e cashback para postos de combustível
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Carregar variáveis do .env para o ambiente, se existir
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting cashback backend",
		"env", cfg.Env,
		"version", "dev",
	)

	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	i18nService, err := i18n.NewService("./internal/infrastructure/i18n/locales", "pt-BR")
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// Repositories
	userRepo := postgres.NewUserRepository(db)
	txRepo := postgres.NewTransactionRepository(db)
	codeRepo := postgres.NewCashbackCodeRepository(db)
	configRepo := postgres.NewConfigurationRepository(db)
	uow := postgres.NewUnitOfWork(db)

	// Infraestrutura de autenticação e bloqueio de login
	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.AccessExpiry)
	limiter := ratelimit.NewMemoryLimiter(cfg.Security.MaxLoginAttempts, cfg.Security.LockoutWindow)

	// Services
	authService := services.NewAuthService(userRepo, limiter, tokens, logger)
	userService := services.NewUserService(userRepo, logger)
	purchaseService := services.NewPurchaseService(userRepo, txRepo, uow, logger)
	walletService := services.NewWalletService(userRepo, codeRepo, uow, logger)
	txService := services.NewTransactionService(txRepo, logger)
	adminService := services.NewAdminService(userRepo, txRepo, codeRepo, configRepo, uow, logger)

	// Dados iniciais: configurações e contas admin/funcionário
	if err := adminService.Seed(context.Background()); err != nil {
		logger.Error("failed to seed database", "error", err)
		log.Fatal(err)
	}

	// Handlers
	authHandler := httphandlers.NewAuthHandler(authService, logger)
	userHandler := httphandlers.NewUserHandler(userService, logger)
	txHandler := httphandlers.NewTransactionHandler(txService, logger)
	employeeHandler := httphandlers.NewEmployeeHandler(userService, purchaseService, logger)
	walletHandler := httphandlers.NewWalletHandler(walletService, logger)
	adminHandler := httphandlers.NewAdminHandler(txService, adminService, logger)
	statusHandler := httphandlers.NewStatusHandler("Posto Verde Cashback API")

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	// Validações de campo customizadas (tag cpf)
	dto.RegisterCustomValidators()

	i18nMiddleware := middleware.NewI18nMiddleware(i18nService)
	router.Use(i18nMiddleware.DetectLanguage())

	router.Use(cors.New(corsConfig(cfg.CORS.AllowedOrigins)))

	authMiddleware := middleware.NewAuthMiddleware(tokens)

	api := router.Group("/api")
	{
		api.GET("/status", statusHandler.Status)

		api.POST("/cadastro", authHandler.Cadastro)
		api.POST("/cadastro-funcionario", authHandler.CadastroFuncionario)
		api.POST("/login", authHandler.Login)

		api.GET("/usuario/:id", userHandler.GetUsuario)
		api.PUT("/usuarios/:id/saldo", userHandler.AtualizarSaldo)
		api.GET("/transacoes/:userId", txHandler.ListarPorUsuario)

		api.POST("/funcionario/buscar-cliente", employeeHandler.BuscarCliente)
		api.POST("/funcionario/registrar-abastecimento", employeeHandler.RegistrarAbastecimento)

		api.POST("/converter-pontos", walletHandler.ConverterPontos)
		api.POST("/gerar-codigo-cashback", walletHandler.GerarCodigo)
		api.POST("/validar-codigo-cashback", walletHandler.ValidarCodigo)

		admin := api.Group("/admin", authMiddleware.RequireRole(entities.RoleAdmin))
		{
			admin.GET("/transacoes", adminHandler.ListarTransacoes)
			admin.GET("/estatisticas", adminHandler.Estatisticas)
			admin.POST("/limpar-banco", adminHandler.LimparBanco)
		}
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", "error", err)
	}

	logger.Info("server stopped")
}

// corsConfig monta a configuração de CORS a partir da lista de origens
// separadas por vírgula ("*" libera todas)
func corsConfig(allowedOrigins string) cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization", "Accept-Language")

	if allowedOrigins == "*" {
		corsCfg.AllowAllOrigins = true
		return corsCfg
	}

	origins := strings.Split(allowedOrigins, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}
	corsCfg.AllowOrigins = origins
	return corsCfg
}
