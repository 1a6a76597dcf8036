package router

import (
	"context"
	"net/http"
	"time"

	"github.com/emperor6007/EtherLend/configs"
	"github.com/emperor6007/EtherLend/internal/app/handlers"
	"github.com/emperor6007/EtherLend/internal/app/middleware"
	"github.com/emperor6007/EtherLend/internal/pkg/cache"
	"github.com/emperor6007/EtherLend/internal/pkg/db"
	"github.com/emperor6007/EtherLend/internal/pkg/downstreams"
	"github.com/emperor6007/EtherLend/internal/pkg/models"
	"github.com/emperor6007/EtherLend/internal/pkg/notification"
	"github.com/emperor6007/EtherLend/internal/pkg/services"
	"github.com/emperor6007/EtherLend/internal/pkg/store"
	"github.com/emperor6007/EtherLend/internal/pkg/store/local"
	"github.com/emperor6007/EtherLend/internal/pkg/utils/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
)

// SetupRouter wires repositories, services and handlers onto a gin engine.
// probedRate is the rate configuration the startup probe managed to read, or
// nil when the session started demoted.
func SetupRouter(
	ctx context.Context,
	manager *db.ConnectionManager,
	localStore *local.Store,
	workerPool *worker.WorkerPool,
	redisClient *redis.Client,
	probedRate *models.RateConfig,
) *gin.Engine {

	r := gin.Default()
	meter := otel.Meter(configs.SERVICE_NAME)
	r.Use(otelgin.Middleware(configs.SERVICE_NAME))
	r.Use(middleware.NewMetricMiddleware(meter))
	r.Use(middleware.AttachRequestDetails())

	// Repositories over the failover pair.
	rateRepo := store.NewRateConfigRepository(manager, localStore, configs.DEFAULT_BASE_RATE)
	loanRepo := store.NewLoanRepository(manager, localStore)
	seenRepo := store.NewSeenWalletRepository(manager, localStore)

	var loanCache *cache.LoanCache
	if redisClient != nil && configs.LOAN_CACHE_ENABLED {
		loanCache = cache.NewLoanCache(redisClient, time.Duration(configs.LOAN_CACHE_TTL_IN_SECONDS)*time.Second)
	}

	emailService := notification.NewEmailService(
		configs.EMAIL_API_URL,
		configs.EMAIL_SERVICE_ID,
		configs.EMAIL_TEMPLATE_ID,
		configs.EMAIL_PUBLIC_KEY,
	)
	balanceClient := downstreams.NewBalanceClient(
		configs.ETH_RPC_ENDPOINTS,
		time.Duration(configs.RPC_TIMEOUT_IN_SECONDS)*time.Second,
	)

	rateService := services.NewRateService(rateRepo, configs.DEFAULT_BASE_RATE)
	if probedRate != nil {
		rateService.Seed(probedRate)
	} else {
		rateService.Init(ctx)
	}

	loanService := services.NewLoanService(loanRepo, rateService, loanCache, emailService, workerPool, configs.EMAIL_ENABLED)
	walletService := services.NewWalletService(balanceClient, seenRepo, emailService, workerPool, configs.EMAIL_ENABLED, configs.OPS_NOTIFY_EMAIL)
	preferencesService := services.NewPreferencesService(localStore)

	walletHandler := handlers.NewWalletHandler(walletService)
	loanHandler := handlers.NewLoanHandler(loanService, rateService)
	adminHandler := handlers.NewAdminHandler(loanService, rateService, configs.ADMIN_PASSWORD)
	preferencesHandler := handlers.NewPreferencesHandler(preferencesService)

	api := r.Group("/api/v1")
	api.POST("/wallet/connect", walletHandler.ConnectWallet)
	api.GET("/rate", loanHandler.GetRate)
	api.GET("/rate/quote", loanHandler.QuoteRate)
	api.POST("/loans", loanHandler.SubmitLoan)
	api.GET("/loans", loanHandler.ListLoans)
	api.GET("/preferences/theme", preferencesHandler.GetTheme)
	api.PUT("/preferences/theme", preferencesHandler.PutTheme)
	api.POST("/admin/login", adminHandler.Login)

	admin := api.Group("/admin", middleware.AdminAuth(configs.ADMIN_PASSWORD))
	admin.PUT("/rate", adminHandler.UpdateRate)
	admin.PUT("/loans/:id/status", adminHandler.UpdateLoanStatus)
	admin.GET("/loans", adminHandler.ListLoans)
	admin.GET("/stats", adminHandler.Stats)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":          "ok",
			"remoteAvailable": manager.RemoteAvailable(),
		})
	})

	return r
}
