package routes

import (
	"context"
	"log"
	"strconv"

	_ "paystand_bridge/docs" // This will be auto-generated
	"paystand_bridge/internal/adapter/http/handlers"
	repository2 "paystand_bridge/internal/adapter/persistence/repository"
	"paystand_bridge/internal/config"
	"paystand_bridge/internal/infrastructure/database"
	"paystand_bridge/internal/infrastructure/paystand"
	"paystand_bridge/internal/infrastructure/scheduler"
	"paystand_bridge/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const RequestIDHeader = "X-Request-ID"

var router *gin.Engine

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	paystandHandler, reconciler := getDependencies(cfg)

	outboxScheduler := scheduler.NewOutboxScheduler(cfg.OutboxSchedule, reconciler.Run)
	if err := outboxScheduler.Start(); err != nil {
		log.Fatalf("Failed to schedule outbox reconciliation: %v", err)
	}
	defer outboxScheduler.Stop()

	router = newRouter(paystandHandler)

	err = router.Run(":" + strconv.Itoa(cfg.Port))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getDependencies(cfg config.Config) (*handlers.PaystandHandler, *usecase.OutboxReconciler) {
	ddb, err := database.ConnectDynamoDB(context.Background(), database.DynamoDBConfig{
		Region:          cfg.AWSRegion,
		AccessKeyID:     cfg.AWSAccessKeyID,
		SecretAccessKey: cfg.AWSSecretAccessKey,
		Endpoint:        cfg.DynamoDBEndpoint,
	})
	if err != nil {
		log.Fatalf("Failed to connect to DynamoDB: %v", err)
	}

	customerRepo := repository2.NewCustomerDynamoRepository(ddb, cfg.CustomersTable)
	payerRepo := repository2.NewPayerDynamoRepository(ddb, cfg.PayersTable)
	outboxRepo := repository2.NewOutboxDynamoRepository(ddb, cfg.OutboxTable)

	paystandClient, err := paystand.NewClient(paystand.Config{
		BaseURL:      cfg.PaystandBaseURL,
		TenantHeader: cfg.PaystandTenantHeader,
		TenantID:     cfg.PaystandCustomerID,
		Timeout:      cfg.PaystandTimeout,
	})
	if err != nil {
		log.Fatalf("Paystand client not configured: %v", err)
	}
	if cfg.PaystandCustomerID == "" {
		log.Printf("[paystand][routes] PAYSTAND_CUSTOMER_ID is empty; tenant header %s will not be sent", cfg.PaystandTenantHeader)
	}

	writer := usecase.NewLocalWriter(customerRepo, payerRepo)
	relay := usecase.NewRelay(paystandClient, writer, outboxRepo)
	paystandUseCase := usecase.NewPaystandUseCase(relay, customerRepo, payerRepo)
	reconciler := usecase.NewOutboxReconciler(outboxRepo, writer, cfg.OutboxBatchSize, cfg.OutboxMaxAttempts)

	return handlers.NewPaystandHandler(paystandUseCase), reconciler
}

func newRouter(paystandHandler *handlers.PaystandHandler) *gin.Engine {
	r := gin.New()
	setMiddlewares(r)

	// Swagger documentation endpoint
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	root := r.Group("")
	addPingRoutes(root)
	addPaystandRoutes(root, paystandHandler)
	return r
}

func setMiddlewares(r *gin.Engine) {
	r.Use(gin.Logger())
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	r.Use(requestID())
	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", RequestIDHeader},
		ExposeHeaders:    []string{RequestIDHeader},
		AllowCredentials: false,
	}))
	r.Use(gzip.Gzip(gzip.DefaultCompression))
}

// requestID tags every request with an id, reusing the caller's when sent.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(RequestIDHeader, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}
