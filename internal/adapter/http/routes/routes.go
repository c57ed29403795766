package routes

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "mecanica_goelzer/docs"
	"mecanica_goelzer/internal/adapter/http/handlers"
	"mecanica_goelzer/internal/adapter/persistence/repository"
	"mecanica_goelzer/internal/domain/entities"
	"mecanica_goelzer/internal/infrastructure/payments"
	"mecanica_goelzer/internal/usecase"
	"mecanica_goelzer/internal/usecase/interfaces"
	"mecanica_goelzer/pkg"
	"mecanica_goelzer/pkg/logger"
	tracing "mecanica_goelzer/pkg/otel"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	defaultPort = "8080"
	serviceName = "mecanica-goelzer"
)

// Run will start the server
func Run() {
	if err := logger.Init(); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tp, shutdownTracing, err := tracing.InitTracing(ctx, tracing.Config{
		ServiceName: serviceName,
		Host:        os.Getenv("OTEL_HOST"),
		Stdout:      strings.EqualFold(os.Getenv("OTEL_STDOUT"), "true"),
		Probability: 1,
	})
	if err != nil {
		logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
	}
	defer shutdownTracing(context.Background())

	storage, closeStorage, err := newSnapshotStorage(ctx, os.Getenv("STORAGE_BACKEND"))
	if err != nil {
		logger.Log.Fatal("Failed to configure storage", zap.Error(err))
	}
	defer closeStorage()

	repo, err := repository.NewEntityRepository(ctx, storage, entities.AllCollections)
	if err != nil {
		logger.Log.Fatal("Failed to open entity store", zap.Error(err))
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		logger.Log.Warn("Mercado Pago gateway not configured", zap.Error(err))
	} else {
		paymentGateway = mpGateway
	}

	srv := &http.Server{
		Addr:              ":" + getenvDefault("PORT", defaultPort),
		Handler:           newRouter(repo, paymentGateway, tp.Tracer(serviceName)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Log.Info("Server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("Failed to startup the application", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Graceful shutdown failed", zap.Error(err))
	}
}

// newRouter wires usecases and handlers on top of an opened store.
func newRouter(repo interfaces.IEntityRepository, gateway interfaces.IPaymentGateway, tracer trace.Tracer) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, tracer)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	addPingRoutes(router)

	h := apiHandlers{
		entity:     handlers.NewEntityHandler(usecase.NewEntityUseCase(repo)),
		order:      handlers.NewOrderHandler(usecase.NewOrderUseCase(repo)),
		receivable: handlers.NewReceivableHandler(usecase.NewReceivableUseCase(repo, gateway)),
		report:     handlers.NewReportHandler(usecase.NewFinanceUseCase(repo)),
		backup:     handlers.NewBackupHandler(usecase.NewBackupUseCase(repo)),
	}
	addAPIRoutes(router.Group(PathAPI), h)

	router.NoRoute(func(c *gin.Context) {
		appErr := pkg.NewDomainErrorSimple("NOT_FOUND", "Route not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
	})
	return router
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
