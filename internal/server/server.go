// Package server is the composition root: it wires config, database,
// cache, storage, queue, scheduler, events, HTTP and gRPC together and
// runs them until shutdown.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/app/jobs"
	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/app/models"
	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/app/notifications"
	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/app/repositories"
	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/app/routes"
	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/app/services"
	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/config"
	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/database/seeders"
	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/pkg/cache"
	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/pkg/database"
	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/pkg/event"
	grpcserver "github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/pkg/grpc"
	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/pkg/logger"
	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/pkg/metrics"
	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/pkg/middleware"
	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/pkg/migration"
	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/pkg/notification"
	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/pkg/queue"
	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/pkg/reqid"
	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/pkg/router"
	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/pkg/schedule"
	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/pkg/storage"
	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/pkg/ws"

	"gorm.io/gorm"
)

const queueWorkers = 5

// Start boots every subsystem and blocks until SIGINT/SIGTERM.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}

	mongoSink, err := logger.AttachMongoSink()
	if err != nil {
		logger.Warn("server: mongo log sink unavailable", "error", err)
	}
	if mongoSink != nil {
		defer mongoSink.Close()
	}

	db, err := database.Connect()
	if err != nil {
		return err
	}

	if err := migration.New(db).Run(); err != nil {
		return err
	}
	// Seeders are idempotent, so a fresh database gets the default
	// catalog without a separate `shopd seed` step.
	if err := seeders.RunAll(db); err != nil {
		return err
	}

	cache.Connect()
	storage.Connect()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	svc, orderFeed := buildServices(db)
	go orderFeed.Run()

	wireEvents(orderFeed)
	startQueue(ctx, db)
	registerSchedules(svc.Catalog)
	schedule.Start(ctx)

	grpcSrv, _, err := grpcserver.Start(config.GRPCPort(), dbPing(db))
	if err != nil {
		return err
	}

	httpSrv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           buildRouter(svc).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server: listening",
			"shop", config.ShopName(),
			"http_port", config.AppPort(),
			"grpc_port", config.GRPCPort(),
			"env", config.AppEnv(),
		)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("server: shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server: http shutdown", "error", err)
	}
	grpcserver.Stop(grpcSrv)
	event.Flush() // drop listeners so late async fires are no-ops
	return nil
}

// buildServices constructs the repository and service graph around the
// injected DB handle.
func buildServices(db *gorm.DB) (routes.Services, *ws.Hub) {
	productRepo := repositories.NewProductRepository(db)
	orderRepo := repositories.NewOrderRepository(db)

	orderFeed := ws.NewHub()

	svc := routes.Services{
		Auth:      services.NewAuthService(),
		Catalog:   services.NewCatalogService(productRepo),
		Orders:    services.NewOrderService(db, productRepo, orderRepo),
		Payments:  services.NewPaymentService(),
		OrderFeed: orderFeed,
	}
	return svc, orderFeed
}

// buildRouter assembles the middleware stack and mounts the API.
func buildRouter(svc routes.Services) *router.Router {
	r := router.New()
	r.Use(
		metrics.Middleware(),
		reqid.Middleware(),
		middleware.Recovery,
		middleware.Logger,
		middleware.CORS(middleware.DefaultCORSOptions()),
		middleware.RateLimit(120, time.Minute),
	)
	routes.RegisterAPI(r, svc)
	return r
}

// wireEvents registers the in-process event listeners. Orders fan out to
// the confirmation job and the admin live feed; low-stock warnings go
// straight to the shop owner.
func wireEvents(orderFeed *ws.Hub) {
	event.Listen(services.EventOrderPlaced, func(payload interface{}) {
		order, ok := payload.(models.Order)
		if !ok {
			return
		}

		if err := queue.Dispatch(&jobs.OrderConfirmation{Order: order}); err != nil {
			logger.Error("server: dispatch order confirmation", "order_id", order.ID, "error", err)
		}

		if msg, err := json.Marshal(map[string]interface{}{
			"event": services.EventOrderPlaced,
			"order": order,
		}); err == nil {
			select {
			case orderFeed.Broadcast <- msg:
			default: // feed full, drop rather than block order placement
			}
		}
	})

	event.Listen(services.EventStockLow, func(payload interface{}) {
		product, ok := payload.(models.Product)
		if !ok {
			return
		}
		notification.SendAsync(config.ShopOwnerEmail(), &notifications.LowStock{
			Product:   product,
			Threshold: config.LowStockThreshold(),
		})
	})
}

// startQueue picks the redis driver when the cache connection is up,
// falling back to the in-memory driver otherwise.
func startQueue(ctx context.Context, db *gorm.DB) {
	jobs.Register()
	queue.UseDB(db)

	if cache.RDB != nil {
		queue.SetDriver(queue.NewRedisDriver(cache.RDB))
	} else {
		logger.Warn("server: redis unavailable, using in-memory queue driver")
		queue.SetDriver(queue.NewMemoryDriver())
	}

	queue.StartWorkers(ctx, queueWorkers)
}

// registerSchedules sets up recurring housekeeping tasks.
func registerSchedules(catalog *services.CatalogService) {
	schedule.Hourly().Name("low-stock-sweep").WithoutOverlapping().Run(func() {
		threshold := config.LowStockThreshold()
		low, err := catalog.LowStock(threshold)
		if err != nil {
			logger.Error("schedule: low-stock sweep", "error", err)
			return
		}
		for _, p := range low {
			logger.Warn("schedule: product low on stock",
				"product", p.Name, "stock", p.Stock, "threshold", threshold)
		}
	})
}

// dbPing adapts the gorm handle into the health check the gRPC server
// expects.
func dbPing(db *gorm.DB) func() error {
	return func() error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Ping()
	}
}
