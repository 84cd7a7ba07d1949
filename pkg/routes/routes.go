package pkg

import (
	"context"
	"log"
	"os"

	"RoomAllocator/internal/auth"
	"RoomAllocator/internal/config"
	"RoomAllocator/internal/notify"
	"RoomAllocator/internal/runs"
	"RoomAllocator/internal/store"
	"RoomAllocator/pkg/middleware"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"
)

var RoomAllocModule = fx.Module("echo",
	fx.Provide(NewEchoServer),
	fx.Provide(auth.NewOperatorRepository),
	fx.Provide(auth.NewOperatorService),
	fx.Provide(auth.NewOperatorHandler),
	fx.Provide(store.NewRoomRepository),
	fx.Provide(store.NewCourseRepository),
	fx.Provide(store.NewHandler),
	fx.Provide(notify.NewSummaryNotifier),
	fx.Provide(runs.NewRunRepository),
	fx.Provide(runs.NewSimulationRepository),
	fx.Provide(runs.NewRunService),
	fx.Provide(runs.NewSimulationService),
	fx.Provide(runs.NewRunHandler),
	fx.Provide(runs.NewSimulationHandler),
	fx.Provide(runs.NewComparisonScheduler),
	fx.Invoke(RegisterRoutes),
	fx.Invoke(EnsureUniqueIndexes),
	fx.Invoke(BootstrapOperator),
	fx.Invoke(StartComparisonScheduler),
)

func NewEchoServer(lc fx.Lifecycle) *echo.Echo {
	e := echo.New()
	middleware.SetupMiddleware(e)
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}
	if port[0] != ':' {
		port = ":" + port
	}
	log.Println("Server running on http://localhost" + port[1:])
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := e.Start(port); err != nil {
					log.Fatal("Failed to start the server:", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("shutting down the server ...")
			return e.Shutdown(ctx)
		},
	})
	return e
}

// EnsureUniqueIndexes builds unique indexes on rooms.name, courses.name and
// operators.username. The auth repository's duplicate-username check relies
// on them: without these, mongo.Collection never rejects a duplicate insert
// and mongo.IsDuplicateKeyError can never fire.
func EnsureUniqueIndexes(lc fx.Lifecycle, db *mongo.Database) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			config.EnsureUniqueIndex(db, "rooms", "name")
			config.EnsureUniqueIndex(db, "courses", "name")
			config.EnsureUniqueIndex(db, "operators", "username")
			return nil
		},
	})
}

// BootstrapOperator seeds the initial operator account, if configured.
func BootstrapOperator(lc fx.Lifecycle, service *auth.OperatorService) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return service.Bootstrap(ctx)
		},
	})
}

// StartComparisonScheduler starts the periodic re-allocation comparison.
func StartComparisonScheduler(scheduler *runs.ComparisonScheduler, lc fx.Lifecycle) {
	scheduler.Start(lc)
}

func RegisterRoutes(e *echo.Echo, operatorHandler *auth.OperatorHandler, storeHandler *store.Handler, runHandler *runs.RunHandler, simHandler *runs.SimulationHandler) {
	e.POST("/login", operatorHandler.Login)

	protected := e.Group("/api")
	protected.Use(middleware.JWTMiddleware)
	protected.Use(middleware.CasbinMiddleware)

	protected.POST("/rooms", storeHandler.UploadRooms)
	protected.POST("/courses", storeHandler.UploadCourses)

	protected.POST("/allocations", runHandler.CreateRun)
	protected.GET("/allocations/:id", runHandler.GetRun)

	protected.POST("/simulations", simHandler.CreateSimulation)
	protected.GET("/simulations/:id", simHandler.GetSimulation)
}
