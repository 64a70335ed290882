package routes

import (
	"log/slog"
	"os"
	"strconv"

	_ "comanda/docs" // swag-generated swagger spec
	"comanda/internal/adapter/http/handlers"
	"comanda/internal/adapter/persistence/repository"
	"comanda/internal/infrastructure/database"
	"comanda/internal/infrastructure/feed"
	"comanda/internal/usecase"
	"comanda/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultPort = 8080

// Run wires the service together and starts the HTTP server.
func Run() {
	log := newLogger()
	slog.SetDefault(log)

	setMiddlewares(log)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(log)

	port := defaultPort
	if v, err := strconv.Atoi(os.Getenv("HTTP_PORT")); err == nil && v > 0 {
		port = v
	}

	if err := router.Run(":" + strconv.Itoa(port)); err != nil {
		log.Error("failed to start the application", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func getRoutes(log *slog.Logger) {
	ddb := database.ConnectDynamoDB()

	orderRepo := repository.NewOrderDynamoRepository(ddb)
	menuRepo := repository.NewMenuDynamoRepository(ddb)
	feeRepo := repository.NewFeeDynamoRepository(ddb)
	accountRepo := repository.NewAccountDynamoRepository(ddb)

	var kitchenFeed interfaces.IKitchenFeed
	rabbitFeed, err := feed.NewRabbitMQKitchenFeed(os.Getenv("RABBITMQ_URL"), log)
	if err != nil {
		// The feed is best-effort; the REST surface still works without it.
		log.Error("kitchen feed not connected", slog.String("error", err.Error()))
		kitchenFeed = feed.Discard{}
	} else {
		kitchenFeed = rabbitFeed
	}

	orderUseCase := usecase.NewOrderUseCase(orderRepo, menuRepo, feeRepo, accountRepo, kitchenFeed, log)
	orderHandler := handlers.NewOrderHandler(orderUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addOrderRoutes(v1, orderHandler)
}

func setMiddlewares(log *slog.Logger) {
	router.Use(RequestID())
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error("recovered from panic", slog.Any("panic", recovered))
		c.AbortWithStatus(500)
	}))
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})).With(slog.String("service", "comanda-order-service"))
}
