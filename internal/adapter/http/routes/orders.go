package routes

import (
	"net/http"

	"comanda/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathOrders = "/api/orders"

func addOrderRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.PATCH("/:order_id/status", orderHandler.UpdateOrderStatus)
		orders.GET("/kitchen/today/:owner_id", orderHandler.ListTodayOrders)
		orders.GET("/kitchen/statistics/average-time/:owner_id", orderHandler.GetAveragePreparationTime)
	}
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
