package main

import (
	_ "comanda/docs"
	"comanda/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Comanda Order API
// @version         1.0
// @description     Restaurant order engine: pricing, preparation lifecycle, real-time kitchen feed and statistics. Backed by DynamoDB and RabbitMQ.

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
