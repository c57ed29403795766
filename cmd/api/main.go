package main

import (
	_ "mecanica_goelzer/docs"
	"mecanica_goelzer/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Mecânica Goelzer API
// @version         1.0
// @description     Auto repair shop management: customers, vehicles, work orders, parts inventory and finances.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /api

func main() {
	routes.Run()
}
