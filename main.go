package main

import (
	"log"
	"os"

	"github.com/brunorehling/api-emergente/config"
	"github.com/brunorehling/api-emergente/routes"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Set up logging to stdout
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	// The signing key is loaded once at startup and injected everywhere it
	// is needed; nothing reads it per request.
	jwtKey := os.Getenv("JWT_KEY")
	if jwtKey == "" {
		log.Fatal("JWT_KEY is not set")
	}

	db := config.InitDB()

	r := gin.Default()

	routes.SetupRoutes(r, db, []byte(jwtKey))

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	log.Printf("Starting server on port %s", port)
	r.Run(":" + port)
}
