package config

import (
	"fmt"
	"log"
	"os"

	"github.com/brunorehling/api-emergente/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func InitDB() *gorm.DB {
	dbHost := os.Getenv("DB_HOST")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")
	dbPort := os.Getenv("DB_PORT")

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		dbHost, dbUser, dbPassword, dbName, dbPort)

	// TranslateError turns driver duplicate-key and FK errors into
	// gorm.ErrDuplicatedKey / gorm.ErrForeignKeyViolated, which the services
	// map onto the closed error taxonomy.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := db.AutoMigrate(
		&models.Admin{},
		&models.Usuario{},
		&models.Log{},
		&models.Autor{},
		&models.Livro{},
		&models.Review{},
		&models.Comentario{},
		&models.Denuncia{},
	); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	return db
}
