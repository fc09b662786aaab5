package routes

import (
	"github.com/brunorehling/api-emergente/controllers"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupCatalogoRoutes(r *gin.Engine, db *gorm.DB) {
	autorController := controllers.NewAutorController(db)
	livroController := controllers.NewLivroController(db)
	reviewController := controllers.NewReviewController(db)
	comentarioController := controllers.NewComentarioController(db)

	autores := r.Group("/autores")
	{
		autores.GET("", autorController.List)
		autores.POST("", autorController.Create)
		autores.DELETE("/:id", autorController.Delete)
	}

	livros := r.Group("/livros")
	{
		livros.GET("", livroController.List)
		livros.GET("/:id", livroController.GetByID)
		livros.POST("", livroController.Create)
	}

	reviews := r.Group("/reviews")
	{
		reviews.GET("", reviewController.List)
		reviews.GET("/:id", reviewController.GetByID)
		reviews.POST("", reviewController.Create)
		reviews.DELETE("/:id", reviewController.Delete)

		reviews.GET("/:id/comentarios", comentarioController.ListByReview)
		reviews.POST("/:id/comentarios", comentarioController.Create)
	}
}
