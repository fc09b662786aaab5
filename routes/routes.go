package routes

import (
	"github.com/brunorehling/api-emergente/controllers"
	"github.com/brunorehling/api-emergente/middleware"
	"github.com/brunorehling/api-emergente/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, jwtKey []byte) {
	// Services
	creds := services.NewCredentialStore(db)
	audit := services.NewAuditLog(db)
	auth := services.NewAuthService(creds, audit, jwtKey)
	reports := services.NewReportWorkflow(db)

	// Controllers
	authController := controllers.NewAuthController(auth)
	usuarioController := controllers.NewUsuarioController(db, creds)
	denunciaController := controllers.NewDenunciaController(reports)
	adminController := controllers.NewAdminController(db)
	uploadController := controllers.NewUploadController()

	// Public routes
	r.POST("/admins/login", authController.AdminLogin)
	r.POST("/usuarios/login", authController.UsuarioLogin)

	r.GET("/usuarios", usuarioController.List)
	r.POST("/usuarios", usuarioController.Create)
	r.GET("/usuarios/:id", usuarioController.GetByID)

	r.GET("/denuncias", denunciaController.List)
	r.POST("/denuncias", denunciaController.Create)

	SetupCatalogoRoutes(r, db)

	// Admin routes
	protected := r.Group("")
	protected.Use(middleware.AdminAuth(jwtKey))
	{
		protected.GET("/admins", adminController.List)
		protected.POST("/livros/capa/upload-url", uploadController.GetCapaUploadURL)
	}
}
