package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"fleetflow/internal/controllers"
)

func AuthRoutes(r *gin.Engine, db *gorm.DB) {
	ctrl := controllers.NewAuthController(db)
	auth := r.Group("/auth")
	{
		auth.POST("/register", ctrl.Register)
		auth.POST("/login", ctrl.Login)
	}
}
