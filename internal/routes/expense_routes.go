package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"fleetflow/internal/controllers"
	"fleetflow/internal/middleware"
)

func ExpenseRoutes(r *gin.Engine, db *gorm.DB) {
	ctrl := controllers.NewExpenseController(db)
	expense := r.Group("/expenses")
	expense.Use(middleware.RequireAuth())
	{
		expense.GET("", ctrl.ListExpenses)
		expense.POST("", ctrl.CreateExpense)
	}
}
