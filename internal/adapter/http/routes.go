package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tasktrack/internal/adapter/http/handlers"
	"tasktrack/internal/adapter/http/middleware"
	"tasktrack/internal/core/ports"
	"tasktrack/pkg/apierrors"
)

func RegisterRoutes(
	r *gin.Engine,
	authService ports.AuthService,
	healthHandler *handlers.HealthHandler,
	userHandler *handlers.UserHandler,
	categoryHandler *handlers.CategoryHandler,
	taskHandler *handlers.TaskHandler,
) {
	r.GET("/", handlers.Index)

	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)

		api.POST("/users/register", userHandler.Register)
		api.POST("/users/login", userHandler.Login)

		protected := api.Group("")
		protected.Use(middleware.AuthRequired(authService))
		{
			protected.GET("/users", userHandler.ListUsers)
			protected.GET("/users/:id", userHandler.GetUser)
			protected.PUT("/users/:id", userHandler.UpdateUser)
			protected.DELETE("/users/:id", userHandler.DeleteUser)

			protected.GET("/categories", categoryHandler.ListCategories)
			protected.GET("/categories/:id", categoryHandler.GetCategory)
			protected.POST("/categories", categoryHandler.CreateCategory)
			protected.PUT("/categories/:id", categoryHandler.UpdateCategory)
			protected.DELETE("/categories/:id", categoryHandler.DeleteCategory)

			protected.GET("/tasks", taskHandler.ListTasks)
			protected.GET("/tasks/:id", taskHandler.GetTask)
			protected.POST("/tasks", taskHandler.CreateTask)
			protected.PUT("/tasks/:id", taskHandler.UpdateTask)
			protected.DELETE("/tasks/:id", taskHandler.DeleteTask)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		lang := middleware.GetLang(c)
		c.JSON(
			http.StatusNotFound,
			apierrors.CreateError(http.StatusNotFound, apierrors.MsgRouteNotFound, lang),
		)
	})
}
