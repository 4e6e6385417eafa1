package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Index answers the bare root with a short endpoint directory.
func Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "TaskTrack API",
		"version": getAppVersion(),
		"endpoints": gin.H{
			"users": gin.H{
				"register": "POST /api/users/register",
				"login":    "POST /api/users/login",
				"list":     "GET /api/users",
				"get":      "GET /api/users/:id",
				"update":   "PUT /api/users/:id",
				"delete":   "DELETE /api/users/:id",
			},
			"categories": gin.H{
				"list":   "GET /api/categories",
				"get":    "GET /api/categories/:id",
				"create": "POST /api/categories",
				"update": "PUT /api/categories/:id",
				"delete": "DELETE /api/categories/:id",
			},
			"tasks": gin.H{
				"list":   "GET /api/tasks",
				"get":    "GET /api/tasks/:id",
				"create": "POST /api/tasks",
				"update": "PUT /api/tasks/:id",
				"delete": "DELETE /api/tasks/:id",
			},
		},
	})
}
