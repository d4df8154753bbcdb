package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"todo-server/internal/app/handlers"
	"todo-server/internal/domain/services"
)

func SetupDefaultRouter() *gin.Engine {
	r := gin.Default()

	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	return r
}

func RegisterTaskRoutes(r *gin.Engine, tasksService *services.TasksService) {
	r.GET("/task/:id", handlers.HandleGetTask(tasksService))
	r.POST("/task", handlers.HandleCreateTask(tasksService))
}
