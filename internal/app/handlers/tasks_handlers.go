package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"todo-server/internal/domain/models"
	"todo-server/internal/domain/services"
)

func HandleGetTask(tasksService *services.TasksService) func(*gin.Context) {
	return func(c *gin.Context) {
		taskID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID in URL path"})
			return
		}

		task, err := tasksService.GetByID(c.Request.Context(), taskID)
		if errors.Is(err, services.ErrTaskDoesNotExist) {
			c.Status(http.StatusNotFound)
			return
		}
		if err != nil {
			// the cause is logged for operability but never echoed back
			log.WithFields(log.Fields{"task_id": taskID, "err": err}).Error("Database error trying to get task")
			c.Status(http.StatusInternalServerError)
			return
		}

		c.JSON(http.StatusOK, task)
	}
}

func HandleCreateTask(tasksService *services.TasksService) func(*gin.Context) {
	return func(c *gin.Context) {
		var unchecked models.UnvalidatedTask
		if err := c.ShouldBindBodyWithJSON(&unchecked); err != nil {
			log.WithFields(log.Fields{"err": err}).Debug("Malformed task received")
			c.JSON(http.StatusBadRequest, gin.H{"error": "Malformed task"})
			return
		}

		taskID, err := tasksService.Create(c.Request.Context(), unchecked)
		if errors.Is(err, models.ErrInvalidTask) {
			log.WithFields(log.Fields{"err": err}).Debug("Malformed task received")
			c.JSON(http.StatusBadRequest, gin.H{"error": "Malformed task"})
			return
		}
		if err != nil {
			log.WithFields(log.Fields{"task_id": taskID, "err": err}).Error("Database error trying to create task")
			c.Status(http.StatusInternalServerError)
			return
		}

		c.String(http.StatusOK, taskID.String())
	}
}
