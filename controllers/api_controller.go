package controllers

import (
	"errors"
	"gotaskr/constants"
	"gotaskr/services"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// APIController serves the read-only /api/v1 task endpoints. No auth:
// the API exposes the same data the task list page shows.
type IAPIController interface {
	FindAll(ctx *gin.Context)
	FindById(ctx *gin.Context)
}

type APIController struct {
	service services.ITaskService
}

func NewAPIController(service services.ITaskService) IAPIController {
	return &APIController{service: service}
}

func (c *APIController) FindAll(ctx *gin.Context) {
	tasks, err := c.service.FindAll()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": tasks})
}

func (c *APIController) FindById(ctx *gin.Context) {
	taskID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidID})
		return
	}

	task, err := c.service.FindById(uint(taskID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrTaskNotFound})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": task})
}
