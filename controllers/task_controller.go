package controllers

import (
	"errors"
	"gotaskr/constants"
	"gotaskr/dto"
	"gotaskr/models"
	"gotaskr/services"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ITaskController interface {
	List(ctx *gin.Context)
	Create(ctx *gin.Context)
	Complete(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type TaskController struct {
	service services.ITaskService
}

func NewTaskController(service services.ITaskService) ITaskController {
	return &TaskController{service: service}
}

func (c *TaskController) List(ctx *gin.Context) {
	c.renderTaskList(ctx, http.StatusOK, "")
}

func (c *TaskController) Create(ctx *gin.Context) {
	user, exists := ctx.Get("user")
	if !exists {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	userID := user.(*models.User).ID

	var input dto.CreateTaskInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_, err := c.service.Create(input, userID)
	if err != nil {
		if errors.Is(err, services.ErrInvalidDueDate) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidInput})
			return
		}
		log.Printf("Create task error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	c.renderTaskList(ctx, http.StatusCreated, constants.MsgTaskCreated)
}

func (c *TaskController) Complete(ctx *gin.Context) {
	user, taskID, ok := c.mutationArgs(ctx)
	if !ok {
		return
	}

	err := c.service.Complete(taskID, user)
	if err != nil {
		if errors.Is(err, services.ErrNotOwner) {
			// 他人のタスクは警告だけ出して何もしない
			c.renderTaskList(ctx, http.StatusOK, constants.MsgNotYoursToUpdate)
			return
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrTaskNotFound})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	c.renderTaskList(ctx, http.StatusOK, constants.MsgTaskCompleted)
}

func (c *TaskController) Delete(ctx *gin.Context) {
	user, taskID, ok := c.mutationArgs(ctx)
	if !ok {
		return
	}

	err := c.service.Delete(taskID, user)
	if err != nil {
		if errors.Is(err, services.ErrNotOwner) {
			c.renderTaskList(ctx, http.StatusOK, constants.MsgNotYoursToDelete)
			return
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrTaskNotFound})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	c.renderTaskList(ctx, http.StatusOK, constants.MsgTaskDeleted)
}

func (c *TaskController) mutationArgs(ctx *gin.Context) (*models.User, uint, bool) {
	user, exists := ctx.Get("user")
	if !exists {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return nil, 0, false
	}

	taskID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidID})
		return nil, 0, false
	}

	return user.(*models.User), uint(taskID), true
}

// renderTaskList is what every task-page route ends with: the current
// open and closed lists plus the flash-style message for this request.
func (c *TaskController) renderTaskList(ctx *gin.Context, status int, message string) {
	openTasks, err := c.service.OpenTasks()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	closedTasks, err := c.service.ClosedTasks()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(status, dto.TaskListResponse{
		Open:    *openTasks,
		Closed:  *closedTasks,
		Message: message,
	})
}
