package services

import (
	"errors"
	"gotaskr/constants"
	"gotaskr/dto"
	"gotaskr/models"
	"gotaskr/repositories"
	"time"
)

// ErrNotOwner is returned when a user who neither owns a task nor has
// the admin role tries to complete or delete it. Callers treat it as a
// refusal to act, not a failure.
var ErrNotOwner = errors.New("task belongs to another user")

var ErrInvalidDueDate = errors.New("invalid due date")

type ITaskService interface {
	FindAll() (*[]models.Task, error)
	FindById(taskID uint) (*models.Task, error)
	OpenTasks() (*[]models.Task, error)
	ClosedTasks() (*[]models.Task, error)
	Create(createTaskInput dto.CreateTaskInput, userID uint) (*models.Task, error)
	Complete(taskID uint, user *models.User) error
	Delete(taskID uint, user *models.User) error
}

type TaskService struct {
	repository repositories.ITaskRepository
}

func NewTaskService(repository repositories.ITaskRepository) ITaskService {
	return &TaskService{repository: repository}
}

func (s *TaskService) FindAll() (*[]models.Task, error) {
	return s.repository.FindAll()
}

func (s *TaskService) FindById(taskID uint) (*models.Task, error) {
	return s.repository.FindById(taskID)
}

func (s *TaskService) OpenTasks() (*[]models.Task, error) {
	return s.repository.FindByStatus(models.TaskStatusOpen)
}

func (s *TaskService) ClosedTasks() (*[]models.Task, error) {
	return s.repository.FindByStatus(models.TaskStatusClosed)
}

func (s *TaskService) Create(createTaskInput dto.CreateTaskInput, userID uint) (*models.Task, error) {
	dueDate, err := time.Parse(dto.DueDateLayout, createTaskInput.DueDate)
	if err != nil {
		return nil, ErrInvalidDueDate
	}

	newTask := models.Task{
		Name:       createTaskInput.Name,
		DueDate:    dueDate,
		Priority:   createTaskInput.Priority,
		PostedDate: time.Now().UTC(),
		Status:     models.TaskStatusOpen,
		UserID:     userID,
	}
	return s.repository.Create(newTask)
}

func (s *TaskService) Complete(taskID uint, user *models.User) error {
	task, err := s.repository.FindById(taskID)
	if err != nil {
		return err
	}

	if !s.canModify(task, user) {
		return ErrNotOwner
	}

	return s.repository.UpdateStatus(taskID, models.TaskStatusClosed)
}

func (s *TaskService) Delete(taskID uint, user *models.User) error {
	task, err := s.repository.FindById(taskID)
	if err != nil {
		return err
	}

	if !s.canModify(task, user) {
		return ErrNotOwner
	}

	return s.repository.Delete(taskID)
}

// canModify implements the ownership gate: the creator of a task and
// any admin may complete or delete it, nobody else.
func (s *TaskService) canModify(task *models.Task, user *models.User) bool {
	return user.Role == constants.RoleAdmin || task.UserID == user.ID
}
