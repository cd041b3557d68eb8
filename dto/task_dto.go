package dto

import "gotaskr/models"

// CreateTaskInput carries a new task submission. DueDate uses the
// MM/DD/YYYY form the task list always displayed.
type CreateTaskInput struct {
	Name     string `json:"name" binding:"required"`
	DueDate  string `json:"due_date" binding:"required"`
	Priority int    `json:"priority" binding:"required"`
}

// TaskListResponse is what every task-page route renders: both lists,
// plus the one-shot message a browser would have seen as a flash.
type TaskListResponse struct {
	Open    []models.Task `json:"open"`
	Closed  []models.Task `json:"closed"`
	Message string        `json:"message,omitempty"`
}

const DueDateLayout = "01/02/2006"
