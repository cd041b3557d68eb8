package models

import (
	"time"

	"gorm.io/gorm"
)

// Task status values. There is no reopen: a closed task stays closed
// until it is deleted.
const (
	TaskStatusClosed = 0
	TaskStatusOpen   = 1
)

type Task struct {
	gorm.Model
	Name       string    `gorm:"not null"`
	DueDate    time.Time `gorm:"not null"`
	Priority   int       `gorm:"not null"`
	PostedDate time.Time `gorm:"not null"`
	Status     int       `gorm:"not null;default:1"`
	UserID     uint      `gorm:"not null"`
}
