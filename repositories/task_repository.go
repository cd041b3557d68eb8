package repositories

import (
	"gotaskr/models"

	"gorm.io/gorm"
)

type ITaskRepository interface {
	FindAll() (*[]models.Task, error)
	FindByStatus(status int) (*[]models.Task, error)
	FindById(taskID uint) (*models.Task, error)
	Create(newTask models.Task) (*models.Task, error)
	UpdateStatus(taskID uint, status int) error
	Delete(taskID uint) error
}

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) ITaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) FindAll() (*[]models.Task, error) {
	var tasks []models.Task
	result := r.db.Find(&tasks)
	if result.Error != nil {
		return nil, result.Error
	}
	return &tasks, nil
}

// FindByStatus returns the open or closed list, ascending by due date.
func (r *TaskRepository) FindByStatus(status int) (*[]models.Task, error) {
	var tasks []models.Task
	result := r.db.Where("status = ?", status).Order("due_date asc").Find(&tasks)
	if result.Error != nil {
		return nil, result.Error
	}
	return &tasks, nil
}

func (r *TaskRepository) FindById(taskID uint) (*models.Task, error) {
	var task models.Task
	result := r.db.First(&task, "id = ?", taskID)
	if result.Error != nil {
		return nil, result.Error
	}
	return &task, nil
}

func (r *TaskRepository) Create(newTask models.Task) (*models.Task, error) {
	result := r.db.Create(&newTask)
	if result.Error != nil {
		return nil, result.Error
	}
	return &newTask, nil
}

func (r *TaskRepository) UpdateStatus(taskID uint, status int) error {
	result := r.db.Model(&models.Task{}).
		Where("id = ?", taskID).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *TaskRepository) Delete(taskID uint) error {
	// 行ごと削除する（ソフトデリートではない）
	result := r.db.Unscoped().Delete(&models.Task{}, "id = ?", taskID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
