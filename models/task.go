package models

import "time"

type TaskStatus string

const (
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in_progress"
	TaskDone       TaskStatus = "done"
)

type TaskTag string

const (
	TagWork     TaskTag = "work"
	TagPersonal TaskTag = "personal"
	TagHealth   TaskTag = "health"
	TagOther    TaskTag = "other"
)

type Task struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	UserID      uint       `gorm:"index;not null" json:"user_id"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `gorm:"type:text" json:"description,omitempty"`
	Status      TaskStatus `gorm:"size:20;not null;default:todo" json:"status"`
	Tag         TaskTag    `gorm:"size:20;default:other" json:"tag"`
	DueDatetime *time.Time `json:"due_datetime,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
