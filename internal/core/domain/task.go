package domain

import "time"

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusCancelled  TaskStatus = "cancelled"
)

// StatusGroupOrder is the display order for status-grouped listings.
// Cancelled gets its own group rather than being folded into completed.
var StatusGroupOrder = []TaskStatus{
	TaskStatusPending,
	TaskStatusInProgress,
	TaskStatusCompleted,
	TaskStatusCancelled,
}

// Terminal reports whether a task in this status is past being acted on;
// terminal tasks are never overdue and are excluded from schedule queries.
func (s TaskStatus) Terminal() bool {
	return s == TaskStatusCompleted || s == TaskStatusCancelled
}

func ValidStatus(s TaskStatus) bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted, TaskStatusCancelled:
		return true
	}
	return false
}

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
	TaskPriorityUrgent TaskPriority = "urgent"
)

// Rank orders priorities urgent > high > medium > low. Unknown values rank 0.
func (p TaskPriority) Rank() int {
	switch p {
	case TaskPriorityUrgent:
		return 4
	case TaskPriorityHigh:
		return 3
	case TaskPriorityMedium:
		return 2
	case TaskPriorityLow:
		return 1
	}
	return 0
}

func ValidPriority(p TaskPriority) bool {
	return p.Rank() > 0
}

type Task struct {
	ID            string
	OwnerID       string
	Title         string
	Description   *string
	Status        TaskStatus
	Priority      TaskPriority
	DueDate       *time.Time
	ReminderTimes []time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type CreateTaskInput struct {
	Title         string
	Description   *string
	Priority      TaskPriority
	DueDate       *time.Time
	ReminderTimes []time.Time
}

type UpdateTaskInput struct {
	Title            *string
	Description      *string
	DescriptionSet   bool
	Status           *TaskStatus
	Priority         *TaskPriority
	DueDate          *time.Time
	DueDateSet       bool
	ReminderTimes    []time.Time
	ReminderTimesSet bool
}

type TaskFilter struct {
	Status   *TaskStatus
	Priority *TaskPriority
}

// StatusGroup is one bucket of a status-grouped listing, tasks in store sort order.
type StatusGroup struct {
	Status TaskStatus
	Tasks  []Task
}
