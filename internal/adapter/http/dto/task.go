package dto

type TaskItem struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   *string  `json:"description,omitempty"`
	Status        string   `json:"status"`
	Priority      string   `json:"priority"`
	DueDate       *string  `json:"due_date,omitempty"`
	ReminderTimes []string `json:"reminder_times,omitempty"`
	CreatedAt     string   `json:"created_at"`
	UpdatedAt     string   `json:"updated_at"`
}

// TaskGroup is one status bucket of the inspection listing.
type TaskGroup struct {
	Status string     `json:"status"`
	Tasks  []TaskItem `json:"tasks"`
}
