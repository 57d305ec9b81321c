package mapper

import (
	"time"

	"github.com/james-eo/task-manager/internal/adapter/http/dto"
	"github.com/james-eo/task-manager/internal/core/domain"
)

func ToTaskGroups(groups []domain.StatusGroup) []dto.TaskGroup {
	out := make([]dto.TaskGroup, 0, len(groups))
	for _, g := range groups {
		out = append(out, dto.TaskGroup{
			Status: string(g.Status),
			Tasks:  ToTaskItems(g.Tasks),
		})
	}
	return out
}

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:        task.ID,
		Title:     task.Title,
		Status:    string(task.Status),
		Priority:  string(task.Priority),
		CreatedAt: task.CreatedAt.Format(time.RFC3339),
		UpdatedAt: task.UpdatedAt.Format(time.RFC3339),
	}

	if task.Description != nil {
		value := *task.Description
		item.Description = &value
	}

	if task.DueDate != nil {
		value := task.DueDate.Format(time.RFC3339)
		item.DueDate = &value
	}

	for _, reminder := range task.ReminderTimes {
		item.ReminderTimes = append(item.ReminderTimes, reminder.Format(time.RFC3339))
	}

	return item
}
