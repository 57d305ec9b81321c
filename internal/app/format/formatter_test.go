package format_test

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/james-eo/task-manager/internal/app/format"
	"github.com/james-eo/task-manager/internal/core/domain"
	"github.com/james-eo/task-manager/pkg/translator"
)

const translationFolder = "../../../pkg/translator/translation"

func TestMain(m *testing.M) {
	translator.InitTranslator(translator.Config{
		TranslationFolder:  translationFolder,
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})
	os.Exit(m.Run())
}

var now = time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)

func sampleTask(title string, priority domain.TaskPriority, due *time.Time, status domain.TaskStatus) domain.Task {
	return domain.Task{
		ID:        "01HTASK",
		Title:     title,
		Status:    status,
		Priority:  priority,
		DueDate:   due,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestTaskCreated_IncludesFields(t *testing.T) {
	due := time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC)
	task := sampleTask("Review proposal", domain.TaskPriorityHigh, &due, domain.TaskStatusPending)

	out := format.TaskCreated(task, translator.LanguageEn)

	require.Contains(t, out, "Task created successfully")
	require.Contains(t, out, "**Review proposal** (ID: 01HTASK)")
	require.Contains(t, out, "high")
	require.Contains(t, out, "🟠")
	require.Contains(t, out, "Due: 2025-01-12")
}

func TestTaskCreated_OmitsAbsentDueDate(t *testing.T) {
	task := sampleTask("t", domain.TaskPriorityMedium, nil, domain.TaskStatusPending)
	out := format.TaskCreated(task, translator.LanguageEn)
	require.NotContains(t, out, "Due:")
}

func TestTaskCreated_French(t *testing.T) {
	task := sampleTask("t", domain.TaskPriorityMedium, nil, domain.TaskStatusPending)
	out := format.TaskCreated(task, translator.LanguageFr)
	require.Contains(t, out, "Tâche créée avec succès")
}

func TestTaskList_Empty(t *testing.T) {
	groups := []domain.StatusGroup{
		{Status: domain.TaskStatusPending},
		{Status: domain.TaskStatusInProgress},
		{Status: domain.TaskStatusCompleted},
		{Status: domain.TaskStatusCancelled},
	}
	out := format.TaskList(groups, now, translator.LanguageEn)
	require.Contains(t, out, "don't have any tasks yet")
}

func TestTaskList_GroupsAndOverdueFlag(t *testing.T) {
	past := now.AddDate(0, 0, -2)
	future := now.AddDate(0, 0, 2)

	groups := []domain.StatusGroup{
		{Status: domain.TaskStatusPending, Tasks: []domain.Task{
			sampleTask("late one", domain.TaskPriorityUrgent, &past, domain.TaskStatusPending),
			sampleTask("on time", domain.TaskPriorityLow, &future, domain.TaskStatusPending),
		}},
		{Status: domain.TaskStatusInProgress},
		{Status: domain.TaskStatusCompleted, Tasks: []domain.Task{
			sampleTask("finished late", domain.TaskPriorityMedium, &past, domain.TaskStatusCompleted),
		}},
		{Status: domain.TaskStatusCancelled},
	}

	out := format.TaskList(groups, now, translator.LanguageEn)

	require.Contains(t, out, "**PENDING** (2)")
	require.Contains(t, out, "**COMPLETED** (1)")
	require.NotContains(t, out, "IN-PROGRESS")

	lines := strings.Split(out, "\n")
	var lateLine, doneLine string
	for _, l := range lines {
		if strings.Contains(l, "late one") {
			lateLine = l
		}
		if strings.Contains(l, "finished late") {
			doneLine = l
		}
	}
	require.Contains(t, lateLine, "OVERDUE")
	// Terminal tasks are never flagged, even with a past due date.
	require.NotContains(t, doneLine, "OVERDUE")
}

func TestTaskList_PureGivenNow(t *testing.T) {
	due := now.AddDate(0, 0, -1)
	groups := []domain.StatusGroup{
		{Status: domain.TaskStatusPending, Tasks: []domain.Task{
			sampleTask("x", domain.TaskPriorityMedium, &due, domain.TaskStatusPending),
		}},
	}
	first := format.TaskList(groups, now, translator.LanguageEn)
	second := format.TaskList(groups, now, translator.LanguageEn)
	require.Equal(t, first, second)
}

func TestTaskNotFound_IncludesIdentifier(t *testing.T) {
	out := format.TaskNotFound("groceries", translator.LanguageEn)
	require.Contains(t, out, `"groceries"`)
}

func TestDueUnresolved_IncludesPhrase(t *testing.T) {
	out := format.DueUnresolved("someday", translator.LanguageEn)
	require.Contains(t, out, `"someday"`)
}

func TestHelp_ListsCommands(t *testing.T) {
	out := format.Help(translator.LanguageEn)
	for _, cmd := range []string{"create task", "list tasks", "complete task", "delete task"} {
		require.Contains(t, out, cmd)
	}
}

func TestUnknownLanguageFallsBackToEnglish(t *testing.T) {
	out := format.Help("de")
	require.Contains(t, out, "create task")
}
