// Package format renders store results into the chat replies users see.
// Every function is pure given the task data, the language and now.
package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"go.uber.org/zap"

	"github.com/james-eo/task-manager/internal/core/domain"
	"github.com/james-eo/task-manager/pkg/translator"
)

func priorityMarker(p domain.TaskPriority) string {
	switch p {
	case domain.TaskPriorityUrgent:
		return "🔴"
	case domain.TaskPriorityHigh:
		return "🟠"
	case domain.TaskPriorityMedium:
		return "🟡"
	default:
		return "🟢"
	}
}

func dueDateLabel(t time.Time) string {
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 {
		return t.Format("2006-01-02")
	}
	return t.Format("2006-01-02 15:04")
}

func TaskCreated(task domain.Task, lang string) string {
	var b strings.Builder
	b.WriteString(localize(lang, "taskCreated", nil))
	b.WriteString(fmt.Sprintf("\n**%s** (ID: %s)", task.Title, task.ID))
	b.WriteString(fmt.Sprintf(
		"\n%s: %s | %s: %s %s",
		localize(lang, "labelStatus", nil), task.Status,
		localize(lang, "labelPriority", nil), task.Priority, priorityMarker(task.Priority),
	))
	if task.DueDate != nil {
		b.WriteString(fmt.Sprintf("\n%s: %s", localize(lang, "labelDue", nil), dueDateLabel(*task.DueDate)))
	}
	if task.Description != nil && *task.Description != "" {
		b.WriteString(fmt.Sprintf("\n%s: %s", localize(lang, "labelDescription", nil), *task.Description))
	}
	return b.String()
}

func TaskCompleted(task domain.Task, lang string) string {
	return localize(lang, "taskCompleted", map[string]interface{}{"Title": task.Title})
}

func TaskDeleted(task domain.Task, lang string) string {
	return localize(lang, "taskDeleted", map[string]interface{}{"Title": task.Title})
}

func TaskNotFound(identifier, lang string) string {
	return localize(lang, "taskNotFound", map[string]interface{}{"Identifier": identifier})
}

func MissingTitle(lang string) string {
	return localize(lang, "missingTitle", nil)
}

func MissingCompleteTarget(lang string) string {
	return localize(lang, "missingCompleteTarget", nil)
}

func MissingDeleteTarget(lang string) string {
	return localize(lang, "missingDeleteTarget", nil)
}

func DueUnresolved(phrase, lang string) string {
	return localize(lang, "dueUnresolved", map[string]interface{}{"Phrase": phrase})
}

func Apology(lang string) string {
	return localize(lang, "assistantApology", nil)
}

func Help(lang string) string {
	return localize(lang, "helpText", nil)
}

// TaskList renders a status-grouped listing. Empty groups are skipped; a
// non-terminal task due before now carries the overdue flag.
func TaskList(groups []domain.StatusGroup, now time.Time, lang string) string {
	total := 0
	for _, g := range groups {
		total += len(g.Tasks)
	}
	if total == 0 {
		return localize(lang, "taskListEmpty", nil)
	}

	var b strings.Builder
	b.WriteString(localize(lang, "taskListHeader", nil))
	b.WriteString("\n")
	for _, g := range groups {
		if len(g.Tasks) == 0 {
			continue
		}
		b.WriteString(fmt.Sprintf("\n**%s** (%d)\n", strings.ToUpper(string(g.Status)), len(g.Tasks)))
		for _, task := range g.Tasks {
			b.WriteString(taskLine(task, now, lang))
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func taskLine(task domain.Task, now time.Time, lang string) string {
	line := fmt.Sprintf("%s %s (ID: %s)", priorityMarker(task.Priority), task.Title, task.ID)
	if task.DueDate != nil {
		line += fmt.Sprintf(" | %s: %s", localize(lang, "labelDue", nil), dueDateLabel(*task.DueDate))
		if task.DueDate.Before(now) && !task.Status.Terminal() {
			line += " " + localize(lang, "overdueFlag", nil)
		}
	}
	return line
}

func localize(lang, msgKey string, data map[string]interface{}) string {
	l := i18n.NewLocalizer(translator.Translator, lang, translator.LanguageEn)
	msg, err := l.Localize(&i18n.LocalizeConfig{MessageID: msgKey, TemplateData: data})
	if err != nil {
		zap.L().Warn("translation not found", zap.String("lang", lang), zap.String("message_id", msgKey), zap.Error(err))
		return msgKey
	}
	return msg
}
