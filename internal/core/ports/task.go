package ports

import (
	"context"
	"time"

	"github.com/james-eo/task-manager/internal/core/domain"
)

// TaskStore holds each owner's task collection. Every operation is scoped to
// a single owner; a store never returns a task across owner boundaries.
type TaskStore interface {
	Insert(ctx context.Context, ownerID string, input domain.CreateTaskInput, now time.Time) (domain.Task, error)
	FindByIDOrTitle(ctx context.Context, ownerID, identifier string) (domain.Task, error)
	Update(ctx context.Context, ownerID, id string, input domain.UpdateTaskInput, now time.Time) (domain.Task, error)
	Complete(ctx context.Context, ownerID, identifier string, now time.Time) (domain.Task, error)
	Delete(ctx context.Context, ownerID, identifier string) (domain.Task, error)
	List(ctx context.Context, ownerID string, filter domain.TaskFilter) ([]domain.Task, error)
	ListGroupedByStatus(ctx context.Context, ownerID string) ([]domain.StatusGroup, error)
	DueToday(ctx context.Context, ownerID string, now time.Time) ([]domain.Task, error)
	DueThisWeek(ctx context.Context, ownerID string, now time.Time) ([]domain.Task, error)
	Overdue(ctx context.Context, ownerID string, now time.Time) ([]domain.Task, error)
}

// TaskDraft is a partial extraction passed to and returned by the assistant's
// enhancement hook.
type TaskDraft struct {
	Title       string
	Priority    domain.TaskPriority
	DueDate     *time.Time
	Description *string
}

// Assistant is the optional natural-language collaborator. Either call may
// fail or time out; the dispatcher degrades gracefully and never depends on
// it for correctness.
type Assistant interface {
	// Reply answers a free-form message that matched no command pattern.
	Reply(ctx context.Context, message, taskContext string) (string, error)
	// EnhanceTask enriches a weak extraction. Implementations return the
	// enriched draft; merging rules belong to the caller.
	EnhanceTask(ctx context.Context, rawMessage string, draft TaskDraft) (TaskDraft, error)
}

// TrackerService is the single entry point the transport layer calls.
type TrackerService interface {
	Handle(ctx context.Context, ownerID, lang, message string, now time.Time) string
}
