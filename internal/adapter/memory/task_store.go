// Package memory is the in-process TaskStore adapter. Collections live for
// the lifetime of the process; restarts start empty.
package memory

import (
	"context"
	"crypto/rand"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/james-eo/task-manager/internal/app/temporal"
	"github.com/james-eo/task-manager/internal/core/domain"
	"github.com/james-eo/task-manager/internal/core/ports"
)

type TaskStore struct {
	mu     sync.RWMutex
	owners map[string]*ownerTasks

	entropyMu sync.Mutex
	entropy   *ulid.MonotonicEntropy
}

// ownerTasks serializes all mutation of one owner's collection. Different
// owners hold different locks and never contend.
type ownerTasks struct {
	mu    sync.Mutex
	tasks []*domain.Task
}

var _ ports.TaskStore = (*TaskStore)(nil)

func NewTaskStore() *TaskStore {
	return &TaskStore{
		owners:  make(map[string]*ownerTasks),
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

func (s *TaskStore) owner(ownerID string) *ownerTasks {
	s.mu.RLock()
	ot, ok := s.owners[ownerID]
	s.mu.RUnlock()
	if ok {
		return ot
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if ot, ok = s.owners[ownerID]; !ok {
		ot = &ownerTasks{}
		s.owners[ownerID] = ot
	}
	return ot
}

func (s *TaskStore) newID(now time.Time) string {
	s.entropyMu.Lock()
	defer s.entropyMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(now), s.entropy).String()
}

func (s *TaskStore) Insert(_ context.Context, ownerID string, input domain.CreateTaskInput, now time.Time) (domain.Task, error) {
	priority := input.Priority
	if !domain.ValidPriority(priority) {
		priority = domain.TaskPriorityMedium
	}

	task := &domain.Task{
		ID:            s.newID(now),
		OwnerID:       ownerID,
		Title:         input.Title,
		Description:   copyString(input.Description),
		Status:        domain.TaskStatusPending,
		Priority:      priority,
		DueDate:       copyTime(input.DueDate),
		ReminderTimes: copyTimes(input.ReminderTimes),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	ot := s.owner(ownerID)
	ot.mu.Lock()
	ot.tasks = append(ot.tasks, task)
	ot.mu.Unlock()

	return *task, nil
}

func (s *TaskStore) FindByIDOrTitle(_ context.Context, ownerID, identifier string) (domain.Task, error) {
	ot := s.owner(ownerID)
	ot.mu.Lock()
	defer ot.mu.Unlock()

	task := ot.find(identifier)
	if task == nil {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	return *task, nil
}

func (s *TaskStore) Update(_ context.Context, ownerID, id string, input domain.UpdateTaskInput, now time.Time) (domain.Task, error) {
	ot := s.owner(ownerID)
	ot.mu.Lock()
	defer ot.mu.Unlock()

	var task *domain.Task
	for _, t := range ot.tasks {
		if t.ID == id {
			task = t
			break
		}
	}
	if task == nil {
		return domain.Task{}, domain.ErrTaskNotFound
	}

	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.DescriptionSet {
		task.Description = copyString(input.Description)
	}
	if input.Status != nil {
		task.Status = *input.Status
	}
	if input.Priority != nil {
		task.Priority = *input.Priority
	}
	if input.DueDateSet {
		task.DueDate = copyTime(input.DueDate)
	}
	if input.ReminderTimesSet {
		task.ReminderTimes = copyTimes(input.ReminderTimes)
	}
	task.UpdatedAt = now

	return *task, nil
}

func (s *TaskStore) Complete(_ context.Context, ownerID, identifier string, now time.Time) (domain.Task, error) {
	ot := s.owner(ownerID)
	ot.mu.Lock()
	defer ot.mu.Unlock()

	task := ot.find(identifier)
	if task == nil {
		return domain.Task{}, domain.ErrTaskNotFound
	}

	task.Status = domain.TaskStatusCompleted
	task.UpdatedAt = now
	return *task, nil
}

func (s *TaskStore) Delete(_ context.Context, ownerID, identifier string) (domain.Task, error) {
	ot := s.owner(ownerID)
	ot.mu.Lock()
	defer ot.mu.Unlock()

	task := ot.find(identifier)
	if task == nil {
		return domain.Task{}, domain.ErrTaskNotFound
	}

	for i, t := range ot.tasks {
		if t == task {
			removed := *t
			ot.tasks = append(ot.tasks[:i], ot.tasks[i+1:]...)
			return removed, nil
		}
	}
	return domain.Task{}, domain.ErrTaskNotFound
}

func (s *TaskStore) List(_ context.Context, ownerID string, filter domain.TaskFilter) ([]domain.Task, error) {
	ot := s.owner(ownerID)
	ot.mu.Lock()
	defer ot.mu.Unlock()

	tasks := make([]domain.Task, 0, len(ot.tasks))
	for _, t := range ot.tasks {
		if filter.Status != nil && t.Status != *filter.Status {
			continue
		}
		if filter.Priority != nil && t.Priority != *filter.Priority {
			continue
		}
		tasks = append(tasks, *t)
	}

	sortTasks(tasks)
	return tasks, nil
}

func (s *TaskStore) ListGroupedByStatus(ctx context.Context, ownerID string) ([]domain.StatusGroup, error) {
	tasks, err := s.List(ctx, ownerID, domain.TaskFilter{})
	if err != nil {
		return nil, err
	}

	buckets := make(map[domain.TaskStatus][]domain.Task, len(domain.StatusGroupOrder))
	for _, t := range tasks {
		buckets[t.Status] = append(buckets[t.Status], t)
	}

	groups := make([]domain.StatusGroup, 0, len(domain.StatusGroupOrder))
	for _, status := range domain.StatusGroupOrder {
		groups = append(groups, domain.StatusGroup{Status: status, Tasks: buckets[status]})
	}
	return groups, nil
}

func (s *TaskStore) DueToday(ctx context.Context, ownerID string, now time.Time) ([]domain.Task, error) {
	start := temporal.StartOfDay(now)
	return s.dueBetween(ctx, ownerID, start, start.AddDate(0, 0, 1))
}

func (s *TaskStore) DueThisWeek(ctx context.Context, ownerID string, now time.Time) ([]domain.Task, error) {
	start := temporal.StartOfDay(now)
	return s.dueBetween(ctx, ownerID, start, start.AddDate(0, 0, 7))
}

func (s *TaskStore) Overdue(_ context.Context, ownerID string, now time.Time) ([]domain.Task, error) {
	ot := s.owner(ownerID)
	ot.mu.Lock()
	defer ot.mu.Unlock()

	var tasks []domain.Task
	for _, t := range ot.tasks {
		if t.DueDate == nil || t.Status.Terminal() {
			continue
		}
		if t.DueDate.Before(now) {
			tasks = append(tasks, *t)
		}
	}

	sortTasks(tasks)
	return tasks, nil
}

func (s *TaskStore) dueBetween(_ context.Context, ownerID string, start, end time.Time) ([]domain.Task, error) {
	ot := s.owner(ownerID)
	ot.mu.Lock()
	defer ot.mu.Unlock()

	var tasks []domain.Task
	for _, t := range ot.tasks {
		if t.DueDate == nil || t.Status.Terminal() {
			continue
		}
		if !t.DueDate.Before(start) && t.DueDate.Before(end) {
			tasks = append(tasks, *t)
		}
	}

	sortTasks(tasks)
	return tasks, nil
}

// find resolves an identifier with exact id match taking precedence over a
// case-insensitive title substring match, first hit in insertion order.
func (ot *ownerTasks) find(identifier string) *domain.Task {
	for _, t := range ot.tasks {
		if t.ID == identifier {
			return t
		}
	}
	lowered := strings.ToLower(identifier)
	for _, t := range ot.tasks {
		if strings.Contains(strings.ToLower(t.Title), lowered) {
			return t
		}
	}
	return nil
}

// sortTasks orders by priority descending; within equal priority, dated tasks
// come before undated and dated tasks sort ascending by due date.
func sortTasks(tasks []domain.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		if a.Priority.Rank() != b.Priority.Rank() {
			return a.Priority.Rank() > b.Priority.Rank()
		}
		switch {
		case a.DueDate != nil && b.DueDate != nil:
			return a.DueDate.Before(*b.DueDate)
		case a.DueDate != nil:
			return true
		default:
			return false
		}
	})
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	value := *s
	return &value
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	value := *t
	return &value
}

func copyTimes(times []time.Time) []time.Time {
	if len(times) == 0 {
		return nil
	}
	out := make([]time.Time, len(times))
	copy(out, times)
	return out
}
