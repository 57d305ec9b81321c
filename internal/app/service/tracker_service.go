package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/james-eo/task-manager/internal/app/command"
	"github.com/james-eo/task-manager/internal/app/format"
	"github.com/james-eo/task-manager/internal/app/temporal"
	"github.com/james-eo/task-manager/internal/core/domain"
	"github.com/james-eo/task-manager/internal/core/ports"
)

const defaultAssistantTimeout = 10 * time.Second

// weakTitleLength mirrors the enhancement trigger of the original agent: a
// very short title is worth a second look by the assistant.
const weakTitleLength = 5

// TrackerService dispatches one chat message at a time: classify, run the
// matching store operation, format the reply. The assistant is optional and
// only consulted on the fallback and enhancement paths, both time-bounded.
type TrackerService struct {
	store            ports.TaskStore
	assistant        ports.Assistant
	assistantTimeout time.Duration
}

var _ ports.TrackerService = (*TrackerService)(nil)

func NewTrackerService(store ports.TaskStore, assistant ports.Assistant, assistantTimeout time.Duration) *TrackerService {
	if assistantTimeout <= 0 {
		assistantTimeout = defaultAssistantTimeout
	}
	return &TrackerService{
		store:            store,
		assistant:        assistant,
		assistantTimeout: assistantTimeout,
	}
}

// Handle processes one message for one owner. Every outcome, including
// not-found and assistant failures, becomes a user-facing reply; nothing
// escapes as an error.
func (s *TrackerService) Handle(ctx context.Context, ownerID, lang, message string, now time.Time) string {
	switch command.Classify(message) {
	case command.KindCreate:
		return s.createTask(ctx, ownerID, lang, message, now)
	case command.KindList:
		return s.listTasks(ctx, ownerID, lang, now)
	case command.KindComplete:
		return s.completeTask(ctx, ownerID, lang, message, now)
	case command.KindDelete:
		return s.deleteTask(ctx, ownerID, lang, message)
	case command.KindHelp:
		return format.Help(lang)
	default:
		return s.fallback(ctx, ownerID, lang, message)
	}
}

func (s *TrackerService) createTask(ctx context.Context, ownerID, lang, message string, now time.Time) string {
	fields, err := command.ExtractCreateFields(message, now)
	if err != nil {
		return format.MissingTitle(lang)
	}

	input := domain.CreateTaskInput{
		Title:    fields.Title,
		Priority: fields.Priority,
		DueDate:  fields.DueDate,
	}

	if s.shouldEnhance(fields) {
		s.enhance(ctx, message, fields, &input)
	}

	if input.DueDate != nil {
		input.ReminderTimes = []time.Time{temporal.ReminderTime(*input.DueDate, input.Priority)}
	}

	task, err := s.store.Insert(ctx, ownerID, input, now)
	if err != nil {
		zap.L().Error("failed to insert task", zap.String("owner_id", ownerID), zap.Error(err))
		return format.Apology(lang)
	}

	reply := format.TaskCreated(task, lang)
	if fields.DueUnresolved && task.DueDate == nil {
		reply += "\n" + format.DueUnresolved(fields.DuePhrase, lang)
	}
	return reply
}

func (s *TrackerService) shouldEnhance(fields command.CreateFields) bool {
	if s.assistant == nil {
		return false
	}
	return len(fields.Title) < weakTitleLength || (!fields.PriorityExplicit && fields.DueDate == nil)
}

// enhance lets the assistant enrich a weak extraction. Fields the extractor
// resolved from an explicit qualifier are never overridden.
func (s *TrackerService) enhance(ctx context.Context, message string, fields command.CreateFields, input *domain.CreateTaskInput) {
	callCtx, cancel := context.WithTimeout(ctx, s.assistantTimeout)
	defer cancel()

	draft := ports.TaskDraft{
		Title:    fields.Title,
		Priority: fields.Priority,
		DueDate:  fields.DueDate,
	}
	enhanced, err := s.assistant.EnhanceTask(callCtx, message, draft)
	if err != nil {
		zap.L().Warn("task enhancement failed, using extracted values", zap.Error(err))
		return
	}

	if enhanced.Title != "" {
		input.Title = enhanced.Title
	}
	if !fields.PriorityExplicit && domain.ValidPriority(enhanced.Priority) {
		input.Priority = enhanced.Priority
	}
	if fields.DueDate == nil && enhanced.DueDate != nil {
		input.DueDate = enhanced.DueDate
	}
	if enhanced.Description != nil {
		input.Description = enhanced.Description
	}
}

func (s *TrackerService) listTasks(ctx context.Context, ownerID, lang string, now time.Time) string {
	groups, err := s.store.ListGroupedByStatus(ctx, ownerID)
	if err != nil {
		zap.L().Error("failed to list tasks", zap.String("owner_id", ownerID), zap.Error(err))
		return format.Apology(lang)
	}
	return format.TaskList(groups, now, lang)
}

func (s *TrackerService) completeTask(ctx context.Context, ownerID, lang, message string, now time.Time) string {
	identifier := command.ExtractIdentifier(command.KindComplete, message)
	if identifier == "" {
		return format.MissingCompleteTarget(lang)
	}

	task, err := s.store.Complete(ctx, ownerID, identifier, now)
	if errors.Is(err, domain.ErrTaskNotFound) {
		return format.TaskNotFound(identifier, lang)
	}
	if err != nil {
		zap.L().Error("failed to complete task", zap.String("owner_id", ownerID), zap.Error(err))
		return format.Apology(lang)
	}
	return format.TaskCompleted(task, lang)
}

func (s *TrackerService) deleteTask(ctx context.Context, ownerID, lang, message string) string {
	identifier := command.ExtractIdentifier(command.KindDelete, message)
	if identifier == "" {
		return format.MissingDeleteTarget(lang)
	}

	task, err := s.store.Delete(ctx, ownerID, identifier)
	if errors.Is(err, domain.ErrTaskNotFound) {
		return format.TaskNotFound(identifier, lang)
	}
	if err != nil {
		zap.L().Error("failed to delete task", zap.String("owner_id", ownerID), zap.Error(err))
		return format.Apology(lang)
	}
	return format.TaskDeleted(task, lang)
}

// fallback hands unmatched messages to the assistant with a short summary of
// the owner's recent tasks, and degrades to a static apology on any failure.
func (s *TrackerService) fallback(ctx context.Context, ownerID, lang, message string) string {
	if s.assistant == nil {
		return format.Apology(lang)
	}

	callCtx, cancel := context.WithTimeout(ctx, s.assistantTimeout)
	defer cancel()

	reply, err := s.assistant.Reply(callCtx, message, s.taskContext(ctx, ownerID))
	if err != nil || strings.TrimSpace(reply) == "" {
		zap.L().Warn("assistant fallback failed", zap.String("owner_id", ownerID), zap.Error(err))
		return format.Apology(lang)
	}
	return reply
}

func (s *TrackerService) taskContext(ctx context.Context, ownerID string) string {
	tasks, err := s.store.List(ctx, ownerID, domain.TaskFilter{})
	if err != nil {
		return ""
	}

	recent := tasks
	if len(recent) > 3 {
		recent = recent[:3]
	}
	titles := make([]string, 0, len(recent))
	for _, t := range recent {
		titles = append(titles, t.Title)
	}
	return fmt.Sprintf("User has %d tasks. Recent tasks: %s", len(tasks), strings.Join(titles, ", "))
}
