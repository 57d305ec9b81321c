// Package command turns free-text chat messages into structured task
// commands: a classifier decides the intent, an extractor pulls the fields.
package command

import "strings"

type Kind string

const (
	KindCreate   Kind = "create"
	KindList     Kind = "list"
	KindComplete Kind = "complete"
	KindDelete   Kind = "delete"
	KindHelp     Kind = "help"
	KindFallback Kind = "fallback"
)

var createVerbs = []string{"create", "add", "new", "make"}
var listVerbs = []string{"list", "show"}

// Classify maps a message to exactly one command kind. Matching is
// case-insensitive on the whitespace-trimmed text. Structured commands are
// checked before help, so "help me complete task X" completes the task.
func Classify(text string) Kind {
	text = strings.ToLower(strings.TrimSpace(text))

	if !mentionsTask(text) {
		if strings.Contains(text, "help") {
			return KindHelp
		}
		return KindFallback
	}

	if containsAny(text, createVerbs) {
		return KindCreate
	}
	if containsAny(text, listVerbs) {
		return KindList
	}
	if strings.Contains(text, "complete") {
		return KindComplete
	}
	if strings.Contains(text, "delete") {
		return KindDelete
	}
	if strings.Contains(text, "help") {
		return KindHelp
	}
	return KindFallback
}

func mentionsTask(text string) bool {
	return strings.Contains(text, "task") || strings.Contains(text, "todo")
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
