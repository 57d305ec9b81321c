package command

import (
	"regexp"
	"strings"
	"time"

	"github.com/james-eo/task-manager/internal/app/temporal"
	"github.com/james-eo/task-manager/internal/core/domain"
)

// titlePatterns is an ordered precedence list: the first pattern that
// matches wins. Order matters and must not be reshuffled.
var titlePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)create\s+(?:a\s+)?(?:task|todo)\s+(?:for\s+)?(.+)`),
	regexp.MustCompile(`(?i)add\s+(?:a\s+)?(?:task|todo)\s+(?:for\s+)?(.+)`),
	regexp.MustCompile(`(?i)new\s+(?:task|todo)\s+(?:for\s+)?(.+)`),
	regexp.MustCompile(`(?i)make\s+(?:a\s+)?(?:task|todo)\s+(?:for\s+)?(.+)`),
	regexp.MustCompile(`(?i)(?:create|add|make)\s+(.+)(?:\s+task|\s+todo)`),
}

var (
	priorityPattern   = regexp.MustCompile(`(?i)\s*\b(low|medium|high|urgent)\s*priority`)
	duePattern        = regexp.MustCompile(`(?i)\s*\bdue\s+(\S+)`)
	identifierPattern = map[Kind]*regexp.Regexp{
		KindComplete: regexp.MustCompile(`(?i)complete\s+(?:task|todo)\s+(.+)`),
		KindDelete:   regexp.MustCompile(`(?i)delete\s+(?:task|todo)\s+(.+)`),
	}
)

// CreateFields is the structured result of parsing a create command.
type CreateFields struct {
	Title       string
	Description *string

	// Priority defaults to medium; PriorityExplicit records whether the
	// user spelled out a qualifier, in which case enhancement must not
	// override it.
	Priority         domain.TaskPriority
	PriorityExplicit bool

	// DueDate is set when a due qualifier resolved. An unresolved phrase is
	// stripped from the title but kept here so a downstream step can ask
	// for clarification instead of guessing.
	DueDate       *time.Time
	DuePhrase     string
	DueUnresolved bool
}

// ExtractCreateFields parses the title, priority qualifier and due qualifier
// out of a create command. Returns domain.ErrMissingTitle when no title
// pattern matches or stripping qualifiers leaves the title empty.
func ExtractCreateFields(text string, now time.Time) (CreateFields, error) {
	fields := CreateFields{Priority: domain.TaskPriorityMedium}

	var title string
	for _, pattern := range titlePatterns {
		if m := pattern.FindStringSubmatch(text); m != nil {
			title = m[1]
			break
		}
	}
	if title == "" {
		return CreateFields{}, domain.ErrMissingTitle
	}

	if m := priorityPattern.FindStringSubmatch(title); m != nil {
		fields.Priority = domain.TaskPriority(strings.ToLower(m[1]))
		fields.PriorityExplicit = true
		title = priorityPattern.ReplaceAllString(title, "")
	}

	if m := duePattern.FindStringSubmatch(title); m != nil {
		fields.DuePhrase = m[1]
		if resolved, ok := temporal.Resolve(m[1], now); ok {
			fields.DueDate = &resolved
		} else {
			fields.DueUnresolved = true
		}
		title = duePattern.ReplaceAllString(title, "")
	}

	fields.Title = strings.TrimSpace(title)
	if fields.Title == "" {
		return CreateFields{}, domain.ErrMissingTitle
	}
	return fields, nil
}

// ExtractIdentifier pulls the id-or-title argument out of a complete or
// delete command. The empty string means the user gave no identifier.
func ExtractIdentifier(kind Kind, text string) string {
	pattern, ok := identifierPattern[kind]
	if !ok {
		return ""
	}
	m := pattern.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}
