// Package ai implements the Assistant port against an OpenAI-compatible
// chat-completions API (Groq in production).
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/james-eo/task-manager/internal/core/domain"
	"github.com/james-eo/task-manager/internal/core/ports"
)

const systemPrompt = `You are TaskPro, a friendly task tracking assistant. You help users manage their
tasks and deadlines. Be concise and actionable. Known commands: create task,
list tasks, complete task, delete task, help.`

type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

var _ ports.Assistant = (*Client)(nil)

func NewClient(baseURL, apiKey, model string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Configured reports whether an API key is present; without one every call
// fails fast with domain.ErrAssistantUnavailable.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (c *Client) Reply(ctx context.Context, message, taskContext string) (string, error) {
	content := message
	if taskContext != "" {
		content = fmt.Sprintf("%s\n\nContext: %s", message, taskContext)
	}
	return c.complete(ctx, content)
}

// EnhanceTask asks the model for enriched task fields as strict JSON. Invalid
// enum values and malformed JSON are discarded rather than propagated.
func (c *Client) EnhanceTask(ctx context.Context, rawMessage string, draft ports.TaskDraft) (ports.TaskDraft, error) {
	prompt := buildEnhancementPrompt(rawMessage, draft)
	answer, err := c.complete(ctx, prompt)
	if err != nil {
		return ports.TaskDraft{}, err
	}

	var enhanced struct {
		Title       string  `json:"title"`
		Priority    string  `json:"priority"`
		DueDate     *string `json:"dueDate"`
		Description *string `json:"description"`
	}
	if err := json.Unmarshal([]byte(extractJSON(answer)), &enhanced); err != nil {
		return ports.TaskDraft{}, fmt.Errorf("%w: unparseable enhancement: %v", domain.ErrAssistantUnavailable, err)
	}

	out := ports.TaskDraft{Title: strings.TrimSpace(enhanced.Title)}
	if p := domain.TaskPriority(strings.ToLower(enhanced.Priority)); domain.ValidPriority(p) {
		out.Priority = p
	}
	if enhanced.DueDate != nil && *enhanced.DueDate != "" && *enhanced.DueDate != "null" {
		if due, err := parseDueDate(*enhanced.DueDate); err == nil {
			out.DueDate = &due
		}
	}
	if enhanced.Description != nil && *enhanced.Description != "" && *enhanced.Description != "null" {
		out.Description = enhanced.Description
	}
	return out, nil
}

func (c *Client) complete(ctx context.Context, userContent string) (string, error) {
	if !c.Configured() {
		return "", domain.ErrAssistantUnavailable
	}

	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userContent},
		},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrAssistantUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrAssistantUnavailable, err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d", domain.ErrAssistantUnavailable, resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrAssistantUnavailable, err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("%w: empty completion", domain.ErrAssistantUnavailable)
	}
	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}

func buildEnhancementPrompt(rawMessage string, draft ports.TaskDraft) string {
	var b strings.Builder
	b.WriteString("Given this task request: \"")
	b.WriteString(rawMessage)
	b.WriteString("\"\n\nEnhance the task with intelligent defaults.\n\nCurrent extracted:\n")
	fmt.Fprintf(&b, "- Title: %q\n", draft.Title)
	fmt.Fprintf(&b, "- Priority: %q\n", draft.Priority)
	if draft.DueDate != nil {
		fmt.Fprintf(&b, "- Due Date: %s\n", draft.DueDate.Format(time.RFC3339))
	} else {
		b.WriteString("- Due Date: none\n")
	}
	b.WriteString(`
Respond in this exact JSON format:
{
  "title": "enhanced title",
  "priority": "low|medium|high|urgent",
  "dueDate": "YYYY-MM-DD or null",
  "description": "helpful description or null"
}`)
	return b.String()
}

func parseDueDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

// extractJSON tolerates models that wrap the JSON object in prose or fences.
func extractJSON(answer string) string {
	start := strings.Index(answer, "{")
	end := strings.LastIndex(answer, "}")
	if start >= 0 && end > start {
		return answer[start : end+1]
	}
	return answer
}
