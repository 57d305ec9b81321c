package validation

import (
	"errors"
	"strings"

	"github.com/james-eo/task-manager/internal/adapter/http/dto"
)

var (
	ErrEmptyEnvelope   = errors.New("empty agent envelope")
	ErrMissingFields   = errors.New("missing required agent fields")
	ErrMessageRequired = errors.New("message is required")
)

// CheckAgentRequest enforces the A2A contract: an entirely empty envelope is
// a platform validator probe, a partially filled one is a client error.
func CheckAgentRequest(req dto.AgentRequest) error {
	if req.MessageID == "" && req.UserID == "" && req.ChannelID == "" && req.Content == "" && req.Timestamp == "" {
		return ErrEmptyEnvelope
	}
	if req.MessageID == "" || req.UserID == "" || strings.TrimSpace(req.Content) == "" {
		return ErrMissingFields
	}
	return nil
}

func CheckTestRequest(req dto.TestRequest) error {
	if strings.TrimSpace(req.Message) == "" {
		return ErrMessageRequired
	}
	return nil
}
