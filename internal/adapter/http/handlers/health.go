package handlers

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/james-eo/task-manager/internal/adapter/http/middleware"
)

const (
	StatusOk   = "ok"
	StatusDown = "down"
)

// AssistantStatus is what the health report needs to know about the
// natural-language collaborator.
type AssistantStatus interface {
	Configured() bool
}

type HealthBasic struct {
	AppName           string `json:"app_name"`
	AppVersion        string `json:"app_version"`
	CurrentSystemTime string `json:"current_system_time"`
	Message           string `json:"message"`
}

type HealthServices struct {
	Assistant string `json:"assistant"`
}

type HealthAdvanced struct {
	AppName           string         `json:"app_name"`
	AppVersion        string         `json:"app_version"`
	CurrentSystemTime string         `json:"current_system_time"`
	Language          string         `json:"language"`
	Status            HealthServices `json:"status"`
}

type HealthHandler struct {
	assistant AssistantStatus
}

func NewHealthHandler(assistant AssistantStatus) *HealthHandler {
	return &HealthHandler{assistant: assistant}
}

func (h *HealthHandler) CheckHealth(c *gin.Context) {
	// The store is in-process, so the service itself answering means healthy.
	c.JSON(200, HealthBasic{
		AppName:           os.Getenv("APP_NAME"),
		AppVersion:        AppVersion(),
		CurrentSystemTime: time.Now().Format("2006-01-02 15:04:05"),
		Message:           StatusOk,
	})
}

func (h *HealthHandler) CheckHealthReport(c *gin.Context) {
	assistantStatus := StatusDown
	if h.assistant != nil && h.assistant.Configured() {
		assistantStatus = StatusOk
	}

	c.JSON(200, HealthAdvanced{
		AppName:           os.Getenv("APP_NAME"),
		AppVersion:        AppVersion(),
		CurrentSystemTime: time.Now().Format("2006-01-02 15:04:05"),
		Language:          middleware.GetLang(c),
		Status: HealthServices{
			Assistant: assistantStatus,
		},
	})
}

func AppVersion() string {
	version := os.Getenv("APP_VERSION")
	if version == "" {
		return "dev"
	}
	return version
}
