package dto

// AgentRequest is the A2A message envelope delivered by the chat platform.
type AgentRequest struct {
	MessageID string `json:"messageId"`
	UserID    string `json:"userId"`
	ChannelID string `json:"channelId"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

type AgentResponse struct {
	MessageID string        `json:"messageId"`
	Content   string        `json:"content"`
	Timestamp string        `json:"timestamp"`
	Metadata  AgentMetadata `json:"metadata"`
}

type AgentMetadata struct {
	AgentName         string `json:"agentName"`
	OriginalMessageID string `json:"originalMessageId"`
}

type TestRequest struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

type TestResponse struct {
	Response  string `json:"response"`
	Timestamp string `json:"timestamp"`
}
