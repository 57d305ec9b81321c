package apierrors

const (
	MsgInvalidAgentPayload = "invalidAgentPayload"
	MsgMissingAgentFields  = "missingAgentFields"
	MsgMessageRequired     = "messageRequired"
	MsgInternalError       = "internalError"
)
