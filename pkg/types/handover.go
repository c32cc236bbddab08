package types

type HandoverResult struct {
	Success        bool   `json:"success"`
	Message        string `json:"message"`
	ConversationID string `json:"conversation_id"`
	Email          string `json:"email,omitempty"`
	Error          string `json:"error,omitempty"`
}
