package request

type ChatMessage struct {
	Role    string `json:"role" binding:"required,oneof=user assistant"`
	Content string `json:"content" binding:"required"`
}

type ChatRequest struct {
	Message string `json:"message" binding:"required"`
	// History is the prior turns of this conversation, oldest first.
	History []ChatMessage `json:"history,omitempty"`
}
