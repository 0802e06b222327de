package chat

// Turn sender roles. The server never stores turns; each request carries
// its own history.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one caller-supplied conversation entry, oldest first.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request is the POST /api/chat body.
type Request struct {
	Message string `json:"message"`
	History []Turn `json:"history,omitempty"`
}

// Response is the success payload for POST /api/chat.
type Response struct {
	Success  bool   `json:"success"`
	Response string `json:"response"`
}
