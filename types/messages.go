package types

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Password string `json:"password"`
}

// MessageResponse is the generic {message} JSON body used by login/upload.
type MessageResponse struct {
	Message string `json:"message"`
}

// AuthStatusResponse is the body of GET /auth-status.
type AuthStatusResponse struct {
	Authenticated bool `json:"authenticated"`
}

// Notification is broadcast over the notify websocket after server-side events.
type Notification struct {
	Type    string         `json:"type"`
	Title   string         `json:"title,omitempty"`
	Message string         `json:"message,omitempty"`
	Data    map[string]any `json:"data,omitempty"`
}

// Notification types.
const (
	NotifyTypeFileUploaded = "file_uploaded"
)
