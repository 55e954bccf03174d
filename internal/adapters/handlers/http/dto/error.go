package dto

// Error is the JSON error body. Details are only filled outside production.
type Error struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Details string `json:"details,omitempty"`
}

// Message is a typed message pushed over the usage stream
type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// MessageTypeUsage tags usage snapshots on the stream
const MessageTypeUsage = "usage"
