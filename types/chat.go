package types

// ChatResult is the outcome of one chat turn before HTTP marshaling.
type ChatResult struct {
	Text       string
	Audio      []byte // MP3 bytes, nil when no voice response was requested
	ResponseID string // set only when audio was synthesized and stored
}

type ChatResponse struct {
	Text       string `json:"text"`
	Audio      string `json:"audio,omitempty"` // base64-encoded MP3
	ResponseID string `json:"response_id,omitempty"`
}

type UploadResponse struct {
	Message    string `json:"message"`
	DocumentID string `json:"document_id"`
}

type ErrorResponse struct {
	Error string    `json:"error"`
	Kind  ErrorKind `json:"kind,omitempty"`
}
