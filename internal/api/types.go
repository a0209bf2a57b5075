package api

// PageLink is an adjacent window expressed in request parameters.
type PageLink struct {
	Offset     int64 `json:"offset"`
	ByteLength int32 `json:"byteLength"`
}

// LogWindowResponse describes one window of a log file. Content holds the raw
// bytes of the window, base64 encoded in JSON, so len(Content) is always
// EndByte-StartByte even when the window splits a multi-byte character.
type LogWindowResponse struct {
	Kind        string    `json:"kind"`
	LogType     string    `json:"logType"`
	StartByte   int64     `json:"startByte"`
	EndByte     int64     `json:"endByte"`
	TotalLength int64     `json:"totalLength"`
	Content     []byte    `json:"content"`
	Previous    *PageLink `json:"previous,omitempty"`
	Next        *PageLink `json:"next,omitempty"`
}

// ServerStatus aggregates server runtime information for API consumers.
type ServerStatus struct {
	Running      bool   `json:"running"`
	PID          int    `json:"pid"`
	LogRoot      string `json:"logRoot"`
	LockFilePath string `json:"lockFilePath"`
	DefaultBytes int32  `json:"defaultBytes"`
	MaxBytes     int32  `json:"maxBytes"`
	AuthRequired bool   `json:"authRequired"`
	StartedAt    string `json:"startedAt,omitempty"`
}

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error string `json:"error"`
}
