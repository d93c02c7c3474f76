package model

// AuditLog 每次 store 變更後送出一筆
type AuditLog struct {
	Slot      string `json:"slot"`
	Action    string `json:"action"`
	Key       string `json:"key,omitempty"`
	Records   int    `json:"records"`
	RequestID string `json:"request_id,omitempty"`
	Actor     string `json:"actor,omitempty"`
	Version   string `json:"version"`
	LoggedAt  string `json:"logged_at"`
}
