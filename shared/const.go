package shared

const (
	UserID    = "user_id"
	RequestID = "request_id"
)
