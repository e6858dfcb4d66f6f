package middleware

const (
	IdempotencyKeyHeader = "Idempotency-Key"
	// ReplayedHeader marks a response served from an earlier request with the same key.
	ReplayedHeader = "Idempotent-Replayed"
)
