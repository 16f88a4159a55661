package constant

const (
	ContextKeyRequestID = "requestid"

	RequestIDHeader = "X-Attrition-Request-ID"
	ETagHeader      = "ETag"
)
