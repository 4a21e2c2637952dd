package httpx

const (
	contentTypeJSON = "application/json"
	contentTypeHTML = "text/html; charset=utf-8"

	headerRequestID = "X-Request-ID"

	paramMillis = "millis"
	paramBucket = "bucket"
)
