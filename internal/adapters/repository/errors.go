package repository

// Public messages for classified load failures. API clients see them verbatim.
const (
	msgNotFound    = "Data file not found at %s"
	msgInvalidJSON = "Invalid JSON format in data file"
	msgValidation  = "Data validation failed: %s"
	msgNotAnObject = "document must be a JSON object"
	msgReadFailed  = "Data file could not be read"
	msgCancelled   = "Data load cancelled"
)
