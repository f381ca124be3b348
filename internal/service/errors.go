package service

// ValidationError reports a missing or malformed request field.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NotFoundError reports that no row matched the target id.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// ConflictError reports an operation blocked by dependent rows.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

const (
	msgCategoryNotFound = "category not found"
	msgCategoryInUse    = "category has pages, cannot delete"
	msgPageNotFound     = "page not found"
	msgItemNotFound     = "item not found"
)
