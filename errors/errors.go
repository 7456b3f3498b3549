package errors

import "fmt"

var (
	ErrEmptyMessage    = fmt.Errorf("message text cannot be empty")
	ErrMessageNotFound = fmt.Errorf("message not found")
)
