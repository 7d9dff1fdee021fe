package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Authentication errors
	ErrInvalidEmail         = fmt.Errorf("invalid email format")
	ErrRegistrationRequired = fmt.Errorf("registration required")
	ErrEmptyName            = fmt.Errorf("name cannot be empty")
	ErrIncorrectPassword    = fmt.Errorf("incorrect password")

	// Task validation errors
	ErrEmptyTaskName     = fmt.Errorf("task name cannot be empty")
	ErrInvalidTimeFormat = fmt.Errorf("time must be in HH:MM format")
	ErrInvalidDate       = fmt.Errorf("invalid date")
	ErrInvalidStatus     = fmt.Errorf("invalid task status")
	ErrUnknownField      = fmt.Errorf("unknown task field")
	ErrTaskNotFound      = fmt.Errorf("task not found")

	// Storage errors
	ErrStorageRead  = fmt.Errorf("storage read failed")
	ErrStorageWrite = fmt.Errorf("storage write failed")

	// Notification errors
	ErrNotificationSend = fmt.Errorf("notification send failed")
)
