// package models defines the data model for the task tracker
package models

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/desertthunder/taskman/internal/shared"
)

// Column names of the two persisted tables. The modify operation addresses
// task fields by their column name, so these double as field selectors.
const (
	ColUserEmail    = "user_email"
	ColUserPassword = "user_password"
	ColUserName     = "user_name"

	ColTaskName      = "task_name"
	ColTaskStartDate = "task_start_date"
	ColTaskStartTime = "task_start_time"
	ColTaskEndDate   = "task_end_date"
	ColTaskEndTime   = "task_end_time"
	ColTaskStatus    = "task_status"
)

// Status is the free-form lifecycle label of a task. Every transition between
// distinct states is allowed; nothing advances a status automatically.
type Status string

const (
	StatusUpcoming  Status = "Upcoming"
	StatusOngoing   Status = "Ongoing"
	StatusCompleted Status = "Completed"
)

// ParseStatus validates a status string against the three known states.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusUpcoming, StatusOngoing, StatusCompleted:
		return Status(s), nil
	default:
		return "", fmt.Errorf("%w: %q", shared.ErrInvalidStatus, s)
	}
}

// Color returns the hex color associated with the status for styled output.
func (s Status) Color() string {
	switch s {
	case StatusOngoing:
		return "#2196F3"
	case StatusCompleted:
		return "#4CAF50"
	default:
		return "#FFC107"
	}
}

func (s Status) String() string { return string(s) }

// timePattern accepts a 24-hour HH:MM clock reading. A single-digit hour is
// tolerated on input and normalized to two digits on output.
var timePattern = regexp.MustCompile(`^([0-9]|0[0-9]|1[0-9]|2[0-3]):[0-5][0-9]$`)

// TimeOfDay is a wall-clock time with minute precision and no date component.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses an HH:MM string into a [TimeOfDay].
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if !timePattern.MatchString(s) {
		return TimeOfDay{}, fmt.Errorf("%w: %q", shared.ErrInvalidTimeFormat, s)
	}

	var hour, minute int
	if _, err := fmt.Sscanf(s, "%d:%d", &hour, &minute); err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: %q", shared.ErrInvalidTimeFormat, s)
	}

	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

// ParseTimeCell parses a time-of-day table cell. Older files carry a full
// "YYYY-MM-DD HH:MM:SS" stamp around the clock reading; only the HH:MM part
// is meaningful, so everything else is stripped before parsing.
func ParseTimeCell(s string) (TimeOfDay, error) {
	cell := strings.TrimSpace(s)
	if i := strings.IndexByte(cell, ' '); i >= 0 {
		cell = cell[i+1:]
	}
	if parts := strings.Split(cell, ":"); len(parts) == 3 {
		cell = parts[0] + ":" + parts[1]
	}
	return ParseTimeOfDay(cell)
}

// String renders the time zero-padded as HH:MM.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Date is a civil calendar date with no time component.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDate parses a YYYY-MM-DD string into a [Date].
func ParseDate(s string) (Date, error) {
	parsed, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", shared.ErrInvalidDate, s)
	}
	return Date{Year: parsed.Year(), Month: parsed.Month(), Day: parsed.Day()}, nil
}

// ParseDateCell parses a date table cell, dropping any trailing time stamp.
func ParseDateCell(s string) (Date, error) {
	cell := strings.TrimSpace(s)
	if i := strings.IndexByte(cell, ' '); i >= 0 {
		cell = cell[:i]
	}
	return ParseDate(cell)
}

// String renders the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// User is one row of the user table. Users are created on registration and
// never mutated or deleted afterwards. The password is compared by plain
// string equality; hashing is out of scope for this tool.
type User struct {
	Email    string
	Password string
	Name     string
}

// Validate checks that the user has the minimum required fields set.
func (u User) Validate() error {
	if u.Email == "" {
		return fmt.Errorf("%w: empty email", shared.ErrInvalidEmail)
	}
	if strings.TrimSpace(u.Name) == "" {
		return shared.ErrEmptyName
	}
	return nil
}

// Task is one row of the task table. Tasks have no identifier beyond the
// (Owner, Name) pair, and names are not unique per owner: modify touches the
// first structural match while delete removes every match.
type Task struct {
	Owner     string
	Name      string
	StartDate Date
	StartTime TimeOfDay
	EndDate   Date
	EndTime   TimeOfDay
	Status    Status
}

// Validate checks the task invariants that hold at creation time.
func (t Task) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return shared.ErrEmptyTaskName
	}
	if _, err := ParseStatus(string(t.Status)); err != nil {
		return err
	}
	return nil
}

// Identity is the authenticated user's email and display name, held in memory
// for the duration of one session. There are no tokens.
type Identity struct {
	Email string
	Name  string
}
