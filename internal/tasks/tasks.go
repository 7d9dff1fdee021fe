// package tasks implements the per-user task operations.
//
// Every operation is scoped to one authenticated identity and persists
// through the task table immediately. Task names are not unique per owner:
// Modify applies to the first structural match while Delete removes every
// match. That asymmetry is inherited behavior and is kept on purpose.
package tasks

import (
	"strings"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/taskman/internal/models"
	"github.com/desertthunder/taskman/internal/shared"
	"github.com/desertthunder/taskman/internal/store"
)

// DigestSubject is the fixed subject line of the emailed task digest.
const DigestSubject = "Task reminder"

// EmptyDigest is returned by Digest for a user with no tasks. Callers should
// treat it as "nothing to send" and skip the notification gateway.
const EmptyDigest = "You don't have any tasks yet."

// Service executes validated task operations against the task table.
type Service struct {
	table  *store.Table[models.Task]
	logger *log.Logger
}

// NewService creates a task [Service] backed by the given table.
func NewService(table *store.Table[models.Task], logger *log.Logger) *Service {
	return &Service{table: table, logger: logger}
}

func ownedBy(id models.Identity) func(models.Task) bool {
	return func(t models.Task) bool { return t.Owner == id.Email }
}

func ownedNamed(id models.Identity, name string) func(models.Task) bool {
	return func(t models.Task) bool { return t.Owner == id.Email && t.Name == name }
}

// List returns the identity's tasks in table insertion order.
func (s *Service) List(id models.Identity) []models.Task {
	return s.table.Filter(ownedBy(id))
}

// Add validates and appends a new task for the identity. Status is always
// Upcoming at creation. Time strings must be HH:MM on a 24-hour clock.
func (s *Service) Add(id models.Identity, name string, startDate models.Date, startTime string, endDate models.Date, endTime string) (models.Task, error) {
	if strings.TrimSpace(name) == "" {
		return models.Task{}, shared.ErrEmptyTaskName
	}

	start, err := models.ParseTimeOfDay(startTime)
	if err != nil {
		return models.Task{}, err
	}
	end, err := models.ParseTimeOfDay(endTime)
	if err != nil {
		return models.Task{}, err
	}

	task := models.Task{
		Owner:     id.Email,
		Name:      name,
		StartDate: startDate,
		StartTime: start,
		EndDate:   endDate,
		EndTime:   end,
		Status:    models.StatusUpcoming,
	}

	if err := s.table.Append(task); err != nil {
		return models.Task{}, err
	}

	if s.logger != nil {
		s.logger.Info("added task", "owner", id.Email, "name", name)
	}
	return task, nil
}

// Delete removes every task of the identity with the given name and returns
// the number removed. Zero matches is not an error here; offering only
// existing names is the caller's concern.
func (s *Service) Delete(id models.Identity, name string) (int, error) {
	removed, err := s.table.RemoveAll(ownedNamed(id, name))
	if err != nil {
		return 0, err
	}

	if s.logger != nil {
		s.logger.Info("deleted tasks", "owner", id.Email, "name", name, "removed", removed)
	}
	return removed, nil
}

// Modify sets one field of the first task matching (identity, name). The
// field selector is a task table column name; the value is validated per
// field before anything changes.
func (s *Service) Modify(id models.Identity, name, field, value string) (models.Task, error) {
	apply, err := fieldSetter(field, value)
	if err != nil {
		return models.Task{}, err
	}

	updated, found, err := s.table.UpdateFirst(ownedNamed(id, name), apply)
	if err != nil {
		return models.Task{}, err
	}
	if !found {
		return models.Task{}, shared.ErrTaskNotFound
	}

	if s.logger != nil {
		s.logger.Info("modified task", "owner", id.Email, "name", name, "field", field)
	}
	return updated, nil
}

// fieldSetter validates value for the selected field and returns the mutation
// to apply. Validation happens up front so a bad value never touches a row.
func fieldSetter(field, value string) (func(*models.Task) error, error) {
	switch field {
	case models.ColTaskName:
		if strings.TrimSpace(value) == "" {
			return nil, shared.ErrEmptyTaskName
		}
		return func(t *models.Task) error { t.Name = value; return nil }, nil

	case models.ColTaskStartDate:
		date, err := models.ParseDate(value)
		if err != nil {
			return nil, err
		}
		return func(t *models.Task) error { t.StartDate = date; return nil }, nil

	case models.ColTaskEndDate:
		date, err := models.ParseDate(value)
		if err != nil {
			return nil, err
		}
		return func(t *models.Task) error { t.EndDate = date; return nil }, nil

	case models.ColTaskStartTime:
		clock, err := models.ParseTimeOfDay(value)
		if err != nil {
			return nil, err
		}
		return func(t *models.Task) error { t.StartTime = clock; return nil }, nil

	case models.ColTaskEndTime:
		clock, err := models.ParseTimeOfDay(value)
		if err != nil {
			return nil, err
		}
		return func(t *models.Task) error { t.EndTime = clock; return nil }, nil

	case models.ColTaskStatus:
		status, err := models.ParseStatus(value)
		if err != nil {
			return nil, err
		}
		return func(t *models.Task) error { t.Status = status; return nil }, nil

	default:
		return nil, shared.ErrUnknownField
	}
}
