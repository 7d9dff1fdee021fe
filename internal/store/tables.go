package store

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/taskman/internal/models"
)

// UserCodec maps [models.User] onto the user table schema.
func UserCodec() Codec[models.User] {
	return Codec[models.User]{
		Header: []string{models.ColUserEmail, models.ColUserPassword, models.ColUserName},
		Encode: func(u models.User) []string {
			return []string{u.Email, u.Password, u.Name}
		},
		Decode: func(row []string) (models.User, error) {
			return models.User{Email: row[0], Password: row[1], Name: row[2]}, nil
		},
	}
}

// TaskCodec maps [models.Task] onto the task table schema. Date and time
// cells from older files may embed full timestamps; the decoders keep only
// the meaningful portion.
func TaskCodec() Codec[models.Task] {
	return Codec[models.Task]{
		Header: []string{
			models.ColUserEmail,
			models.ColTaskName,
			models.ColTaskStartDate,
			models.ColTaskStartTime,
			models.ColTaskEndDate,
			models.ColTaskEndTime,
			models.ColTaskStatus,
		},
		Encode: func(t models.Task) []string {
			return []string{
				t.Owner,
				t.Name,
				t.StartDate.String(),
				t.StartTime.String(),
				t.EndDate.String(),
				t.EndTime.String(),
				string(t.Status),
			}
		},
		Decode: func(row []string) (models.Task, error) {
			startDate, err := models.ParseDateCell(row[2])
			if err != nil {
				return models.Task{}, fmt.Errorf("%s: %v", models.ColTaskStartDate, err)
			}
			startTime, err := models.ParseTimeCell(row[3])
			if err != nil {
				return models.Task{}, fmt.Errorf("%s: %v", models.ColTaskStartTime, err)
			}
			endDate, err := models.ParseDateCell(row[4])
			if err != nil {
				return models.Task{}, fmt.Errorf("%s: %v", models.ColTaskEndDate, err)
			}
			endTime, err := models.ParseTimeCell(row[5])
			if err != nil {
				return models.Task{}, fmt.Errorf("%s: %v", models.ColTaskEndTime, err)
			}
			status, err := models.ParseStatus(row[6])
			if err != nil {
				return models.Task{}, fmt.Errorf("%s: %v", models.ColTaskStatus, err)
			}

			return models.Task{
				Owner:     row[0],
				Name:      row[1],
				StartDate: startDate,
				StartTime: startTime,
				EndDate:   endDate,
				EndTime:   endTime,
				Status:    status,
			}, nil
		},
	}
}

// OpenUsers opens the user table at path.
func OpenUsers(path string, logger *log.Logger) (*Table[models.User], error) {
	return Open(path, UserCodec(), logger)
}

// OpenTasks opens the task table at path.
func OpenTasks(path string, logger *log.Logger) (*Table[models.Task], error) {
	return Open(path, TaskCodec(), logger)
}
