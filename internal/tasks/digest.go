package tasks

import (
	"fmt"
	"strings"

	"github.com/desertthunder/taskman/internal/models"
)

// digestRule separates entries in the emailed digest.
var digestRule = strings.Repeat("-", 78)

// Digest renders the identity's tasks as the plain-text body handed to the
// notification gateway. A user with zero tasks gets [EmptyDigest] instead of
// an empty string.
func (s *Service) Digest(id models.Identity) string {
	owned := s.List(id)
	if len(owned) == 0 {
		return EmptyDigest
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", id.Name)
	b.WriteString("Please find below the list of tasks created by you\n")

	for _, task := range owned {
		b.WriteString(digestRule + "\n")
		fmt.Fprintf(&b, "Task Name : %s\n", task.Name)
		fmt.Fprintf(&b, "Task Start Date : %s\n", task.StartDate)
		fmt.Fprintf(&b, "Task Start Time : %s\n", task.StartTime)
		fmt.Fprintf(&b, "Task End Date : %s\n", task.EndDate)
		fmt.Fprintf(&b, "Task End Time : %s\n", task.EndTime)
		fmt.Fprintf(&b, "Task Status : %s\n\n", task.Status)
	}

	return b.String()
}
