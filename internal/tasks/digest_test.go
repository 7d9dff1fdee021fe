package tasks

import (
	"strings"
	"testing"
)

func TestDigest(t *testing.T) {
	t.Run("empty state message instead of empty string", func(t *testing.T) {
		service, _ := setupService(t)

		body := service.Digest(alice)
		if body != EmptyDigest {
			t.Errorf("expected %q, got %q", EmptyDigest, body)
		}
	})

	t.Run("renders every owned task", func(t *testing.T) {
		service, _ := setupService(t)

		addTask(t, service, alice, "Write report")
		addTask(t, service, alice, "Review draft")
		addTask(t, service, bob, "Not yours")

		body := service.Digest(alice)

		if !strings.HasPrefix(body, "Dear Alice,") {
			t.Errorf("digest should greet the user, got: %q", body[:30])
		}
		if !strings.Contains(body, "Please find below the list of tasks created by you") {
			t.Error("digest missing intro line")
		}
		if !strings.Contains(body, "Task Name : Write report") {
			t.Error("digest missing first task")
		}
		if !strings.Contains(body, "Task Name : Review draft") {
			t.Error("digest missing second task")
		}
		if strings.Contains(body, "Not yours") {
			t.Error("digest leaked another user's task")
		}

		if got := strings.Count(body, digestRule); got != 2 {
			t.Errorf("expected 2 rule lines, got %d", got)
		}
		if !strings.Contains(body, "Task Start Time : 09:00") {
			t.Error("digest must render the HH:MM portion only")
		}
		if !strings.Contains(body, "Task Status : Upcoming") {
			t.Error("digest missing status line")
		}
	})
}
