package store

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/desertthunder/taskman/internal/models"
	"github.com/desertthunder/taskman/internal/shared"
	tu "github.com/desertthunder/taskman/internal/testing"
)

func mustTask(t *testing.T, owner, name, status string) models.Task {
	t.Helper()

	startDate, err := models.ParseDate("2025-03-01")
	if err != nil {
		t.Fatalf("failed to parse date: %v", err)
	}
	endDate, err := models.ParseDate("2025-03-02")
	if err != nil {
		t.Fatalf("failed to parse date: %v", err)
	}
	startTime, err := models.ParseTimeOfDay("09:00")
	if err != nil {
		t.Fatalf("failed to parse time: %v", err)
	}
	endTime, err := models.ParseTimeOfDay("17:00")
	if err != nil {
		t.Fatalf("failed to parse time: %v", err)
	}

	return models.Task{
		Owner:     owner,
		Name:      name,
		StartDate: startDate,
		StartTime: startTime,
		EndDate:   endDate,
		EndTime:   endTime,
		Status:    models.Status(status),
	}
}

func TestOpen(t *testing.T) {
	t.Run("missing file is created with header", func(t *testing.T) {
		path := tu.TempPath(t, "users.csv")

		table, err := OpenUsers(path, nil)
		if err != nil {
			t.Fatalf("OpenUsers failed: %v", err)
		}
		if table.Len() != 0 {
			t.Errorf("expected empty table, got %d rows", table.Len())
		}

		tu.AssertFileExists(t, path)
		content := tu.MustReadFile(t, path)
		if strings.TrimSpace(content) != "user_email,user_password,user_name" {
			t.Errorf("unexpected file content: %q", content)
		}
	})

	t.Run("round trip preserves rows and order", func(t *testing.T) {
		path := tu.TempPath(t, "tasks.csv")

		table, err := OpenTasks(path, nil)
		if err != nil {
			t.Fatalf("OpenTasks failed: %v", err)
		}

		for _, name := range []string{"first", "second", "third"} {
			if err := table.Append(mustTask(t, "a@b.com", name, "Upcoming")); err != nil {
				t.Fatalf("Append failed: %v", err)
			}
		}

		reloaded, err := OpenTasks(path, nil)
		if err != nil {
			t.Fatalf("reload failed: %v", err)
		}
		if reloaded.Len() != 3 {
			t.Fatalf("expected 3 rows, got %d", reloaded.Len())
		}

		all := reloaded.All()
		for i, want := range []string{"first", "second", "third"} {
			if all[i].Name != want {
				t.Errorf("row %d: expected %s, got %s", i, want, all[i].Name)
			}
		}
	})

	t.Run("legacy timestamp cells load cleanly", func(t *testing.T) {
		path := tu.TempPath(t, "tasks.csv")
		tu.MustWriteFile(t, path,
			"user_email,task_name,task_start_date,task_start_time,task_end_date,task_end_time,task_status\n"+
				"a@b.com,Old Task,2025-03-01,1900-01-01 09:30:00,2025-03-02,1900-01-01 17:00:00,Ongoing\n")

		table, err := OpenTasks(path, nil)
		if err != nil {
			t.Fatalf("OpenTasks failed: %v", err)
		}

		task := table.All()[0]
		if task.StartTime.String() != "09:30" {
			t.Errorf("expected 09:30, got %s", task.StartTime)
		}
		if task.EndTime.String() != "17:00" {
			t.Errorf("expected 17:00, got %s", task.EndTime)
		}
	})

	t.Run("wrong header fails with ErrStorageRead", func(t *testing.T) {
		path := tu.TempPath(t, "users.csv")
		tu.MustWriteFile(t, path, "email,password,name\n")

		if _, err := OpenUsers(path, nil); !errors.Is(err, shared.ErrStorageRead) {
			t.Errorf("expected ErrStorageRead, got %v", err)
		}
	})

	t.Run("short row fails with ErrStorageRead", func(t *testing.T) {
		path := tu.TempPath(t, "users.csv")
		tu.MustWriteFile(t, path, "user_email,user_password,user_name\na@b.com,secret\n")

		if _, err := OpenUsers(path, nil); !errors.Is(err, shared.ErrStorageRead) {
			t.Errorf("expected ErrStorageRead, got %v", err)
		}
	})

	t.Run("bad cell fails with ErrStorageRead", func(t *testing.T) {
		path := tu.TempPath(t, "tasks.csv")
		tu.MustWriteFile(t, path,
			"user_email,task_name,task_start_date,task_start_time,task_end_date,task_end_time,task_status\n"+
				"a@b.com,Task,2025-03-01,25:99,2025-03-02,17:00,Upcoming\n")

		if _, err := OpenTasks(path, nil); !errors.Is(err, shared.ErrStorageRead) {
			t.Errorf("expected ErrStorageRead, got %v", err)
		}
	})
}

func TestTableMutations(t *testing.T) {
	setup := func(t *testing.T) *Table[models.Task] {
		t.Helper()
		table, err := OpenTasks(tu.TempPath(t, "tasks.csv"), nil)
		if err != nil {
			t.Fatalf("OpenTasks failed: %v", err)
		}
		for _, row := range []models.Task{
			mustTask(t, "a@b.com", "dup", "Upcoming"),
			mustTask(t, "a@b.com", "dup", "Ongoing"),
			mustTask(t, "c@d.com", "dup", "Upcoming"),
			mustTask(t, "a@b.com", "solo", "Upcoming"),
		} {
			if err := table.Append(row); err != nil {
				t.Fatalf("Append failed: %v", err)
			}
		}
		return table
	}

	t.Run("Filter is non-destructive and ordered", func(t *testing.T) {
		table := setup(t)

		owned := table.Filter(func(task models.Task) bool { return task.Owner == "a@b.com" })
		if len(owned) != 3 {
			t.Fatalf("expected 3 rows, got %d", len(owned))
		}
		if table.Len() != 4 {
			t.Errorf("Filter mutated the table: %d rows", table.Len())
		}
		if owned[0].Status != models.StatusUpcoming || owned[1].Status != models.StatusOngoing {
			t.Error("Filter did not preserve insertion order")
		}
	})

	t.Run("UpdateFirst touches only the first match", func(t *testing.T) {
		table := setup(t)

		updated, found, err := table.UpdateFirst(
			func(task models.Task) bool { return task.Owner == "a@b.com" && task.Name == "dup" },
			func(task *models.Task) error { task.Status = models.StatusCompleted; return nil },
		)
		if err != nil {
			t.Fatalf("UpdateFirst failed: %v", err)
		}
		if !found {
			t.Fatal("expected a match")
		}
		if updated.Status != models.StatusCompleted {
			t.Errorf("expected Completed, got %s", updated.Status)
		}

		all := table.All()
		if all[1].Status != models.StatusOngoing {
			t.Error("second duplicate should be untouched")
		}
		if all[2].Status != models.StatusUpcoming {
			t.Error("other owner's row should be untouched")
		}
	})

	t.Run("UpdateFirst without a match reports not found", func(t *testing.T) {
		table := setup(t)

		_, found, err := table.UpdateFirst(
			func(task models.Task) bool { return task.Name == "missing" },
			func(task *models.Task) error { return nil },
		)
		if err != nil {
			t.Fatalf("UpdateFirst failed: %v", err)
		}
		if found {
			t.Error("expected no match")
		}
	})

	t.Run("RemoveAll deletes every match", func(t *testing.T) {
		table := setup(t)

		removed, err := table.RemoveAll(func(task models.Task) bool {
			return task.Owner == "a@b.com" && task.Name == "dup"
		})
		if err != nil {
			t.Fatalf("RemoveAll failed: %v", err)
		}
		if removed != 2 {
			t.Errorf("expected 2 removed, got %d", removed)
		}
		if table.Len() != 2 {
			t.Errorf("expected 2 remaining, got %d", table.Len())
		}
	})

	t.Run("RemoveAll with zero matches leaves the file byte-identical", func(t *testing.T) {
		table := setup(t)
		before := tu.MustReadFile(t, table.Path())

		removed, err := table.RemoveAll(func(task models.Task) bool { return task.Name == "missing" })
		if err != nil {
			t.Fatalf("RemoveAll failed: %v", err)
		}
		if removed != 0 {
			t.Errorf("expected 0 removed, got %d", removed)
		}

		after := tu.MustReadFile(t, table.Path())
		if before != after {
			t.Error("file changed despite zero matches")
		}
	})

	t.Run("failed write keeps the prior state authoritative", func(t *testing.T) {
		table := setup(t)

		// A directory where the file used to be makes every rewrite fail.
		if err := os.Remove(table.Path()); err != nil {
			t.Fatalf("failed to remove backing file: %v", err)
		}
		if err := os.Mkdir(table.Path(), 0755); err != nil {
			t.Fatalf("failed to create directory: %v", err)
		}

		if err := table.Append(mustTask(t, "a@b.com", "doomed", "Upcoming")); !errors.Is(err, shared.ErrStorageWrite) {
			t.Fatalf("expected ErrStorageWrite from Append, got %v", err)
		}
		if table.Len() != 4 {
			t.Errorf("expected 4 rows after failed Append, got %d", table.Len())
		}

		if _, _, err := table.UpdateFirst(
			func(task models.Task) bool { return task.Name == "solo" },
			func(task *models.Task) error { task.Status = models.StatusCompleted; return nil },
		); !errors.Is(err, shared.ErrStorageWrite) {
			t.Fatalf("expected ErrStorageWrite from UpdateFirst, got %v", err)
		}
		if table.All()[3].Status != models.StatusUpcoming {
			t.Error("failed UpdateFirst should not change rows")
		}

		if _, err := table.RemoveAll(func(task models.Task) bool { return task.Name == "dup" }); !errors.Is(err, shared.ErrStorageWrite) {
			t.Fatalf("expected ErrStorageWrite from RemoveAll, got %v", err)
		}
		if table.Len() != 4 {
			t.Errorf("expected 4 rows after failed RemoveAll, got %d", table.Len())
		}
	})

	t.Run("mutations persist immediately", func(t *testing.T) {
		table := setup(t)

		if _, err := table.RemoveAll(func(task models.Task) bool { return task.Name == "solo" }); err != nil {
			t.Fatalf("RemoveAll failed: %v", err)
		}

		reloaded, err := OpenTasks(table.Path(), nil)
		if err != nil {
			t.Fatalf("reload failed: %v", err)
		}
		if reloaded.Len() != 3 {
			t.Errorf("expected 3 rows on disk, got %d", reloaded.Len())
		}
	})
}
