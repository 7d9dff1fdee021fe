// package testing contains shared testing utilities
package testing

import (
	"os"
	"path/filepath"
	"testing"
)

// MockSender is a test double for the notification gateway that records every
// message handed to it.
type MockSender struct {
	Recipients []string
	Subjects   []string
	Bodies     []string
	Err        error
}

func (m *MockSender) Send(recipient, subject, body string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Recipients = append(m.Recipients, recipient)
	m.Subjects = append(m.Subjects, subject)
	m.Bodies = append(m.Bodies, body)
	return nil
}

// TempPath returns a path inside a fresh temp dir that does not exist yet.
func TempPath(t *testing.T, name string) string {
	t.Helper()
	return filepath.Join(t.TempDir(), name)
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}

func MustWriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write file %s: %v", path, err)
	}
}
