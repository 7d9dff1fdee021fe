// package formatter renders a user's task list for the terminal and exports it to CSV
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/desertthunder/taskman/internal/models"
)

var (
	nameStyle = lipgloss.NewStyle().Bold(true)
	dimStyle  = lipgloss.NewStyle().Faint(true)
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			PaddingLeft(1).
			MarginBottom(1)
)

// RenderCards renders tasks as bordered cards with the status color on the
// left edge, one card per task.
func RenderCards(owned []models.Task) string {
	if len(owned) == 0 {
		return dimStyle.Render("You don't have any tasks yet") + "\n"
	}

	var b strings.Builder
	for _, task := range owned {
		card := cardStyle.BorderForeground(lipgloss.Color(task.Status.Color()))
		statusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(task.Status.Color()))

		content := nameStyle.Render(task.Name) + "\n" +
			fmt.Sprintf("Start: %s %s | End: %s %s | Status: %s",
				task.StartDate, task.StartTime, task.EndDate, task.EndTime,
				statusStyle.Render(string(task.Status)))

		b.WriteString(card.Render(content))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderText renders tasks as unstyled lines, one per task, in the digest
// entry order: name / start date / start time / end date / end time / status.
func RenderText(owned []models.Task) string {
	if len(owned) == 0 {
		return "You don't have any tasks yet\n"
	}

	var b strings.Builder
	for i, task := range owned {
		fmt.Fprintf(&b, "%d. %s / %s / %s / %s / %s / %s\n",
			i+1, task.Name, task.StartDate, task.StartTime, task.EndDate, task.EndTime, task.Status)
	}
	return b.String()
}

// ExportToCSV converts tasks to CSV with the task table schema.
func ExportToCSV(owned []models.Task) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{
		models.ColUserEmail,
		models.ColTaskName,
		models.ColTaskStartDate,
		models.ColTaskStartTime,
		models.ColTaskEndDate,
		models.ColTaskEndTime,
		models.ColTaskStatus,
	}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, task := range owned {
		record := []string{
			task.Owner,
			task.Name,
			task.StartDate.String(),
			task.StartTime.String(),
			task.EndDate.String(),
			task.EndTime.String(),
			string(task.Status),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// WriteCSVExport writes a task CSV export to filepath, defaulting to
// tasks_export.csv, and returns the path written.
func WriteCSVExport(owned []models.Task, filepath string) (string, error) {
	if filepath == "" {
		filepath = "tasks_export.csv"
	}

	data, err := ExportToCSV(owned)
	if err != nil {
		return "", fmt.Errorf("failed to generate CSV: %w", err)
	}

	if err := os.WriteFile(filepath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write CSV file: %w", err)
	}

	return filepath, nil
}
