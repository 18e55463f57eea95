// Package export renders full or status-filtered task state to JSON and
// CSV documents suitable for download.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/taskdeck/taskdeck/internal/model"
	"github.com/taskdeck/taskdeck/internal/persist"
)

// Document is the JSON export payload: metadata plus the task and
// category arrays verbatim, dates as ISO-8601 strings.
type Document struct {
	ExportedAt    time.Time        `json:"exported_at"`
	SchemaVersion int              `json:"schema_version"`
	TotalTasks    int              `json:"total_tasks"`
	FilteredTasks int              `json:"filtered_tasks"`
	Tasks         []model.Task     `json:"tasks"`
	Categories    []model.Category `json:"categories"`
}

// csvHeader is the fixed CSV column set. Category is the category name,
// not its id; tags are semicolon-joined.
var csvHeader = []string{
	"Title", "Description", "Status", "Priority",
	"Due Date", "Category", "Tags", "Created At", "Completed At",
}

// JSON renders a pretty-printed export of tasks matching the status
// filter, with metadata counting both the full and filtered sets.
func JSON(tasks []model.Task, categories []model.Category, filter model.StatusFilter, now time.Time) ([]byte, error) {
	filtered := filterByStatus(tasks, filter)

	doc := Document{
		ExportedAt:    now.UTC(),
		SchemaVersion: persist.SchemaVersion,
		TotalTasks:    len(tasks),
		FilteredTasks: len(filtered),
		Tasks:         filtered,
		Categories:    categories,
	}
	if doc.Tasks == nil {
		doc.Tasks = []model.Task{}
	}
	if doc.Categories == nil {
		doc.Categories = []model.Category{}
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding export document: %w", err)
	}
	return out, nil
}

// CSV renders tasks matching the status filter as comma-separated rows
// under the fixed header. An empty task set still emits the header row.
func CSV(tasks []model.Task, categories []model.Category, filter model.StatusFilter) ([]byte, error) {
	names := make(map[string]string, len(categories))
	for _, cat := range categories {
		names[cat.ID] = cat.Name
	}

	buf := &bytes.Buffer{}
	writer := csv.NewWriter(buf)

	if err := writer.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("writing csv header: %w", err)
	}
	for _, task := range filterByStatus(tasks, filter) {
		category := ""
		if task.CategoryID != nil {
			category = names[*task.CategoryID]
		}
		dueDate := ""
		if task.DueDate != nil {
			dueDate = task.DueDate.UTC().Format("2006-01-02")
		}
		completedAt := ""
		if task.CompletedAt != nil {
			completedAt = task.CompletedAt.UTC().Format(time.RFC3339)
		}

		row := []string{
			task.Title,
			task.Description,
			string(task.Status),
			string(task.Priority),
			dueDate,
			category,
			strings.Join(task.Tags, ";"),
			task.CreatedAt.UTC().Format(time.RFC3339),
			completedAt,
		}
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("writing csv row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flushing csv: %w", err)
	}
	return buf.Bytes(), nil
}

// Filename embeds the exported task count and the current date, e.g.
// "tasks-12-tasks-2026-09-01.json".
func Filename(count int, ext string, now time.Time) string {
	return fmt.Sprintf("tasks-%d-tasks-%s.%s", count, now.UTC().Format("2006-01-02"), ext)
}

func filterByStatus(tasks []model.Task, filter model.StatusFilter) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, task := range tasks {
		if filter.Matches(task.Status) {
			out = append(out, task)
		}
	}
	return out
}
