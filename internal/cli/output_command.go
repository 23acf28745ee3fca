package cli

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"taskboard/internal/api"
	"taskboard/internal/domain"
	"taskboard/internal/errors"
	"taskboard/internal/persistence"
)

// OutputCommand handles the output command
type OutputCommand struct {
	app          *App
	api          api.API
	mapper       *domain.TaskMapper
	errorHandler *ErrorHandler
}

// NewOutputCommand creates a new output command handler
func NewOutputCommand(app *App) *OutputCommand {
	return &OutputCommand{app: app, api: app.api, mapper: domain.NewTaskMapper(), errorHandler: NewErrorHandler()}
}

// Execute runs the output command
func (c *OutputCommand) Execute(ctx context.Context, args []string) error {
	return c.outputTasks(ctx, args)
}

// outputTasks writes the whole collection in the requested format. Without
// an argument the configured default format is used.
func (c *OutputCommand) outputTasks(ctx context.Context, args []string) error {
	format := c.app.config.Commands.OutputDefaultFormat
	if len(args) > 0 {
		if !strings.HasPrefix(args[0], "format=") {
			return errors.NewInvalidInputError("format", args[0], "invalid format option, usage: tb output format=csv|json")
		}
		format = strings.ToLower(strings.TrimPrefix(args[0], "format="))
	}

	var write func([]persistence.TaskRecord) error
	switch format {
	case "csv":
		write = c.outputCSV
	case "json":
		write = c.outputJSON
	default:
		return errors.NewInvalidInputError("format", format, "unsupported format")
	}

	tasks, err := c.api.ListTasks(ctx)
	if err != nil {
		return c.errorHandler.Handle("export tasks", err)
	}
	return write(c.mapper.ToRecordSlice(tasks))
}

// outputCSV writes one row per task. Tags are joined with semicolons.
func (c *OutputCommand) outputCSV(records []persistence.TaskRecord) error {
	writer := csv.NewWriter(c.app.out)

	header := []string{"ID", "Title", "Description", "Priority", "Due Date", "Tags", "Completed", "Created At"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, record := range records {
		row := []string{
			record.ID,
			record.Title,
			record.Description,
			record.Priority,
			record.DueDate,
			strings.Join(record.Tags, ";"),
			strconv.FormatBool(record.Completed),
			record.CreatedAt,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// outputJSON writes the records in their stored form.
func (c *OutputCommand) outputJSON(records []persistence.TaskRecord) error {
	encoder := json.NewEncoder(c.app.out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(records); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}
	return nil
}
