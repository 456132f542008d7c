package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/nao1215/studentreport/internal/model"
)

// ReadRoster reads students from the first sheet of an .xlsx file.
// Column A is the student id, B the first name and C the last name. The
// first row is a header. Rows missing the id or a name are skipped.
func ReadRoster(path string, logger *slog.Logger) ([]model.Student, error) {
	if logger == nil {
		logger = slog.Default()
	}

	file, err := os.Open(path) //nolint:gosec // path comes from user configuration
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return nil, fmt.Errorf("failed to open roster %s: %w", path, err)
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidRoster, path, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			logger.Warn("failed to close roster", "path", path, "error", err)
		}
	}()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("%w: %s has no sheets", ErrInvalidRoster, path)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows of %s in %s: %w", sheet, path, err)
	}

	students := make([]model.Student, 0, len(rows))
	for i, row := range rows {
		if i == 0 {
			continue // header
		}

		id := cell(row, 0)
		first := cell(row, 1)
		last := cell(row, 2)
		if id == "" || first == "" || last == "" {
			logger.Warn("skipping roster row with missing id or name", "row", i+1)
			continue
		}
		students = append(students, model.Student{ID: id, FirstName: first, LastName: last})
	}

	logger.Debug("roster read", "path", path, "sheet", sheet, "students", len(students))
	return students, nil
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
