package loader

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/nao1215/studentreport/internal/dataset"
	"github.com/nao1215/studentreport/internal/model"
)

// Load reads the four sources concurrently and builds a Dataset.
// The first failure cancels the remaining reads.
func Load(ctx context.Context, src Sources, logger *slog.Logger) (*dataset.Dataset, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var (
		students    []model.Student
		assessments []model.Assessment
		questions   []model.Question
		responses   []model.AssessmentResponse
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		students, err = loadStudents(ctx, src.StudentsPath(), logger)
		return err
	})
	g.Go(func() error {
		return decodeSource(ctx, src.AssessmentsPath(), "assessments.json", &assessments)
	})
	g.Go(func() error {
		var raw []rawQuestion
		if err := decodeSource(ctx, src.QuestionsPath(), "questions.json", &raw); err != nil {
			return err
		}
		questions = make([]model.Question, 0, len(raw))
		for _, q := range raw {
			questions = append(questions, q.toModel())
		}
		return nil
	})
	g.Go(func() error {
		var raw []rawResponse
		if err := decodeSource(ctx, src.ResponsesPath(), "student-responses.json", &raw); err != nil {
			return err
		}
		responses = normalizeResponses(raw)
		logger.Debug("normalized responses",
			"read", len(raw),
			"completed", len(responses),
		)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	d := dataset.New(students, assessments, questions, responses)
	c := d.Counts()
	logger.Info("data loaded",
		"dir", src.Dir,
		"students", c.Students,
		"assessments", c.Assessments,
		"questions", c.Questions,
		"responses", c.Responses,
	)
	return d, nil
}

// loadStudents reads the roster from JSON or, for .xlsx files, from the
// first sheet of a spreadsheet.
func loadStudents(ctx context.Context, path string, logger *slog.Logger) ([]model.Student, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return ReadRoster(path, logger)
	}

	var students []model.Student
	if err := decodeSource(ctx, path, "students.json", &students); err != nil {
		return nil, err
	}
	return students, nil
}

// decodeSource reads path, validates it against the named schema and
// decodes it into v.
func decodeSource(ctx context.Context, path, schemaName string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := readSource(path)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := validate(schemaName, path, data); err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return nil
}

func readSource(path string) ([]byte, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from user configuration
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}
