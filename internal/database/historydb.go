package database

import (
	"context"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/sha3"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/nao1215/studentreport/internal/model"
)

// FileName is the name of the database file inside the database directory.
const FileName = "studentreport.db"

// ErrDatabaseNotFound is returned when the database does not exist and
// creation was not requested.
var ErrDatabaseNotFound = errors.New("history database not found")

// createdAtLayout sorts lexicographically in chronological order.
const createdAtLayout = "2006-01-02 15:04:05.000000000"

// HistoryDB stores generated report runs.
type HistoryDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures HistoryDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Run is one stored report generation.
type Run struct {
	// ID is a random UUID assigned by SaveRun.
	ID string

	// StudentID is the student the report was generated for.
	StudentID string

	// Kind is the report kind.
	Kind model.ReportKind

	// Format is the output format of Body.
	Format string

	// Body is the rendered report.
	Body string

	// BodyHash is the hex SHA3-256 of Body, set by SaveRun.
	BodyHash string

	// CreatedAt is when the run was stored, in UTC.
	CreatedAt time.Time
}

// Open opens or creates a HistoryDB in dbDir.
// If CreateIfNotExists is false and the database doesn't exist,
// ErrDatabaseNotFound is returned.
func Open(dbDir string, opts Options) (*HistoryDB, error) {
	dbPath := filepath.Join(dbDir, FileName)

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrDatabaseNotFound, dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0o750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// mode=rw refuses to create a missing file, mode=rwc allows it.
	dsn := dbPath + "?mode=rw"
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite supports a single writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	hdb := &HistoryDB{db: db, dbPath: dbPath}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := hdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return hdb, nil
}

// Path returns the database file path.
func (h *HistoryDB) Path() string {
	return h.dbPath
}

// Close closes the database connection.
func (h *HistoryDB) Close() error {
	return h.db.Close()
}

func (h *HistoryDB) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS report_runs (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT NOT NULL UNIQUE,
		student_id TEXT NOT NULL,
		kind TEXT NOT NULL,
		format TEXT NOT NULL,
		body TEXT NOT NULL,
		body_hash TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_student ON report_runs(student_id);
	CREATE INDEX IF NOT EXISTS idx_runs_created ON report_runs(created_at);
	`

	_, err := h.db.ExecContext(context.Background(), schema)
	return err
}

// HashBody returns the hex SHA3-256 digest of a report body.
func HashBody(body string) string {
	sum := sha3.Sum256([]byte(body))
	return hex.EncodeToString(sum[:])
}

// SaveRun stores run. It assigns run.ID and run.BodyHash, and sets
// run.CreatedAt to now when it is zero.
func (h *HistoryDB) SaveRun(ctx context.Context, run *Run) error {
	run.ID = uuid.NewString()
	run.BodyHash = HashBody(run.Body)
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}
	run.CreatedAt = run.CreatedAt.UTC()

	query := `
	INSERT INTO report_runs (id, student_id, kind, format, body, body_hash, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := h.db.ExecContext(ctx, query,
		run.ID,
		run.StudentID,
		string(run.Kind),
		run.Format,
		run.Body,
		run.BodyHash,
		run.CreatedAt.Format(createdAtLayout),
	)
	if err != nil {
		return fmt.Errorf("failed to save report run: %w", err)
	}
	return nil
}

// ListRuns returns the runs of a student, newest first. An empty
// studentID lists every run.
func (h *HistoryDB) ListRuns(ctx context.Context, studentID string) ([]Run, error) {
	query := `
	SELECT id, student_id, kind, format, body, body_hash, created_at
	FROM report_runs
	WHERE ? = '' OR student_id = ?
	ORDER BY created_at DESC, seq DESC
	`

	rows, err := h.db.QueryContext(ctx, query, studentID, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list report runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *run)
	}
	return runs, rows.Err()
}

// GetRun returns the run with the given id, or nil when there is none.
func (h *HistoryDB) GetRun(ctx context.Context, id string) (*Run, error) {
	query := `
	SELECT id, student_id, kind, format, body, body_hash, created_at
	FROM report_runs
	WHERE id = ?
	`

	run, err := scanRun(h.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return run, nil
}

// ListStudents returns the ids of students with stored runs, sorted.
func (h *HistoryDB) ListStudents(ctx context.Context) ([]string, error) {
	rows, err := h.db.QueryContext(ctx, `SELECT DISTINCT student_id FROM report_runs ORDER BY student_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	defer rows.Close()

	var students []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("failed to scan student: %w", err)
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(s rowScanner) (*Run, error) {
	var (
		run       Run
		kind      string
		createdAt string
	)
	if err := s.Scan(&run.ID, &run.StudentID, &kind, &run.Format, &run.Body, &run.BodyHash, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan report run: %w", err)
	}
	run.Kind = model.ReportKind(kind)

	t, err := time.Parse(createdAtLayout, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse run timestamp %q: %w", createdAt, err)
	}
	run.CreatedAt = t
	return &run, nil
}
