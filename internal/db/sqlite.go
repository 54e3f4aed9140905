// Package db provides SQLite storage implementation.
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/tempoapp/tempo/internal/task"
)

// SQLite implements task.Repository using SQLite.
// Timestamps are stored as RFC3339 strings in UTC.
type SQLite struct {
	db *sql.DB
}

// New creates a new SQLite repository and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

const taskColumns = `
	t.id, t.title, t.description, t.priority, t.start_time, t.end_time,
	t.completed, t.completed_at, t.created_at,
	p.id, p.name, p.color
`

const taskFrom = `FROM tasks t LEFT JOIN projects p ON p.id = t.project_id`

// CreateTask adds a new task to the repository and sets its ID.
func (s *SQLite) CreateTask(ctx context.Context, t *task.Task) error {
	query := `
		INSERT INTO tasks (title, description, priority, start_time, end_time,
		                   completed, completed_at, project_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	var projectID *int64
	if t.Project != nil {
		projectID = &t.Project.ID
	}

	result, err := s.db.ExecContext(ctx, query,
		t.Title,
		t.Description,
		t.Priority,
		formatTime(t.Start),
		formatTime(t.End),
		t.Completed,
		formatTime(t.CompletedAt),
		projectID,
		t.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting last insert id: %w", err)
	}
	t.ID = id

	return nil
}

// GetTask retrieves a task by ID.
func (s *SQLite) GetTask(ctx context.Context, id int64) (*task.Task, error) {
	query := `SELECT ` + taskColumns + taskFrom + ` WHERE t.id = ?`

	t, err := scanTask(s.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, task.ErrTaskNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying task: %w", err)
	}
	return t, nil
}

// UpdateTask rewrites a task's mutable fields.
func (s *SQLite) UpdateTask(ctx context.Context, t *task.Task) error {
	query := `
		UPDATE tasks
		SET title = ?, description = ?, priority = ?, start_time = ?, end_time = ?, project_id = ?
		WHERE id = ?
	`

	var projectID *int64
	if t.Project != nil {
		projectID = &t.Project.ID
	}

	result, err := s.db.ExecContext(ctx, query,
		t.Title, t.Description, t.Priority,
		formatTime(t.Start), formatTime(t.End), projectID, t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	return requireRow(result)
}

// CompleteTask marks a task as completed at the given time.
func (s *SQLite) CompleteTask(ctx context.Context, id int64, at time.Time) error {
	query := `UPDATE tasks SET completed = 1, completed_at = ? WHERE id = ?`

	result, err := s.db.ExecContext(ctx, query, at.UTC().Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("completing task: %w", err)
	}
	return requireRow(result)
}

// DeleteTask removes a task permanently.
func (s *SQLite) DeleteTask(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	return requireRow(result)
}

// ListTasksByDateRange returns all scheduled tasks whose effective
// interval touches [start, end). The SQL filter is coarse (start_time
// before the range end); the effective-end check, which has to account
// for the implicit default duration, happens here.
func (s *SQLite) ListTasksByDateRange(ctx context.Context, start, end time.Time) ([]*task.Task, error) {
	query := `SELECT ` + taskColumns + taskFrom + `
		WHERE t.start_time IS NOT NULL AND t.start_time < ?
		ORDER BY t.start_time, t.id`

	rows, err := s.db.QueryContext(ctx, query, end.UTC().Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("querying tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*task.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning task: %w", err)
		}
		if t.EffectiveEnd().After(start) {
			tasks = append(tasks, t)
		}
	}
	return tasks, rows.Err()
}

// ListUnscheduled returns tasks without a start time, newest first.
func (s *SQLite) ListUnscheduled(ctx context.Context) ([]*task.Task, error) {
	query := `SELECT ` + taskColumns + taskFrom + `
		WHERE t.start_time IS NULL
		ORDER BY t.created_at DESC, t.id DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying unscheduled tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*task.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning task: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// CreateProject adds a new project and sets its ID.
func (s *SQLite) CreateProject(ctx context.Context, p *task.Project) error {
	result, err := s.db.ExecContext(ctx,
		`INSERT INTO projects (name, color) VALUES (?, ?)`, p.Name, p.Color)
	if err != nil {
		return fmt.Errorf("inserting project: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting last insert id: %w", err)
	}
	p.ID = id

	return nil
}

// ListProjects returns all projects ordered by name.
func (s *SQLite) ListProjects(ctx context.Context) ([]*task.Project, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, color FROM projects ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("querying projects: %w", err)
	}
	defer rows.Close()

	var projects []*task.Project
	for rows.Next() {
		var p task.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.Color); err != nil {
			return nil, fmt.Errorf("scanning project: %w", err)
		}
		projects = append(projects, &p)
	}
	return projects, rows.Err()
}

// Close releases the database handle.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// scanner abstracts *sql.Row and *sql.Rows for scanTask.
type scanner interface {
	Scan(dest ...any) error
}

func scanTask(row scanner) (*task.Task, error) {
	var (
		t            task.Task
		startTime    sql.NullString
		endTime      sql.NullString
		completedAt  sql.NullString
		createdAt    string
		projectID    sql.NullInt64
		projectName  sql.NullString
		projectColor sql.NullString
	)

	err := row.Scan(
		&t.ID, &t.Title, &t.Description, &t.Priority, &startTime, &endTime,
		&t.Completed, &completedAt, &createdAt,
		&projectID, &projectName, &projectColor,
	)
	if err != nil {
		return nil, err
	}

	if t.Start, err = parseTime(startTime); err != nil {
		return nil, fmt.Errorf("parsing start time: %w", err)
	}
	if t.End, err = parseTime(endTime); err != nil {
		return nil, fmt.Errorf("parsing end time: %w", err)
	}
	if t.CompletedAt, err = parseTime(completedAt); err != nil {
		return nil, fmt.Errorf("parsing completed time: %w", err)
	}
	if t.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created time: %w", err)
	}

	if projectID.Valid {
		t.Project = &task.Project{
			ID:    projectID.Int64,
			Name:  projectName.String,
			Color: projectColor.String,
		}
	}

	return &t, nil
}

// formatTime renders an optional time as RFC3339 UTC, or nil for NULL.
func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}

// parseTime parses an optional RFC3339 column.
func parseTime(v sql.NullString) (*time.Time, error) {
	if !v.Valid {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, v.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// requireRow converts a zero-row update into ErrTaskNotFound.
func requireRow(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if n == 0 {
		return task.ErrTaskNotFound
	}
	return nil
}
