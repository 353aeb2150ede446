package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/studbud/internal/db"
	"github.com/alexanderramin/studbud/internal/domain"
)

// SQLiteProfileRepo implements ProfileRepo using a SQLite database.
// Subjects and methods live in position-keyed child tables so the
// profile's declared order survives storage.
type SQLiteProfileRepo struct {
	db db.DBTX
}

// NewSQLiteProfileRepo creates a new SQLiteProfileRepo.
func NewSQLiteProfileRepo(conn db.DBTX) *SQLiteProfileRepo {
	return &SQLiteProfileRepo{db: conn}
}

func (r *SQLiteProfileRepo) Create(ctx context.Context, p *domain.StudentProfile) error {
	query := `INSERT INTO student_profiles
		(id, student_name, goals, preferred_time, daily_duration_hours, environment, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.StudentName,
		p.Goals,
		p.Preferences.PreferredTime,
		p.Preferences.DailyDurationHours,
		p.Preferences.Environment,
		formatTime(p.CreatedAt),
		formatTime(p.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting student profile: %w", err)
	}

	for i, subject := range p.Subjects {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO profile_subjects (profile_id, position, name, strength, weakness)
			VALUES (?, ?, ?, ?, ?)`,
			p.ID, i, subject, p.Strengths[subject], p.Weaknesses[subject],
		)
		if err != nil {
			return fmt.Errorf("inserting subject %q: %w", subject, err)
		}
	}

	for i, method := range p.Preferences.Methods {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO profile_methods (profile_id, position, method) VALUES (?, ?, ?)`,
			p.ID, i, method,
		)
		if err != nil {
			return fmt.Errorf("inserting method %q: %w", method, err)
		}
	}

	return nil
}

func (r *SQLiteProfileRepo) GetByID(ctx context.Context, id string) (*domain.StudentProfile, error) {
	query := `SELECT id, student_name, goals, preferred_time, daily_duration_hours,
		environment, created_at, updated_at
		FROM student_profiles WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var p domain.StudentProfile
	var createdAt, updatedAt string
	err := row.Scan(
		&p.ID,
		&p.StudentName,
		&p.Goals,
		&p.Preferences.PreferredTime,
		&p.Preferences.DailyDurationHours,
		&p.Preferences.Environment,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("student profile: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning student profile: %w", err)
	}
	p.CreatedAt = parseTime(createdAt)
	p.UpdatedAt = parseTime(updatedAt)

	if err := r.loadSubjects(ctx, &p); err != nil {
		return nil, err
	}
	if err := r.loadMethods(ctx, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *SQLiteProfileRepo) GetLatest(ctx context.Context) (*domain.StudentProfile, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id FROM student_profiles ORDER BY created_at DESC, rowid DESC LIMIT 1`)

	var id string
	if err := row.Scan(&id); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("student profile: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning latest profile id: %w", err)
	}
	return r.GetByID(ctx, id)
}

func (r *SQLiteProfileRepo) List(ctx context.Context) ([]*domain.StudentProfile, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id FROM student_profiles ORDER BY created_at DESC, rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing student profiles: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning profile id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating profiles: %w", err)
	}

	profiles := make([]*domain.StudentProfile, 0, len(ids))
	for _, id := range ids {
		p, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

func (r *SQLiteProfileRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM student_profiles WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting student profile: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("student profile: %w", ErrNotFound)
	}
	return nil
}

func (r *SQLiteProfileRepo) loadSubjects(ctx context.Context, p *domain.StudentProfile) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT name, strength, weakness FROM profile_subjects
		WHERE profile_id = ? ORDER BY position`, p.ID)
	if err != nil {
		return fmt.Errorf("loading subjects: %w", err)
	}
	defer rows.Close()

	p.Strengths = make(map[string]string)
	p.Weaknesses = make(map[string]string)
	for rows.Next() {
		var name, strength, weakness string
		if err := rows.Scan(&name, &strength, &weakness); err != nil {
			return fmt.Errorf("scanning subject: %w", err)
		}
		p.Subjects = append(p.Subjects, name)
		p.Strengths[name] = strength
		p.Weaknesses[name] = weakness
	}
	return rows.Err()
}

func (r *SQLiteProfileRepo) loadMethods(ctx context.Context, p *domain.StudentProfile) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT method FROM profile_methods WHERE profile_id = ? ORDER BY position`, p.ID)
	if err != nil {
		return fmt.Errorf("loading methods: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var method string
		if err := rows.Scan(&method); err != nil {
			return fmt.Errorf("scanning method: %w", err)
		}
		p.Preferences.Methods = append(p.Preferences.Methods, method)
	}
	return rows.Err()
}
