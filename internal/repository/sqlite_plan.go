package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/studbud/internal/db"
	"github.com/alexanderramin/studbud/internal/domain"
)

// SQLitePlanRepo implements PlanRepo using a SQLite database. A stored
// plan spans three tables (plans, plan_days, study_blocks); Create is
// expected to run inside a unit of work so the write is atomic.
type SQLitePlanRepo struct {
	db db.DBTX
}

// NewSQLitePlanRepo creates a new SQLitePlanRepo.
func NewSQLitePlanRepo(conn db.DBTX) *SQLitePlanRepo {
	return &SQLitePlanRepo{db: conn}
}

func (r *SQLitePlanRepo) Create(ctx context.Context, p *StoredPlan) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO plans (id, profile_id, start_date, num_days, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		p.ID,
		p.ProfileID,
		p.StartDate.Format(domain.DateLayout),
		p.NumDays,
		formatTime(p.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting plan: %w", err)
	}

	for _, date := range p.Plan.Dates() {
		daily := p.Plan[date]
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO plan_days (plan_id, date, environment, preferred_time)
			VALUES (?, ?, ?, ?)`,
			p.ID, date, daily.Environment, daily.PreferredTime,
		)
		if err != nil {
			return fmt.Errorf("inserting plan day %s: %w", date, err)
		}

		for i, block := range daily.Blocks {
			_, err := r.db.ExecContext(ctx,
				`INSERT INTO study_blocks (plan_id, date, position, subject, hours, task, priority)
				VALUES (?, ?, ?, ?, ?, ?, ?)`,
				p.ID, date, i, block.Subject, block.AllocatedHours, block.Task, string(block.Priority),
			)
			if err != nil {
				return fmt.Errorf("inserting study block %s/%d: %w", date, i, err)
			}
		}
	}

	return nil
}

func (r *SQLitePlanRepo) GetByID(ctx context.Context, id string) (*StoredPlan, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, profile_id, start_date, num_days, created_at FROM plans WHERE id = ?`, id)

	p, err := scanStoredPlan(row)
	if err != nil {
		return nil, err
	}
	if err := r.loadDays(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *SQLitePlanRepo) GetLatestByProfile(ctx context.Context, profileID string) (*StoredPlan, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, profile_id, start_date, num_days, created_at FROM plans
		WHERE profile_id = ? ORDER BY created_at DESC, rowid DESC LIMIT 1`, profileID)

	p, err := scanStoredPlan(row)
	if err != nil {
		return nil, err
	}
	if err := r.loadDays(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *SQLitePlanRepo) ListByProfile(ctx context.Context, profileID string) ([]*StoredPlan, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id FROM plans WHERE profile_id = ? ORDER BY created_at DESC, rowid DESC`, profileID)
	if err != nil {
		return nil, fmt.Errorf("listing plans: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning plan id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating plans: %w", err)
	}

	plans := make([]*StoredPlan, 0, len(ids))
	for _, id := range ids {
		p, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	return plans, nil
}

func (r *SQLitePlanRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM plans WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting plan: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("plan: %w", ErrNotFound)
	}
	return nil
}

func scanStoredPlan(row *sql.Row) (*StoredPlan, error) {
	var p StoredPlan
	var startDate, createdAt string
	err := row.Scan(&p.ID, &p.ProfileID, &startDate, &p.NumDays, &createdAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("plan: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning plan: %w", err)
	}

	p.StartDate, err = parseDate(startDate)
	if err != nil {
		return nil, fmt.Errorf("plan %s: %w", p.ID, err)
	}
	p.CreatedAt = parseTime(createdAt)
	p.Plan = make(domain.StudyPlan)
	return &p, nil
}

func (r *SQLitePlanRepo) loadDays(ctx context.Context, p *StoredPlan) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT date, environment, preferred_time FROM plan_days
		WHERE plan_id = ? ORDER BY date`, p.ID)
	if err != nil {
		return fmt.Errorf("loading plan days: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var dateStr, environment, preferredTime string
		if err := rows.Scan(&dateStr, &environment, &preferredTime); err != nil {
			return fmt.Errorf("scanning plan day: %w", err)
		}
		date, err := parseDate(dateStr)
		if err != nil {
			return fmt.Errorf("plan day: %w", err)
		}
		p.Plan[dateStr] = domain.DailyPlan{
			Date:          date,
			Environment:   environment,
			PreferredTime: preferredTime,
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating plan days: %w", err)
	}

	return r.loadBlocks(ctx, p)
}

func (r *SQLitePlanRepo) loadBlocks(ctx context.Context, p *StoredPlan) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT date, subject, hours, task, priority FROM study_blocks
		WHERE plan_id = ? ORDER BY date, position`, p.ID)
	if err != nil {
		return fmt.Errorf("loading study blocks: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var dateStr, subject, task, priorityStr string
		var hours float64
		if err := rows.Scan(&dateStr, &subject, &hours, &task, &priorityStr); err != nil {
			return fmt.Errorf("scanning study block: %w", err)
		}
		priority, err := domain.ParsePriority(priorityStr)
		if err != nil {
			return fmt.Errorf("study block %s: %w", dateStr, err)
		}

		daily, ok := p.Plan[dateStr]
		if !ok {
			return fmt.Errorf("study block references missing plan day %s", dateStr)
		}
		daily.Blocks = append(daily.Blocks, domain.StudyBlock{
			Subject:        subject,
			AllocatedHours: hours,
			Task:           task,
			Priority:       priority,
		})
		p.Plan[dateStr] = daily
	}
	return rows.Err()
}
