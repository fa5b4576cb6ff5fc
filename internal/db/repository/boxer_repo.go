package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ringside-labs/boxing-platform/internal/boxer"
)

// Leaderboard sort modes accepted by the ranking query.
const (
	SortByWins   = "wins"
	SortByWinPct = "win_pct"
)

// ErrInvalidSort signals an unsupported leaderboard sort parameter.
var ErrInvalidSort = errors.New("invalid sort parameter")

const pgUniqueViolation = "23505"

// LeaderboardRow is one ranked boxer with aggregate fight stats.
// WinPct is a percentage rounded to one decimal.
type LeaderboardRow struct {
	boxer.Boxer
	Fights int     `json:"fights"`
	Wins   int     `json:"wins"`
	WinPct float64 `json:"win_pct"`
}

// BoxerRepository exposes typed DB operations for boxer records.
type BoxerRepository struct {
	db *sql.DB
}

// NewBoxerRepository wraps a database handle for boxer-specific operations.
func NewBoxerRepository(db *sql.DB) *BoxerRepository {
	return &BoxerRepository{db: db}
}

// Create inserts a new boxer and returns the stored record. A unique-name
// collision maps to boxer.ErrDuplicateName.
func (r *BoxerRepository) Create(ctx context.Context, n boxer.NewBoxer) (boxer.Boxer, error) {
	const q = `
		INSERT INTO boxers (name, weight, height, reach, age)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, weight, height, reach, age
	`
	row := r.db.QueryRowContext(ctx, q, n.Name, n.Weight, n.Height, n.Reach, n.Age)

	b, err := scanBoxer(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return boxer.Boxer{}, fmt.Errorf("boxer %q: %w", n.Name, boxer.ErrDuplicateName)
		}
		return boxer.Boxer{}, fmt.Errorf("insert boxer: %w", err)
	}
	return b, nil
}

// GetByID fetches a boxer by primary key.
func (r *BoxerRepository) GetByID(ctx context.Context, id int64) (boxer.Boxer, error) {
	const q = `
		SELECT id, name, weight, height, reach, age
		FROM boxers WHERE id = $1
	`
	b, err := scanBoxer(r.db.QueryRowContext(ctx, q, id))
	if errors.Is(err, sql.ErrNoRows) {
		return boxer.Boxer{}, fmt.Errorf("boxer %d: %w", id, boxer.ErrNotFound)
	}
	if err != nil {
		return boxer.Boxer{}, fmt.Errorf("get boxer by id: %w", err)
	}
	return b, nil
}

// GetByName fetches a boxer by its unique name.
func (r *BoxerRepository) GetByName(ctx context.Context, name string) (boxer.Boxer, error) {
	const q = `
		SELECT id, name, weight, height, reach, age
		FROM boxers WHERE name = $1
	`
	b, err := scanBoxer(r.db.QueryRowContext(ctx, q, name))
	if errors.Is(err, sql.ErrNoRows) {
		return boxer.Boxer{}, fmt.Errorf("boxer %q: %w", name, boxer.ErrNotFound)
	}
	if err != nil {
		return boxer.Boxer{}, fmt.Errorf("get boxer by name: %w", err)
	}
	return b, nil
}

// Delete permanently removes a boxer. Deleting an unknown id is an error.
func (r *BoxerRepository) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM boxers WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return fmt.Errorf("delete boxer: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete boxer: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("boxer %d: %w", id, boxer.ErrNotFound)
	}
	return nil
}

// DeleteAll removes every boxer row and restarts the id sequence so a reset
// catalog assigns ids from 1 again.
func (r *BoxerRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `TRUNCATE boxers RESTART IDENTITY`); err != nil {
		return fmt.Errorf("clear boxers: %w", err)
	}
	return nil
}

// RecordResult increments fight stats for one boxer: a win bumps both fights
// and wins, a loss bumps fights only.
func (r *BoxerRepository) RecordResult(ctx context.Context, id int64, result boxer.FightResult) error {
	if !result.Valid() {
		return fmt.Errorf("invalid result: %q. Expected 'win' or 'loss'", result)
	}

	var q string
	if result == boxer.ResultWin {
		q = `UPDATE boxers SET fights = fights + 1, wins = wins + 1 WHERE id = $1`
	} else {
		q = `UPDATE boxers SET fights = fights + 1 WHERE id = $1`
	}

	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return fmt.Errorf("record result: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("record result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("boxer %d: %w", id, boxer.ErrNotFound)
	}
	return nil
}

// Leaderboard ranks boxers with at least one fight by wins or win percentage,
// descending.
func (r *BoxerRepository) Leaderboard(ctx context.Context, sortBy string) ([]LeaderboardRow, error) {
	q := `
		SELECT id, name, weight, height, reach, age, fights, wins,
		       (wins * 1.0 / fights) AS win_pct
		FROM boxers
		WHERE fights > 0
	`
	switch sortBy {
	case SortByWins:
		q += ` ORDER BY wins DESC`
	case SortByWinPct:
		q += ` ORDER BY win_pct DESC`
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidSort, sortBy)
	}

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("leaderboard query: %w", err)
	}
	defer rows.Close()

	ranking := make([]LeaderboardRow, 0)
	for rows.Next() {
		var (
			entry LeaderboardRow
			pct   float64
		)
		if err := rows.Scan(
			&entry.ID, &entry.Name, &entry.Weight, &entry.Height,
			&entry.Reach, &entry.Age, &entry.Fights, &entry.Wins, &pct,
		); err != nil {
			return nil, fmt.Errorf("leaderboard scan: %w", err)
		}
		if entry.WeightClass, err = boxer.WeightClassFor(entry.Weight); err != nil {
			return nil, err
		}
		entry.WinPct = math.Round(pct*1000) / 10
		ranking = append(ranking, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("leaderboard rows: %w", err)
	}
	return ranking, nil
}

// CheckTable verifies the boxers table is reachable; used by /db-check.
func (r *BoxerRepository) CheckTable(ctx context.Context) error {
	var one int
	if err := r.db.QueryRowContext(ctx, `SELECT 1 FROM boxers LIMIT 1`).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		return fmt.Errorf("boxers table check: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBoxer(row rowScanner) (boxer.Boxer, error) {
	var b boxer.Boxer
	if err := row.Scan(&b.ID, &b.Name, &b.Weight, &b.Height, &b.Reach, &b.Age); err != nil {
		return boxer.Boxer{}, err
	}
	class, err := boxer.WeightClassFor(b.Weight)
	if err != nil {
		return boxer.Boxer{}, err
	}
	b.WeightClass = class
	return b, nil
}
