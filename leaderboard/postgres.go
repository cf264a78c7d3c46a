package leaderboard

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/lixenwraith/reef-dash/constants"
)

// DefaultTable is the leaderboard table name
const DefaultTable = "leaderboard"

// PostgresStore keeps entries in a shared table, partitioned by application ID
type PostgresStore struct {
	db    *sql.DB
	table string
	appID string
	now   func() time.Time
}

// OpenPostgres connects with a lib/pq connection string and verifies the connection
func OpenPostgres(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

// NewPostgresStore wraps db; an empty table name uses DefaultTable
func NewPostgresStore(db *sql.DB, table string) *PostgresStore {
	if table == "" {
		table = DefaultTable
	}
	return &PostgresStore{
		db:    db,
		table: pq.QuoteIdentifier(table),
		appID: constants.AppID,
		now:   time.Now,
	}
}

// EnsureSchema creates the table and its ranking index if they do not exist
func (p *PostgresStore) EnsureSchema(ctx context.Context) error {
	stmts := []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id UUID PRIMARY KEY,
			app_id TEXT NOT NULL,
			name TEXT NOT NULL,
			score INTEGER NOT NULL CHECK (score >= 0),
			created_at TIMESTAMPTZ NOT NULL
		)`, p.table),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s ON %s (app_id, score DESC, created_at ASC)`,
			pq.QuoteIdentifier(p.indexName()), p.table),
	}
	for _, stmt := range stmts {
		if _, err := p.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure leaderboard schema: %w", err)
		}
	}
	return nil
}

func (p *PostgresStore) indexName() string {
	// p.table is quoted; strip quotes for the derived name
	raw := p.table[1 : len(p.table)-1]
	return raw + "_rank_idx"
}

func (p *PostgresStore) Append(ctx context.Context, name string, score int) error {
	e, err := newEntry(name, score, p.now())
	if err != nil {
		return err
	}
	query := fmt.Sprintf(`INSERT INTO %s (id, app_id, name, score, created_at) VALUES ($1, $2, $3, $4, $5)`, p.table)
	if _, err := p.db.ExecContext(ctx, query, e.ID, p.appID, e.Name, e.Score, e.Time); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			return fmt.Errorf("insert leaderboard entry (%s): %w", pqErr.Code.Name(), err)
		}
		return fmt.Errorf("insert leaderboard entry: %w", err)
	}
	return nil
}

func (p *PostgresStore) TopN(ctx context.Context, n int) ([]Entry, error) {
	if n <= 0 {
		return nil, nil
	}
	query := fmt.Sprintf(`SELECT id, name, score, created_at FROM %s
		WHERE app_id = $1
		ORDER BY score DESC, created_at ASC, id ASC
		LIMIT $2`, p.table)

	rows, err := p.db.QueryContext(ctx, query, p.appID, n)
	if err != nil {
		return nil, fmt.Errorf("query leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Name, &e.Score, &e.Time); err != nil {
			return nil, fmt.Errorf("scan leaderboard row: %w", err)
		}
		e.Time = e.Time.UTC()
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query leaderboard: %w", err)
	}
	return entries, nil
}
