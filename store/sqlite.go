package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/smartcontractkit/subdao/internal/utils/safecast"
	sdkerrors "github.com/smartcontractkit/subdao/sdk/errors"
	"github.com/smartcontractkit/subdao/types"
)

// SQLiteStore keeps the state of a single timelock instance in a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens the SQLite database at path and prepares its tables.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if path == "" {
		return nil, errors.New("sqlite path is required")
	}

	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	s, err := NewSQLiteStore(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

// NewSQLiteStore creates a SQLiteStore over db, creating the tables when missing.
func NewSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	s := &SQLiteStore{db: db}
	if err := s.migrate(context.Background()); err != nil {
		return nil, fmt.Errorf("migrate sqlite store: %w", err)
	}

	return s, nil
}

// Close releases the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) migrate(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS timelock_config (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		owner TEXT NOT NULL,
		timelock_duration INTEGER NOT NULL,
		subdao TEXT NOT NULL
	);`,
		`CREATE TABLE IF NOT EXISTS timelock_proposals (
		id INTEGER PRIMARY KEY,
		timelock_ts TEXT NOT NULL,
		msgs JSON NOT NULL,
		status TEXT NOT NULL
	);`,
	}
	for _, q := range queries {
		if _, err := s.db.ExecContext(ctx, q); err != nil {
			return err
		}
	}

	return nil
}

func (s *SQLiteStore) LoadConfig(ctx context.Context) (*types.TimelockConfig, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT owner, timelock_duration, subdao FROM timelock_config WHERE id = 1`)

	var (
		cfg      types.TimelockConfig
		duration int64
	)
	if err := row.Scan(&cfg.Owner, &duration, &cfg.Subdao); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sdkerrors.ErrNotFound
		}

		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	d, err := safecast.Int64ToUint64(duration)
	if err != nil {
		return nil, fmt.Errorf("invalid stored timelock duration: %w", err)
	}
	cfg.TimelockDuration = d

	return &cfg, nil
}

func (s *SQLiteStore) SaveConfig(ctx context.Context, cfg types.TimelockConfig) error {
	duration, err := safecast.Uint64ToInt64(cfg.TimelockDuration)
	if err != nil {
		return fmt.Errorf("invalid timelock duration: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `INSERT INTO timelock_config (id, owner, timelock_duration, subdao)
	VALUES (1, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET owner = excluded.owner, timelock_duration = excluded.timelock_duration, subdao = excluded.subdao`,
		cfg.Owner, duration, cfg.Subdao,
	)
	if err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	return nil
}

func (s *SQLiteStore) LoadProposal(ctx context.Context, id uint64) (*types.TimelockedProposal, error) {
	key, err := safecast.Uint64ToInt64(id)
	if err != nil {
		// Ids beyond the int64 range can never be stored.
		return nil, sdkerrors.ErrNotFound
	}

	row := s.db.QueryRowContext(ctx,
		`SELECT id, timelock_ts, msgs, status FROM timelock_proposals WHERE id = ?`, key)

	p, err := scanProposal(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sdkerrors.ErrNotFound
		}

		return nil, fmt.Errorf("failed to load proposal %d: %w", id, err)
	}

	return p, nil
}

func (s *SQLiteStore) SaveProposal(ctx context.Context, proposal types.TimelockedProposal) error {
	key, err := safecast.Uint64ToInt64(proposal.ID)
	if err != nil {
		return fmt.Errorf("invalid proposal id: %w", err)
	}

	msgs := proposal.Msgs
	if msgs == nil {
		msgs = []types.ChainMsg{}
	}
	msgsJSON, err := json.Marshal(msgs)
	if err != nil {
		return fmt.Errorf("failed to encode proposal msgs: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `INSERT INTO timelock_proposals (id, timelock_ts, msgs, status)
	VALUES (?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET timelock_ts = excluded.timelock_ts, msgs = excluded.msgs, status = excluded.status`,
		key, proposal.TimelockTS.UTC().Format(time.RFC3339Nano), string(msgsJSON), proposal.Status.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to save proposal %d: %w", proposal.ID, err)
	}

	return nil
}

func (s *SQLiteStore) ListProposals(
	ctx context.Context, startAfter *uint64, limit int,
) ([]types.TimelockedProposal, error) {
	var after int64 = -1
	if startAfter != nil {
		a, err := safecast.Uint64ToInt64(*startAfter)
		if err != nil {
			return []types.TimelockedProposal{}, nil
		}
		after = a
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, timelock_ts, msgs, status FROM timelock_proposals WHERE id > ? ORDER BY id ASC LIMIT ?`,
		after, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list proposals: %w", err)
	}
	defer func() { _ = rows.Close() }()

	proposals := []types.TimelockedProposal{}
	for rows.Next() {
		p, err := scanProposal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan proposal: %w", err)
		}
		proposals = append(proposals, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list proposals: %w", err)
	}

	return proposals, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProposal(row rowScanner) (*types.TimelockedProposal, error) {
	var (
		id       int64
		ts       string
		msgsJSON string
		status   string
	)
	if err := row.Scan(&id, &ts, &msgsJSON, &status); err != nil {
		return nil, err
	}

	pid, err := safecast.Int64ToUint64(id)
	if err != nil {
		return nil, err
	}

	timelockTS, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return nil, fmt.Errorf("invalid timelock timestamp %q: %w", ts, err)
	}

	var msgs []types.ChainMsg
	if err := json.Unmarshal([]byte(msgsJSON), &msgs); err != nil {
		return nil, fmt.Errorf("invalid proposal msgs: %w", err)
	}

	st, err := types.ParseProposalStatus(status)
	if err != nil {
		return nil, err
	}

	return &types.TimelockedProposal{
		ID:         pid,
		TimelockTS: timelockTS,
		Msgs:       msgs,
		Status:     st,
	}, nil
}
