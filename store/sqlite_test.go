package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sdkerrors "github.com/smartcontractkit/subdao/sdk/errors"
	"github.com/smartcontractkit/subdao/types"
)

var errDisk = errors.New("disk I/O error")

func newMockStore(t *testing.T) (*SQLiteStore, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS timelock_config").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS timelock_proposals").WillReturnResult(sqlmock.NewResult(0, 0))

	s, err := NewSQLiteStore(db)
	require.NoError(t, err)

	return s, mock
}

func TestNewSQLiteStore_MigrationFailure(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS timelock_config").WillReturnError(errDisk)

	_, err = NewSQLiteStore(db)
	require.ErrorIs(t, err, errDisk)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOpenSQLite_EmptyPath(t *testing.T) {
	t.Parallel()

	_, err := OpenSQLite("")
	require.EqualError(t, err, "sqlite path is required")
}

func TestSQLiteStore_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		give    func(s *SQLiteStore) error
		wantErr string
	}{
		{
			name: "load config query fails",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT owner, timelock_duration, subdao FROM timelock_config").WillReturnError(errDisk)
			},
			give: func(s *SQLiteStore) error {
				_, err := s.LoadConfig(context.Background())
				return err
			},
			wantErr: "failed to load config: disk I/O error",
		},
		{
			name: "stored duration is negative",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT owner, timelock_duration, subdao FROM timelock_config").
					WillReturnRows(sqlmock.NewRows([]string{"owner", "timelock_duration", "subdao"}).
						AddRow("owner", int64(-1), "subdao"))
			},
			give: func(s *SQLiteStore) error {
				_, err := s.LoadConfig(context.Background())
				return err
			},
			wantErr: "invalid stored timelock duration: value -1 is negative, cannot convert to uint64",
		},
		{
			name: "save config fails",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO timelock_config").
					WithArgs("owner", int64(10), "subdao").
					WillReturnError(errDisk)
			},
			give: func(s *SQLiteStore) error {
				return s.SaveConfig(context.Background(), types.TimelockConfig{Owner: "owner", TimelockDuration: 10, Subdao: "subdao"})
			},
			wantErr: "failed to save config: disk I/O error",
		},
		{
			name:  "duration out of range",
			setup: func(sqlmock.Sqlmock) {},
			give: func(s *SQLiteStore) error {
				return s.SaveConfig(context.Background(), types.TimelockConfig{Owner: "owner", TimelockDuration: 1 << 63, Subdao: "subdao"})
			},
			wantErr: "invalid timelock duration: value 9223372036854775808 exceeds int64 range",
		},
		{
			name: "save proposal fails",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO timelock_proposals").WillReturnError(errDisk)
			},
			give: func(s *SQLiteStore) error {
				return s.SaveProposal(context.Background(), proposal(3, types.ProposalStatusTimelocked))
			},
			wantErr: "failed to save proposal 3: disk I/O error",
		},
		{
			name: "corrupted timestamp",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT id, timelock_ts, msgs, status FROM timelock_proposals").
					WithArgs(int64(1)).
					WillReturnRows(sqlmock.NewRows([]string{"id", "timelock_ts", "msgs", "status"}).
						AddRow(int64(1), "yesterday", "[]", "timelocked"))
			},
			give: func(s *SQLiteStore) error {
				_, err := s.LoadProposal(context.Background(), 1)
				return err
			},
			wantErr: `failed to load proposal 1: invalid timelock timestamp "yesterday"`,
		},
		{
			name: "unknown status",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT id, timelock_ts, msgs, status FROM timelock_proposals").
					WillReturnRows(sqlmock.NewRows([]string{"id", "timelock_ts", "msgs", "status"}).
						AddRow(int64(2), "2024-05-01T12:00:00Z", "[]", "vetoed"))
			},
			give: func(s *SQLiteStore) error {
				_, err := s.ListProposals(context.Background(), nil, 10)
				return err
			},
			wantErr: `failed to scan proposal: unknown proposal status: "vetoed"`,
		},
		{
			name: "list query fails",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT id, timelock_ts, msgs, status FROM timelock_proposals").
					WithArgs(int64(-1), int64(30)).
					WillReturnError(errDisk)
			},
			give: func(s *SQLiteStore) error {
				_, err := s.ListProposals(context.Background(), nil, 30)
				return err
			},
			wantErr: "failed to list proposals: disk I/O error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, mock := newMockStore(t)
			tt.setup(mock)

			require.ErrorContains(t, tt.give(s), tt.wantErr)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSQLiteStore_LoadProposalMissing(t *testing.T) {
	t.Parallel()

	s, mock := newMockStore(t)
	mock.ExpectQuery("SELECT id, timelock_ts, msgs, status FROM timelock_proposals").
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "timelock_ts", "msgs", "status"}))

	_, err := s.LoadProposal(context.Background(), 4)
	require.ErrorIs(t, err, sdkerrors.ErrNotFound)

	_, err = s.LoadProposal(context.Background(), 1<<63)
	require.ErrorIs(t, err, sdkerrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
