package subdao

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/smartcontractkit/subdao"
	"github.com/smartcontractkit/subdao/sdk"
	"github.com/smartcontractkit/subdao/store"
	"github.com/smartcontractkit/subdao/types"
)

type options struct {
	envFile  string
	dbPath   string
	sender   string
	contract string
	verbose  bool
	trace    bool

	shutdown func(context.Context) error
}

func BuildSubdaoCmd() *cobra.Command {
	opts := &options{}

	cmd := cobra.Command{
		Use:   "subdao",
		Short: "Operate a subDAO timelock backed by a local SQLite database",
		Long: `Operate a subDAO timelock backed by a local SQLite database.

The database path and the sender can be configured in a .env file
(SUBDAO_DB_PATH and SUBDAO_SENDER) or with flags.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if opts.shutdown == nil {
				return nil
			}

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			return opts.shutdown(ctx)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "File the SUBDAO_* variables are loaded from")
	cmd.PersistentFlags().StringVar(&opts.dbPath, "db", "", "SQLite database holding the timelock state (default $SUBDAO_DB_PATH)")
	cmd.PersistentFlags().StringVar(&opts.sender, "sender", "", "Address the request is sent from (default $SUBDAO_SENDER)")
	cmd.PersistentFlags().StringVar(&opts.contract, "contract", "timelock", "Address of the timelock")
	cmd.PersistentFlags().BoolVar(&opts.verbose, "verbose", false, "Enable development logging")
	cmd.PersistentFlags().BoolVar(&opts.trace, "trace", false, "Export spans and metrics to stderr")

	cmd.AddCommand(buildInitCmd(opts))
	cmd.AddCommand(buildLockCmd(opts))
	cmd.AddCommand(buildExecuteCmd(opts))
	cmd.AddCommand(buildReplyCmd(opts))
	cmd.AddCommand(buildOverruleCmd(opts))
	cmd.AddCommand(buildUpdateConfigCmd(opts))
	cmd.AddCommand(buildConfigCmd(opts))
	cmd.AddCommand(buildProposalCmd(opts))
	cmd.AddCommand(buildListCmd(opts))

	return &cmd
}

func (o *options) setup(cmd *cobra.Command) error {
	if err := godotenv.Load(o.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", o.envFile, err)
	}
	if o.dbPath == "" {
		o.dbPath = os.Getenv("SUBDAO_DB_PATH")
	}
	if o.sender == "" {
		o.sender = os.Getenv("SUBDAO_SENDER")
	}

	lggr, err := newLogger(o.verbose)
	if err != nil {
		return err
	}
	cmd.SetContext(sdk.WithLogger(cmd.Context(), lggr.Sugar()))

	if o.trace {
		shutdown, err := setupTelemetry(cmd.ErrOrStderr())
		if err != nil {
			return fmt.Errorf("failed to set up telemetry: %w", err)
		}
		o.shutdown = shutdown
	}

	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)

	return cfg.Build()
}

func (o *options) requireSender() (string, error) {
	if o.sender == "" {
		return "", errSenderRequired
	}

	return o.sender, nil
}

func (o *options) env() types.Env {
	return types.Env{BlockTime: time.Now().UTC(), Contract: o.contract}
}

// withTimelock opens the timelock state, runs fn against it and prints what fn returns.
func (o *options) withTimelock(
	cmd *cobra.Command, querier sdk.Querier, fn func(ctx context.Context, timelock *subdao.Timelock) (any, error),
) error {
	s, err := store.OpenSQLite(o.dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	out, err := fn(cmd.Context(), subdao.NewTimelock(s, querier))
	if err != nil {
		return err
	}

	return printJSON(cmd.OutOrStdout(), out)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
