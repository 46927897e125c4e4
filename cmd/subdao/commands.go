package subdao

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/smartcontractkit/subdao"
	"github.com/smartcontractkit/subdao/types"
)

func buildInitCmd(opts *options) *cobra.Command {
	var configPath string

	cmd := cobra.Command{
		Use:   "init",
		Short: "Instantiate the timelock from a YAML config file",
		Long: `Instantiate the timelock from a YAML config file. The sender is the
pre-propose module of the subDAO named in the config.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadInstantiateConfig(configPath)
			if err != nil {
				return err
			}
			msg, err := cfg.InstantiateMsg()
			if err != nil {
				return err
			}
			sender, err := opts.requireSender()
			if err != nil {
				return err
			}

			return opts.withTimelock(cmd, hostQuerier{subdao: cfg.Subdao},
				func(ctx context.Context, timelock *subdao.Timelock) (any, error) {
					return timelock.Instantiate(ctx, opts.env(), sender, msg)
				})
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "YAML file with owner, timelock_duration and subdao")
	_ = cmd.MarkFlagRequired("config")

	return &cmd
}

func buildLockCmd(opts *options) *cobra.Command {
	var (
		proposalID uint64
		msgsPath   string
	)

	cmd := cobra.Command{
		Use:   "lock",
		Short: "Timelock an approved subDAO proposal",
		RunE: func(cmd *cobra.Command, args []string) error {
			sender, err := opts.requireSender()
			if err != nil {
				return err
			}

			var msgs []types.ChainMsg
			if msgsPath != "" {
				msgs, err = loadMsgs(msgsPath)
				if err != nil {
					return err
				}
			}

			return opts.withTimelock(cmd, hostQuerier{}, func(ctx context.Context, timelock *subdao.Timelock) (any, error) {
				return timelock.LockProposal(ctx, opts.env(), sender, proposalID, msgs)
			})
		},
	}

	cmd.Flags().Uint64Var(&proposalID, "id", 0, "Proposal ID assigned by the subDAO proposal module")
	cmd.Flags().StringVar(&msgsPath, "msgs", "", "JSON file holding the array of messages to timelock")
	_ = cmd.MarkFlagRequired("id")

	return &cmd
}

func buildExecuteCmd(opts *options) *cobra.Command {
	var proposalID uint64

	cmd := cobra.Command{
		Use:   "execute",
		Short: "Execute a timelocked proposal whose delay has elapsed",
		Long: `Execute a timelocked proposal whose delay has elapsed. The sub messages to
dispatch are printed; report a failed one with the reply command.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sender, err := opts.requireSender()
			if err != nil {
				return err
			}

			return opts.withTimelock(cmd, hostQuerier{}, func(ctx context.Context, timelock *subdao.Timelock) (any, error) {
				return timelock.Execute(ctx, opts.env(), sender, proposalID)
			})
		},
	}

	cmd.Flags().Uint64Var(&proposalID, "id", 0, "Proposal ID")
	_ = cmd.MarkFlagRequired("id")

	return &cmd
}

func buildReplyCmd(opts *options) *cobra.Command {
	var (
		proposalID uint64
		reason     string
	)

	cmd := cobra.Command{
		Use:   "reply",
		Short: "Report the failure of a sub message dispatched by execute",
		RunE: func(cmd *cobra.Command, args []string) error {
			reply := types.Reply{ID: proposalID, Err: reason}

			return opts.withTimelock(cmd, hostQuerier{}, func(ctx context.Context, timelock *subdao.Timelock) (any, error) {
				return timelock.Reply(ctx, opts.env(), reply)
			})
		},
	}

	cmd.Flags().Uint64Var(&proposalID, "id", 0, "Proposal ID the sub message is tagged with")
	cmd.Flags().StringVar(&reason, "error", "", "Error reported by the sub message")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("error")

	return &cmd
}

func buildOverruleCmd(opts *options) *cobra.Command {
	var proposalID uint64

	cmd := cobra.Command{
		Use:   "overrule",
		Short: "Overrule a timelocked proposal. Only the owner may do so.",
		RunE: func(cmd *cobra.Command, args []string) error {
			sender, err := opts.requireSender()
			if err != nil {
				return err
			}

			return opts.withTimelock(cmd, hostQuerier{}, func(ctx context.Context, timelock *subdao.Timelock) (any, error) {
				return timelock.Overrule(ctx, opts.env(), sender, proposalID)
			})
		},
	}

	cmd.Flags().Uint64Var(&proposalID, "id", 0, "Proposal ID")
	_ = cmd.MarkFlagRequired("id")

	return &cmd
}

func buildUpdateConfigCmd(opts *options) *cobra.Command {
	var (
		owner    string
		duration types.Duration
	)

	cmd := cobra.Command{
		Use:   "update-config",
		Short: "Update the timelock owner or duration. Only the owner may do so.",
		RunE: func(cmd *cobra.Command, args []string) error {
			sender, err := opts.requireSender()
			if err != nil {
				return err
			}

			var msg types.UpdateConfigMsg
			if cmd.Flags().Changed("owner") {
				msg.Owner = &owner
			}
			if cmd.Flags().Changed("duration") {
				seconds, err := duration.Seconds()
				if err != nil {
					return err
				}
				msg.TimelockDuration = &seconds
			}

			return opts.withTimelock(cmd, hostQuerier{}, func(ctx context.Context, timelock *subdao.Timelock) (any, error) {
				return timelock.UpdateConfig(ctx, opts.env(), sender, msg)
			})
		},
	}

	cmd.Flags().StringVar(&owner, "owner", "", "New owner")
	cmd.Flags().Var(&durationValue{&duration}, "duration", "New timelock duration, e.g. 72h")

	return &cmd
}

func buildConfigCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the timelock config",
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withTimelock(cmd, hostQuerier{}, func(ctx context.Context, timelock *subdao.Timelock) (any, error) {
				return timelock.Config(ctx)
			})
		},
	}
}

func buildProposalCmd(opts *options) *cobra.Command {
	var proposalID uint64

	cmd := cobra.Command{
		Use:   "proposal",
		Short: "Print a timelocked proposal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withTimelock(cmd, hostQuerier{}, func(ctx context.Context, timelock *subdao.Timelock) (any, error) {
				return timelock.Proposal(ctx, proposalID)
			})
		},
	}

	cmd.Flags().Uint64Var(&proposalID, "id", 0, "Proposal ID")
	_ = cmd.MarkFlagRequired("id")

	return &cmd
}

func buildListCmd(opts *options) *cobra.Command {
	var startAfter, limit uint64

	cmd := cobra.Command{
		Use:   "list",
		Short: "List timelocked proposals in ascending ID order",
		RunE: func(cmd *cobra.Command, args []string) error {
			var startAfterPtr, limitPtr *uint64
			if cmd.Flags().Changed("start-after") {
				startAfterPtr = &startAfter
			}
			if cmd.Flags().Changed("limit") {
				limitPtr = &limit
			}

			return opts.withTimelock(cmd, hostQuerier{}, func(ctx context.Context, timelock *subdao.Timelock) (any, error) {
				return timelock.ListProposals(ctx, startAfterPtr, limitPtr)
			})
		},
	}

	cmd.Flags().Uint64Var(&startAfter, "start-after", 0, "Only list proposals with a greater ID")
	cmd.Flags().Uint64Var(&limit, "limit", 0, "Maximum number of proposals (default 30, at most 100)")

	return &cmd
}

func loadMsgs(path string) ([]types.ChainMsg, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read messages file: %w", err)
	}

	var msgs []types.ChainMsg
	if err := json.Unmarshal(b, &msgs); err != nil {
		return nil, fmt.Errorf("failed to parse messages file %s: %w", path, err)
	}

	return msgs, nil
}

// durationValue adapts types.Duration to pflag.Value.
type durationValue struct {
	d *types.Duration
}

func (v *durationValue) String() string {
	if v.d == nil {
		return ""
	}

	return v.d.String()
}

func (v *durationValue) Set(s string) error {
	d, err := types.ParseDuration(s)
	if err != nil {
		return err
	}
	*v.d = d

	return nil
}

func (v *durationValue) Type() string {
	return "duration"
}
