package cmd

import (
	"context"

	"jsonplaceholder/core/refresh"

	"github.com/spf13/cobra"
)

// syncCmd runs one refresh cycle in the foreground.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Download every collection into the cache once",
	Long: `Fetches posts, users and albums and upserts them into the cache.
Failed downloads are retried with backoff for at most one refresh period.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRepositories(cmd, func(ctx context.Context, r *repositories) error {
			a := r.app
			sched := refresh.NewScheduler(a.Config.Refresh, a.Settings, a.Logger.Named("refresh"), r.syncers()...)
			results := sched.RunOnce(ctx, sched.Period(ctx))
			return printOne(cmd, results)
		})
	},
}

func init() {
	RootCmd.AddCommand(syncCmd)
}
