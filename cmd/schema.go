package cmd

import (
	"context"
	"fmt"

	"jsonplaceholder/core/app"
	"jsonplaceholder/core/database"
	"jsonplaceholder/feature/albums"
	"jsonplaceholder/feature/posts"
	"jsonplaceholder/feature/users"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// schemaCmd compares the cache tables with the current models without
// migrating them.
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Check the cache database schema against the resource models",
	Long: `Reports, per resource table, whether it exists and which columns are
missing or unexpected. Tables are created on first use of a resource, so a
missing table only means the resource was never read.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			reports, err := database.Inspect(a.DB.WithContext(ctx), &posts.Post{}, &users.User{}, &albums.Album{})
			if err != nil {
				return err
			}
			if err := printOne(cmd, reports); err != nil {
				return err
			}

			drifted := 0
			for _, r := range reports {
				if r.Exists && !r.OK() {
					a.Logger.Warn("Table drifted from model",
						zap.String("table", r.Table),
						zap.Strings("missing", r.Missing))
					drifted++
				}
			}
			if drifted > 0 {
				return fmt.Errorf("%d table(s) do not match their model", drifted)
			}
			return nil
		})
	},
}

func init() {
	RootCmd.AddCommand(schemaCmd)
}
