package cmd

import (
	"context"
	"fmt"
	"strconv"

	"jsonplaceholder/core/app"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change the persisted settings",
}

var settingsGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the current settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			s, err := a.Settings.Load(ctx)
			if err != nil {
				return err
			}
			return printOne(cmd, s)
		})
	},
}

var settingsSetRefreshCmd = &cobra.Command{
	Use:   "set-refresh MINUTES",
	Short: "Set the background refresh period in minutes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		minutes, err := strconv.ParseInt(args[0], 10, 32)
		if err != nil {
			return fmt.Errorf("invalid number of minutes %q: %w", args[0], err)
		}
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			s, err := a.Settings.SetRefreshPeriod(ctx, int32(minutes))
			if err != nil {
				return err
			}
			return printOne(cmd, s)
		})
	},
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Remove the stored settings so the defaults apply",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			if err := a.Settings.Reset(ctx); err != nil {
				return err
			}
			s, err := a.Settings.Load(ctx)
			if err != nil {
				return err
			}
			return printOne(cmd, s)
		})
	},
}

func printOne(cmd *cobra.Command, v any) error {
	p := newPrinter(cmd.OutOrStdout(), outputFormat)
	if err := p.Print(v); err != nil {
		return err
	}
	return p.Close()
}

func init() {
	settingsCmd.AddCommand(settingsGetCmd, settingsSetRefreshCmd, settingsResetCmd)
	RootCmd.AddCommand(settingsCmd)
}
