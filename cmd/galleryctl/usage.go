package main

import (
	"context"
	"fmt"
	"io"
	"sync"
	"text/tabwriter"

	"github.com/Charlelielataste/escoffier-gallery/pkg/gallery"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newUsageCmd(opts *rootOptions) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "usage",
		Short: "Show the media provider quota",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client := opts.client()
			out := cmd.OutOrStdout()

			if !watch {
				usage, err := client.Usage(cmd.Context())
				if err != nil {
					return err
				}
				return printUsage(out, usage)
			}

			var mu sync.Mutex
			watcher := gallery.NewUsageWatcher(
				func(ctx context.Context) (gallery.Usage, error) { return client.Usage(ctx) },
				func(usage gallery.Usage) {
					mu.Lock()
					defer mu.Unlock()
					_ = printUsage(out, usage)
				},
				func(err error) {
					fmt.Fprintln(cmd.ErrOrStderr(), color.RedString("usage refresh failed: %v", err))
				},
			)
			watcher.Run(cmd.Context())
			return nil
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Refresh every 30 seconds until interrupted")
	return cmd
}

func printUsage(out io.Writer, usage gallery.Usage) error {
	fmt.Fprintf(out, "\nplan %s, fetched %s\n", usage.Plan, usage.FetchedAt.Local().Format("15:04:05"))

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tUSED\tLIMIT\tPERCENT")
	fmt.Fprintf(w, "credits\t%.2f\t%.0f\t%s\n", usage.Credits.Used, usage.Credits.Limit, percent(usage.Credits.Percent))
	fmt.Fprintf(w, "transformations\t%.0f\t%.0f\t%s\n", usage.Transformations.Used, usage.Transformations.Limit, percent(usage.Transformations.Percent))
	fmt.Fprintf(w, "bandwidth\t%s GB\t%s GB\t%s\n", usage.Bandwidth.UsedGB, usage.Bandwidth.LimitGB, percent(usage.Bandwidth.Percent))
	fmt.Fprintf(w, "storage\t%s GB\t%s GB\t%s\n", usage.Storage.UsedGB, usage.Storage.LimitGB, percent(usage.Storage.Percent))
	if usage.ResetDate != nil {
		fmt.Fprintf(w, "resets\t%s\t\t\n", usage.ResetDate.Format("2006-01-02"))
	}
	return w.Flush()
}

// percent colors a quota the way the dashboard does: red from 90%, yellow from 70%
func percent(p float64) string {
	s := fmt.Sprintf("%.2f%%", p)
	switch {
	case p >= 90:
		return color.RedString(s)
	case p >= 70:
		return color.YellowString(s)
	default:
		return color.GreenString(s)
	}
}
