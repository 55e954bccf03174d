package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/Charlelielataste/escoffier-gallery/pkg/gallery"
	"github.com/spf13/cobra"
)

func newListCmd(opts *rootOptions) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:       "list <images|videos>",
		Short:     "List the gallery, newest first",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"images", "videos"},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseCollection(args[0])
			if err != nil {
				return err
			}

			feed := gallery.NewFeed(opts.client().Loader(kind))
			if err := feed.Start(cmd.Context()); err != nil {
				return err
			}
			for all && feed.State() == gallery.StateReady {
				if err := feed.SentinelVisible(cmd.Context()); err != nil {
					return err
				}
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "CREATED\tPUBLIC ID\tFORMAT\tURL")
			for _, asset := range feed.Assets() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", asset.CreatedAt.Format("2006-01-02 15:04"), asset.PublicID, asset.Format, asset.SecureURL)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			if feed.State() == gallery.StateReady {
				fmt.Fprintln(cmd.ErrOrStderr(), "more pages available, use --all")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Follow the cursor until the last page")
	return cmd
}

func parseCollection(value string) (gallery.Kind, error) {
	switch value {
	case "images", "image":
		return gallery.KindImage, nil
	case "videos", "video":
		return gallery.KindVideo, nil
	default:
		return "", errors.New("collection must be images or videos")
	}
}
