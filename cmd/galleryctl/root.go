package main

import (
	"os"

	"github.com/Charlelielataste/escoffier-gallery/pkg/gallery"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	server string
}

func (o *rootOptions) client() *gallery.Client {
	return gallery.NewClient(o.server)
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "galleryctl",
		Short: "Browse, upload and monitor the event gallery",
		Long: `galleryctl talks to the gallery API.

Examples:
  galleryctl list images --all
  galleryctl upload --type video toast.mp4 speech.mov
  galleryctl usage --watch`,
		SilenceUsage: true,
	}

	defaultServer := os.Getenv("GALLERY_SERVER")
	if defaultServer == "" {
		defaultServer = "http://localhost:8080"
	}
	cmd.PersistentFlags().StringVarP(&opts.server, "server", "s", defaultServer, "Gallery API base URL (env GALLERY_SERVER)")

	cmd.AddCommand(newListCmd(opts))
	cmd.AddCommand(newUploadCmd(opts))
	cmd.AddCommand(newUsageCmd(opts))

	return cmd
}
