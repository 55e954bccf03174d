package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Charlelielataste/escoffier-gallery/pkg/gallery"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newUploadCmd(opts *rootOptions) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "upload <file>...",
		Short: "Upload files in one batch",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := parseCollection(kind)
			if err != nil {
				return err
			}

			files := make([]gallery.File, 0, len(args))
			for _, name := range args {
				f, err := os.Open(name)
				if err != nil {
					return err
				}
				defer f.Close()
				info, err := f.Stat()
				if err != nil {
					return err
				}
				files = append(files, gallery.File{Name: filepath.Base(name), Body: f, Size: info.Size()})
			}

			out := cmd.OutOrStdout()
			uploaded, err := opts.client().UploadBatch(cmd.Context(), k, files)

			var apiErr *gallery.APIError
			partial := errors.As(err, &apiErr) && apiErr.Partial()
			if partial {
				uploaded = apiErr.Uploaded
			}
			for _, asset := range uploaded {
				fmt.Fprintf(out, "%s %s -> %s\n", color.GreenString("uploaded"), asset.OriginalFilename, asset.PublicID)
			}
			if err != nil {
				if partial && apiErr.ExceededAfter != "" {
					fmt.Fprintf(out, "%s after %s: %s\n", color.RedString("limit exceeded"), apiErr.ExceededAfter, apiErr.Message)
				} else if partial {
					fmt.Fprintf(out, "%s %s: %s\n", color.RedString("failed"), apiErr.FailedFile, apiErr.Message)
				}
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&kind, "type", "t", "image", "Media type (image|video)")
	return cmd
}
