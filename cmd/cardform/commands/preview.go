package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-cardform"
	"github.com/goliatone/go-cardform/components/imagepreview"
	"github.com/goliatone/go-cardform/pkg/events"
)

func previewCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview <image-file>",
		Short: "Print the preview fragment for an image file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loop := events.NewLoop()
			input := imagepreview.NewInput("image/*")
			container := &imagepreview.Container{}

			bindings := cardform.Setup(cardform.Form{
				ImageInputs: []imagepreview.FileInput{input},
				Preview:     container,
			}, a.componentOptions(cardform.WithDispatcher(loop))...)

			done := make(chan error, 1)
			go func() { done <- loop.Run(context.Background()) }()

			input.Select(imagepreview.DiskFile(args[0]))
			bindings.Wait()
			loop.Close()
			if err := <-done; err != nil && !errors.Is(err, events.ErrClosed) {
				return err
			}

			if container.Writes() == 0 {
				return fmt.Errorf("no preview for %q: not a readable image", args[0])
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), container.HTML())
			return err
		},
	}
	return cmd
}
