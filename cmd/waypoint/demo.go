package main

import (
	"fmt"

	"github.com/aretw0/waypoint"
	"github.com/aretw0/waypoint/internal/presentation/tui"
	"github.com/aretw0/waypoint/pkg/observability"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

func newDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Walk through the sample graph, including a restore after process death",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := getLogger(cmd)
			if err != nil {
				return err
			}
			store, closeStore, err := getStore(cmd)
			if err != nil {
				return err
			}
			defer closeStore()

			out := cmd.OutOrStdout()
			id, _ := cmd.Flags().GetString("id")
			app := newSample(out)
			opts := []waypoint.Option{
				waypoint.WithLogger(logger),
				waypoint.WithHooks(observability.LogHooks(logger)),
			}

			host, err := waypoint.New(app.graph, opts...)
			if err != nil {
				return err
			}
			tui.PrintBanner(out)
			tui.NewMenuRenderer(termenv.Ascii).Render(out, host.Menu(nil))

			// Round trip: home listens, profile answers.
			if err := host.Render(); err != nil {
				return err
			}
			dir, err := app.profile.Invoke(ProfileArgs{ID: 1, Name: "ada"})
			if err != nil {
				return err
			}
			if err := host.Navigator().Navigate(dir); err != nil {
				return err
			}
			if err := host.Render(); err != nil {
				return err
			}

			// Process death: profile answers before home registers again.
			fresh, err := waypoint.New(app.graph, opts...)
			if err != nil {
				return err
			}
			dir, err = app.profile.Invoke(ProfileArgs{ID: 2, Name: "grace"})
			if err != nil {
				return err
			}
			if err := fresh.Navigator().Navigate(dir); err != nil {
				return err
			}
			if err := fresh.Render(); err != nil {
				return err
			}
			if err := fresh.Save(cmd.Context(), store, id); err != nil {
				return err
			}
			fmt.Fprintf(out, "-- saved %q, process restarting --\n", id)

			restored, err := waypoint.Restore(cmd.Context(), app.graph, store, id, opts...)
			if err != nil {
				return err
			}
			if err := restored.Render(); err != nil {
				return err
			}
			if keep, _ := cmd.Flags().GetBool("keep"); !keep {
				return store.Delete(cmd.Context(), id)
			}
			return nil
		},
	}
	cmd.Flags().String("id", "demo", "Host ID used for the saved snapshot")
	cmd.Flags().Bool("keep", false, "Keep the snapshot after the demo")
	return cmd
}
