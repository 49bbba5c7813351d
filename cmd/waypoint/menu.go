package main

import (
	"fmt"
	"os"

	"github.com/aretw0/waypoint/internal/presentation/tui"
	"github.com/aretw0/waypoint/pkg/domain"
	"github.com/aretw0/waypoint/pkg/menu"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

func newMenuCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Print the navigation menu of the graph",
		Long:  `Lists the destinations reachable without arguments, start destination first, with labels resolved from message files.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := getLogger(cmd)
			if err != nil {
				return err
			}
			g, err := loadGraph(cmd, logger)
			if err != nil {
				return err
			}

			loc, err := buildLocalizer(cmd)
			if err != nil {
				return err
			}

			var current domain.DestinationSpec
			if route, _ := cmd.Flags().GetString("current"); route != "" {
				if current, err = g.Find(route); err != nil {
					return err
				}
			}

			var renderer *tui.MenuRenderer
			if plain, _ := cmd.Flags().GetBool("plain"); plain {
				renderer = tui.NewMenuRenderer(termenv.Ascii)
			} else {
				renderer = tui.NewMenuRenderer()
			}
			renderer.Render(cmd.OutOrStdout(), menu.Items(g, current, loc))
			return nil
		},
	}
	cmd.Flags().String("current", "", "Route of the current destination")
	cmd.Flags().StringSlice("lang", nil, "Preferred languages, most preferred first")
	cmd.Flags().StringSlice("messages", nil, "Message files (e.g. active.pt-BR.toml)")
	cmd.Flags().Bool("plain", false, "Disable colors")
	return cmd
}

func buildLocalizer(cmd *cobra.Command) (*menu.Localizer, error) {
	langs, _ := cmd.Flags().GetStringSlice("lang")
	files, _ := cmd.Flags().GetStringSlice("messages")

	opts := []menu.LocalizerOption{menu.WithLanguages(langs...)}
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("error reading messages: %w", err)
		}
		opts = append(opts, menu.WithMessageFile(path, data))
	}
	return menu.NewLocalizer(opts...)
}
