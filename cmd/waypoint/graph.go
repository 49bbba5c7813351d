package main

import (
	"fmt"

	"github.com/aretw0/waypoint/internal/presentation/graph"
	"github.com/spf13/cobra"
)

func newGraphCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Export the navigation graph visualization",
		Long:  `Loads the graph and outputs a Mermaid diagram (graph TD). Use --stack to overlay a back stack.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := getLogger(cmd)
			if err != nil {
				return err
			}
			g, err := loadGraph(cmd, logger)
			if err != nil {
				return err
			}

			var overlay *graph.GraphOverlay
			if stack, _ := cmd.Flags().GetStringSlice("stack"); len(stack) > 0 {
				overlay = &graph.GraphOverlay{BackStack: stack, Current: stack[len(stack)-1]}
			}
			fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(g, overlay))
			return nil
		},
	}
	cmd.Flags().StringSlice("stack", nil, "Back stack routes to overlay, bottom first")
	return cmd
}
