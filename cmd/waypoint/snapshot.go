package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newSnapshotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Manage saved back stacks",
		Long:  `List, inspect and remove back stack snapshots kept in the configured store.`,
	}
	cmd.AddCommand(newSnapshotLsCmd(), newSnapshotInspectCmd(), newSnapshotRmCmd())
	return cmd
}

func newSnapshotLsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ls",
		Short: "List all saved snapshots",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeStore, err := getStore(cmd)
			if err != nil {
				return err
			}
			defer closeStore()

			ids, err := store.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("error listing snapshots: %w", err)
			}
			out := cmd.OutOrStdout()
			if len(ids) == 0 {
				fmt.Fprintln(out, "No snapshots found.")
				return nil
			}
			fmt.Fprintln(out, "Snapshots:")
			for _, id := range ids {
				fmt.Fprintln(out, "- "+id)
			}
			return nil
		},
	}
}

func newSnapshotInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <host-id>",
		Short: "Print a snapshot as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeStore, err := getStore(cmd)
			if err != nil {
				return err
			}
			defer closeStore()

			snapshot, err := store.Load(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("error loading snapshot '%s': %w", args[0], err)
			}
			data, err := json.MarshalIndent(snapshot, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}

func newSnapshotRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <host-id>...",
		Short: "Remove one or more snapshots",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeStore, err := getStore(cmd)
			if err != nil {
				return err
			}
			defer closeStore()

			if all, _ := cmd.Flags().GetBool("all"); all {
				if args, err = store.List(cmd.Context()); err != nil {
					return fmt.Errorf("error listing snapshots: %w", err)
				}
			} else if len(args) == 0 {
				return errors.New("requires at least one host id or --all")
			}

			var errs []error
			for _, id := range args {
				if err := store.Delete(cmd.Context(), id); err != nil {
					errs = append(errs, fmt.Errorf("error removing '%s': %w", id, err))
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed snapshot '%s'\n", id)
			}
			return errors.Join(errs...)
		},
	}
	cmd.Flags().Bool("all", false, "Remove every snapshot")
	return cmd
}
