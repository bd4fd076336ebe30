package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

type historyFlags struct {
	seed    string
	updates []string
	audit   bool
}

func newHistoryCmd() *cobra.Command {
	var flags historyFlags

	cmd := &cobra.Command{
		Use:   "history <key>",
		Short: "Show the version history of a seeded topic",
		Long: `Loads a seed file, applies any --update contents to the topic in order,
and prints every committed version.

Examples:
  topics history go --seed topics.yaml
  topics history go --seed topics.yaml --update "Draft two" --update "Final"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVar(&flags.seed, "seed", "", "Seed file (json, csv, yaml)")
	cmd.Flags().StringArrayVar(&flags.updates, "update", nil, "Content to apply as a new version (repeatable)")
	cmd.Flags().BoolVar(&flags.audit, "audit", false, "Also print the audit trail")
	_ = cmd.MarkFlagRequired("seed")

	return cmd
}

func runHistory(cmd *cobra.Command, key string, flags historyFlags) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	return withDeps(ctx, func(d *Deps) error {
		ids, err := loadSeed(ctx, d, flags.seed)
		if err != nil {
			return err
		}
		id, err := resolveKey(ids, key)
		if err != nil {
			return err
		}

		for _, content := range flags.updates {
			if _, err := d.TopicHandler.HandleUpdate(ctx, id, content); err != nil {
				return fmt.Errorf("updating topic: %w", err)
			}
		}

		versions, err := d.TopicHandler.HandleVersions(ctx, id)
		if err != nil {
			return fmt.Errorf("reading history: %w", err)
		}

		fmt.Fprintf(out, "History of %s (%s):\n", key, id)
		fmt.Fprintln(out, strings.Repeat("-", 60))
		for i := range versions {
			v := &versions[i]
			fmt.Fprintf(out, "v%d  %s  %s\n", v.Version, v.UpdatedAt.Format("2006-01-02 15:04:05"), v.Content)
		}

		if !flags.audit {
			return nil
		}

		entries, err := d.TopicHandler.HandleAudit(ctx, id)
		if err != nil {
			return fmt.Errorf("reading audit trail: %w", err)
		}
		fmt.Fprintf(out, "\nAudit trail (%d):\n", len(entries))
		for i := range entries {
			fmt.Fprintf(out, "  %s  %s\n", entries[i].CreatedAt.Format("2006-01-02 15:04:05"), entries[i].Action)
		}
		return nil
	})
}
