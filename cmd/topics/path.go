package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

type pathFlags struct {
	seed string
	json bool
}

func newPathCmd() *cobra.Command {
	var flags pathFlags

	cmd := &cobra.Command{
		Use:   "path <from> <to>",
		Short: "Find the shortest path between two seeded topics",
		Long: `Loads a seed file and prints the shortest path between two topics,
moving along parent and child links.

Examples:
  topics path go rust --seed topics.yaml`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPath(cmd, args[0], args[1], flags)
		},
	}

	cmd.Flags().StringVar(&flags.seed, "seed", "", "Seed file (json, csv, yaml)")
	cmd.Flags().BoolVar(&flags.json, "json", false, "Print the path as JSON")
	_ = cmd.MarkFlagRequired("seed")

	return cmd
}

func runPath(cmd *cobra.Command, fromKey, toKey string, flags pathFlags) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	return withDeps(ctx, func(d *Deps) error {
		ids, err := loadSeed(ctx, d, flags.seed)
		if err != nil {
			return err
		}
		from, err := resolveKey(ids, fromKey)
		if err != nil {
			return err
		}
		to, err := resolveKey(ids, toKey)
		if err != nil {
			return err
		}

		path, err := d.TopicHandler.HandlePath(ctx, from, to)
		if err != nil {
			return fmt.Errorf("finding path: %w", err)
		}
		if flags.json {
			return printJSON(out, path)
		}

		names := make([]string, 0, len(path.Path))
		for _, id := range path.Path {
			topic, err := d.TopicHandler.HandleGet(ctx, id)
			if err != nil {
				return err
			}
			names = append(names, topic.Name)
		}

		fmt.Fprintln(out, strings.Join(names, " -> "))
		fmt.Fprintf(out, "Distance: %d\n", path.Distance)
		return nil
	})
}
