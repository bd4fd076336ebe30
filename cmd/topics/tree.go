package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ersonp/topic-core/internal/domain/entities"
)

type treeFlags struct {
	seed   string
	format string
}

func newTreeCmd() *cobra.Command {
	var flags treeFlags

	cmd := &cobra.Command{
		Use:   "tree <key>",
		Short: "Print the hierarchy below a seeded topic",
		Long: `Loads a seed file and prints the topic with all of its descendants.

Examples:
  topics tree lang --seed topics.yaml
  topics tree lang --seed topics.json --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVar(&flags.seed, "seed", "", "Seed file (json, csv, yaml)")
	cmd.Flags().StringVar(&flags.format, "format", "tree", "Output format: tree, list, json")
	_ = cmd.MarkFlagRequired("seed")

	return cmd
}

func runTree(cmd *cobra.Command, key string, flags treeFlags) error {
	validFormats := map[string]bool{"tree": true, "list": true, "json": true}
	if !validFormats[flags.format] {
		return fmt.Errorf("invalid format: %s (valid: tree, list, json)", flags.format)
	}

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

		if flags.format == "list" {
			topics, err := d.TopicHandler.HandleHierarchy(ctx, id)
			if err != nil {
				return fmt.Errorf("walking hierarchy: %w", err)
			}
			for i := range topics {
				fmt.Fprintf(out, "%s\t%s\n", topics[i].ID, topics[i].Name)
			}
			return nil
		}

		tree, err := d.TopicHandler.HandleTree(ctx, id)
		if err != nil {
			return fmt.Errorf("building tree: %w", err)
		}
		if flags.format == "json" {
			return printJSON(out, tree)
		}
		printTree(out, tree)
		return nil
	})
}

// printTree writes the node and its descendants with ASCII branch markers.
func printTree(w io.Writer, node *entities.TopicNode) {
	fmt.Fprintln(w, node.Topic.Name)
	printSubtopics(w, node.Subtopics, "")
}

func printSubtopics(w io.Writer, nodes []entities.TopicNode, indent string) {
	for i := range nodes {
		isLast := i == len(nodes)-1

		prefix, childIndent := "+-", "|  "
		if isLast {
			prefix, childIndent = "\\-", "   "
		}

		fmt.Fprintf(w, "%s%s %s\n", indent, prefix, nodes[i].Topic.Name)
		printSubtopics(w, nodes[i].Subtopics, indent+childIndent)
	}
}

func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}
