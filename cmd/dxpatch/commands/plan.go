package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.trai.ch/dxpatch/internal/app"
	"go.trai.ch/dxpatch/internal/core/domain"
)

func (c *CLI) newPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show where every pack file would be installed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")

			result, err := c.app.Plan(cmd.Context(), options(cmd))
			if err != nil {
				return err
			}
			if asJSON {
				return writePlanJSON(cmd.OutOrStdout(), result)
			}
			return writePlanTable(cmd.OutOrStdout(), result)
		},
	}
	cmd.Flags().Bool("json", false, "Print the plan as JSON")
	return cmd
}

type planEntry struct {
	Source      string           `json:"source"`
	Class       domain.FileClass `json:"class"`
	Destination string           `json:"destination"`
	Board       string           `json:"board,omitempty"`
}

type planDocument struct {
	Sources      []string                 `json:"sources"`
	Instructions []planEntry              `json:"instructions"`
	Boards       []domain.BoardDescriptor `json:"boards"`
	Counts       app.Counts               `json:"counts"`
}

func writePlanJSON(w io.Writer, result *app.Result) error {
	doc := planDocument{
		Sources:      result.Sources,
		Instructions: make([]planEntry, 0, len(result.Instructions)),
		Boards:       result.Boards,
		Counts:       result.Counts,
	}
	for _, instr := range result.Instructions {
		entry := planEntry{
			Source:      instr.Source.Path,
			Class:       instr.Class,
			Destination: instr.Destination,
		}
		if instr.Board != nil {
			entry.Board = instr.Board.Name
		}
		doc.Instructions = append(doc.Instructions, entry)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func writePlanTable(w io.Writer, result *app.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, instr := range result.Instructions {
		board := ""
		if instr.Board != nil {
			board = instr.Board.Name
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", instr.Class, instr.Source.Name, instr.Destination, board)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	counts := result.Counts
	_, err := fmt.Fprintln(w, strings.Join([]string{
		plural(counts.Headers, "header"),
		plural(counts.LinkArtifacts, "link artifact"),
		plural(counts.SpecsFragments, "specs fragment"),
		plural(counts.Boards, "board"),
	}, ", "))
	return err
}

func plural(n int, noun string) string {
	s := strconv.Itoa(n) + " " + noun
	if n != 1 {
		s += "s"
	}
	return s
}
