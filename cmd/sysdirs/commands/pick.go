package commands

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"
)

var pickAll bool

func init() {
	pickCmd.Flags().BoolVarP(&pickAll, "all", "a", false,
		"include directories that are absent on this platform")
	rootCmd.AddCommand(pickCmd)
}

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Interactively pick a directory",
	Long: `Open a fuzzy finder over the platform's directories and print the
path of the selected one.

Examples:
  # Pick a directory and cd into it
  cd "$(sysdirs pick)"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runPick(cmd.OutOrStdout())
	},
}

func runPick(w io.Writer) error {
	listing := collectEntries(pickAll)
	if len(listing.Dirs) == 0 {
		fmt.Fprintln(w, "No directories available.")
		return nil
	}

	entries := listing.Dirs
	idx, err := fuzzyfinder.Find(
		entries,
		func(i int) string {
			return entries[i].Kind
		},
		fuzzyfinder.WithPreviewWindow(func(i, width, height int) string {
			if i == -1 {
				return ""
			}
			e := entries[i]
			if !e.Available {
				return fmt.Sprintf("Kind: %s\n\nNot available on this platform.", e.Kind)
			}
			return fmt.Sprintf("Kind: %s\nPath: %s", e.Kind, e.Path)
		}),
	)

	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil
		}
		return errors.Wrap(err, "interactive pick failed")
	}

	fmt.Fprintln(w, entries[idx].Path)
	return nil
}
