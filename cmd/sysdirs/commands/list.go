package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	sysdirserrors "github.com/thoreinstein/sysdirs/internal/errors"
)

var (
	listFormat string
	listAll    bool
)

func init() {
	listCmd.Flags().StringVarP(&listFormat, "format", "f", "text",
		"output format: text, json, yaml, toml")
	listCmd.Flags().BoolVarP(&listAll, "all", "a", false,
		"include directories that are absent on this platform")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the standard directories of this platform",
	Long: `List every directory kind together with its resolved path.

Directories that the platform does not define are omitted unless --all
is given, in which case they appear with an empty path.

Examples:
  # List available directories
  sysdirs list

  # Include absent kinds
  sysdirs list --all

  # Machine-readable output
  sysdirs list --format json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

// dirEntry is one row of list output.
type dirEntry struct {
	Kind      string `json:"kind" yaml:"kind" toml:"kind"`
	Path      string `json:"path,omitempty" yaml:"path,omitempty" toml:"path,omitempty"`
	Available bool   `json:"available" yaml:"available" toml:"available"`
}

// dirListing wraps the entries so the TOML rendering has a table name.
type dirListing struct {
	Dirs []dirEntry `json:"dirs" yaml:"dirs" toml:"dirs"`
}

func runList(cmd *cobra.Command, _ []string) error {
	return runListWithWriter(cmd.OutOrStdout())
}

// runListWithWriter allows injecting a writer for testing.
func runListWithWriter(w io.Writer) error {
	listing := collectEntries(listAll)

	switch listFormat {
	case "text":
		return outputListText(w, listing)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(listing)
	case "yaml":
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(listing); err != nil {
			_ = enc.Close()
			return err
		}
		// Close flushes; a truncated write surfaces here
		return enc.Close()
	case "toml":
		return toml.NewEncoder(w).Encode(listing)
	default:
		err := errors.Wrapf(sysdirserrors.ErrUnknownFormat, "%q", listFormat)
		return sysdirserrors.NewUserError(err, "Valid formats: text, json, yaml, toml")
	}
}

// collectEntries resolves every kind, keeping absent ones only when
// all is true.
func collectEntries(all bool) dirListing {
	var listing dirListing
	for _, name := range kindNames() {
		p, _ := resolveKind(name)
		path, ok := p.Get()
		if !ok && !all {
			continue
		}
		listing.Dirs = append(listing.Dirs, dirEntry{
			Kind:      name,
			Path:      path,
			Available: ok,
		})
	}
	return listing
}

func outputListText(w io.Writer, listing dirListing) error {
	if len(listing.Dirs) == 0 {
		fmt.Fprintln(w, "No directories available.")
		return nil
	}

	kindColor := color.New(color.FgCyan)
	absentColor := color.New(color.FgHiBlack)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, e := range listing.Dirs {
		path := e.Path
		if !e.Available {
			path = absentColor.Sprint("(not available)")
		}
		fmt.Fprintf(tw, "%s\t%s\n", kindColor.Sprint(e.Kind), path)
	}
	return tw.Flush()
}
