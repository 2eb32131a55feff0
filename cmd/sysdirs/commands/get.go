package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	sysdirserrors "github.com/thoreinstein/sysdirs/internal/errors"
)

func init() {
	rootCmd.AddCommand(getCmd)
}

var getCmd = &cobra.Command{
	Use:   "get <kind>",
	Short: "Resolve a single directory",
	Long: `Resolve one directory kind and print its path.

If the platform does not define the directory, nothing is printed and
the command exits non-zero.

Examples:
  # Print the config directory
  sysdirs get config

  # Use it in a script
  cp settings.toml "$(sysdirs get config)/myapp/"`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: kindNames(),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGet(cmd.OutOrStdout(), args[0])
	},
}

func runGet(w io.Writer, name string) error {
	p, known := resolveKind(name)
	if !known {
		err := errors.Wrapf(sysdirserrors.ErrUnknownKind, "%q", name)
		return sysdirserrors.NewUserError(err,
			fmt.Sprintf("Valid kinds: %s", strings.Join(kindNames(), ", ")))
	}

	path, ok := p.Get()
	if !ok {
		return sysdirserrors.NewExitError(
			errors.Newf("%s directory is not available on this platform", name),
			sysdirserrors.ExitUser)
	}

	fmt.Fprintln(w, path)
	return nil
}
