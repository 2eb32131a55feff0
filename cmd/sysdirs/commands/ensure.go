package commands

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/sysdirs"
	sysdirserrors "github.com/thoreinstein/sysdirs/internal/errors"
)

func init() {
	rootCmd.AddCommand(ensureCmd)
}

var ensureCmd = &cobra.Command{
	Use:   "ensure <kind> [subdir...]",
	Short: "Resolve a directory and create it on disk",
	Long: `Resolve a directory kind, optionally descend into a subdirectory,
and create the full path on disk if it does not exist yet.

The created path is printed on success. Directories are created with
mode 0700.

Examples:
  # Make sure the cache directory exists
  sysdirs ensure cache

  # Create an application directory under the data dir
  sysdirs ensure data myapp

  # Nested subdirectories work too
  sysdirs ensure state myapp sessions`,
	Args:      cobra.MinimumNArgs(1),
	ValidArgs: kindNames(),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEnsure(cmd.OutOrStdout(), args[0], args[1:])
	},
}

func runEnsure(w io.Writer, name string, subdirs []string) error {
	p, known := resolveKind(name)
	if !known {
		err := errors.Wrapf(sysdirserrors.ErrUnknownKind, "%q", name)
		return sysdirserrors.NewUserError(err,
			fmt.Sprintf("Valid kinds: %s", strings.Join(kindNames(), ", ")))
	}

	path, err := p.Join(subdirs...).Ensure()
	if err != nil {
		if errors.Is(err, sysdirs.ErrNotAvailable) {
			return sysdirserrors.NewExitError(
				errors.Newf("%s directory is not available on this platform", name),
				sysdirserrors.ExitUser)
		}
		return sysdirserrors.NewSystemError(err,
			"Check that the parent directory is writable")
	}

	slog.Debug("directory ensured", "kind", name, "path", path)
	fmt.Fprintln(w, path)
	return nil
}
