package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reoring/hammer"
)

// NewKindsCmd returns the kinds command, which lists the adapter keys of the
// default registry.
func NewKindsCmd(_ *RootArgs) *cobra.Command {
	draft := new(int)

	cmd := &cobra.Command{
		Use:          "kinds",
		Short:        "List registered adapter keys",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d := hammer.Draft(*draft)
			if !d.Supported() {
				return fmt.Errorf("%w: %w", ErrInvalidArgument, &hammer.ConfigError{Draft: d})
			}

			for _, k := range hammer.Default().Keys(d) {
				fmt.Fprintln(cmd.OutOrStdout(), k.String())
			}

			return nil
		},
	}

	cmd.Flags().IntVarP(draft, "draft", "d", int(hammer.DefaultDraft), "Draft whose table is listed (3, 4)")

	return cmd
}
