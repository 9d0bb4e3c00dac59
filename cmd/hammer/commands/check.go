package commands

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/reoring/hammer"
	"github.com/reoring/hammer/jsonschema"
)

const checkDesc = `This command converts schema tree descriptions and compiles each result
against the draft 4 meta-schema. Every failing file is reported.
`

// NewCheckCmd returns the check command.
func NewCheckCmd(arg *RootArgs) *cobra.Command {
	args := NewConversionArgs(arg)

	cmd := &cobra.Command{
		Use:          "check FILE...",
		Short:        "Convert and validate against the meta-schema",
		Long:         checkDesc,
		SilenceUsage: true,
		Args:         cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, files []string) error {
			opts, err := args.options()
			if err != nil {
				return err
			}

			docs, err := convertFiles(cmd.Context(), files, opts)
			if err != nil {
				return err
			}

			if err := checkAll(files, docs, opts.Draft); err != nil {
				return err
			}

			for _, f := range files {
				fmt.Fprintf(cmd.OutOrStdout(), "ok\t%s\n", f)
			}

			return nil
		},
	}

	addConversionFlags(cmd, args)

	return cmd
}

func checkAll(files []string, docs []*jsonschema.Schema, d hammer.Draft) error {
	var errs *multierror.Error
	for i, doc := range docs {
		if err := jsonschema.Check(doc, d); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("%s: %w", files[i], err))
		}
	}

	return errs.ErrorOrNil()
}
