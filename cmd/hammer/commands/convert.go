package commands

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/reoring/hammer"
	"github.com/reoring/hammer/jsonschema"
	"github.com/reoring/hammer/schema"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"

	convertDesc = `This command converts schema tree descriptions to JSON Schema.

With a single input, --output names the output file. With several inputs,
--output names a directory that receives one <name>.schema.<format> per input.
`
	convertExample = `  # Print the draft 4 schema of person.yaml
  hammer convert person.yaml

  # Draft 3, YAML output, validated and written to a file
  hammer convert person.yaml --draft 3 --format yaml -o person.schema.yaml

  # Convert several trees into a directory
  hammer convert schemas/*.yaml --schema-uri --check -o out/
`
)

// NewConvertCmd returns the convert command.
func NewConvertCmd(arg *RootArgs) *cobra.Command {
	args := NewConvertArgs(arg)

	cmd := &cobra.Command{
		Use:          "convert FILE...",
		Short:        "Convert schema trees to JSON Schema",
		Long:         convertDesc,
		Example:      convertExample,
		SilenceUsage: true,
		Args:         cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, files []string) error {
			opts, err := args.options()
			if err != nil {
				return err
			}

			format := strings.ToLower(args.GetFormat())
			if format != FormatJSON && format != FormatYAML {
				return fmt.Errorf("%w: unknown format %q", ErrInvalidArgument, args.GetFormat())
			}

			docs, err := convertFiles(cmd.Context(), files, opts)
			if err != nil {
				return err
			}

			if args.GetCheck() {
				if err := checkAll(files, docs, opts.Draft); err != nil {
					return err
				}
			}

			return writeDocs(cmd, files, docs, format, args.GetOutput())
		},
	}

	addConversionFlags(cmd, args.ConversionArgs)

	cmd.Flags().StringVarP(args.format, "format", "f", FormatJSON, "Output format (json, yaml)")
	cmd.Flags().StringVarP(args.output, "output", "o", "", "Output file, or directory for several inputs")
	must(cmd.MarkFlagFilename("output"))
	cmd.Flags().BoolVar(args.check, "check", false, "Validate draft 4 output against the meta-schema")

	return cmd
}

func addConversionFlags(cmd *cobra.Command, args *ConversionArgs) {
	cmd.Flags().IntVarP(args.draft, "draft", "d", int(hammer.DefaultDraft), "Target JSON Schema draft (3, 4)")
	cmd.Flags().BoolVar(args.noTypes, "no-types", false, "Omit the type keyword")
	cmd.Flags().BoolVar(args.annotations, "annotations", false, "Copy node titles and descriptions")
	cmd.Flags().BoolVar(args.schemaURI, "schema-uri", false, "Add $schema to the document root")
}

// convertFiles loads and converts every file concurrently. Results keep the
// order of files; the first failure cancels the files not yet started.
func convertFiles(ctx context.Context, files []string, opts hammer.Options) ([]*jsonschema.Schema, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	docs := make([]*jsonschema.Schema, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			root, err := schema.LoadFile(file)
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}

			doc, err := hammer.Convert(root, opts)
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}

			slog.Debug("converted", "file", file, "draft", int(opts.Draft))
			docs[i] = doc

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return docs, nil
}

func encode(doc *jsonschema.Schema, format string) ([]byte, error) {
	if format == FormatYAML {
		return doc.YAML()
	}

	b, err := doc.JSON()
	if err != nil {
		return nil, err
	}

	return append(b, '\n'), nil
}

func writeDocs(cmd *cobra.Command, files []string, docs []*jsonschema.Schema, format, output string) error {
	if output == "" {
		var buf bytes.Buffer
		for i, doc := range docs {
			b, err := encode(doc, format)
			if err != nil {
				return fmt.Errorf("%s: failed to encode: %w", files[i], err)
			}
			if i > 0 && format == FormatYAML {
				buf.WriteString("---\n")
			}
			buf.Write(b)
		}
		_, err := cmd.OutOrStdout().Write(buf.Bytes())

		return err
	}

	if len(docs) == 1 {
		return writeDoc(docs[0], format, output)
	}

	for i, doc := range docs {
		name := strings.TrimSuffix(filepath.Base(files[i]), filepath.Ext(files[i]))
		if err := writeDoc(doc, format, filepath.Join(output, name+".schema."+format)); err != nil {
			return fmt.Errorf("%s: %w", files[i], err)
		}
	}

	return nil
}

func writeDoc(doc *jsonschema.Schema, format, outFile string) error {
	b, err := encode(doc, format)
	if err != nil {
		return fmt.Errorf("failed to encode: %w", err)
	}

	err = os.MkdirAll(filepath.Dir(outFile), 0o700)
	if err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	err = os.WriteFile(outFile, b, 0o600)
	if err != nil {
		return fmt.Errorf("failed to write to output file: %w", err)
	}

	slog.Info("wrote schema", "path", outFile)

	return nil
}

// ConversionArgs holds the flags shared by convert and check.
type ConversionArgs struct {
	draft       *int
	noTypes     *bool
	annotations *bool
	schemaURI   *bool
	*RootArgs
}

func NewConversionArgs(args *RootArgs) *ConversionArgs {
	return &ConversionArgs{
		draft:       new(int),
		noTypes:     new(bool),
		annotations: new(bool),
		schemaURI:   new(bool),
		RootArgs:    args,
	}
}

func (a *ConversionArgs) GetDraft() int {
	return *a.draft
}

func (a *ConversionArgs) GetNoTypes() bool {
	return *a.noTypes
}

func (a *ConversionArgs) GetAnnotations() bool {
	return *a.annotations
}

func (a *ConversionArgs) GetSchemaURI() bool {
	return *a.schemaURI
}

func (a *ConversionArgs) options() (hammer.Options, error) {
	d := hammer.Draft(a.GetDraft())
	if !d.Supported() {
		return hammer.Options{}, fmt.Errorf("%w: %w", ErrInvalidArgument, &hammer.ConfigError{Draft: d})
	}

	o := hammer.DefaultOptions()
	o.Draft = d
	o.IncludeTypes = !a.GetNoTypes()
	o.Annotations = a.GetAnnotations()
	o.SchemaURI = a.GetSchemaURI()
	o.Logger = slog.Default()

	return o, nil
}

// ConvertArgs holds the arguments for the convert command.
type ConvertArgs struct {
	format *string
	output *string
	check  *bool
	*ConversionArgs
}

// NewConvertArgs creates a new [ConvertArgs].
func NewConvertArgs(args *RootArgs) *ConvertArgs {
	return &ConvertArgs{
		format:         new(string),
		output:         new(string),
		check:          new(bool),
		ConversionArgs: NewConversionArgs(args),
	}
}

func (a *ConvertArgs) GetFormat() string {
	return *a.format
}

func (a *ConvertArgs) GetOutput() string {
	return *a.output
}

func (a *ConvertArgs) GetCheck() bool {
	return *a.check
}
