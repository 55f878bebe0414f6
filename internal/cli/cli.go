package cli

// This file implements the "kinds" and "render" commands, which list the
// known error kinds and build instances from them.

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	jsuerror "github.com/xgx-io/jsu-error"
	"github.com/xgx-io/jsu-error/catalog"
	"github.com/xgx-io/jsu-error/jsuzap"
)

// KindManager resolves kinds from the builtin catalog, optionally overlaid
// with a catalog file.
type KindManager struct {
	logger      *zap.Logger
	catalogPath string
}

// NewKindManager creates a KindManager.
func NewKindManager(logger *zap.Logger) *KindManager {
	return &KindManager{logger: logger}
}

// Catalog returns the builtin kinds merged with the configured file, if any.
func (m *KindManager) Catalog() (*catalog.Catalog, error) {
	base := catalog.Default()
	if m.catalogPath == "" {
		return base, nil
	}
	extra, err := catalog.LoadFile(m.catalogPath)
	if err != nil {
		return nil, err
	}
	m.logger.Debug("catalog loaded", zap.String("path", m.catalogPath), zap.Int("kinds", extra.Len()))
	return base.Merge(extra), nil
}

// NewKindsCmd builds the "kinds" subcommand.
func NewKindsCmd(m *KindManager) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kinds",
		Short: "List error kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := m.Catalog()
			if err != nil {
				return err
			}
			return PrintKinds(cmd.OutOrStdout(), c)
		},
	}
	cmd.Flags().StringVar(&m.catalogPath, "catalog", "", "YAML catalog of additional kinds")
	return cmd
}

// PrintKinds writes one row per kind: id, name, template.
func PrintKinds(w io.Writer, c *catalog.Catalog) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tTEMPLATE")
	for _, id := range c.IDs() {
		k, _ := c.Lookup(id)
		fmt.Fprintf(tw, "%s\t%s\t%s\n", id, k.Name(), k.Template())
	}
	return tw.Flush()
}

// NewRenderCmd builds the "render" subcommand.
func NewRenderCmd(m *KindManager) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "render <id> [args...]",
		Short: "Build an error instance and print it",
		Long:  "Build an instance of the kind registered under <id>, substituting args into its {0}, {1}, ... placeholders.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := m.Catalog()
			if err != nil {
				return err
			}
			k, ok := c.Lookup(args[0])
			if !ok {
				return jsuerror.WrongTypeArgs().NewMsg("Wrong type of arguments: unknown kind {0}", args[0])
			}
			inst := Render(k, args[1:])
			m.logger.Debug("rendered", jsuzap.Error(inst))
			if verbose {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "%+v\n", inst)
			} else {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "%v\n", inst)
			}
			return err
		},
	}
	cmd.Flags().StringVar(&m.catalogPath, "catalog", "", "YAML catalog of additional kinds")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print name, message and stack")
	return cmd
}

// Render builds an instance of k from string arguments.
func Render(k *jsuerror.Kind, args []string) jsuerror.Error {
	subs := make([]any, len(args))
	for i, a := range args {
		subs[i] = a
	}
	return k.New(subs...)
}
