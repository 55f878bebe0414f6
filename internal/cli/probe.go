package cli

// This file implements the "probe" command, which checks that URLs can be
// reached and reports failures as UnreachableResource.

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	jsuerror "github.com/xgx-io/jsu-error"
	"github.com/xgx-io/jsu-error/argcheck"
	"github.com/xgx-io/jsu-error/metrics"
	"github.com/xgx-io/jsu-error/resource"
)

// NewProbeCmd builds the "probe" subcommand.
func NewProbeCmd(logger *zap.Logger) *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "probe <url>...",
		Short: "Check that resources are reachable",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := argcheck.CountRange(len(args), 1, 64); err != nil {
				return err
			}
			rec, err := metrics.NewRecorder(prometheus.NewRegistry())
			if err != nil {
				return err
			}
			p := &resource.Prober{
				Client:  &http.Client{},
				Logger:  logger,
				Timeout: timeout,
			}
			return ProbeAll(cmd.Context(), p, rec, cmd.OutOrStdout(), args)
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", resource.DefaultTimeout, "Per-resource timeout")
	return cmd
}

// ProbeAll probes each url in order, prints one status line per url and
// returns the joined failures.
func ProbeAll(ctx context.Context, p *resource.Prober, rec *metrics.Recorder, w io.Writer, urls []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	var failed error
	for _, u := range urls {
		err := p.Probe(ctx, u)
		rec.Observe(err)
		status := "ok"
		if err != nil {
			status = "unreachable"
			if !jsuerror.IsRetryable(err) {
				status = "invalid"
			}
		}
		fmt.Fprintf(w, "%s\t%s\n", status, u)
		failed = jsuerror.Append(failed, err)
	}
	return failed
}
