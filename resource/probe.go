// Package resource checks that addressable resources can be contacted and
// reports failures as jsuerror.UnreachableResource.
package resource

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	jsuerror "github.com/xgx-io/jsu-error"
	"github.com/xgx-io/jsu-error/jsuzap"
	"go.uber.org/zap"
)

const (
	// DefaultTimeout bounds a probe when the caller's context has no deadline.
	DefaultTimeout = 10 * time.Second

	unreachableTemplate = "The resource is unreachable: {0}"
	statusTemplate      = "The resource is unreachable: {0} answered {1}"
)

// ErrStatus is the cause recorded when a resource answers with a server error.
var ErrStatus = errors.New("server error status")

// Prober issues HEAD requests. The zero value is usable.
type Prober struct {
	Client  *http.Client
	Logger  *zap.Logger
	Timeout time.Duration
}

// NewProber returns a Prober using http.DefaultClient and the shared logger.
func NewProber() *Prober {
	return &Prober{Client: http.DefaultClient, Logger: jsuzap.Logger(), Timeout: DefaultTimeout}
}

// Probe reports nil when url answers with a status below 500.
//
// An empty url is a caller bug and fails with WrongTypeArgs. Transport
// failures, timeouts and 5xx answers fail with UnreachableResource wrapping
// the cause, so errors.Is(err, context.DeadlineExceeded) still works.
func (p *Prober) Probe(ctx context.Context, url string) error {
	if url == "" {
		return jsuerror.WrongTypeArgs().NewMsg("Wrong type of arguments: url must be a non-empty string")
	}
	log := p.logger().With(zap.String("url", url))

	if _, ok := ctx.Deadline(); !ok {
		timeout := p.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		uerr := jsuerror.UnreachableResource().WrapMsg(err, unreachableTemplate, url)
		log.Debug("invalid probe request", jsuzap.Error(uerr))
		return uerr
	}

	start := time.Now()
	resp, err := p.client().Do(req)
	if err != nil {
		uerr := jsuerror.UnreachableResource().WrapMsg(err, unreachableTemplate, url)
		log.Warn("resource unreachable", zap.Duration("elapsed", time.Since(start)), jsuzap.Error(uerr))
		return uerr
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			log.Debug("closing probe response", zap.Error(cerr))
		}
	}()

	if resp.StatusCode >= http.StatusInternalServerError {
		cause := fmt.Errorf("%w: %d", ErrStatus, resp.StatusCode)
		uerr := jsuerror.UnreachableResource().WrapMsg(cause, statusTemplate, url, resp.StatusCode)
		log.Warn("resource answered with server error", zap.Int("status", resp.StatusCode), jsuzap.Error(uerr))
		return uerr
	}

	log.Debug("resource reachable", zap.Int("status", resp.StatusCode), zap.Duration("elapsed", time.Since(start)))
	return nil
}

func (p *Prober) client() *http.Client {
	if p.Client != nil {
		return p.Client
	}
	return http.DefaultClient
}

func (p *Prober) logger() *zap.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return jsuzap.Logger()
}
