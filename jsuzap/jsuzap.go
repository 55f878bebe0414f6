// Package jsuzap adapts jsuerror instances to zap structured logging.
package jsuzap

import (
	"sync"

	jsuerror "github.com/xgx-io/jsu-error"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu     sync.RWMutex
	logger *zap.Logger
)

// Logger returns the logger shared by the module's packages. It is a no-op
// logger until SetLogger is called.
func Logger() *zap.Logger {
	mu.RLock()
	l := logger
	mu.RUnlock()
	if l == nil {
		return zap.NewNop()
	}
	return l
}

// SetLogger replaces the shared logger. A nil logger restores the no-op one.
func SetLogger(l *zap.Logger) {
	mu.Lock()
	logger = l
	mu.Unlock()
}

// Error returns a field under the "error" key. Instances are logged as an
// object with name, message, kind template, cause and stack. When the instance
// is wrapped with extra text, the object also carries the full text under
// "error". Other errors
// fall back to zap.Error.
func Error(err error) zap.Field {
	return NamedError("error", err)
}

// NamedError is Error with a custom key.
func NamedError(key string, err error) zap.Field {
	e, ok := jsuerror.As(err)
	if !ok {
		return zap.NamedError(key, err)
	}
	return zap.Object(key, instance{outer: err, e: e})
}

type instance struct {
	outer error
	e     jsuerror.Error
}

func (i instance) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	if text := i.outer.Error(); text != i.e.Error() {
		enc.AddString("error", text)
	}
	enc.AddString("name", i.e.Name())
	enc.AddString("message", i.e.Message())
	enc.AddString("kind", i.e.Kind().Template())
	if c := i.e.Unwrap(); c != nil {
		enc.AddString("cause", c.Error())
	}
	return enc.AddArray("stack", frames(i.e.Stack()))
}

type frames jsuerror.Stack

func (fs frames) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for _, f := range fs {
		enc.AppendString(f.String())
	}
	return nil
}
