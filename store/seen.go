package store

import (
	"context"
	"errors"
	"log"

	"github.com/lixenwraith/invite/parameter"
)

// ErrorObserver is notified of swallowed store failures
type ErrorObserver func(op string, err error)

// SeenFlag reads and writes the intro dismissal flag
// Failures never propagate: a failed read means "not seen", a failed write is dropped
type SeenFlag struct {
	Store Store
	Key   string

	// OnError, when set, is called for every swallowed failure except a missing key
	OnError ErrorObserver
}

// NewSeenFlag binds the default seen key to s
func NewSeenFlag(s Store) *SeenFlag {
	return &SeenFlag{Store: s, Key: parameter.SeenKey}
}

// Seen reports whether the stored value equals "1"
func (f *SeenFlag) Seen(ctx context.Context) bool {
	if f == nil || f.Store == nil {
		return false
	}
	v, err := f.Store.Get(ctx, f.key())
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			f.report("get", err)
		}
		return false
	}
	return v == parameter.SeenValue
}

// MarkSeen stores "1"; errors are logged and dropped
func (f *SeenFlag) MarkSeen(ctx context.Context) {
	if f == nil || f.Store == nil {
		return
	}
	if err := f.Store.Set(ctx, f.key(), parameter.SeenValue); err != nil {
		f.report("set", err)
	}
}

func (f *SeenFlag) key() string {
	if f.Key == "" {
		return parameter.SeenKey
	}
	return f.Key
}

func (f *SeenFlag) report(op string, err error) {
	log.Printf("seen flag %s failed: %v", op, err)
	if f.OnError != nil {
		f.OnError(op, err)
	}
}
