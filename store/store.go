// Package store persists the intro's durable key-value flags
//
// Backends are selected by URL:
//
//	memory:              process-local map
//	file:///path/x.json  JSON map on disk (a bare path also works)
//	sqlite:///path/x.db  SQLite table via modernc.org/sqlite
//	redis://host:6379/0  Redis, keys prefixed with "invite:"
package store

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var (
	// ErrNotFound is returned by Get for a missing key
	ErrNotFound = errors.New("store: key not found")
	// ErrUnavailable is returned by every operation of a store that could not be opened
	ErrUnavailable = errors.New("store: unavailable")
)

// Store is a durable string key-value store
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

// Open selects a backend from rawURL
// An empty URL opens a memory store
func Open(ctx context.Context, rawURL string) (Store, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" || rawURL == "memory:" {
		return NewMemoryStore(), nil
	}

	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" {
		// Bare filesystem path
		return OpenFile(rawURL)
	}

	switch u.Scheme {
	case "memory":
		return NewMemoryStore(), nil
	case "file":
		return OpenFile(u.Path)
	case "sqlite":
		return OpenSQLite(ctx, u.Path)
	case "redis", "rediss":
		return OpenRedis(ctx, rawURL)
	default:
		return nil, fmt.Errorf("store: unsupported scheme %q", u.Scheme)
	}
}

// OpenOrUnavailable is Open that degrades to an Unavailable store on failure
func OpenOrUnavailable(ctx context.Context, rawURL string) (Store, error) {
	s, err := Open(ctx, rawURL)
	if err != nil {
		return Unavailable{}, err
	}
	return s, nil
}

// Unavailable fails every operation with ErrUnavailable
type Unavailable struct{}

func (Unavailable) Get(context.Context, string) (string, error) { return "", ErrUnavailable }
func (Unavailable) Set(context.Context, string, string) error   { return ErrUnavailable }
func (Unavailable) Close() error                                { return nil }
