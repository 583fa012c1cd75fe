// Package registry records assigned product codes and enforces their
// uniqueness.
//
// The productcode package only checks whether a code is free. Registry
// closes the gap: each backend inserts atomically and reports ErrCodeTaken
// when another writer claimed the code first, and Register then reruns the
// whole generate-and-insert sequence.
package registry

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/amonks/prodcode/internal/paths"
	"github.com/amonks/prodcode/internal/validation"
	"github.com/amonks/prodcode/productcode"
	"github.com/google/uuid"
)

const (
	// BackendJSON stores codes in a locked JSON file.
	BackendJSON = "json"

	// BackendSQLite stores codes in a SQLite database with a unique index.
	BackendSQLite = "sqlite"

	// DefaultInsertRetries bounds how often Register regenerates after an
	// insert conflict.
	DefaultInsertRetries = 3
)

// Backends lists the accepted backend names.
var Backends = []string{BackendJSON, BackendSQLite}

var (
	// ErrCodeTaken is returned when inserting a code that is already recorded.
	ErrCodeTaken = errors.New("product code already taken")

	// ErrNotFound is returned when a code is not recorded.
	ErrNotFound = errors.New("product code not found")

	// ErrEmptyName is returned when registering a blank name.
	ErrEmptyName = errors.New("name cannot be empty")

	// ErrUnknownBackend is returned for an unsupported backend name.
	ErrUnknownBackend = errors.New("unknown registry backend")
)

// Record is a product code assignment. Codes never change once recorded.
type Record struct {
	ID        string    `json:"id" yaml:"id"`
	Name      string    `json:"name" yaml:"name"`
	Code      string    `json:"code" yaml:"code"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// Backend is durable storage for records.
type Backend interface {
	// Exists reports whether code is recorded.
	Exists(ctx context.Context, code string) (bool, error)
	// Insert records rec, or returns ErrCodeTaken if rec.Code is recorded.
	Insert(ctx context.Context, rec Record) error
	// Get returns the record for code, or ErrNotFound.
	Get(ctx context.Context, code string) (Record, error)
	// List returns all records ordered by creation time, then code.
	List(ctx context.Context) ([]Record, error)
	Close() error
}

// Options configures Open.
type Options struct {
	// Backend selects the storage backend. Defaults to BackendJSON.
	Backend string

	// Dir holds the registry files.
	// Defaults to ~/.local/state/prodcode if empty.
	Dir string

	// MaxAttempts bounds existence checks per generation.
	// Defaults to productcode.DefaultMaxAttempts if zero.
	MaxAttempts int

	// InsertRetries bounds regeneration after insert conflicts.
	// Defaults to DefaultInsertRetries if zero.
	InsertRetries int

	// Logger receives resolution and conflict entries. May be nil.
	Logger Logger

	// Now returns the creation time for new records. Defaults to time.Now.
	Now func() time.Time
}

// Registry assigns and looks up product codes.
type Registry struct {
	backend       Backend
	maxAttempts   int
	insertRetries int
	logger        Logger
	now           func() time.Time
}

// Open opens the registry described by opts.
func Open(opts Options) (*Registry, error) {
	dir := opts.Dir
	if dir == "" {
		var err error
		dir, err = paths.DefaultStateDir()
		if err != nil {
			return nil, err
		}
	}

	var backend Backend
	switch strings.ToLower(strings.TrimSpace(opts.Backend)) {
	case "", BackendJSON:
		backend = NewJSONBackend(dir)
	case BackendSQLite:
		var err error
		backend, err = OpenSQLiteBackend(dir)
		if err != nil {
			return nil, err
		}
	default:
		return nil, validation.FormatInvalidValueError(ErrUnknownBackend, opts.Backend, Backends)
	}

	return New(backend, opts), nil
}

// New wraps an already opened backend. opts.Backend and opts.Dir are ignored.
func New(backend Backend, opts Options) *Registry {
	insertRetries := opts.InsertRetries
	if insertRetries <= 0 {
		insertRetries = DefaultInsertRetries
	}
	logger := opts.Logger
	if logger == nil {
		logger = noopLogger{}
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Registry{
		backend:       backend,
		maxAttempts:   opts.MaxAttempts,
		insertRetries: insertRetries,
		logger:        logger,
		now:           now,
	}
}

// Close releases the backend.
func (r *Registry) Close() error {
	return r.backend.Close()
}

// Preview returns the code name would be assigned now, without recording it.
func (r *Registry) Preview(ctx context.Context, name string) (string, error) {
	name, err := cleanName(name)
	if err != nil {
		return "", err
	}
	return productcode.Generate(ctx, name, r.backend, r.generateOptions())
}

// Register assigns a fresh code to name and records it.
//
// When another writer records the resolved code between the check and the
// insert, Register regenerates and tries again, up to the configured number
// of retries. Invalid names and exhausted code space are returned unchanged
// and leave the registry untouched.
func (r *Registry) Register(ctx context.Context, name string) (Record, error) {
	name, err := cleanName(name)
	if err != nil {
		return Record{}, err
	}

	var lastErr error
	for attempt := 0; attempt <= r.insertRetries; attempt++ {
		code, err := productcode.Generate(ctx, name, r.backend, r.generateOptions())
		if err != nil {
			return Record{}, err
		}

		rec := Record{
			ID:        uuid.NewString(),
			Name:      name,
			Code:      code,
			CreatedAt: r.now().UTC(),
		}
		err = r.backend.Insert(ctx, rec)
		if err == nil {
			return rec, nil
		}
		if !errors.Is(err, ErrCodeTaken) {
			return Record{}, fmt.Errorf("insert %s: %w", code, err)
		}
		r.logger.Conflict(ConflictLog{Name: name, Code: code, Attempt: attempt + 1})
		lastErr = err
	}
	return Record{}, fmt.Errorf("register %q: %w", name, lastErr)
}

// Check reports whether code is recorded.
func (r *Registry) Check(ctx context.Context, code string) (bool, error) {
	return r.backend.Exists(ctx, code)
}

// Get returns the record for code.
func (r *Registry) Get(ctx context.Context, code string) (Record, error) {
	return r.backend.Get(ctx, code)
}

// List returns every record.
func (r *Registry) List(ctx context.Context) ([]Record, error) {
	return r.backend.List(ctx)
}

func (r *Registry) generateOptions() productcode.GenerateOptions {
	return productcode.GenerateOptions{MaxAttempts: r.maxAttempts, Logger: r.logger}
}

// cleanName trims surrounding whitespace. The trimmed name is what gets
// fingerprinted.
func cleanName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}
	return name, nil
}
