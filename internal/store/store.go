// Package store owns the in-memory state of every collection and keeps
// it synchronized with the file-backed collection store. All mutation
// goes through here: Add assigns ids, Update merges explicit partial
// structs and recomputes derived fields, Delete never cascades.
// Mutations return before disk I/O; persistence runs asynchronously and
// failed writes are retried by the autosave cycle.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/garageflow/garageflow/internal/models"
	"github.com/garageflow/garageflow/internal/storage"
)

// Collection names double as file names under the data directory.
const (
	ColCustomers    = "customers"
	ColVehicles     = "vehicles"
	ColJobCards     = "jobCards"
	ColPartRequests = "partRequests"
	ColInventory    = "inventory"
	ColSuppliers    = "suppliers"
	ColUsers        = "users"
)

// Collections lists every collection the store manages.
var Collections = []string{
	ColCustomers, ColVehicles, ColJobCards, ColPartRequests,
	ColInventory, ColSuppliers, ColUsers,
}

// ErrUnknownCollection mirrors the storage sentinel for callers that
// only import this package.
var ErrUnknownCollection = storage.ErrUnknownCollection

// Store holds the materialized state of all collections. It is safe for
// concurrent use; the in-memory state is always the source of truth and
// survives transient write failures.
type Store struct {
	files *storage.FileStore

	mu           sync.RWMutex
	customers    []models.Customer
	vehicles     []models.Vehicle
	jobCards     []models.JobCard
	partRequests []models.PartRequest
	inventory    []models.InventoryItem
	suppliers    []models.Supplier
	users        []models.User
	lastID       int64

	loadErr error
	ready   bool

	writeMu   sync.Mutex
	writeErrs map[string]error

	persists sync.WaitGroup
}

// Open loads every collection from the data directory in parallel and
// returns the store. On load failure the returned store is still usable
// as a degraded instance: Ready reports false and Err carries the
// aggregate failure, so the HTTP layer can answer with a proper error
// instead of an empty dataset.
func Open(dir string) (*Store, error) {
	files, err := storage.New(dir, defaultDocuments())
	if err != nil {
		return nil, err
	}
	s := &Store{
		files:     files,
		writeErrs: make(map[string]error),
	}
	s.load()
	return s, s.loadErr
}

// load fetches all collections concurrently and aggregates failures
// into a single error. Collections have no load-time cross validation,
// so order does not matter.
func (s *Store) load() {
	type result struct {
		name string
		doc  json.RawMessage
		err  error
	}
	results := make(chan result, len(Collections))
	for _, name := range Collections {
		go func(name string) {
			doc, err := s.files.Load(name)
			results <- result{name: name, doc: doc, err: err}
		}(name)
	}

	var errs []error
	s.mu.Lock()
	defer s.mu.Unlock()
	for range Collections {
		r := <-results
		if r.err != nil {
			errs = append(errs, r.err)
			continue
		}
		if err := s.materialize(r.name, r.doc); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		s.loadErr = errors.Join(errs...)
		log.WithError(s.loadErr).Error("failed to load collections")
		return
	}
	s.ready = true
}

// materialize decodes a wrapper document into the matching in-memory
// slice. Caller holds the write lock.
func (s *Store) materialize(name string, doc json.RawMessage) error {
	var err error
	switch name {
	case ColCustomers:
		err = unwrap(name, doc, &s.customers)
	case ColVehicles:
		err = unwrap(name, doc, &s.vehicles)
	case ColJobCards:
		err = unwrap(name, doc, &s.jobCards)
	case ColPartRequests:
		err = unwrap(name, doc, &s.partRequests)
	case ColInventory:
		err = unwrap(name, doc, &s.inventory)
	case ColSuppliers:
		err = unwrap(name, doc, &s.suppliers)
	case ColUsers:
		err = unwrap(name, doc, &s.users)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownCollection, name)
	}
	return err
}

// unwrap decodes `{"<name>": [...]}` into out.
func unwrap[T any](name string, doc json.RawMessage, out *[]T) error {
	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(doc, &wrapper); err != nil {
		return fmt.Errorf("decode collection %q: %w", name, err)
	}
	records, ok := wrapper[name]
	if !ok {
		*out = nil
		return nil
	}
	if err := json.Unmarshal(records, out); err != nil {
		return fmt.Errorf("decode collection %q records: %w", name, err)
	}
	return nil
}

// wrap encodes records as the collection's wrapper document.
func wrap[T any](name string, records []T) (json.RawMessage, error) {
	if records == nil {
		records = []T{}
	}
	doc, err := json.Marshal(map[string]any{name: records})
	if err != nil {
		return nil, fmt.Errorf("encode collection %q: %w", name, err)
	}
	return doc, nil
}

// Ready reports whether the startup load completed successfully.
func (s *Store) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

// Err returns the aggregate startup load failure, if any.
func (s *Store) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadErr
}

// nextID returns a fresh unique id. Ids are Unix-millisecond strings
// with a monotonic floor, so rapid or concurrent Adds never collide.
// Caller holds the write lock.
func (s *Store) nextID() string {
	now := time.Now().UnixMilli()
	if now <= s.lastID {
		now = s.lastID + 1
	}
	s.lastID = now
	return strconv.FormatInt(now, 10)
}

// snapshot marshals the current wrapper document for a collection.
func (s *Store) snapshot(name string) (json.RawMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	switch name {
	case ColCustomers:
		return wrap(name, s.customers)
	case ColVehicles:
		return wrap(name, s.vehicles)
	case ColJobCards:
		return wrap(name, s.jobCards)
	case ColPartRequests:
		return wrap(name, s.partRequests)
	case ColInventory:
		return wrap(name, s.inventory)
	case ColSuppliers:
		return wrap(name, s.suppliers)
	case ColUsers:
		return wrap(name, s.users)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCollection, name)
	}
}

// persist writes a collection to disk in the background. The caller is
// never blocked on disk I/O; failures are logged and remembered so the
// next flush retries them.
func (s *Store) persist(name string) {
	s.persists.Add(1)
	go func() {
		defer s.persists.Done()
		s.flush(name)
	}()
}

// flush writes one collection synchronously and records the outcome.
func (s *Store) flush(name string) error {
	doc, err := s.snapshot(name)
	if err == nil {
		err = s.files.Save(name, doc)
	}

	s.writeMu.Lock()
	if err != nil {
		s.writeErrs[name] = err
	} else {
		delete(s.writeErrs, name)
	}
	s.writeMu.Unlock()

	if err != nil {
		log.WithError(err).WithField("collection", name).Error("failed to persist collection")
	}
	return err
}

// LastWriteError returns the most recent unrecovered write failure for
// a collection, or nil once a later write has succeeded.
func (s *Store) LastWriteError(name string) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.writeErrs[name]
}

// FlushAll writes every collection synchronously. Used by the autosave
// cycle and on shutdown; it supersedes any transiently failed
// per-mutation write.
func (s *Store) FlushAll() error {
	var errs []error
	for _, name := range Collections {
		if err := s.flush(name); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Collection returns the in-memory wrapper document for a collection.
func (s *Store) Collection(name string) (json.RawMessage, error) {
	return s.snapshot(name)
}

// ReplaceCollection overwrites a collection's in-memory state with the
// given wrapper document and persists it asynchronously.
func (s *Store) ReplaceCollection(name string, doc json.RawMessage) error {
	if !s.files.Known(name) {
		return fmt.Errorf("%w: %q", ErrUnknownCollection, name)
	}
	s.mu.Lock()
	err := s.materialize(name, doc)
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.persist(name)
	return nil
}

// Close waits for in-flight persists and performs a final synchronous
// flush so a clean shutdown never loses an acknowledged mutation.
func (s *Store) Close() error {
	s.persists.Wait()
	if !s.Ready() {
		// Never flush a store that failed to load; that could replace a
		// corrupt-but-recoverable file with seeded defaults.
		return s.Err()
	}
	return s.FlushAll()
}
