package store

import (
	"context"
	"encoding/json/v2"
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/dgraph-io/badger/v4"

	apperrors "github.com/adamtorokhu/BriefBeer/internal/errors"
)

// Entity provides generic persisted-table operations for a domain type.
// Writes are whole-row replace on key conflict; partial-field patches are
// not supported, callers must read-modify-write.
type Entity[T any] struct {
	store   *Store
	prefix  string
	key     func(*T) string
	indexes []Index[T]
}

// Index defines a secondary index on an entity. Index keys are composite
// (value plus record id), so many records may share one index value.
type Index[T any] struct {
	name   string
	keyGen func(*T) []string
}

// NewEntity creates a new Entity instance for type T.
// The key function derives the primary key from a record.
func NewEntity[T any](s *Store, prefix string, key func(*T) string) *Entity[T] {
	return &Entity[T]{
		store:  s,
		prefix: prefix,
		key:    key,
	}
}

// WithIndex adds a secondary index to the entity.
func (e *Entity[T]) WithIndex(name string, keyGen func(*T) []string) *Entity[T] {
	e.indexes = append(e.indexes, Index[T]{
		name:   name,
		keyGen: keyGen,
	})
	return e
}

// Upsert writes a record, replacing any existing row with the same id.
func (e *Entity[T]) Upsert(ctx context.Context, entity *T) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return e.store.db.Update(func(txn *badger.Txn) error {
		return e.upsertInTxn(txn, entity)
	})
}

// UpsertMany writes all records in one transaction. Either every record
// is committed or none is; a partially-applied batch is never visible.
func (e *Entity[T]) UpsertMany(ctx context.Context, entities []T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(entities) == 0 {
		return nil
	}

	return e.store.db.Update(func(txn *badger.Txn) error {
		for i := range entities {
			if err := e.upsertInTxn(txn, &entities[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

// upsertInTxn replaces the row and reconciles its index keys.
func (e *Entity[T]) upsertInTxn(txn *badger.Txn, entity *T) error {
	id := e.key(entity)
	if id == "" {
		return apperrors.Validation("record id is empty")
	}

	data, err := json.Marshal(entity)
	if err != nil {
		return fmt.Errorf("failed to marshal entity: %w", err)
	}

	// The txn retains key slices until commit, so write ops get fresh copies.
	key := rowKey(e.prefix, id)

	// Drop index keys of the old row, if any.
	if len(e.indexes) > 0 {
		item, err := txn.Get([]byte(key))
		if err == nil {
			var old T
			err = item.Value(func(val []byte) error {
				return json.Unmarshal(val, &old)
			})
			if err != nil {
				return fmt.Errorf("failed to unmarshal old entity: %w", err)
			}
			for _, idx := range e.indexes {
				for _, value := range idx.keyGen(&old) {
					idxKey := indexKey(e.prefix, idx.name, value, id)
					if err := txn.Delete([]byte(idxKey)); err != nil {
						return fmt.Errorf("failed to delete old index key: %w", err)
					}
				}
			}
		} else if !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("failed to check existing key: %w", err)
		}
	}

	if err := txn.Set([]byte(key), data); err != nil {
		return fmt.Errorf("failed to set key: %w", err)
	}

	for _, idx := range e.indexes {
		for _, value := range idx.keyGen(entity) {
			idxKey := indexKey(e.prefix, idx.name, value, id)
			if err := txn.Set([]byte(idxKey), []byte(id)); err != nil {
				return fmt.Errorf("failed to set index key: %w", err)
			}
		}
	}

	return nil
}

// Get retrieves a record by id.
// Returns errors.ErrNotFound if the record does not exist.
func (e *Entity[T]) Get(ctx context.Context, id string) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var entity T

	err := e.store.db.View(func(txn *badger.Txn) error {
		key := buildKey(e.prefix, id)
		defer releaseKey(key)

		item, err := txn.Get(key)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return apperrors.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to get key: %w", err)
		}

		return item.Value(func(val []byte) error {
			if err := json.Unmarshal(val, &entity); err != nil {
				return fmt.Errorf("failed to unmarshal entity: %w", err)
			}
			return nil
		})
	})

	if err != nil {
		return nil, err
	}

	return &entity, nil
}

// Exists reports whether a record with the given id is present.
func (e *Entity[T]) Exists(ctx context.Context, id string) (bool, error) {
	_, err := e.Get(ctx, id)
	if apperrors.Is(err, apperrors.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Delete deletes a record by id.
// This operation is idempotent - it does not return an error if the record
// does not exist.
func (e *Entity[T]) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return e.store.db.Update(func(txn *badger.Txn) error {
		key := rowKey(e.prefix, id)

		item, err := txn.Get([]byte(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to get key: %w", err)
		}

		// Clean up index keys before removing the row.
		if len(e.indexes) > 0 {
			var entity T
			err = item.Value(func(val []byte) error {
				return json.Unmarshal(val, &entity)
			})
			if err != nil {
				return fmt.Errorf("failed to unmarshal entity: %w", err)
			}
			for _, idx := range e.indexes {
				for _, value := range idx.keyGen(&entity) {
					idxKey := indexKey(e.prefix, idx.name, value, id)
					if err := txn.Delete([]byte(idxKey)); err != nil {
						return fmt.Errorf("failed to delete index key: %w", err)
					}
				}
			}
		}

		if err := txn.Delete([]byte(key)); err != nil {
			return fmt.Errorf("failed to delete key: %w", err)
		}

		return nil
	})
}

// List returns an iterator over all records.
func (e *Entity[T]) List(ctx context.Context) iter.Seq2[*T, error] {
	return func(yield func(*T, error) bool) {
		e.store.db.View(func(txn *badger.Txn) error {
			opts := badger.DefaultIteratorOptions
			opts.Prefix = []byte(e.prefix)
			opts.PrefetchValues = true

			it := txn.NewIterator(opts)
			defer it.Close()

			for it.Seek([]byte(e.prefix)); it.ValidForPrefix([]byte(e.prefix)); it.Next() {
				if ctx.Err() != nil {
					yield(nil, ctx.Err())
					return ctx.Err()
				}

				// Skip index keys.
				key := string(it.Item().Key())
				if strings.HasPrefix(key[len(e.prefix):], indexMarker) {
					continue
				}

				var entity T
				err := it.Item().Value(func(val []byte) error {
					return json.Unmarshal(val, &entity)
				})

				if err != nil {
					yield(nil, err)
					return err
				}

				if !yield(&entity, nil) {
					return nil // Consumer stopped early
				}
			}

			return nil
		})
	}
}

// All drains List into a slice.
func (e *Entity[T]) All(ctx context.Context) ([]T, error) {
	var out []T
	for entity, err := range e.List(ctx) {
		if err != nil {
			return nil, err
		}
		out = append(out, *entity)
	}
	return out, nil
}

// ListByIndex returns all records whose index contains the given value.
func (e *Entity[T]) ListByIndex(ctx context.Context, indexName, value string) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var ids []string
	prefix := []byte(e.prefix + indexMarker + indexName + ":" + value + ":")

	err := e.store.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		opts.PrefetchValues = true

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				ids = append(ids, string(val))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, len(ids))
	for _, id := range ids {
		entity, err := e.Get(ctx, id)
		if apperrors.Is(err, apperrors.ErrNotFound) {
			continue // index raced a delete
		}
		if err != nil {
			return nil, err
		}
		out = append(out, *entity)
	}
	return out, nil
}
