package repo

import (
	"context"

	"github.com/ib-77/fn/pkg/fn"
)

// Entity is any domain model identified by a key.
type Entity[K comparable] interface {
	ID() K
}

// AggregateRoot is an entity that owns a consistency boundary and tracks a
// version for optimistic concurrency.
type AggregateRoot[K comparable] interface {
	Entity[K]
	Version() int64
}

// Reader provides read access to entities. Every operation answers with a
// pending result that settles once the lookup completes.
type Reader[K comparable, T Entity[K]] interface {
	GetByID(ctx context.Context, id K) <-chan fn.Result[T]
	GetAll(ctx context.Context) <-chan fn.Result[[]T]
}

// AggregateReader provides read access to aggregate roots.
type AggregateReader[K comparable, A AggregateRoot[K]] interface {
	GetAggregateByID(ctx context.Context, id K) <-chan fn.Result[A]
	GetAllAggregates(ctx context.Context) <-chan fn.Result[[]A]
}

type Inserter[K comparable, T Entity[K]] interface {
	Insert(ctx context.Context, entity T) <-chan fn.Result[T]
}

type AggregateInserter[K comparable, A AggregateRoot[K]] interface {
	InsertAggregate(ctx context.Context, aggregate A) <-chan fn.Result[A]
}

type Updater[K comparable, T Entity[K]] interface {
	Update(ctx context.Context, entity T) <-chan fn.Result[T]
}

type AggregateUpdater[K comparable, A AggregateRoot[K]] interface {
	UpdateAggregate(ctx context.Context, aggregate A) <-chan fn.Result[A]
}

// Deleter removes an entity by key; success carries no payload.
type Deleter[K comparable] interface {
	Delete(ctx context.Context, id K) <-chan fn.Result[fn.Unit]
}

// Repository bundles the capability groups for plain entities.
type Repository[K comparable, T Entity[K]] interface {
	Reader[K, T]
	Inserter[K, T]
	Updater[K, T]
	Deleter[K]
}
