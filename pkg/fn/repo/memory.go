package repo

import (
	"context"
	"sync"

	"github.com/ib-77/fn/pkg/fn"
	"github.com/ib-77/fn/pkg/fn/mass"
)

const (
	msgNotFound      = "entity not found"
	msgAlreadyExists = "entity already exists"
)

// MemoryRepository is a map-backed Repository implementation, primarily for
// tests and examples. Safe for concurrent use.
type MemoryRepository[K comparable, T Entity[K]] struct {
	mu   sync.RWMutex
	data map[K]T
}

func NewMemoryRepository[K comparable, T Entity[K]]() *MemoryRepository[K, T] {
	return &MemoryRepository[K, T]{
		data: make(map[K]T),
	}
}

func (r *MemoryRepository[K, T]) GetByID(ctx context.Context, id K) <-chan fn.Result[T] {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if entity, ok := r.data[id]; ok {
		return mass.Settled(fn.Success(entity))
	}
	return mass.Settled(fn.FailMsg[T](msgNotFound))
}

func (r *MemoryRepository[K, T]) GetAll(ctx context.Context) <-chan fn.Result[[]T] {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entities := make([]T, 0, len(r.data))
	for _, entity := range r.data {
		entities = append(entities, entity)
	}
	return mass.Settled(fn.Success(entities))
}

func (r *MemoryRepository[K, T]) Insert(ctx context.Context, entity T) <-chan fn.Result[T] {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.data[entity.ID()]; ok {
		return mass.Settled(fn.FailMsg[T](msgAlreadyExists))
	}
	r.data[entity.ID()] = entity
	return mass.Settled(fn.Success(entity))
}

func (r *MemoryRepository[K, T]) Update(ctx context.Context, entity T) <-chan fn.Result[T] {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.data[entity.ID()]; !ok {
		return mass.Settled(fn.FailMsg[T](msgNotFound))
	}
	r.data[entity.ID()] = entity
	return mass.Settled(fn.Success(entity))
}

func (r *MemoryRepository[K, T]) Delete(ctx context.Context, id K) <-chan fn.Result[fn.Unit] {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.data[id]; !ok {
		return mass.Settled(fn.FailMsg[fn.Unit](msgNotFound))
	}
	delete(r.data, id)
	return mass.Settled(fn.Success(fn.UnitValue))
}

func (r *MemoryRepository[K, T]) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.data)
}

func (r *MemoryRepository[K, T]) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = make(map[K]T)
}
