package products

import (
	"context"
	"sync"
	"time"
)

// LocalStorage provides an in-memory implementation for storing products.
type LocalStorage struct {
	mu     sync.RWMutex
	nextID uint
	m      map[uint]Product
}

// NewLocalStorage instantiates a new LocalStorage with an empty map.
func NewLocalStorage() *LocalStorage {
	return &LocalStorage{
		nextID: 1,
		m:      map[uint]Product{},
	}
}

var _ Storage = (*LocalStorage)(nil)

func (l *LocalStorage) Create(_ context.Context, p *Product) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	p.ID = l.nextID
	l.nextID++
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	l.m[p.ID] = *p
	return nil
}

func (l *LocalStorage) GetByID(_ context.Context, id uint) (*Product, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	p, ok := l.m[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (l *LocalStorage) List(_ context.Context) ([]Product, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Product, 0, len(l.m))
	for id := uint(1); id < l.nextID; id++ {
		if p, ok := l.m[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (l *LocalStorage) Update(_ context.Context, p *Product) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	existing, ok := l.m[p.ID]
	if !ok {
		return ErrNotFound
	}
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = time.Now()
	l.m[p.ID] = *p
	return nil
}

func (l *LocalStorage) Delete(_ context.Context, id uint) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.m[id]; !ok {
		return ErrNotFound
	}
	delete(l.m, id)
	return nil
}

func (l *LocalStorage) DecrementStock(_ context.Context, id uint, qty int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	p, ok := l.m[id]
	if !ok || p.Quantity < qty {
		return ErrInsufficientStock
	}
	p.Quantity -= qty
	p.UpdatedAt = time.Now()
	l.m[id] = p
	return nil
}

func (l *LocalStorage) RestoreStock(_ context.Context, id uint, qty int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	p, ok := l.m[id]
	if !ok {
		return ErrNotFound
	}
	p.Quantity += qty
	p.UpdatedAt = time.Now()
	l.m[id] = p
	return nil
}

type localSnapshot struct {
	nextID uint
	m      map[uint]Product
}

// Snapshot copies the current state so a failed transaction can be undone.
func (l *LocalStorage) Snapshot() any {
	l.mu.RLock()
	defer l.mu.RUnlock()
	m := make(map[uint]Product, len(l.m))
	for id, p := range l.m {
		m[id] = p
	}
	return localSnapshot{nextID: l.nextID, m: m}
}

func (l *LocalStorage) Restore(snapshot any) {
	snap := snapshot.(localSnapshot)
	l.mu.Lock()
	defer l.mu.Unlock()
	l.nextID = snap.nextID
	l.m = snap.m
}
