package users

import (
	"context"
	"sync"
	"time"
)

// LocalStorage provides an in-memory implementation for storing users.
type LocalStorage struct {
	mu     sync.RWMutex
	nextID uint
	m      map[uint]User
}

// NewLocalStorage instantiates a new LocalStorage with an empty map.
func NewLocalStorage() *LocalStorage {
	return &LocalStorage{
		nextID: 1,
		m:      map[uint]User{},
	}
}

var _ Storage = (*LocalStorage)(nil)

func (l *LocalStorage) Create(_ context.Context, u *User) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	u.ID = l.nextID
	l.nextID++
	u.CreatedAt = time.Now()
	if u.Role == "" {
		u.Role = RoleCustomer
	}
	l.m[u.ID] = *u
	return nil
}

func (l *LocalStorage) GetByID(_ context.Context, id uint) (*User, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	u, ok := l.m[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (l *LocalStorage) GetByEmail(_ context.Context, email string) (*User, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, u := range l.m {
		if u.Email == email {
			copied := u
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func (l *LocalStorage) List(_ context.Context) ([]User, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]User, 0, len(l.m))
	for id := uint(1); id < l.nextID; id++ {
		if u, ok := l.m[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
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

type localSnapshot struct {
	nextID uint
	m      map[uint]User
}

// Snapshot copies the current state so a failed transaction can be undone.
func (l *LocalStorage) Snapshot() any {
	l.mu.RLock()
	defer l.mu.RUnlock()
	m := make(map[uint]User, len(l.m))
	for id, u := range l.m {
		m[id] = u
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
