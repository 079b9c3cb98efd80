package sales

import (
	"context"
	"sync"
	"time"
)

// LocalStorage provides an in-memory implementation for storing sales and
// their lines.
type LocalStorage struct {
	mu         sync.RWMutex
	nextSaleID uint
	nextLineID uint
	sales      map[uint]Sale
	lines      map[uint]SaleLine
}

// NewLocalStorage instantiates a new LocalStorage with empty maps.
func NewLocalStorage() *LocalStorage {
	return &LocalStorage{
		nextSaleID: 1,
		nextLineID: 1,
		sales:      map[uint]Sale{},
		lines:      map[uint]SaleLine{},
	}
}

var _ Storage = (*LocalStorage)(nil)

func (l *LocalStorage) CreateSale(_ context.Context, sale *Sale) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	sale.ID = l.nextSaleID
	l.nextSaleID++
	sale.CreatedAt = time.Now()
	l.sales[sale.ID] = *sale
	return nil
}

func (l *LocalStorage) GetSale(_ context.Context, id uint) (*Sale, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	sale, ok := l.sales[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &sale, nil
}

func (l *LocalStorage) UpdateTotal(_ context.Context, id uint, total float64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	sale, ok := l.sales[id]
	if !ok {
		return ErrNotFound
	}
	sale.Total = total
	l.sales[id] = sale
	return nil
}

func (l *LocalStorage) ListSales(_ context.Context) ([]Sale, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Sale, 0, len(l.sales))
	for id := uint(1); id < l.nextSaleID; id++ {
		if sale, ok := l.sales[id]; ok {
			out = append(out, sale)
		}
	}
	return out, nil
}

func (l *LocalStorage) ListSalesByUser(_ context.Context, userID uint) ([]Sale, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Sale, 0)
	for id := uint(1); id < l.nextSaleID; id++ {
		if sale, ok := l.sales[id]; ok && sale.UserID == userID {
			out = append(out, sale)
		}
	}
	return out, nil
}

func (l *LocalStorage) CreateLine(_ context.Context, line *SaleLine) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	line.ID = l.nextLineID
	l.nextLineID++
	l.lines[line.ID] = *line
	return nil
}

func (l *LocalStorage) LinesBySale(_ context.Context, saleID uint) ([]SaleLine, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]SaleLine, 0)
	for id := uint(1); id < l.nextLineID; id++ {
		if line, ok := l.lines[id]; ok && line.SaleID == saleID {
			out = append(out, line)
		}
	}
	return out, nil
}

func (l *LocalStorage) DeleteLinesBySale(_ context.Context, saleID uint) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	for id, line := range l.lines {
		if line.SaleID == saleID {
			delete(l.lines, id)
		}
	}
	return nil
}

func (l *LocalStorage) DeleteSale(_ context.Context, id uint) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.sales[id]; !ok {
		return ErrNotFound
	}
	delete(l.sales, id)
	return nil
}

type localSnapshot struct {
	nextSaleID uint
	nextLineID uint
	sales      map[uint]Sale
	lines      map[uint]SaleLine
}

// Snapshot copies the current state so a failed transaction can be undone.
func (l *LocalStorage) Snapshot() any {
	l.mu.RLock()
	defer l.mu.RUnlock()
	snap := localSnapshot{
		nextSaleID: l.nextSaleID,
		nextLineID: l.nextLineID,
		sales:      make(map[uint]Sale, len(l.sales)),
		lines:      make(map[uint]SaleLine, len(l.lines)),
	}
	for id, sale := range l.sales {
		snap.sales[id] = sale
	}
	for id, line := range l.lines {
		snap.lines[id] = line
	}
	return snap
}

func (l *LocalStorage) Restore(snapshot any) {
	snap := snapshot.(localSnapshot)
	l.mu.Lock()
	defer l.mu.Unlock()
	l.nextSaleID = snap.nextSaleID
	l.nextLineID = snap.nextLineID
	l.sales = snap.sales
	l.lines = snap.lines
}
