package cart

import "sync"

// Store owns the ordered line items of one cart. All operations are
// serialized by the store mutex.
type Store struct {
	mu        sync.Mutex
	items     []LineItem
	observers []Observer
}

func NewStore() *Store {
	return &Store{}
}

// Subscribe registers o and immediately hands it the current snapshot.
func (s *Store) Subscribe(o Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, o)
	o.CartChanged(s.snapshotLocked())
}

// Add merges into an existing item with the same name or appends a new item
// with quantity 1.
func (s *Store) Add(name string, unitPrice float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].Name == name {
			s.items[i].Quantity++
			s.notifyLocked()
			return
		}
	}
	s.items = append(s.items, LineItem{Name: name, UnitPrice: unitPrice, Quantity: 1})
	s.notifyLocked()
}

// Remove deletes the item at index, preserving the order of the rest.
func (s *Store) Remove(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.items) {
		return ErrIndexOutOfRange
	}
	s.removeLocked(index)
	s.notifyLocked()
	return nil
}

// AdjustQuantity adds delta to the item's quantity. Any integer is accepted;
// a result <= 0 removes the item.
func (s *Store) AdjustQuantity(index, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.items) {
		return ErrIndexOutOfRange
	}
	s.items[index].Quantity += delta
	if s.items[index].Quantity <= 0 {
		s.removeLocked(index)
	}
	s.notifyLocked()
	return nil
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.notifyLocked()
}

// Drain hands the current contents to commit and empties the cart only when
// commit succeeds. commit runs with the store locked and must not call back
// into it.
func (s *Store) Drain(commit func(Snapshot) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := commit(s.snapshotLocked()); err != nil {
		return err
	}
	s.items = nil
	s.notifyLocked()
	return nil
}

func (s *Store) Totals() Totals {
	return s.Snapshot().Totals()
}

func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) removeLocked(index int) {
	s.items = append(s.items[:index], s.items[index+1:]...)
}

func (s *Store) snapshotLocked() Snapshot {
	items := make([]LineItem, len(s.items))
	copy(items, s.items)
	return Snapshot{Items: items}
}

func (s *Store) notifyLocked() {
	if len(s.observers) == 0 {
		return
	}
	snap := s.snapshotLocked()
	for _, o := range s.observers {
		o.CartChanged(snap)
	}
}
