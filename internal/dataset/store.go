package dataset

// Store holds the current dataset. Replace swaps the whole value; readers
// holding the previous *Dataset keep seeing it unchanged because datasets
// are never mutated after construction.
type Store struct {
	current *Dataset
}

// Replace discards the current dataset and installs d. A nil d is stored as
// an empty dataset.
func (s *Store) Replace(d *Dataset) {
	if d == nil {
		d = &Dataset{}
	}
	s.current = d
}

// Clear drops the current dataset.
func (s *Store) Clear() {
	s.current = &Dataset{}
}

// Current returns the installed dataset; never nil.
func (s *Store) Current() *Dataset {
	if s.current == nil {
		return &Dataset{}
	}
	return s.current
}

// IsEmpty reports whether no data is loaded.
func (s *Store) IsEmpty() bool {
	return s.current.IsEmpty()
}
