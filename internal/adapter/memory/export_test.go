package memory

// LockEntries reports how many row-lock entries are live.
func (s *Store) LockEntries() int {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()
	return len(s.locks)
}
