package blobcache

import "time"

// EncodeName exposes encodeName for testing.
var EncodeName = encodeName

// DecodeName exposes decodeName for testing.
var DecodeName = decodeName

// SetClock replaces the store clock.
func (s *Store) SetClock(now func() time.Time) {
	s.now = now
}
