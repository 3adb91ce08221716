package alloc

import "sync"

// Locked serializes every operation of an Allocator behind a mutex. The
// plain Allocator performs no locking.
type Locked struct {
	mu sync.Mutex
	a  *Allocator
}

// NewLocked creates an allocator wrapped in a mutex.
func NewLocked(opts *Options) (*Locked, error) {
	a, err := New(opts)
	if err != nil {
		return nil, err
	}
	return &Locked{a: a}, nil
}

// Alloc is the serialized form of Allocator.Alloc.
func (l *Locked) Alloc(size int) (Ptr, []byte, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.a.Alloc(size)
}

// Free is the serialized form of Allocator.Free.
func (l *Locked) Free(p Ptr) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.a.Free(p)
}

// Payload returns a copy of the payload behind p. The slice returned by
// Allocator.Payload would escape the lock.
func (l *Locked) Payload(p Ptr) []byte {
	l.mu.Lock()
	defer l.mu.Unlock()
	b := l.a.Payload(p)
	if b == nil {
		return nil
	}
	return append([]byte(nil), b...)
}

// Info returns the current heap summary.
func (l *Locked) Info() Info {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.a.Info()
}

// Counters returns activity counters since the last Init.
func (l *Locked) Counters() Counters {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.a.Counters()
}

// Validate runs Allocator.Validate under the lock.
func (l *Locked) Validate() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.a.Validate()
}

// Teardown releases the arena.
func (l *Locked) Teardown() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.a.Teardown()
}
