package kit

import "sync"

// StringFactory hands out reusable byte buffers for string-building
// work (escape decoding, base encoding, timestamp formatting) so
// repeated small operations don't each pay a fresh allocation.
type StringFactory struct {
	pool sync.Pool
}

// NewStringFactory returns a StringFactory whose buffers start at the
// given capacity.
func NewStringFactory(initialCap int) *StringFactory {
	return &StringFactory{
		pool: sync.Pool{New: func() any { return make([]byte, 0, initialCap) }},
	}
}

// Get returns a zero-length buffer, possibly reused from a prior Put.
func (f *StringFactory) Get() []byte {
	return f.pool.Get().([]byte)[:0]
}

// Put returns buf to the pool for reuse. Callers must not touch buf
// after calling Put.
func (f *StringFactory) Put(buf []byte) {
	f.pool.Put(buf) //nolint:staticcheck // intentionally pooling a slice header
}
