package blit

import (
	"sync"

	"github.com/gogpu/pixcore/geom"
)

// Pool is a thread-safe pool of scratch buffers grouped by size.
//
// All methods are safe for concurrent use.
type Pool[T Pixel] struct {
	mu      sync.Mutex
	buckets map[geom.Size][]*Buffer[T]
	maxSize int // max buffers per bucket, 0 is unlimited
}

// PoolOption configures a Pool.
type PoolOption func(*poolOptions)

type poolOptions struct {
	maxPerBucket int
}

func defaultPoolOptions() poolOptions {
	return poolOptions{maxPerBucket: 8}
}

// WithMaxPerBucket limits how many buffers of each size are retained.
// Zero means unlimited.
func WithMaxPerBucket(n int) PoolOption {
	return func(o *poolOptions) {
		o.maxPerBucket = max(n, 0)
	}
}

// NewPool creates an empty pool. By default it keeps up to 8 buffers of
// each size.
func NewPool[T Pixel](opts ...PoolOption) *Pool[T] {
	o := defaultPoolOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Pool[T]{
		buckets: make(map[geom.Size][]*Buffer[T]),
		maxSize: o.maxPerBucket,
	}
}

// Get returns a zeroed width x height buffer, reusing a pooled one when
// available. It returns nil for non-positive dimensions.
func (p *Pool[T]) Get(width, height int) *Buffer[T] {
	key := geom.Sz(width, height)

	p.mu.Lock()
	bucket := p.buckets[key]
	if n := len(bucket); n > 0 {
		buf := bucket[n-1]
		p.buckets[key] = bucket[:n-1]
		p.mu.Unlock()
		return buf
	}
	p.mu.Unlock()

	buf, err := NewBuffer[T](width, height)
	if err != nil {
		return nil
	}
	return buf
}

// Put clears buf and keeps it for reuse. Buffers with padded strides and
// buffers beyond the bucket limit are dropped.
func (p *Pool[T]) Put(buf *Buffer[T]) {
	if buf == nil || buf.Stride != buf.Width || len(buf.Pix) != buf.Width*buf.Height {
		return
	}
	buf.Clear()
	key := buf.Size()

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[key]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[key] = append(bucket, buf)
}

// Len returns the number of pooled buffers.
func (p *Pool[T]) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, b := range p.buckets {
		n += len(b)
	}
	return n
}
