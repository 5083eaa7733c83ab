package utils

import (
	"fmt"
	"sync"
)

// defaultShardCount is the bucket count the reference uses for parallel
// scoring: a small prime comfortably larger than typical hardware thread
// counts, so contention drops to roughly 1/defaultShardCount.
const defaultShardCount = 97

// shardedBucket holds one partition of a ShardedMap: its own data map
// and its own mutex, so workers touching different buckets never block
// each other.
type shardedBucket struct {
	mu   sync.Mutex
	data map[int]float64
}

// ShardedMap is a fixed-bucket concurrent accumulator keyed by int,
// intended for many goroutines accumulating float64 scores without a
// single global lock. Bucket for key k is |k| % numBuckets.
//
// A bucket's lock must never be held while acquiring another bucket's
// lock — there are no multi-bucket critical sections, and Drain acquires
// buckets one at a time and must only be called once no Guard is
// outstanding.
type ShardedMap struct {
	buckets []*shardedBucket
}

// NewShardedMap creates a ShardedMap with numBuckets partitions. It reports
// ErrInvalidArgument if numBuckets < 1.
func NewShardedMap(numBuckets int) (*ShardedMap, error) {
	if numBuckets < 1 {
		return nil, fmt.Errorf("%w: bucket count %d must be >= 1", ErrInvalidArgument, numBuckets)
	}
	buckets := make([]*shardedBucket, numBuckets)
	for i := range buckets {
		buckets[i] = &shardedBucket{data: make(map[int]float64)}
	}
	return &ShardedMap{buckets: buckets}, nil
}

func (m *ShardedMap) bucketFor(key int) *shardedBucket {
	k := key % len(m.buckets)
	if k < 0 {
		k = -k
	}
	return m.buckets[k]
}

// Guard is a held lock over the bucket owning a single key. The lock is
// released by Release; a Guard must not be retained past that call, and
// only one goroutine at a time may hold a Guard for a given bucket.
type Guard struct {
	bucket *shardedBucket
	key    int
}

// Acquire locks the bucket owning key and returns a Guard over it.
func (m *ShardedMap) Acquire(key int) *Guard {
	b := m.bucketFor(key)
	b.mu.Lock()
	return &Guard{bucket: b, key: key}
}

// Add accumulates delta into the guarded key's value (zero if absent).
func (g *Guard) Add(delta float64) {
	g.bucket.data[g.key] += delta
}

// Release unlocks the bucket this Guard holds.
func (g *Guard) Release() {
	g.bucket.mu.Unlock()
}

// Drain acquires each bucket's lock in turn and merges its contents into a
// single map, which is returned. Callers must ensure no Guard is
// outstanding for this ShardedMap.
func (m *ShardedMap) Drain() map[int]float64 {
	result := make(map[int]float64)
	for _, b := range m.buckets {
		b.mu.Lock()
		for k, v := range b.data {
			result[k] = v
		}
		b.mu.Unlock()
	}
	return result
}
