package streams

import (
	"context"
	"encoding/binary"
	"errors"
	"hash/fnv"
	"sync"
)

var ErrQueueClosed = errors.New("queue closed")

const (
	DefaultNumPartitions = 8
	DefaultBuffer        = 1024
)

// PartitionedQueue routes messages to a fixed set of buffered channels by key.
// Messages sharing a key always land on the same partition, in publish order.
type PartitionedQueue[T any] struct {
	partitions []chan T

	mu     sync.RWMutex
	closed bool
}

// NewPartitionedQueue creates a queue; non-positive arguments fall back to the defaults.
func NewPartitionedQueue[T any](numPartitions, buffer int) *PartitionedQueue[T] {
	if numPartitions <= 0 {
		numPartitions = DefaultNumPartitions
	}
	if buffer < 0 {
		buffer = DefaultBuffer
	}
	channels := make([]chan T, numPartitions)
	for i := range channels {
		channels[i] = make(chan T, buffer)
	}
	return &PartitionedQueue[T]{partitions: channels}
}

func (queue *PartitionedQueue[T]) PartitionCount() int { return len(queue.partitions) }

// Publish blocks while the target partition is full, until ctx is done.
func (queue *PartitionedQueue[T]) Publish(ctx context.Context, partitionKey string, msg T) error {
	queue.mu.RLock()
	defer queue.mu.RUnlock()
	if queue.closed {
		return ErrQueueClosed
	}

	idx := partitionIndex(partitionKey, len(queue.partitions))
	select {
	case queue.partitions[idx] <- msg:
		metricQueueDepth.WithLabelValues(streamReportJob).Inc()
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops accepting messages. Consumers drain what is buffered and then exit.
func (queue *PartitionedQueue[T]) Close() {
	queue.mu.Lock()
	defer queue.mu.Unlock()
	if queue.closed {
		return
	}
	queue.closed = true
	for _, ch := range queue.partitions {
		close(ch)
	}
}

func (queue *PartitionedQueue[T]) partition(idx int) <-chan T {
	return queue.partitions[idx]
}

func partitionIndex(key string, n int) int {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(key))
	sum := hash.Sum(nil)
	v := binary.LittleEndian.Uint32(sum)
	return int(v % uint32(n))
}
