package streams

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartitionedQueue_SameKeySamePartitionInOrder(t *testing.T) {
	t.Parallel()

	queue := NewPartitionedQueue[int](4, 16)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, queue.Publish(ctx, "run-42", i))
	}

	idx := partitionIndex("run-42", queue.PartitionCount())
	ch := queue.partition(idx)
	for i := 0; i < 5; i++ {
		assert.Equal(t, i, <-ch)
	}
	for p := 0; p < queue.PartitionCount(); p++ {
		assert.Empty(t, queue.partitions[p], "partition %d", p)
	}
}

func TestPartitionedQueue_Defaults(t *testing.T) {
	t.Parallel()

	queue := NewPartitionedQueue[string](0, -1)
	assert.Equal(t, DefaultNumPartitions, queue.PartitionCount())
	assert.Equal(t, DefaultBuffer, cap(queue.partitions[0]))
}

func TestPartitionedQueue_PublishHonoursContext(t *testing.T) {
	t.Parallel()

	queue := NewPartitionedQueue[int](1, 0)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := queue.Publish(ctx, "k", 1)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestPartitionedQueue_Close(t *testing.T) {
	t.Parallel()

	queue := NewPartitionedQueue[int](2, 4)
	require.NoError(t, queue.Publish(context.Background(), "k", 7))

	queue.Close()
	queue.Close()

	assert.ErrorIs(t, queue.Publish(context.Background(), "k", 8), ErrQueueClosed)

	ch := queue.partition(partitionIndex("k", 2))
	v, ok := <-ch
	assert.True(t, ok)
	assert.Equal(t, 7, v)
	_, ok = <-ch
	assert.False(t, ok)
}

func TestPartitionIndex_Stable(t *testing.T) {
	t.Parallel()

	for _, key := range []string{"", "1", "4711", "run-with-a-long-id"} {
		first := partitionIndex(key, 8)
		assert.GreaterOrEqual(t, first, 0)
		assert.Less(t, first, 8)
		assert.Equal(t, first, partitionIndex(key, 8))
	}
}
