package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSparseSetInsertContainsErase(t *testing.T) {
	s := NewSparseSet[uint32]()
	assert.False(t, s.Contains(7))

	s.Insert(7)
	assert.True(t, s.Contains(7))
	assert.Equal(t, 1, s.Len())

	// Re-inserting is a no-op.
	s.Insert(7)
	assert.Equal(t, 1, s.Len())

	s.Erase(7)
	assert.False(t, s.Contains(7))
	assert.Equal(t, 0, s.Len())

	// Erasing an absent member is a no-op.
	s.Erase(7)
	assert.Equal(t, 0, s.Len())
}

func TestSparseSetSwapOnErase(t *testing.T) {
	s := NewSparseSet[uint32]()
	for _, v := range []uint32{1, 2, 3, 4} {
		s.Insert(v)
	}

	s.Erase(2)

	assert.Equal(t, 3, s.Len())
	assert.False(t, s.Contains(2))
	for _, v := range []uint32{1, 3, 4} {
		assert.True(t, s.Contains(v))
	}

	seen := map[uint32]bool{}
	for _, v := range s.Data() {
		seen[v] = true
	}
	assert.Len(t, seen, 3)
}

func TestSparseSetReserveNeverShrinks(t *testing.T) {
	s := NewSparseSet[uint32]()
	s.Reserve(100)
	s.Insert(50)
	s.Reserve(10)
	assert.True(t, s.Contains(50))
}

func TestSparseSetAtIndexesDenseArray(t *testing.T) {
	s := NewSparseSet[uint32]()
	s.Insert(10)
	s.Insert(20)
	s.Insert(30)

	assert.Equal(t, uint32(10), s.At(0))
	assert.Equal(t, uint32(20), s.At(1))
	assert.Equal(t, uint32(30), s.At(2))
}

func TestSparseSetClear(t *testing.T) {
	s := NewSparseSet[uint32]()
	s.Insert(1)
	s.Insert(2)
	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Contains(1))
	assert.False(t, s.Contains(2))
}

func BenchmarkSparseSetInsert(b *testing.B) {
	s := NewSparseSet[uint32]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Insert(uint32(i))
	}
}

func BenchmarkSparseSetContains(b *testing.B) {
	s := NewSparseSet[uint32]()
	for i := 0; i < 10000; i++ {
		s.Insert(uint32(i))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Contains(uint32(i % 10000))
	}
}

func BenchmarkSparseSetErase(b *testing.B) {
	s := NewSparseSet[uint32]()
	for i := 0; i < b.N; i++ {
		s.Insert(uint32(i))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Erase(uint32(i))
	}
}
