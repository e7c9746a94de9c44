package rbt

import (
	"math/rand"
	"testing"
)

func BenchmarkInsertAscending(b *testing.B) {
	tree := New[int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.Insert(i)
	}
}

func BenchmarkInsertShuffled(b *testing.B) {
	values := rand.New(rand.NewSource(1)).Perm(b.N)
	tree := New[int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.Insert(values[i])
	}
}

func BenchmarkSearch(b *testing.B) {
	const size = 1 << 16
	tree := New[int]()
	for i := 0; i < size; i++ {
		tree.Insert(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.Search(i & (size - 1))
	}
}
