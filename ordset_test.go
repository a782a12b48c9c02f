package ordset_test

import (
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/ylab-dev/ordset"
)

const SOURCE = 42

func TestSetInsertAndLookup(t *testing.T) {
	s := ordset.New[int]()

	s.InsertAll(30, 10, 20, 10, 30) // duplicates silently skipped

	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
	if got := slices.Collect(s.All()); !slices.Equal(got, []int{10, 20, 30}) {
		t.Errorf("All() = %v, want [10 20 30]", got)
	}

	if !s.Contains(20) || s.Contains(25) {
		t.Error("Contains gave a wrong answer")
	}
	if it := s.Find(30); it == s.End() || it.Key() != 30 {
		t.Error("Find(30) did not land on 30")
	}
	if it := s.LowerBound(15); it.Key() != 20 {
		t.Errorf("LowerBound(15) = %d, want 20", it.Key())
	}
	if it := s.UpperBound(20); it.Key() != 30 {
		t.Errorf("UpperBound(20) = %d, want 30", it.Key())
	}
	if s.UpperBound(30) != s.End() {
		t.Error("UpperBound(30) is not End()")
	}
}

func TestSetEmpty(t *testing.T) {
	s := ordset.New[string]()

	if !s.Empty() || s.Len() != 0 {
		t.Error("new set is not empty")
	}
	if s.Begin() != s.End() {
		t.Error("Begin() != End() on empty set")
	}
	if s.Find("anything") != s.End() {
		t.Error("Find on empty set did not return End()")
	}
	if _, ok := s.Min(); ok {
		t.Error("Min() reported a key on empty set")
	}
}

func TestSetInsertReturnsPosition(t *testing.T) {
	s := ordset.New[int]()

	first, inserted := s.Insert(10)
	if !inserted || first.Key() != 10 {
		t.Fatal("first insert misbehaved")
	}

	again, inserted := s.Insert(10)
	if inserted {
		t.Error("duplicate insert reported true")
	}
	if again != first {
		t.Error("duplicate insert returned a different position")
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}

func TestSetInsertSeq(t *testing.T) {
	src := []int{5, 3, 5, 1, 3, 9}
	s := ordset.New[int]()
	s.InsertSeq(slices.Values(src))

	if got := slices.Collect(s.All()); !slices.Equal(got, []int{1, 3, 5, 9}) {
		t.Errorf("All() = %v, want [1 3 5 9]", got)
	}
}

func TestSetCustomOrder(t *testing.T) {
	s := ordset.NewFunc[string](func(a, b string) bool {
		return strings.ToLower(a) < strings.ToLower(b)
	})

	s.InsertAll("Banana", "apple", "CHERRY", "APPLE") // APPLE equals apple

	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
	if got := slices.Collect(s.All()); !slices.Equal(got, []string{"apple", "Banana", "CHERRY"}) {
		t.Errorf("All() = %v", got)
	}
	if !s.Contains("banana") {
		t.Error("case-insensitive Contains failed")
	}
}

func TestSetIterators(t *testing.T) {
	s := ordset.New[int]()
	s.InsertAll(1, 3, 5, 7)

	if it := s.Find(3).Next(); it.Key() != 5 {
		t.Errorf("successor of 3 is %d, want 5", it.Key())
	}
	if it := s.End().Prev(); it.Key() != 7 {
		t.Errorf("Prev() of End() = %d, want 7", it.Key())
	}

	got := make([]int, 0, 4)
	for k := range s.Backward() {
		got = append(got, k)
	}
	if !slices.Equal(got, []int{7, 5, 3, 1}) {
		t.Errorf("Backward() = %v, want [7 5 3 1]", got)
	}
}

func TestSetCloneAndAssign(t *testing.T) {
	r := rand.New(rand.NewSource(SOURCE))
	src := ordset.New[int]()
	for range 1000 {
		src.Insert(r.Intn(10_000))
	}

	clone := src.Clone()
	if clone.Len() != src.Len() {
		t.Fatalf("clone Len() = %d, want %d", clone.Len(), src.Len())
	}
	if !slices.Equal(slices.Collect(clone.All()), slices.Collect(src.All())) {
		t.Error("clone sequence differs from source")
	}

	clone.Insert(-1)
	if src.Contains(-1) {
		t.Error("mutating the clone leaked into the source")
	}

	dst := ordset.New[int]()
	dst.Insert(999_999)
	dst.CopyFrom(src)
	if dst.Contains(999_999) || dst.Len() != src.Len() {
		t.Error("CopyFrom did not fully replace the destination")
	}
}

func TestSetMoveFrom(t *testing.T) {
	src := ordset.New[int]()
	src.InsertAll(1, 2, 3)

	dst := ordset.New[int]()
	dst.Insert(42)
	dst.MoveFrom(src)

	if dst.Len() != 3 || dst.Contains(42) {
		t.Error("MoveFrom did not transfer the contents")
	}
	if !src.Empty() || src.Begin() != src.End() {
		t.Error("source not empty after MoveFrom")
	}

	src.Insert(7)
	if src.Len() != 1 || dst.Len() != 3 {
		t.Error("moved-from source is not independently reusable")
	}
}

func TestSetSwap(t *testing.T) {
	a := ordset.New[int]()
	a.InsertAll(1, 2)
	b := ordset.New[int]()
	b.Insert(9)

	a.Swap(b)

	if a.Len() != 1 || !a.Contains(9) || b.Len() != 2 || !b.Contains(1) {
		t.Error("Swap did not exchange contents")
	}
}

func BenchmarkSetInsert(b *testing.B) {
	r := rand.New(rand.NewSource(SOURCE))
	keys := make([]int, 10_000)
	for i := range keys {
		keys[i] = r.Int()
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := ordset.New[int]()
		for _, k := range keys {
			s.Insert(k)
		}
	}
}
