package bplus

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/google/btree"
	"github.com/stretchr/testify/require"
)

// How to run:
//   - Deterministic randomized property test:
//     go test ./bplus -run TestRandomizedAgainstOracle -count=1
//   - Fuzz test for this file:
//     go test ./bplus -run '^$' -fuzz FuzzRandomizedAgainstOracle -fuzztime=10s

func oracleKeys(oracle *btree.BTreeG[int]) []int {
	out := make([]int, 0, oracle.Len())
	oracle.Ascend(func(key int) bool {
		out = append(out, key)
		return true
	})
	return out
}

func assertMatchesOracle(t *testing.T, tree *Tree[int], oracle *btree.BTreeG[int]) {
	t.Helper()
	require.NoError(t, tree.Check())
	require.Equal(t, oracle.Len(), tree.Len())
	want := oracleKeys(oracle)
	got := tree.Keys()
	require.Equal(t, want, got)
}

// runRandomSequence applies random inserts and deletes from a small key
// universe, so that duplicates and misses are frequent.
func runRandomSequence(t *testing.T, seed int64, order, steps int) {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	tree := New[int]()
	oracle := btree.NewOrderedG[int](2)
	universe := 4*order*order + 10
	for i := 0; i < steps; i++ {
		key := r.Intn(universe)
		if r.Intn(3) < 2 {
			require.NoError(t, tree.Insert(order, key))
			oracle.ReplaceOrInsert(key)
		} else {
			require.NoError(t, tree.Delete(order, key))
			oracle.Delete(key)
		}
		assertMatchesOracle(t, tree, oracle)
		require.Equal(t, oracle.Has(key), tree.Contains(key))
	}
	// drain in random order
	keys := tree.Keys()
	r.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
	for _, key := range keys {
		require.NoError(t, tree.Delete(order, key))
		oracle.Delete(key)
		assertMatchesOracle(t, tree, oracle)
	}
	require.True(t, tree.IsEmpty())
}

func TestRandomizedAgainstOracle(t *testing.T) {
	seeds := []int64{1, 2, 3, 7, 42, 99, 31337, 123456789}
	for _, order := range []int{3, 4, 5, 8} {
		for _, seed := range seeds {
			t.Run("order_"+strconv.Itoa(order)+"_seed_"+strconv.FormatInt(seed, 10), func(t *testing.T) {
				runRandomSequence(t, seed, order, 300)
			})
		}
	}
}

func FuzzRandomizedAgainstOracle(f *testing.F) {
	f.Add(int64(1), uint8(3), uint8(64))
	f.Add(int64(7), uint8(4), uint8(128))
	f.Add(int64(42), uint8(9), uint8(200))
	f.Fuzz(func(t *testing.T, seed int64, order uint8, steps uint8) {
		runRandomSequence(t, seed, int(order%14)+MinOrder, int(steps)+1)
	})
}

func TestOrderIndependentScan(t *testing.T) {
	base := make([]int, 200)
	for i := range base {
		base[i] = i * 3
	}
	for _, seed := range []int64{5, 11, 17} {
		r := rand.New(rand.NewSource(seed))
		keys := append([]int(nil), base...)
		r.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
		tree := buildTree(t, 4, keys...)
		require.Equal(t, base, tree.Keys(), "seed %d", seed)
	}
}

func TestRoundTripYieldsEmptyTree(t *testing.T) {
	r := rand.New(rand.NewSource(2024))
	keys := r.Perm(500)
	for _, order := range []int{3, 4, 6, 16} {
		tree := buildTree(t, order, keys...)
		require.Greater(t, tree.Height(), 1)
		deleteOrder := r.Perm(len(keys))
		for _, i := range deleteOrder {
			require.NoError(t, tree.Delete(order, keys[i]))
		}
		require.NoError(t, tree.Check())
		require.True(t, tree.IsEmpty())
		require.Empty(t, tree.Keys())
	}
}

func TestIdempotentOperationsKeepScan(t *testing.T) {
	tree := buildTree(t, 5, twentyKeys...)
	before := tree.Keys()
	for _, key := range twentyKeys {
		require.NoError(t, tree.Insert(5, key))
	}
	for _, key := range []int{1, 2, 3, 1000} {
		require.NoError(t, tree.Delete(5, key))
	}
	require.Equal(t, before, tree.Keys())
	require.NoError(t, tree.Check())
}
