package bst

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScenarioTree(t *testing.T) *Tree[int, string] {
	tree := New[int, string]()
	for _, k := range []int{5, 3, 8, 1, 4, 7, 9} {
		require.NoError(t, tree.Put(k, valueOf(k)))
	}

	return tree
}

func valueOf(k int) string {
	return string(rune('a' + k))
}

func TestTree_Empty(t *testing.T) {
	tree := New[int, string]()
	assert.Equal(t, 0, tree.Size())
	assert.Equal(t, 0, tree.Height())

	_, ok, err := tree.Get(1)
	assert.NoError(t, err)
	assert.False(t, ok)

	_, _, ok = tree.Min()
	assert.False(t, ok)

	_, _, ok = tree.Max()
	assert.False(t, ok)

	assert.NoError(t, tree.Delete(1))
	assert.Equal(t, 0, tree.Size())
	assert.NoError(t, tree.Validate())
}

func TestTree_PutAndGet(t *testing.T) {
	tree := newScenarioTree(t)
	assert.Equal(t, 7, tree.Size())
	assert.NoError(t, tree.Validate())

	for _, k := range []int{5, 3, 8, 1, 4, 7, 9} {
		v, ok, err := tree.Get(k)
		assert.NoError(t, err)
		assert.True(t, ok, "key %d should be found", k)
		assert.Equal(t, valueOf(k), v)
	}

	_, ok, err := tree.Get(6)
	assert.NoError(t, err)
	assert.False(t, ok)

	key, value, ok := tree.Min()
	assert.True(t, ok)
	assert.Equal(t, 1, key)
	assert.Equal(t, valueOf(1), value)

	key, _, ok = tree.Max()
	assert.True(t, ok)
	assert.Equal(t, 9, key)
}

func TestTree_PutOverwrite(t *testing.T) {
	tree := newScenarioTree(t)

	require.NoError(t, tree.Put(4, "first"))
	require.NoError(t, tree.Put(4, "second"))
	assert.Equal(t, 7, tree.Size())

	v, ok, err := tree.Get(4)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "second", v)
}

func TestTree_Update(t *testing.T) {
	tree := newScenarioTree(t)

	t.Run("absent key is a no-op", func(t *testing.T) {
		require.NoError(t, tree.Update(6, "six"))
		assert.Equal(t, 7, tree.Size())

		_, ok, err := tree.Get(6)
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("present key", func(t *testing.T) {
		require.NoError(t, tree.Update(8, "eight"))
		assert.Equal(t, 7, tree.Size())

		v, ok, err := tree.Get(8)
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "eight", v)
	})

	assert.NoError(t, tree.Validate())
}

func TestTree_DeleteTwoChildren(t *testing.T) {
	tree := newScenarioTree(t)

	require.NoError(t, tree.Delete(5))
	assert.Equal(t, 6, tree.Size())
	assert.NoError(t, tree.Validate())

	_, ok, err := tree.Get(5)
	assert.NoError(t, err)
	assert.False(t, ok)

	// the minimum of the old right subtree {7, 8, 9} moves up
	require.NotNil(t, tree.root)
	assert.Equal(t, 7, tree.root.key)
	assert.Equal(t, valueOf(7), tree.root.value)
	assert.Equal(t, 3, tree.root.left.key)
	assert.Equal(t, 8, tree.root.right.key)
	assert.Nil(t, tree.root.right.left)
	assert.Equal(t, 2, tree.root.right.size)

	for _, k := range []int{3, 8, 1, 4, 7, 9} {
		v, ok, err := tree.Get(k)
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, valueOf(k), v)
	}
}

func TestTree_DeleteLeafAndSingleChild(t *testing.T) {
	tree := newScenarioTree(t)

	// leaf
	require.NoError(t, tree.Delete(1))
	assert.Equal(t, 6, tree.Size())
	assert.Nil(t, tree.root.left.left)

	// 3 now has only a right child
	require.NoError(t, tree.Delete(3))
	assert.Equal(t, 5, tree.Size())
	assert.Equal(t, 4, tree.root.left.key)
	assert.Equal(t, 1, tree.root.left.size)

	// 8 loses 9, then has only a left child
	require.NoError(t, tree.Delete(9))
	require.NoError(t, tree.Delete(8))
	assert.Equal(t, 3, tree.Size())
	assert.Equal(t, 7, tree.root.right.key)

	assert.NoError(t, tree.Validate())
}

func TestTree_DeleteAbsent(t *testing.T) {
	tree := newScenarioTree(t)
	before := tree.Graph()

	require.NoError(t, tree.Delete(6))
	assert.Equal(t, 7, tree.Size())
	assert.Equal(t, before, tree.Graph())
}

func TestTree_DeleteSuccessorDeepInRightSubtree(t *testing.T) {
	tree := New[int, int]()
	for _, k := range []int{10, 5, 20, 15, 25, 12, 17, 13} {
		require.NoError(t, tree.Put(k, k*10))
	}

	require.NoError(t, tree.Delete(10))
	assert.Equal(t, 7, tree.Size())
	assert.Equal(t, 12, tree.root.key)
	assert.NoError(t, tree.Validate())

	// 13 took 12's place under 15
	assert.Equal(t, 13, tree.root.right.left.left.key)
	assert.Equal(t, 5, tree.root.right.size)
}

func TestTree_InvalidKey(t *testing.T) {
	tree := NewWithComparator[*string, int](func(a, b *string) int {
		if *a < *b {
			return -1
		} else if *a > *b {
			return 1
		}
		return 0
	})

	k := "k"
	require.NoError(t, tree.Put(&k, 1))

	assert.ErrorIs(t, tree.Put(nil, 2), ErrInvalidKey)
	assert.ErrorIs(t, tree.Update(nil, 2), ErrInvalidKey)
	assert.ErrorIs(t, tree.Delete(nil), ErrInvalidKey)

	_, ok, err := tree.Get(nil)
	assert.ErrorIs(t, err, ErrInvalidKey)
	assert.False(t, ok)

	_, err = tree.Contains(nil)
	assert.ErrorIs(t, err, ErrInvalidKey)

	assert.Equal(t, 1, tree.Size())
	v, ok, err := tree.Get(&k)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestTree_InvalidKeyMessage(t *testing.T) {
	tree := NewWithComparator[any, int](func(a, b any) int { return 0 })
	err := tree.Put(nil, 1)
	assert.EqualError(t, err, "put: key must not be nil")
	assert.Equal(t, 0, tree.Size())
}

func TestTree_NaNKey(t *testing.T) {
	tree := New[float64, int]()
	require.NoError(t, tree.Put(1.5, 1))

	assert.ErrorIs(t, tree.Put(math.NaN(), 2), ErrInvalidKey)
	assert.ErrorIs(t, tree.Delete(math.NaN()), ErrInvalidKey)
	assert.Equal(t, 1, tree.Size())
}

type version struct {
	major, minor int
}

func (v version) Compare(other version) int {
	if v.major != other.major {
		return v.major - other.major
	}

	return v.minor - other.minor
}

func TestNewComparable(t *testing.T) {
	tree := NewComparable[version, string]()
	require.NoError(t, tree.Put(version{1, 2}, "1.2"))
	require.NoError(t, tree.Put(version{1, 10}, "1.10"))
	require.NoError(t, tree.Put(version{0, 9}, "0.9"))

	key, value, ok := tree.Max()
	assert.True(t, ok)
	assert.Equal(t, version{1, 10}, key)
	assert.Equal(t, "1.10", value)

	found, err := tree.Contains(version{1, 2})
	assert.NoError(t, err)
	assert.True(t, found)
}

func TestTree_AscendingInsertDegenerates(t *testing.T) {
	tree := New[int, struct{}]()
	for i := 0; i < 100; i++ {
		require.NoError(t, tree.Put(i, struct{}{}))
	}

	assert.Equal(t, 100, tree.Size())
	assert.Equal(t, 100, tree.Height())

	for i := 0; i < 100; i += 2 {
		require.NoError(t, tree.Delete(i))
	}

	assert.Equal(t, 50, tree.Size())
	assert.NoError(t, tree.Validate())
}

func TestTree_RandomOperations(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	tree := New[int, int]()
	expected := map[int]int{}

	for step := 0; step < 20_000; step++ {
		key := rnd.Intn(512)
		switch rnd.Intn(4) {
		case 0, 1:
			value := rnd.Int()
			require.NoError(t, tree.Put(key, value))
			expected[key] = value

		case 2:
			require.NoError(t, tree.Delete(key))
			delete(expected, key)

		case 3:
			value := rnd.Int()
			require.NoError(t, tree.Update(key, value))
			if _, ok := expected[key]; ok {
				expected[key] = value
			}
		}

		if step%1000 == 0 {
			require.NoError(t, tree.Validate())
		}
	}

	require.NoError(t, tree.Validate())
	assert.Equal(t, len(expected), tree.Size())

	for key := 0; key < 512; key++ {
		v, ok, err := tree.Get(key)
		require.NoError(t, err)

		want, found := expected[key]
		assert.Equal(t, found, ok, "key %d", key)
		if found {
			assert.Equal(t, want, v, "key %d", key)
		}
	}
}

func TestTree_IndependentInstances(t *testing.T) {
	a := New[string, int]()
	b := New[string, int]()

	require.NoError(t, a.Put("x", 1))
	assert.Equal(t, 1, a.Size())
	assert.Equal(t, 0, b.Size())
}
