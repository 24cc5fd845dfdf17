//go:build unit

package unorderedmap

import (
	"fmt"
	"github.com/gostonefire/unorderedmap/hashfunc"
	"github.com/gostonefire/unorderedmap/internal/utils"
	"github.com/stretchr/testify/assert"
	"math"
	"testing"
)

// contents - Returns every key/value pair reachable through full iteration
func contents[K comparable, V any](m *UnorderedMap[K, V]) map[K]V {
	c := make(map[K]V)
	for k, v := range m.All() {
		c[k] = v
	}
	return c
}

func TestUnorderedMap_Rehash(t *testing.T) {
	t.Run("rehashes to nearest prime", func(t *testing.T) {
		// Prepare
		m := New[int, int]()

		// Execute and Check
		m.Rehash(100)
		assert.Equal(t, 101, m.BucketCount(), "rounded up to prime")
		m.Rehash(0)
		assert.Equal(t, 2, m.BucketCount(), "zero on empty table gives 2")
		m.Rehash(13)
		assert.Equal(t, 13, m.BucketCount(), "prime kept")
	})

	t.Run("raises request that does not fit entries", func(t *testing.T) {
		// Prepare
		m, _ := NewUnorderedMap[int, int](50, hashfunc.Integer[int]())
		for i := 0; i < 10; i++ {
			m.Insert(i, i)
		}

		// Execute
		m.Rehash(1)

		// Check
		assert.Equal(t, 23, m.BucketCount(), "twice the minimum rounded up to prime")
	})

	t.Run("preserves content", func(t *testing.T) {
		// Prepare
		m, _ := NewUnorderedMap[string, int](3, hashfunc.String())
		for i := 0; i < 300; i++ {
			m.Insert(fmt.Sprintf("key-%d", i), i)
		}
		before := contents(m)

		// Execute
		m.Rehash(1000)

		// Check
		assert.Equal(t, 1009, m.BucketCount(), "new bucket count")
		assert.Equal(t, 300, m.Size(), "size unchanged")
		assert.Equal(t, before, contents(m), "same key/value pairs")
	})

	t.Run("places every entry in its bucket", func(t *testing.T) {
		// Prepare
		m, _ := NewUnorderedMap[int, int](0, hashfunc.Integer[int]())
		for i := 0; i < 250; i++ {
			m.Insert(i*7, i)
		}

		// Execute
		m.Rehash(97)

		// Check
		for it := m.Begin(); !it.IsEnd(); it = it.Next() {
			assert.Equal(t, it.Key()%m.BucketCount(), m.Bucket(it.Key()), "bucket is hash modulo bucket count")
		}
		for b := 0; b < m.BucketCount(); b++ {
			entries, err := m.BucketEntries(b)
			assert.NoError(t, err)
			for entries.HasNext() {
				e, err := entries.Next()
				assert.NoError(t, err)
				assert.Equal(t, b, e.Key%m.BucketCount(), "entry stored in its bucket")
			}
		}
	})

	t.Run("moves entries without copying", func(t *testing.T) {
		// Prepare
		m, _ := NewUnorderedMap[int, int](2, hashfunc.Integer[int]())
		m.Insert(1, 1)
		entry := m.Find(1).Entry()

		// Execute
		m.Rehash(50)

		// Check
		assert.Same(t, entry, m.Find(1).Entry(), "same entry after rehash")
	})

	t.Run("bucket count is prime for all requests", func(t *testing.T) {
		// Prepare
		m := New[int, int]()

		// Execute and Check
		for n := 0; n <= 10000; n += 37 {
			m.Rehash(n)
			if !utils.IsPrime(m.BucketCount()) || m.BucketCount() < n {
				assert.Fail(t, "bucket count is a prime not less than request", "n=%d buckets=%d", n, m.BucketCount())
				return
			}
		}
	})
}

func TestUnorderedMap_Reserve(t *testing.T) {
	t.Run("reserves room for entries", func(t *testing.T) {
		// Prepare
		m, _ := NewFromConf[int, int](Conf[int]{MaxLoadFactor: 0.5, Hasher: hashfunc.Integer[int]()})

		// Execute
		m.Reserve(10)

		// Check
		assert.Equal(t, 23, m.BucketCount(), "ceil(10 / 0.5) rounded up to prime")
		for i := 0; i < 10; i++ {
			m.Insert(i, i)
		}
		assert.Equal(t, 23, m.BucketCount(), "no rehash while inserting reserved entries")
	})
}

func TestUnorderedMap_Growth(t *testing.T) {
	t.Run("grows through deterministic prime sequence", func(t *testing.T) {
		// Prepare
		m, _ := NewUnorderedMap[int, int](1, hashfunc.Integer[int]())
		expected := map[int]int{1: 2, 2: 2, 3: 5, 5: 5, 6: 11, 11: 11, 12: 23, 23: 23, 24: 47}

		// Execute and Check
		for i := 1; i <= 24; i++ {
			m.Insert(i, i)
			if bc, ok := expected[i]; ok {
				assert.Equal(t, bc, m.BucketCount(), "bucket count after %d inserts", i)
			}
		}
	})

	t.Run("load factor checked before insert", func(t *testing.T) {
		// Prepare
		m, _ := NewFromConf[int, int](Conf[int]{InitialBuckets: 2, MaxLoadFactor: 0.75, Hasher: hashfunc.Integer[int]()})
		m.Insert(0, 0)

		// Execute
		m.Insert(1, 1)

		// Check
		assert.Equal(t, 2, m.BucketCount(), "no rehash at load factor 0.5")
		assert.Equal(t, 1.0, m.LoadFactor(), "above max load factor by one entry")

		m.Insert(2, 2)
		assert.Equal(t, 5, m.BucketCount(), "rehash before next insert")
	})

	t.Run("load factor bound holds after every insert", func(t *testing.T) {
		// Prepare
		m, _ := NewUnorderedMap[string, int](0, hashfunc.String())

		// Execute and Check
		for i := 0; i < 2000; i++ {
			m.Insert(fmt.Sprintf("key-%d", i), i)
			bound := m.MaxLoadFactor() + 1/float64(m.BucketCount())
			if m.LoadFactor() > bound {
				assert.Fail(t, "load factor within bound", "size=%d buckets=%d", m.Size(), m.BucketCount())
				return
			}
		}
		assert.True(t, utils.IsPrime(m.BucketCount()), "bucket count is prime")
	})

	t.Run("subscript grows like insert", func(t *testing.T) {
		// Prepare
		m, _ := NewUnorderedMap[int, int](1, hashfunc.Integer[int]())

		// Execute
		for i := 1; i <= 6; i++ {
			*m.Subscript(i) = i
		}

		// Check
		assert.Equal(t, 11, m.BucketCount(), "same sequence as insert")
	})

	t.Run("scenario with three string keys", func(t *testing.T) {
		// Prepare
		m, _ := NewUnorderedMap[string, string](1, hashfunc.String())

		// Execute
		m.Insert("a", "A")
		m.Insert("b", "B")
		m.Insert("c", "C")

		// Check
		assert.True(t, utils.IsPrime(m.BucketCount()), "bucket count is prime")
		assert.Equal(t, 5, m.BucketCount(), "rehashed to next prime of 4")
		assert.Equal(t, 3, m.Size(), "three entries")
		assert.Equal(t, "B", m.Find("b").Value(), "finds b")
		assert.True(t, m.Find("z").Equal(m.End()), "z not found")
	})
}

func TestUnorderedMap_RehashOverflow(t *testing.T) {
	t.Run("tiny max load factor panics instead of looping", func(t *testing.T) {
		// Prepare
		m, _ := NewUnorderedMap[int, int](0, hashfunc.Integer[int]())
		m.Insert(1, 1)
		m.Insert(2, 2)
		err := m.SetMaxLoadFactor(1e-18)
		assert.NoError(t, err, "tiny max load factor accepted")
		bucketCount := m.BucketCount()

		// Execute and Check
		assert.Panics(t, func() { m.Insert(3, 3) }, "growth request too big panics")
		assert.Panics(t, func() { m.Rehash(1) }, "rehash request too big panics")
		assert.Panics(t, func() { m.Reserve(10) }, "reserve request too big panics")

		assert.Equal(t, bucketCount, m.BucketCount(), "bucket array unchanged")
		assert.Equal(t, 2, m.Size(), "entries unchanged")
		assert.Equal(t, 0, m.Count(3), "entry not inserted")
		v, err := m.At(2)
		assert.NoError(t, err, "existing entry still found")
		assert.Equal(t, 2, v, "existing value kept")
	})

	t.Run("huge reserve panics", func(t *testing.T) {
		// Prepare
		m := New[int, int]()

		// Execute and Check
		assert.Panics(t, func() { m.Reserve(math.MaxInt) }, "reserve beyond max bucket count panics")
		assert.Equal(t, 2, m.BucketCount(), "bucket array unchanged")
	})
}
