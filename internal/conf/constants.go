package conf

// DefaultInitialBuckets - Requested bucket count for a table created without an explicit one.
// It is rounded up to the nearest prime like any other request, giving 2 buckets.
const DefaultInitialBuckets int = 1

// DefaultMaxLoadFactor - Max load factor for a table created without an explicit one
const DefaultMaxLoadFactor float64 = 1.0

// GrowthFactor - Multiplier applied to the number of entries when an insert finds the table at or above its
// max load factor
const GrowthFactor int = 2

// MaxBucketCount - Largest bucket count a rehash may request. A request above it, as made by a tiny max load
// factor, panics before anything is allocated or moved.
const MaxBucketCount int = 1<<31 - 1
