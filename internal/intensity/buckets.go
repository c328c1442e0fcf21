package intensity

import (
	"slices"
)

// MinBuckets is the smallest usable bucket count: one "most" and one "least" level.
const MinBuckets = 2

// Buckets holds non-decreasing thresholds separating intensity levels.
type Buckets []int

// ComputeBuckets derives bucketCount-1 thresholds from the distribution of counts.
//
// Sparse inputs (fewer distinct values than bucketCount) are front-padded with
// zeros so small datasets lean towards the lighter levels. Otherwise the sorted
// distinct values are sampled at a fixed stride of
// floor(distinct/(bucketCount-2)), clamped to the last value. The integer stride
// under-samples the upper range; the thresholds are quantile-like, not exact.
func ComputeBuckets(counts []int, bucketCount int) (Buckets, error) {
	if bucketCount < MinBuckets {
		return nil, &InvalidBucketCountError{Count: bucketCount}
	}
	for _, c := range counts {
		if c < 0 {
			return nil, &InvalidCountError{Count: c}
		}
	}

	uniq := slices.Clone(counts)
	slices.Sort(uniq)
	uniq = slices.Compact(uniq)
	n := len(uniq)

	out := make(Buckets, bucketCount-1)
	if n < bucketCount {
		copy(out[len(out)-n:], uniq)
		return out, nil
	}

	stride := 0
	if bucketCount > MinBuckets {
		stride = n / (bucketCount - 2)
	}
	for i := range out {
		out[i] = uniq[min(stride*i, n-1)]
	}
	return out, nil
}

// Level returns the intensity level of count: 0 for an empty day, otherwise
// 1..bucketCount-1 where higher is more intense. A count above every
// threshold gets the top level.
func Level(count int, buckets Buckets, bucketCount int) (int, error) {
	if bucketCount < MinBuckets {
		return 0, &InvalidBucketCountError{Count: bucketCount}
	}
	if count < 0 {
		return 0, &InvalidCountError{Count: count}
	}
	if count == 0 {
		return 0, nil
	}

	top := bucketCount - 1
	for i, step := range buckets {
		if count <= step {
			return min(i+1, top), nil
		}
	}
	return top, nil
}

// Classify returns the palette index for count, where 0 is the most intense
// color and bucketCount-1 the empty one. Zero counts always map to
// bucketCount-1.
func Classify(count int, buckets Buckets, bucketCount int) (int, error) {
	lvl, err := Level(count, buckets, bucketCount)
	if err != nil {
		return 0, err
	}
	return bucketCount - 1 - lvl, nil
}
