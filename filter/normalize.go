package filter

import (
	"math"

	"github.com/gogpu/pixel"
)

// maxNormalizePasses bounds the correction loop of one column.
// Well-formed kernels converge in one or two passes.
const maxNormalizePasses = 64

// Normalize returns a copy of weights in which every phase column sums to
// exactly Scale. weights is laid out as in NewLUT: tap j of phase i is at
// index j*SubpixelScale + i, with dimension taps per phase.
//
// A column whose sum is off is first rescaled by Scale/sum with rounding.
// The remaining difference is then removed one unit at a time, starting
// at the center tap and alternating outward. The alternation bit carries
// over from column to column, so the result depends only on the input and
// is reproducible bit for bit.
func Normalize(weights []int16, dimension int) []int16 {
	out, _ := normalize(weights, dimension)
	return out
}

func normalize(weights []int16, dim int) ([]int16, int) {
	w := make([]int32, len(weights))
	for i, v := range weights {
		w[i] = int32(v)
	}

	corrections := 0
	flip := 1
	for i := 0; i < SubpixelScale; i++ {
		for pass := 0; ; pass++ {
			sum := int32(0)
			for j := 0; j < dim; j++ {
				sum += w[j*SubpixelScale+i]
			}
			if sum == Scale {
				break
			}
			if sum == 0 {
				// no information in this phase: pass the nearest pixel through
				pixel.Logger().Warn("filter: zero-sum phase replaced by impulse", "phase", i)
				for j := 0; j < dim; j++ {
					w[j*SubpixelScale+i] = 0
				}
				w[(dim/2)*SubpixelScale+i] = Scale
				break
			}
			if pass == maxNormalizePasses {
				w[(dim/2)*SubpixelScale+i] += Scale - sum
				corrections++
				break
			}

			k := float64(Scale) / float64(sum)
			sum = 0
			for j := 0; j < dim; j++ {
				idx := j*SubpixelScale + i
				w[idx] = int32(math.Round(float64(w[idx]) * k))
				sum += w[idx]
			}

			sum -= Scale
			inc := int32(1)
			if sum > 0 {
				inc = -1
			}
			for j := 0; j < dim && sum != 0; j++ {
				flip ^= 1
				var tap int
				if flip != 0 {
					tap = dim/2 + j/2
				} else {
					tap = dim/2 - j/2
				}
				idx := tap*SubpixelScale + i
				if w[idx] < Scale {
					w[idx] += inc
					sum += inc
					corrections++
				}
			}
		}
	}

	out := make([]int16, len(w))
	for i, v := range w {
		out[i] = clampInt16(v)
	}
	return out, corrections
}

func clampInt16(v int32) int16 {
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	if v < math.MinInt16 {
		return math.MinInt16
	}
	return int16(v)
}
