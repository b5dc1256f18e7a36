// Command analysis reports the accuracy of the saturation and capacity
// estimators across a grid of filter sizes, member lengths, and insertion
// counts. For each combination it populates a filter with random members,
// measures the empirical acceptance rate against a large candidate sample,
// and compares the closed-form estimates.
package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"text/tabwriter"

	"github.com/nthparty/blooms"
)

func main() {
	var (
		candidates = flag.Int("candidates", 1<<16, "random candidates per acceptance-rate measurement")
		seed       = flag.Uint64("seed", 0, "PCG seed for reproducible runs")
	)
	flag.Parse()

	rng := rand.New(rand.NewPCG(*seed, *seed))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "bits\tmemberLen\tn\tfill\tsaturation\tempirical\terror\tcapacity\tn/capacity\t")

	for bitLen := 1 << 8; bitLen <= 1<<20; bitLen <<= 4 {
		for memberLen := 8; memberLen < 64; memberLen += 13 {
			for n := 4; n <= bitLen/8; n *= 4 {
				f := blooms.New(bitLen / 8)
				for range n {
					f.Insert(randBytes(rng, memberLen))
				}

				empirical := acceptanceRate(f, memberLen, rng, *candidates)
				saturation := f.Saturation(memberLen)
				capacity := f.Capacity(memberLen, saturation)

				ratio := 0.0
				if capacity > 0 {
					ratio = float64(n) / capacity
				}

				fmt.Fprintf(w, "%d\t%d\t%d\t%.4f\t%.4f\t%.4f\t%+.4f\t%.1f\t%.2f\t\n",
					bitLen, memberLen, n, f.FillRatio(),
					saturation, empirical, saturation-empirical, capacity, ratio)

				// Past this point the filter is effectively saturated and the
				// estimators are outside their contracted operating range.
				if empirical > 0.75 {
					break
				}
			}
		}
	}

	w.Flush()
}

func acceptanceRate(f *blooms.Filter, length int, rng *rand.Rand, candidates int) float64 {
	accepted := 0
	for range candidates {
		if f.Contains(randBytes(rng, length)) {
			accepted++
		}
	}
	return float64(accepted) / float64(candidates)
}

func randBytes(rng *rand.Rand, n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(rng.IntN(256))
	}
	return b
}
