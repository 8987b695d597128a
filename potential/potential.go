package potential

import (
	"fmt"
	"math"
	"sort"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/karuvel/demograv/geodist"
	"github.com/karuvel/demograv/pointset"
)

// Compute — chunked inverse-power potential summation
//
// Description:
//
//	For every sample point i, Compute sums weight_j/distance(i,j)ⁿ over
//	all source points j that survive the configured exclusions, and
//	returns one potential value per sample, aligned with the sample set.
//
// Algorithm Outline (per chunk of sample points):
//  1. Build the chunk's distance sub-matrix via the supplied metric.
//  2. Per sample row, decide exclusions on TRUE distances, composed by
//     union: self pair (SelfSampling, index equality), per-sample
//     exclusion set, K-closest rank floor, max-distance cutoff.
//  3. Clamp surviving distances below MinDistanceMiles up to the floor.
//     A surviving distance still equal to 0 is ErrSingularity.
//  4. Contribution = weight_j / distance_safeⁿ, capped at
//     ContributionCap when configured.
//  5. Sum the row and write into the output at the chunk's offset.
//
// Chunking is purely a memory device: every chunk size and worker
// count yields bit-identical output, because metrics carry no per-call
// state (the planar metric's reference latitude is fixed at its
// construction — see geodist.NewPlanar and pointset.MeanLatitude).
//
// Numeric semantics:
//
//	ForceExponent is a positive integer; exponentiation is repeated
//	multiplication, not math.Pow. An all-excluded row is a valid
//	potential of 0.
//
// Errors:
//   - ErrNilMetric, ErrNilSample, ErrEmptySource — missing inputs.
//   - ErrOptionViolation, ErrExcludeLength — rejected at the boundary
//     before any computation.
//   - ErrSingularity — a non-self zero distance with no clamp;
//     wrapped with both indices.
//
// Complexity: O(N×M) time, O(ChunkSize×M) transient memory per worker.
func Compute(sample, source *pointset.Set, metric geodist.Metric, opts *Options) ([]float64, error) {
	if metric == nil {
		return nil, ErrNilMetric
	}
	if sample == nil {
		return nil, ErrNilSample
	}
	if source == nil || source.Len() == 0 {
		return nil, ErrEmptySource
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := validate(sample, source, &o); err != nil {
		return nil, err
	}

	e := &engine{
		sample: sample,
		source: source,
		metric: metric,
		opts:   o,
		out:    make([]float64, sample.Len()),
	}
	if err := e.run(); err != nil {
		return nil, err
	}

	return e.out, nil
}

// validate rejects parameter inconsistencies before any computation and
// normalizes the zero-value ChunkSize.
func validate(sample, source *pointset.Set, o *Options) error {
	switch {
	case o.ForceExponent < 1:
		return fmt.Errorf("%w: ForceExponent must be ≥ 1 (%d)", ErrOptionViolation, o.ForceExponent)
	case o.ChunkSize < 0:
		return fmt.Errorf("%w: ChunkSize cannot be negative (%d)", ErrOptionViolation, o.ChunkSize)
	case o.MinDistanceMiles < 0:
		return fmt.Errorf("%w: MinDistanceMiles cannot be negative (%g)", ErrOptionViolation, o.MinDistanceMiles)
	case o.ExcludeClosestN < 0:
		return fmt.Errorf("%w: ExcludeClosestN cannot be negative (%d)", ErrOptionViolation, o.ExcludeClosestN)
	case o.Workers < 0:
		return fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, o.Workers)
	}
	if o.ChunkSize == 0 {
		o.ChunkSize = DefaultChunkSize
	}
	if o.SelfSampling && sample.Len() != source.Len() {
		return fmt.Errorf("%w: SelfSampling requires equal sample and source sizes (%d vs %d)",
			ErrOptionViolation, sample.Len(), source.Len())
	}
	if o.Exclude != nil {
		if len(o.Exclude) != sample.Len() {
			return fmt.Errorf("%w: got %d entries for %d samples", ErrExcludeLength, len(o.Exclude), sample.Len())
		}
		m := source.Len()
		for i, set := range o.Exclude {
			for _, j := range set {
				if j < 0 || j >= m {
					return fmt.Errorf("%w: Exclude[%d] references source %d of %d", ErrOptionViolation, i, j, m)
				}
			}
		}
	}

	return nil
}

// engine holds one computation's resolved inputs and output.
type engine struct {
	sample *pointset.Set
	source *pointset.Set
	metric geodist.Metric
	opts   Options
	out    []float64
}

// scratch is per-worker reusable storage sized to the source set.
type scratch struct {
	contrib  []float64 // per-source contribution of the current row
	excluded []bool    // per-source exclusion marks of the current row
	rank     []float64 // sort buffer for the K-closest floor
}

func newScratch(m int) *scratch {
	return &scratch{
		contrib:  make([]float64, m),
		excluded: make([]bool, m),
		rank:     make([]float64, 0, m),
	}
}

// run dispatches chunks sequentially or onto a fixed-size worker pool.
// Chunks write disjoint output slices; the pool's Wait is the only
// synchronization needed.
func (e *engine) run() error {
	n := e.sample.Len()
	if n == 0 {
		return nil
	}
	size := e.opts.ChunkSize

	if e.opts.Workers <= 1 {
		sc := newScratch(e.source.Len())
		for lo := 0; lo < n; lo += size {
			hi := lo + size
			if hi > n {
				hi = n
			}
			if err := e.computeChunk(lo, hi, sc); err != nil {
				return err
			}
		}

		return nil
	}

	g := new(errgroup.Group)
	g.SetLimit(e.opts.Workers)
	for lo := 0; lo < n; lo += size {
		lo, hi := lo, lo+size
		if hi > n {
			hi = n
		}
		g.Go(func() error {
			return e.computeChunk(lo, hi, newScratch(e.source.Len()))
		})
	}

	return g.Wait()
}

// computeChunk processes sample rows [lo, hi) against every source.
func (e *engine) computeChunk(lo, hi int, sc *scratch) error {
	dm := e.metric.Distances(
		e.sample.Lon[lo:hi], e.sample.Lat[lo:hi],
		e.source.Lon, e.source.Lat,
	)
	m := e.source.Len()

	for r, row := range dm {
		i := lo + r

		// Rank floor for K-closest exclusion, decided on true distances
		// over the whole row (self and set-excluded entries included).
		rankFloor := math.Inf(-1)
		hasFloor := false
		if k := e.opts.ExcludeClosestN; k > 0 {
			if k >= m {
				e.out[i] = 0

				continue
			}
			sc.rank = append(sc.rank[:0], row...)
			sort.Float64s(sc.rank)
			rankFloor = sc.rank[k]
			hasFloor = true
		}

		var setExcl []int
		if e.opts.Exclude != nil {
			setExcl = e.opts.Exclude[i]
			for _, j := range setExcl {
				sc.excluded[j] = true
			}
		}

		for j := 0; j < m; j++ {
			sc.contrib[j] = 0
			d := row[j]
			switch {
			case e.opts.SelfSampling && i == j:
				continue
			case sc.excluded[j]:
				continue
			case hasFloor && d < rankFloor:
				continue
			case e.opts.MaxDistanceMiles > 0 && d > e.opts.MaxDistanceMiles:
				continue
			}
			ds := d
			if ds < e.opts.MinDistanceMiles {
				ds = e.opts.MinDistanceMiles
			}
			if ds == 0 {
				return fmt.Errorf("%w: sample %d and source %d are coincident", ErrSingularity, i, j)
			}
			c := e.source.Weight[j] / ipow(ds, e.opts.ForceExponent)
			if e.opts.ContributionCap > 0 && c > e.opts.ContributionCap {
				c = e.opts.ContributionCap
			}
			sc.contrib[j] = c
		}

		for _, j := range setExcl {
			sc.excluded[j] = false
		}
		e.out[i] = floats.Sum(sc.contrib)
	}

	return nil
}

// ipow raises base to a positive integer power by repeated
// multiplication; exponents here are tiny (1–4 in practice).
func ipow(base float64, exp int) float64 {
	result := base
	for e := 1; e < exp; e++ {
		result *= base
	}

	return result
}
