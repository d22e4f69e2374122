package synth

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/biokg/go-biokg/pkg/types"
)

// ErrRosterTooLarge reports that the requested head-count exceeds the
// number of realizable unique full names. Without this cap the rejection
// sampler would loop forever.
var ErrRosterTooLarge = errors.New("requested head-count exceeds unique name combinations")

// makeRoster creates n people referencing the registry's entity pools.
// Name uniqueness is enforced by rejection sampling over the name pools.
func makeRoster(rng *rand.Rand, reg *Registry, n int) ([]types.Person, error) {
	if n > len(firstNames)*len(lastNames) {
		return nil, fmt.Errorf("%w: %d > %d", ErrRosterTooLarge, n, len(firstNames)*len(lastNames))
	}

	used := make(map[string]bool, n)
	people := make([]types.Person, 0, n)

	for i := 1; i <= n; i++ {
		name := uniqueName(rng, used)
		gender := choice(rng, []string{"f", "m"})
		role := choice(rng, roles)

		bigFive := randomBigFive(rng)

		people = append(people, types.Person{
			ID:           entityID("p", i),
			Name:         name,
			Role:         role,
			CompanyID:    choice(rng, reg.OrgIDs),
			UniversityID: choice(rng, reg.UniIDs),
			LocationID:   choice(rng, reg.LocIDs),
			Gender:       gender,
			BigFive:      bigFive,
			Traits:       descriptorsFromBigFive(rng, bigFive),
		})
	}

	return people, nil
}

// uniqueName draws (first, last) pairs until an unused combination appears.
func uniqueName(rng *rand.Rand, used map[string]bool) string {
	for {
		name := choice(rng, firstNames) + " " + choice(rng, lastNames)
		if !used[name] {
			used[name] = true
			return name
		}
	}
}

// randomBigFive draws five independent uniform scores in [0.2, 0.9],
// rounded to two decimal places. The narrowed range avoids implausibly
// extreme profiles.
func randomBigFive(rng *rand.Rand) types.BigFive {
	r := func() float64 {
		return math.Round((0.2+rng.Float64()*0.7)*100) / 100
	}
	return types.BigFive{
		Openness:          r(),
		Conscientiousness: r(),
		Extraversion:      r(),
		Agreeableness:     r(),
		Neuroticism:       r(),
	}
}

// descriptorsFromBigFive derives 2-3 qualitative adjectives from the
// trait vector via the fixed threshold table. At most one descriptor is
// taken per dimension; short lists are padded from the fallback pool.
func descriptorsFromBigFive(rng *rand.Rand, b5 types.BigFive) []string {
	values := map[string]float64{
		"openness":          b5.Openness,
		"conscientiousness": b5.Conscientiousness,
		"extraversion":      b5.Extraversion,
		"agreeableness":     b5.Agreeableness,
		"neuroticism":       b5.Neuroticism,
	}

	var descriptors []string
	for _, dim := range descriptorMapping {
		val := values[dim.dimension]
		for _, cand := range dim.candidates {
			matched := val >= cand.threshold
			if cand.inverted {
				matched = val <= cand.threshold
			}
			if matched {
				descriptors = append(descriptors, cand.word)
				break
			}
		}
	}

	if len(descriptors) < 2 {
		a, b := sampleTwo(rng, fallbackDescriptors)
		descriptors = append(descriptors, a, b)
	}
	if len(descriptors) > 3 {
		descriptors = descriptors[:3]
	}
	return descriptors
}

// choice picks one element uniformly.
func choice[T any](rng *rand.Rand, pool []T) T {
	return pool[rng.Intn(len(pool))]
}

// sampleTwo picks two distinct elements uniformly, like sampling without
// replacement. The pool must have at least two elements.
func sampleTwo[T any](rng *rand.Rand, pool []T) (T, T) {
	i := rng.Intn(len(pool))
	j := rng.Intn(len(pool) - 1)
	if j >= i {
		j++
	}
	return pool[i], pool[j]
}
