package synth

import (
	"math/rand"

	"github.com/biokg/go-biokg/pkg/types"
)

// makeRelations derives the full relation-triple list for a roster.
//
// Every person unconditionally contributes three structural triples
// (affiliation, education, residence). Rosters of four or more people
// additionally get floor(n/2) collaboration pairs, each emitted as a
// symmetric forward/backward pair in the same pass, and max(1, floor(n/6))
// directional reporting links. Cross-person pairs are sampled as two
// distinct people, which rules out self-loops. Repeated pairs across
// independent draws are possible and are deliberately not merged.
func makeRelations(rng *rand.Rand, people []types.Person) []types.Triple {
	var triples []types.Triple

	for _, p := range people {
		triples = append(triples,
			types.Triple{Subject: p.ID, Predicate: types.PredicateWorksFor, Object: p.CompanyID},
			types.Triple{Subject: p.ID, Predicate: types.PredicateStudiedAt, Object: p.UniversityID},
			types.Triple{Subject: p.ID, Predicate: types.PredicateLivesIn, Object: p.LocationID},
		)
	}

	if len(people) < 4 {
		return triples
	}

	pids := make([]string, len(people))
	for i, p := range people {
		pids[i] = p.ID
	}

	for i := 0; i < len(pids)/2; i++ {
		a, b := sampleTwo(rng, pids)
		triples = append(triples,
			types.Triple{Subject: a, Predicate: types.PredicateCollaboratesWith, Object: b},
			types.Triple{Subject: b, Predicate: types.PredicateCollaboratesWith, Object: a},
		)
	}

	reports := len(pids) / 6
	if reports < 1 {
		reports = 1
	}
	for i := 0; i < reports; i++ {
		a, b := sampleTwo(rng, pids)
		triples = append(triples, types.Triple{Subject: a, Predicate: types.PredicateReportsTo, Object: b})
	}

	return triples
}
