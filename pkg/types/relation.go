package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Predicate is a relation type between two entities.
type Predicate string

const (
	PredicateWorksFor         Predicate = "works_for"
	PredicateStudiedAt        Predicate = "studied_at"
	PredicateLivesIn          Predicate = "lives_in"
	PredicateCollaboratesWith Predicate = "collaborates_with"
	PredicateReportsTo        Predicate = "reports_to"
)

// AllPredicates is the closed set of predicates the pipeline understands.
var AllPredicates = []Predicate{
	PredicateWorksFor,
	PredicateStudiedAt,
	PredicateLivesIn,
	PredicateCollaboratesWith,
	PredicateReportsTo,
}

// NormalizePredicate lowercases a raw predicate string and collapses
// internal whitespace to underscores ("works for" -> "works_for").
func NormalizePredicate(s string) string {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(s)))
	return strings.Join(fields, "_")
}

// ParsePredicate normalizes a raw predicate string and checks it against
// the allowed set. ok is false for anything outside the set.
func ParsePredicate(s string) (Predicate, bool) {
	p := Predicate(NormalizePredicate(s))
	for _, allowed := range AllPredicates {
		if p == allowed {
			return p, true
		}
	}
	return p, false
}

// Triple is a (subject id, predicate, object id) relation fact. It
// serializes as a three-element JSON array.
type Triple struct {
	Subject   string
	Predicate Predicate
	Object    string
}

// MarshalJSON encodes the triple as ["subject", "predicate", "object"].
func (t Triple) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]string{t.Subject, string(t.Predicate), t.Object})
}

// UnmarshalJSON decodes a three-element JSON array into the triple.
func (t *Triple) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err != nil {
		return err
	}
	if len(arr) != 3 {
		return fmt.Errorf("relation triple must have 3 elements, got %d", len(arr))
	}
	t.Subject = arr[0]
	t.Predicate = Predicate(arr[1])
	t.Object = arr[2]
	return nil
}
