// Package eval scores extraction output against the generated ground
// truth using set-overlap and numeric-error statistics.
package eval

import "math"

// Scores holds a precision/recall/F1 triple.
type Scores struct {
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1        float64 `json:"f1"`
}

// PrecisionRecallF1 computes set precision, recall, and F1 over two
// string collections (duplicates are collapsed). Each score is defined
// as 0 when its denominator is 0, so empty/empty yields all zeros. This
// is deliberately different from JaccardIndex's empty/empty = 1 rule.
func PrecisionRecallF1(truth, pred []string) Scores {
	return precisionRecallF1Sets(toSet(truth), toSet(pred))
}

// precisionRecallF1Sets is the set-based core shared by the string and
// triple comparisons.
func precisionRecallF1Sets[T comparable](truth, pred map[T]struct{}) Scores {
	tp := 0
	for item := range pred {
		if _, ok := truth[item]; ok {
			tp++
		}
	}
	fp := len(pred) - tp
	fn := len(truth) - tp

	var s Scores
	if tp+fp > 0 {
		s.Precision = float64(tp) / float64(tp+fp)
	}
	if tp+fn > 0 {
		s.Recall = float64(tp) / float64(tp+fn)
	}
	if s.Precision+s.Recall > 0 {
		s.F1 = 2 * s.Precision * s.Recall / (s.Precision + s.Recall)
	}
	return s
}

// MeanAbsoluteError computes the mean absolute error between two aligned
// numeric vectors. ok is false when either vector is empty. Lengths are
// compared up to the shorter vector.
func MeanAbsoluteError(truth, pred []float64) (float64, bool) {
	if len(truth) == 0 || len(pred) == 0 {
		return 0, false
	}
	n := len(truth)
	if len(pred) < n {
		n = len(pred)
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += math.Abs(truth[i] - pred[i])
	}
	return sum / float64(n), true
}

// JaccardIndex computes the Jaccard similarity between two string
// collections. Both empty is defined as 1.0 (perfect agreement on
// nothing); one empty against one non-empty is 0.0.
func JaccardIndex(a, b []string) float64 {
	setA, setB := toSet(a), toSet(b)
	if len(setA) == 0 && len(setB) == 0 {
		return 1.0
	}

	intersection := 0
	for item := range setA {
		if _, ok := setB[item]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0.0
	}
	return float64(intersection) / float64(union)
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}

func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
