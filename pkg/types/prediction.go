package types

// Prediction artifacts are produced by external collaborators (NER and
// LLM extraction). They carry no uniqueness or referential-integrity
// guarantees, so consumers must tolerate missing, extra, or malformed
// entries.

// EntitySpan is one predicted entity occurrence in a document.
type EntitySpan struct {
	Text  string      `json:"text"`
	Label EntityLabel `json:"label"`
	Start int         `json:"start"`
	End   int         `json:"end"`
}

// DocAnnotation is the per-document output of the entity recognizer:
// entity spans plus sentence boundaries.
type DocAnnotation struct {
	Entities  []EntitySpan `json:"entities"`
	Sentences []string     `json:"sentences"`
}

// PersonSpans returns the surface texts of all PERSON spans, in order.
func (a DocAnnotation) PersonSpans() []string {
	var persons []string
	for _, e := range a.Entities {
		if e.Label == LabelPerson {
			persons = append(persons, e.Text)
		}
	}
	return persons
}

// ExtractedRelation is one predicted relation triple. Subject, predicate,
// and object are free surface strings straight out of the LLM.
type ExtractedRelation struct {
	Subject   string `json:"subject"`
	Predicate string `json:"predicate"`
	Object    string `json:"object"`
}

// DocRelations holds the predicted relations for one document.
type DocRelations struct {
	Relations []ExtractedRelation `json:"relations"`
}

// TraitEstimate is one predicted personality profile for a person
// mentioned in a document.
type TraitEstimate struct {
	BigFive BigFive  `json:"big_five"`
	Traits  []string `json:"traits"`
}
