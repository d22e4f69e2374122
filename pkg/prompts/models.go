package prompts

// ExtractedRelation is one relation triple as returned by the model.
type ExtractedRelation struct {
	Subject   string `json:"subject"`
	Predicate string `json:"predicate"`
	Object    string `json:"object"`
}

// ExtractedRelations is the expected relation extraction response payload.
type ExtractedRelations struct {
	Relations []ExtractedRelation `json:"relations"`
}

// InferredPersonality is the expected personality inference response payload.
type InferredPersonality struct {
	BigFive map[string]float64 `json:"big_five"`
	Traits  []string           `json:"traits"`
}

// RecognizedEntity is one entity mention as returned by the model.
type RecognizedEntity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// RecognizedEntities is the expected entity recognition response payload.
type RecognizedEntities struct {
	Entities  []RecognizedEntity `json:"entities"`
	Sentences []string           `json:"sentences"`
}
