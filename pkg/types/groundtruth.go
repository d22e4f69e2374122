package types

// Mention is a declared correspondence between a literal surface string
// in a rendered document and the entity or person it denotes. It is not
// a computed character-offset match.
type Mention struct {
	Surface  string `json:"surface"`
	EntityID string `json:"ent_id"`
}

// DocMentions holds the mention record for one generated document.
type DocMentions struct {
	Mentions []Mention `json:"mentions"`
}

// PersonalityRecord is the ground-truth personality entry for one person.
type PersonalityRecord struct {
	Name    string   `json:"name"`
	BigFive BigFive  `json:"big_five"`
	Traits  []string `json:"traits"`
}

// GroundTruth is the reference baseline every extraction stage is scored
// against. It is assembled once per generation run and read-only afterward.
type GroundTruth struct {
	Entities    []Entity                     `json:"entities"`
	Relations   []Triple                     `json:"relations"`
	Personality map[string]PersonalityRecord `json:"personality"`
	DocIndex    map[string]DocMentions       `json:"doc_index"`
}

// EntityNames returns the id -> display name map over all entities.
func (gt *GroundTruth) EntityNames() map[string]string {
	names := make(map[string]string, len(gt.Entities))
	for _, e := range gt.Entities {
		names[e.ID] = e.Name
	}
	return names
}
