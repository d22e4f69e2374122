package types

// EntityLabel classifies a node in the knowledge graph. It is a closed
// enumeration: anything that does not parse maps to LabelUnknown rather
// than flowing through as a raw string.
type EntityLabel string

const (
	// LabelPerson represents a human subject.
	LabelPerson EntityLabel = "PERSON"
	// LabelOrg represents a company or university.
	LabelOrg EntityLabel = "ORG"
	// LabelLocation represents a place of residence.
	LabelLocation EntityLabel = "LOC"
	// LabelGPE represents a geopolitical entity as reported by NER tooling.
	LabelGPE EntityLabel = "GPE"
	// LabelTrait represents a qualitative personality descriptor.
	LabelTrait EntityLabel = "TRAIT"
	// LabelUnknown is the fallback for unrecognized labels.
	LabelUnknown EntityLabel = "UNKNOWN"
)

// ParseEntityLabel maps a raw label string to the closed enumeration.
// Unrecognized labels become LabelUnknown.
func ParseEntityLabel(s string) EntityLabel {
	switch EntityLabel(s) {
	case LabelPerson, LabelOrg, LabelLocation, LabelGPE, LabelTrait:
		return EntityLabel(s)
	default:
		return LabelUnknown
	}
}

// Entity is an organization, university, location, or person node in the
// ground truth. Entities are created once at generation time and never
// mutated afterward.
type Entity struct {
	ID    string            `json:"id"`
	Label EntityLabel       `json:"type"`
	Name  string            `json:"name"`
	Attrs map[string]string `json:"attrs"`
}

// BigFive is a quantitative personality trait vector. All five dimensions
// are always present; scores live in [0, 1].
type BigFive struct {
	Openness          float64 `json:"openness"`
	Conscientiousness float64 `json:"conscientiousness"`
	Extraversion      float64 `json:"extraversion"`
	Agreeableness     float64 `json:"agreeableness"`
	Neuroticism       float64 `json:"neuroticism"`
}

// BigFiveDimensions lists the trait names in canonical order. Values()
// follows the same order so numeric comparisons can align by index.
var BigFiveDimensions = []string{
	"openness",
	"conscientiousness",
	"extraversion",
	"agreeableness",
	"neuroticism",
}

// Values returns the five scores in canonical dimension order.
func (b BigFive) Values() []float64 {
	return []float64{
		b.Openness,
		b.Conscientiousness,
		b.Extraversion,
		b.Agreeableness,
		b.Neuroticism,
	}
}

// Person is a synthetic individual. The three reference IDs always point
// at entities that exist in the registry.
type Person struct {
	ID           string   `json:"pid"`
	Name         string   `json:"name"`
	Role         string   `json:"role"`
	CompanyID    string   `json:"company_id"`
	UniversityID string   `json:"university_id"`
	LocationID   string   `json:"location_id"`
	Gender       string   `json:"gender"`
	BigFive      BigFive  `json:"big_five"`
	Traits       []string `json:"traits"`
}
