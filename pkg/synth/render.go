package synth

import (
	"math/rand"
	"strings"

	"github.com/biokg/go-biokg/pkg/types"
)

// pronouns returns the (lowercase, capitalized) pronoun pair for a gender
// tag. The tag is used for pronoun selection only.
func pronouns(gender string) (string, string) {
	if gender == "f" {
		return "she", "She"
	}
	return "he", "He"
}

// renderDocument turns one person plus their linked entities into a short
// passage and its mention record. Template and team-activity choice are
// the only randomness; every other interpolation is determined by the
// person record.
//
// The mention record declares exactly four surface-to-id pairs (self,
// organization, university, location) regardless of how often those
// strings occur in the rendered text.
func renderDocument(rng *rand.Rand, person types.Person, reg *Registry) (string, []types.Mention) {
	company := reg.Name(person.CompanyID)
	university := reg.Name(person.UniversityID)
	location := reg.Name(person.LocationID)
	pronoun, pronounCap := pronouns(person.Gender)

	text := strings.NewReplacer(
		"{name}", person.Name,
		"{trait1}", person.Traits[0],
		"{trait2}", person.Traits[1],
		"{role}", person.Role,
		"{company}", company,
		"{university}", university,
		"{location}", location,
		"{activity}", choice(rng, teamActivities),
		"{pronoun_cap}", pronounCap,
		"{pronoun}", pronoun,
	).Replace(choice(rng, templates))

	mentions := []types.Mention{
		{Surface: person.Name, EntityID: person.ID},
		{Surface: company, EntityID: person.CompanyID},
		{Surface: university, EntityID: person.UniversityID},
		{Surface: location, EntityID: person.LocationID},
	}
	return text, mentions
}
