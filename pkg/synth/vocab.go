package synth

// Fixed, fictional vocabulary pools. All identifiers and documents are
// derived from these lists, so changing them changes the ground truth.

var firstNames = []string{
	"Maya", "Evan", "Priya", "Jonas", "Clara", "Noah",
	"Lena", "Arjun", "Iris", "Kai", "Naomi", "Victor",
	"Tara", "Felix", "Nora", "Zane", "Aisha", "Rowan",
}

var lastNames = []string{
	"Park", "Rivers", "Sharma", "Cole", "Nguyen", "Miles",
	"Katz", "Ibrahim", "Lopez", "Quinn", "Jensen", "Kaur",
	"Ortiz", "Liu", "Mehta", "Owen",
}

var roles = []string{
	"data analyst", "project manager", "software engineer",
	"product designer", "research scientist", "solutions consultant",
	"operations coordinator", "business analyst",
}

var companies = []string{
	"ApexTech", "Orion Systems", "NovaWorks", "BlueRiver Labs",
	"Crescent Analytics", "Vertex Dynamics",
}

var universities = []string{
	"Northbridge University", "Eastvale Institute of Technology",
	"Silverridge College", "Westport Polytechnic",
}

var locations = []string{
	"Riverton", "Lakeview", "Brookfield", "Northport",
	"Stonehaven", "Maple Grove", "Kingsford",
}

// descriptorCandidate attaches a qualitative adjective when a Big Five
// score crosses its threshold. Inverted candidates fire at or below the
// threshold instead (low neuroticism reads as resilience).
type descriptorCandidate struct {
	word      string
	threshold float64
	inverted  bool
}

// descriptorMapping is checked dimension by dimension in canonical Big
// Five order; within a dimension the first matching candidate wins.
var descriptorMapping = []struct {
	dimension  string
	candidates []descriptorCandidate
}{
	{"openness", []descriptorCandidate{
		{word: "curious", threshold: 0.7},
		{word: "inventive", threshold: 0.8},
		{word: "reflective", threshold: 0.6},
	}},
	{"conscientiousness", []descriptorCandidate{
		{word: "organized", threshold: 0.7},
		{word: "meticulous", threshold: 0.8},
		{word: "pragmatic", threshold: 0.6},
	}},
	{"extraversion", []descriptorCandidate{
		{word: "outspoken", threshold: 0.7},
		{word: "energetic", threshold: 0.8},
		{word: "sociable", threshold: 0.6},
	}},
	{"agreeableness", []descriptorCandidate{
		{word: "empathetic", threshold: 0.7},
		{word: "diplomatic", threshold: 0.8},
		{word: "cooperative", threshold: 0.6},
	}},
	{"neuroticism", []descriptorCandidate{
		{word: "resilient", threshold: 0.3, inverted: true},
	}},
}

// fallbackDescriptors pads descriptor lists that end up shorter than two
// entries.
var fallbackDescriptors = []string{"curious", "organized", "empathetic", "resilient"}

// DescriptorVocabulary is the full controlled vocabulary a descriptor may
// be drawn from. The personality-inference prompt offers the same list.
var DescriptorVocabulary = []string{
	"curious", "inventive", "reflective",
	"organized", "meticulous", "pragmatic",
	"outspoken", "energetic", "sociable",
	"empathetic", "diplomatic", "cooperative",
	"resilient", "anxious",
}

// Sentence templates with light coreference and varied phrasing. The
// placeholders are substituted by renderDocument.
var templates = []string{
	"{name} is a {trait1} and {trait2} {role} at {company}. " +
		"{pronoun_cap} studied at {university} and now lives in {location}. " +
		"{pronoun_cap} often {activity} with colleagues.",
	"At {company}, {name} works as a {role} known for being {trait1}. " +
		"After graduating from {university}, {pronoun} settled in {location}. " +
		"Peers say {pronoun} is notably {trait2}.",
	"{name}, a {role} at {company}, is considered {trait1}. " +
		"{pronoun_cap} previously attended {university} and resides in {location}. " +
		"In team settings, {pronoun} tends to be {trait2}.",
}

var teamActivities = []string{
	"leads planning sessions", "mentors juniors", "coordinates sprints",
	"prototypes new features", "analyzes datasets", "drafts design specs",
}
