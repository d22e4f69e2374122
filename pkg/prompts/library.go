package prompts

// Library defines the interface for the complete prompt library.
type Library interface {
	RecognizeEntities() RecognizeEntitiesPrompt
	ExtractRelations() ExtractRelationsPrompt
	InferPersonality() InferPersonalityPrompt
}

// LibraryImpl implements the Library interface.
type LibraryImpl struct {
	recognizeEntities RecognizeEntitiesPrompt
	extractRelations  ExtractRelationsPrompt
	inferPersonality  InferPersonalityPrompt
}

func (l *LibraryImpl) RecognizeEntities() RecognizeEntitiesPrompt { return l.recognizeEntities }
func (l *LibraryImpl) ExtractRelations() ExtractRelationsPrompt   { return l.extractRelations }
func (l *LibraryImpl) InferPersonality() InferPersonalityPrompt   { return l.inferPersonality }

// NewLibrary creates a new prompt library instance.
func NewLibrary() Library {
	return &LibraryImpl{
		recognizeEntities: NewRecognizeEntitiesVersions(),
		extractRelations:  NewExtractRelationsVersions(),
		inferPersonality:  NewInferPersonalityVersions(),
	}
}

// DefaultLibrary is the default prompt library instance.
var DefaultLibrary = NewLibrary()
