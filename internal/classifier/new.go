package classifier

type implClassifier struct {
	tables        Tables
	maxLabelWords int
}

// New creates a Classifier using the supplied keyword tables. Tables are
// injected rather than read from package globals so tests can swap them.
func New(tables Tables, maxLabelWords int) Classifier {
	if maxLabelWords <= 0 {
		maxLabelWords = 6
	}
	return &implClassifier{
		tables:        tables,
		maxLabelWords: maxLabelWords,
	}
}
