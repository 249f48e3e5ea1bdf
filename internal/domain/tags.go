package domain

import "strings"

// defaultTagVocabulary is the keyword vocabulary the default classifier
// scans titles against, in emission order.
var defaultTagVocabulary = []string{
	"backend",
	"frontend",
	"auth",
	"api",
	"ui",
	"database",
	"testing",
	"docs",
	"documentation",
	"deployment",
	"security",
}

// KeywordClassifier tags titles by substring match against a fixed
// vocabulary. Every vocabulary term present in the lower-cased title
// contributes a tag, in vocabulary order, without deduplication.
type KeywordClassifier struct {
	vocabulary []string
}

// NewKeywordClassifier creates a classifier over the default vocabulary.
func NewKeywordClassifier() *KeywordClassifier {
	return &KeywordClassifier{vocabulary: defaultTagVocabulary}
}

// NewKeywordClassifierWithVocabulary creates a classifier over a custom
// vocabulary.
func NewKeywordClassifierWithVocabulary(vocabulary []string) *KeywordClassifier {
	return &KeywordClassifier{vocabulary: vocabulary}
}

// Classify returns the vocabulary terms present in the title.
func (c *KeywordClassifier) Classify(title string) []string {
	lower := strings.ToLower(title)
	var tags []string
	for _, keyword := range c.vocabulary {
		if strings.Contains(lower, keyword) {
			tags = append(tags, keyword)
		}
	}
	return tags
}

// Ensure KeywordClassifier implements TagClassifier.
var _ TagClassifier = (*KeywordClassifier)(nil)
