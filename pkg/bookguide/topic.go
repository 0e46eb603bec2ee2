package bookguide

import "strings"

// Topic labels produced by classification.
const (
	TopicRecommendations  = "recommendations"
	TopicAuthorInfo       = "author_info"
	TopicGenreExploration = "genre_exploration"
	TopicComprehension    = "comprehension"
	TopicResources        = "resources"
	TopicGeneral          = "general"
)

// Classify maps free-text input to a topic label. The input is
// lowercased and the persona's keyword rules are scanned in declaration
// order; the first keyword found as a substring wins. Inputs matching
// no rule classify as TopicGeneral.
func (p *Persona) Classify(input string) string {
	input = strings.ToLower(input)
	for _, rule := range p.Keywords {
		if strings.Contains(input, rule.Keyword) {
			return rule.Topic
		}
	}
	return TopicGeneral
}
