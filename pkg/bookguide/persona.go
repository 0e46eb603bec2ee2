package bookguide

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// KeywordRule maps one keyword to a topic label. Rule order is
// significant: classification returns the first matching rule.
type KeywordRule struct {
	Keyword string `yaml:"keyword"`
	Topic   string `yaml:"topic"`
}

// Persona describes the advisor's fixed instructions, the canned
// acknowledgment, the few-shot example exchanges used to steer style,
// and the ordered keyword rules used for topic classification.
type Persona struct {
	Instructions   string        `yaml:"instructions"`
	Acknowledgment string        `yaml:"acknowledgment"`
	Examples       []Exchange    `yaml:"examples"`
	Keywords       []KeywordRule `yaml:"keywords"`
}

const defaultInstructions = `You are BookGuide, an expert literary advisor. You provide helpful guidance about:
- Book recommendations based on interests and reading level
- Author backgrounds and writing styles
- Genre exploration and literary analysis
- Reading tips and comprehension strategies
- Library resources and book-finding help

Always strive to:
- Provide specific, actionable recommendations
- Include brief context about suggested books/authors
- Respect reading levels and content sensitivities
- Encourage a love of reading and literary exploration

If unsure about a recommendation or detail,
acknowledge uncertainty and suggest consulting a librarian
or verified book database.

Keep responses engaging, informative, and focused on fostering
a positive reading experience.

Do not diverge from the topic of books or reading.`

const defaultAcknowledgment = "I understand my role as BookGuide. How can I help with your questions about books or reading?"

// DefaultPersona returns the built-in BookGuide persona.
func DefaultPersona() Persona {
	return Persona{
		Instructions:   defaultInstructions,
		Acknowledgment: defaultAcknowledgment,
		Examples: []Exchange{
			{Role: RoleUser, Content: "Can you recommend a good mystery book?"},
			{Role: RoleModel, Content: `Here are two excellent mystery recommendations:

1. 'The Thursday Murder Club' by Richard Osman
- A charming yet clever mystery featuring four retirees who solve cold cases
- Perfect for readers who enjoy wit mixed with their mysteries
- Suitable for adult readers, especially those who appreciate British humor

2. 'The 7½ Deaths of Evelyn Hardcastle' by Stuart Turton
- An innovative mystery with a time-loop twist
- Ideal for readers who enjoy complex plots and unique storytelling
- Best for experienced mystery readers

Would you like more details about either of these books?`},
		},
		Keywords: []KeywordRule{
			{Keyword: "recommend", Topic: TopicRecommendations},
			{Keyword: "suggest", Topic: TopicRecommendations},
			{Keyword: "author", Topic: TopicAuthorInfo},
			{Keyword: "write", Topic: TopicAuthorInfo},
			{Keyword: "genre", Topic: TopicGenreExploration},
			{Keyword: "type", Topic: TopicGenreExploration},
			{Keyword: "understand", Topic: TopicComprehension},
			{Keyword: "meaning", Topic: TopicComprehension},
			{Keyword: "library", Topic: TopicResources},
			{Keyword: "find", Topic: TopicResources},
		},
	}
}

// LoadPersonaFile reads a YAML persona file and merges it over the
// built-in defaults: empty fields keep their default value.
func LoadPersonaFile(path string) (Persona, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Persona{}, fmt.Errorf("read persona file: %w", err)
	}

	var loaded Persona
	if err := yaml.Unmarshal(content, &loaded); err != nil {
		return Persona{}, fmt.Errorf("parse %s: %w", path, err)
	}

	persona := DefaultPersona()
	if strings.TrimSpace(loaded.Instructions) != "" {
		persona.Instructions = strings.TrimSpace(loaded.Instructions)
	}
	if strings.TrimSpace(loaded.Acknowledgment) != "" {
		persona.Acknowledgment = strings.TrimSpace(loaded.Acknowledgment)
	}
	if len(loaded.Examples) > 0 {
		persona.Examples = loaded.Examples
	}
	if len(loaded.Keywords) > 0 {
		keywords := make([]KeywordRule, 0, len(loaded.Keywords))
		for _, rule := range loaded.Keywords {
			keyword := strings.ToLower(strings.TrimSpace(rule.Keyword))
			topic := strings.TrimSpace(rule.Topic)
			if keyword == "" || topic == "" {
				return Persona{}, fmt.Errorf("persona keyword rule needs both keyword and topic, got %+v", rule)
			}
			keywords = append(keywords, KeywordRule{Keyword: keyword, Topic: topic})
		}
		persona.Keywords = keywords
	}
	return persona, nil
}
