package bookguide

import "fmt"

// BuildSeed assembles the synthetic exchanges that open a new
// conversation: the persona instructions with a topic-focus directive,
// the canned acknowledgment, then the few-shot examples. The examples
// only steer style; they are never replied to.
func (p *Persona) BuildSeed(topic string) []Exchange {
	seed := make([]Exchange, 0, len(p.Examples)+2)
	seed = append(seed, Exchange{
		Role:    RoleUser,
		Content: p.Instructions + fmt.Sprintf("\nFocus on %s aspects in your response.", topic),
	})
	seed = append(seed, Exchange{
		Role:    RoleModel,
		Content: p.Acknowledgment,
	})
	seed = append(seed, p.Examples...)
	return seed
}
