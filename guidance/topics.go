package guidance

import "strings"

// Topic is a coarse classification of what a guidance request is about. It
// drives both template selection and the thematic verses attached to a
// template response.
type Topic string

const (
	TopicAnxiety     Topic = "anxiety"
	TopicForgiveness Topic = "forgiveness"
	TopicGuidance    Topic = "guidance"
	TopicGeneral     Topic = "general"
)

// topicKeywords maps each specific topic to the words that indicate it.
// Matching is whole-word over the lowercased message.
var topicKeywords = map[Topic][]string{
	TopicAnxiety: {
		"anxious", "anxiety", "worry", "worried", "worrying",
		"fear", "afraid", "scared", "stress", "stressed", "overwhelmed",
		"panic", "nervous",
	},
	TopicForgiveness: {
		"forgive", "forgiven", "forgiveness", "hurt", "betrayed",
		"betrayal", "anger", "angry", "resent", "resentment", "grudge",
		"wronged",
	},
	TopicGuidance: {
		"decision", "decide", "choice", "choose", "choosing",
		"direction", "path", "confused", "uncertain", "crossroads",
		"discern", "discernment",
	},
}

// classifyOrder fixes the precedence when a message touches several topics.
var classifyOrder = []Topic{TopicAnxiety, TopicForgiveness, TopicGuidance}

// ClassifyTopic determines the dominant topic of a message. The first topic
// in precedence order with any keyword hit wins; a message matching nothing
// specific is general.
func ClassifyTopic(message string) Topic {
	words := messageWords(message)
	for _, topic := range classifyOrder {
		for _, keyword := range topicKeywords[topic] {
			if words[keyword] {
				return topic
			}
		}
	}
	return TopicGeneral
}

// fallbackTheme maps a topic to the thematic corpus theme used for its
// template verses.
func fallbackTheme(topic Topic) string {
	switch topic {
	case TopicAnxiety:
		return "anxiety"
	case TopicForgiveness:
		return "forgiveness"
	case TopicGuidance:
		return "guidance"
	default:
		return "comfort"
	}
}

func messageWords(message string) map[string]bool {
	words := make(map[string]bool)
	for _, field := range strings.Fields(strings.ToLower(message)) {
		words[strings.Trim(field, ".,;:!?'\"()")] = true
	}
	return words
}
