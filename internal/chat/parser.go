package chat

import "regexp"

// FallbackMessage replaces an empty completion so the UI never renders an
// empty bubble.
const FallbackMessage = "Maaf, saya tidak dapat memproses permintaan saat ini."

// CompletionKind classifies what the parser recovered from a completion.
type CompletionKind int

const (
	// CompletionRecognized means a leading tag matched a known label.
	CompletionRecognized CompletionKind = iota
	// CompletionUnrecognized means there was no leading tag, or the tag is
	// not a known label. The text is kept verbatim.
	CompletionUnrecognized
	// CompletionEmpty means the completion carried no text at all.
	CompletionEmpty
)

// ParsedCompletion is the validated form of a raw completion. Agent is
// always a member of the closed set regardless of what the model emitted.
type ParsedCompletion struct {
	Kind  CompletionKind
	Agent AgentType
	Text  string
}

// leadingTag matches a bracketed tag at the very start of the completion
// and the single whitespace run that follows it. A tag appearing later in
// the text (the model quoting the convention mid-sentence) never matches.
var leadingTag = regexp.MustCompile(`^\[([^\[\]]*)\]\s*`)

// ParseCompletion turns an untrusted completion string into a validated
// result. It is lenient on the output side (malformed model output never
// fails) and strict on the taxonomy side (an out-of-set label is never
// admitted as a category).
func ParseCompletion(raw string) ParsedCompletion {
	if raw == "" {
		return ParsedCompletion{
			Kind:  CompletionEmpty,
			Agent: AgentUnknown,
			Text:  FallbackMessage,
		}
	}

	m := leadingTag.FindStringSubmatch(raw)
	if m == nil {
		return ParsedCompletion{
			Kind:  CompletionUnrecognized,
			Agent: AgentCoordinator,
			Text:  raw,
		}
	}

	agent, ok := AgentFromLabel(m[1])
	if !ok {
		// An unrecognized tag is not silently invented as a new category;
		// keep the full original text, bracket included.
		return ParsedCompletion{
			Kind:  CompletionUnrecognized,
			Agent: AgentCoordinator,
			Text:  raw,
		}
	}

	return ParsedCompletion{
		Kind:  CompletionRecognized,
		Agent: agent,
		Text:  raw[len(m[0]):],
	}
}
