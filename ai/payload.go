package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/poiesic/scriptura/core"
)

// versePayload mirrors the JSON shape providers are prompted to emit for
// verse suggestions.
type versePayload struct {
	Reference      string  `json:"reference"`
	Text           string  `json:"text"`
	RelevanceScore float64 `json:"relevanceScore"`
	Context        string  `json:"context,omitempty"`
}

// guidancePayload mirrors the JSON shape providers are prompted to emit for
// guidance responses.
type guidancePayload struct {
	Narrative string         `json:"narrative"`
	Verses    []versePayload `json:"verses"`
	Steps     []string       `json:"steps"`
	Prayer    string         `json:"prayer"`
}

// ParseVerseResponse extracts and validates a verse suggestion array from a
// raw model response. Entries missing a reference or text are dropped;
// out-of-range scores are clamped to [0, 1]. An error is returned only when
// no usable payload exists at all.
func ParseVerseResponse(response string) ([]core.SearchResult, error) {
	raw, ok := ExtractJSONArray(response)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoJSONPayload, truncate(response, 120))
	}

	var payload []versePayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoJSONPayload, err)
	}

	results := make([]core.SearchResult, 0, len(payload))
	for _, v := range payload {
		result, ok := v.toResult()
		if !ok {
			continue
		}
		results = append(results, result)
	}
	return results, nil
}

// ParseGuidanceResponse extracts and validates a guidance object from a raw
// model response. The narrative is required; verses and steps are sanitized
// the same way verse search responses are.
func ParseGuidanceResponse(response string) (*core.GuidanceResult, error) {
	raw, ok := ExtractJSONObject(response)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoJSONPayload, truncate(response, 120))
	}

	var payload guidancePayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoJSONPayload, err)
	}

	if strings.TrimSpace(payload.Narrative) == "" {
		return nil, fmt.Errorf("%w: missing narrative", ErrMalformedGuidance)
	}

	verses := make([]core.SearchResult, 0, len(payload.Verses))
	for _, v := range payload.Verses {
		result, ok := v.toResult()
		if !ok {
			continue
		}
		verses = append(verses, result)
	}

	steps := make([]string, 0, len(payload.Steps))
	for _, step := range payload.Steps {
		if s := strings.TrimSpace(step); s != "" {
			steps = append(steps, s)
		}
	}

	return &core.GuidanceResult{
		Narrative: strings.TrimSpace(payload.Narrative),
		Verses:    verses,
		Steps:     steps,
		Prayer:    strings.TrimSpace(payload.Prayer),
	}, nil
}

func (v versePayload) toResult() (core.SearchResult, bool) {
	reference := strings.TrimSpace(v.Reference)
	text := strings.TrimSpace(v.Text)
	if reference == "" || text == "" {
		return core.SearchResult{}, false
	}

	score := v.RelevanceScore
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}

	return core.SearchResult{
		Reference:      reference,
		Text:           text,
		RelevanceScore: score,
		Context:        strings.TrimSpace(v.Context),
	}, true
}

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
