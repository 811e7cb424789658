// Package guidance produces structured spiritual guidance (narrative,
// supporting verses, practical steps, and a prayer) for personal
// situations. AI providers are tried in priority order; when none answers,
// a deterministic topic-classified template tier does, so a request always
// gets a response.
package guidance
