package guidance

import (
	"github.com/poiesic/scriptura/core"
	"github.com/poiesic/scriptura/fallback"
)

// templateVerseLimit is how many thematic verses a template response carries.
const templateVerseLimit = 3

// guidanceTemplate holds the canned content for one topic. Introduction is
// used for the first message on a topic, continuation when the conversation
// is already on it.
type guidanceTemplate struct {
	introduction string
	continuation string
	steps        []string
	prayer       string
}

var templates = map[Topic]guidanceTemplate{
	TopicAnxiety: {
		introduction: "Anxiety has a way of making every problem feel both urgent and unsolvable at once. Scripture speaks directly to that spiral: you are invited to hand the weight over rather than carry it alone, and to let prayer interrupt the worry.",
		continuation: "It sounds like the worry is still pressing in. That is normal; peace is usually a practice rather than a single moment. Keep returning to the same anchor: bring each specific fear into prayer as it surfaces, and let the verses below be words you actually pray.",
		steps: []string{
			"Name the specific fear out loud or on paper; vague dread is harder to pray about than a named one.",
			"Turn that named fear into a short, direct prayer.",
			"Read one of the verses below slowly, twice, before sleep tonight.",
			"Tell one trusted person what you are carrying.",
		},
		prayer: "Lord, You know the worries I am carrying before I speak them. I hand them to You now. Guard my heart and mind with Your peace, and teach me to trust You with what I cannot control. Amen.",
	},
	TopicForgiveness: {
		introduction: "Being hurt by someone leaves a real wound, and forgiveness is not pretending it didn't happen. Scripture treats forgiveness as a release you choose, often repeatedly, so that the injury stops ruling you.",
		continuation: "Forgiveness is rarely finished in one decision; it tends to need renewing each time the memory resurfaces. That repetition is not failure. Keep choosing release, and let God handle the justice you cannot.",
		steps: []string{
			"Write down honestly what was done to you; forgiveness starts by telling the truth about the harm.",
			"Pray for the willingness to forgive, even before you feel it.",
			"Release the outcome to God rather than rehearsing the offense.",
			"Set any boundaries you need; forgiving someone does not require re-trusting them immediately.",
		},
		prayer: "Father, You know how deeply this hurt me. I choose to release this person to You, and I ask You to heal what was wounded in me. Give me the grace to forgive as I have been forgiven. Amen.",
	},
	TopicGuidance: {
		introduction: "Standing at a crossroads without a clear answer is uncomfortable, but it is also one of the places Scripture says God meets people most reliably. The invitation is to trust His direction more than your own certainty.",
		continuation: "Since the decision is still open, keep walking the same path: pray, weigh what you know, and take the next faithful step rather than demanding the whole map. Clarity often comes in motion.",
		steps: []string{
			"Write down the actual decision and the real options in front of you.",
			"Pray specifically for wisdom about this choice.",
			"Seek counsel from one or two people whose judgment and faith you trust.",
			"Set a date to decide; waiting indefinitely is itself a choice.",
		},
		prayer: "Lord, I do not see the whole path, but You do. Give me wisdom for this decision, peace about what I cannot know, and courage to take the next step You show me. Amen.",
	},
	TopicGeneral: {
		introduction: "Whatever you are facing, you do not face it unseen. Scripture's consistent witness is that God is present in the middle of ordinary struggles, not just dramatic ones, and that comfort is available before circumstances change.",
		continuation: "Thank you for continuing to share. Wherever this is heading, the same ground holds: God's presence does not depend on the situation resolving first. Stay honest in prayer and patient with the process.",
		steps: []string{
			"Take a few unhurried minutes today to put what you are facing into words before God.",
			"Read one of the verses below and sit with it rather than rushing on.",
			"Reach out to someone in your community rather than carrying this alone.",
		},
		prayer: "God, You see what I am walking through. Be near me in it, give me what I need for today, and help me trust You with tomorrow. Amen.",
	},
}

// templateGuidance builds a complete deterministic guidance result for a
// topic from the canned templates and the thematic verse corpus.
func templateGuidance(corpus *fallback.Corpus, topic Topic, continuing bool) *core.GuidanceResult {
	tmpl := templates[topic]

	narrative := tmpl.introduction
	if continuing {
		narrative = tmpl.continuation
	}

	return &core.GuidanceResult{
		Narrative:    narrative,
		Verses:       corpus.VersesForTheme(fallbackTheme(topic), templateVerseLimit),
		Steps:        append([]string(nil), tmpl.steps...),
		Prayer:       tmpl.prayer,
		UsedFallback: true,
	}
}
