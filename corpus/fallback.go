package corpus

import "github.com/poiesic/scriptura/core"

// FallbackTranslationID is the identifier advertised when the backend
// listing is unavailable.
const FallbackTranslationID = "kjv"

// fallbackTranslationIDs is the fixed minimal list served when the backend
// cannot enumerate translations.
func fallbackTranslationIDs() []string {
	return []string{FallbackTranslationID}
}

// fallbackTranslation builds the small built-in translation served under the
// requested ID when a document cannot be fetched or parsed. A handful of
// well-known verses keeps search functional while degraded.
func fallbackTranslation(id string) *core.Translation {
	return &core.Translation{
		ID:           id,
		Name:         "King James Version (built-in excerpt)",
		Abbreviation: "KJV",
		Language:     "en",
		Year:         1611,
		PublicDomain: true,
		Books: map[string]map[int]map[int]string{
			"Genesis": {
				1: {1: "In the beginning God created the heaven and the earth."},
			},
			"Psalm": {
				23: {1: "The LORD is my shepherd; I shall not want."},
				46: {1: "God is our refuge and strength, a very present help in trouble."},
			},
			"Proverbs": {
				3: {5: "Trust in the LORD with all thine heart; and lean not unto thine own understanding."},
			},
			"John": {
				3: {16: "For God so loved the world, that he gave his only begotten Son, that whosoever believeth in him should not perish, but have everlasting life."},
			},
			"Romans": {
				8: {28: "And we know that all things work together for good to them that love God, to them who are the called according to his purpose."},
			},
			"Philippians": {
				4: {13: "I can do all things through Christ which strengtheneth me."},
			},
		},
	}
}
