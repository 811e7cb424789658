// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import "fmt"

// ValidateTranslation validates a Translation according to domain rules.
//
// Validation rules:
//   - ID must not be empty
//   - chapter and verse numbers must be positive integers
//   - verse text must be non-empty once present
//
// NOT validated (partial corpora are expected):
//   - completeness of books, chapters, or verses
//   - Name/Abbreviation (display metadata may be absent for raw imports)
func ValidateTranslation(t *Translation) error {
	if t == nil {
		return fmt.Errorf("%w: translation is nil", ErrInvalidTranslation)
	}

	if t.ID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidTranslation, ErrEmptyTranslationID)
	}

	for book, chapters := range t.Books {
		for chapter, verses := range chapters {
			if chapter < 1 {
				return fmt.Errorf("%w: %w: %s %d", ErrInvalidTranslation, ErrInvalidChapterNumber, book, chapter)
			}
			for verse, text := range verses {
				if verse < 1 {
					return fmt.Errorf("%w: %w: %s %d:%d", ErrInvalidTranslation, ErrInvalidVerseNumber, book, chapter, verse)
				}
				if text == "" {
					return fmt.Errorf("%w: %w: %s %d:%d", ErrInvalidTranslation, ErrEmptyVerseText, book, chapter, verse)
				}
			}
		}
	}

	return nil
}

// ValidateMessage validates a conversation Message according to domain rules.
func ValidateMessage(msg *Message) error {
	if msg == nil {
		return fmt.Errorf("%w: message is nil", ErrInvalidMessage)
	}

	if msg.Contents == "" {
		return fmt.Errorf("%w: %w", ErrInvalidMessage, ErrEmptyContent)
	}

	if err := ValidateSpeakerType(msg.Speaker); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidMessage, err)
	}

	return nil
}

// ValidateSpeakerType validates that a SpeakerType has a valid value.
func ValidateSpeakerType(speaker SpeakerType) error {
	if speaker != SpeakerTypeHuman && speaker != SpeakerTypeAI {
		return fmt.Errorf("%w: value %d", ErrInvalidSpeakerType, speaker)
	}
	return nil
}
