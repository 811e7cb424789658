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

import "errors"

// Domain validation errors
var (
	// ErrInvalidTranslation indicates a Translation failed validation.
	ErrInvalidTranslation = errors.New("invalid translation")

	// ErrEmptyTranslationID indicates the translation ID field is empty.
	ErrEmptyTranslationID = errors.New("translation id cannot be empty")

	// ErrInvalidChapterNumber indicates a chapter number is not a positive integer.
	ErrInvalidChapterNumber = errors.New("chapter number must be positive")

	// ErrInvalidVerseNumber indicates a verse number is not a positive integer.
	ErrInvalidVerseNumber = errors.New("verse number must be positive")

	// ErrEmptyVerseText indicates a stored verse has no text.
	ErrEmptyVerseText = errors.New("verse text cannot be empty")

	// ErrInvalidMessage indicates a conversation Message failed validation.
	ErrInvalidMessage = errors.New("invalid message")

	// ErrEmptyContent indicates the Contents field is empty.
	ErrEmptyContent = errors.New("content cannot be empty")

	// ErrInvalidSpeakerType indicates an invalid SpeakerType value.
	ErrInvalidSpeakerType = errors.New("invalid speaker type")
)
