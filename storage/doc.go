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


// Package storage defines the blob backend abstraction for translation corpora.
//
// Each translation is persisted as one immutable JSON document keyed by its
// translation ID. The BlobStore interface exposes the four operations the rest
// of the system needs (get, put, list, delete) plus content digests, and the
// storage/badger sub-package provides the production implementation.
//
// Documents follow the TranslationDocument schema; UnmarshalTranslation
// converts the wire form (string-keyed chapter/verse maps) into the typed
// core.Translation, rejecting malformed documents with ErrMalformedDocument so
// the corpus layer can substitute its built-in fallback.
package storage
