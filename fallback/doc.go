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


// Package fallback provides the curated thematic verse corpus used as the
// retrieval strategy of last resort.
//
// The corpus is a static data asset (data/corpus.json) embedded at build time
// and loaded once. It holds a single verse table plus three indexes over it:
// canonical references for the reference parser, themes mapping topic names to
// 3-5 verses each, and books mapping book names to representative verses.
//
// SearchByTheme never fails and never returns an empty result for a non-empty
// query: when nothing matches, a default set of at least two generic verses is
// returned. This is what lets the search orchestrator guarantee a non-empty
// response regardless of corpus or provider availability.
package fallback
