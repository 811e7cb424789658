package badger

import "fmt"

// Key prefixes for different data types
const (
	documentPrefix = "trndoc"
	digestPrefix   = "trndig"
)

// makeDocumentKey generates a key for a translation document by ID.
func makeDocumentKey(id string) []byte {
	return []byte(fmt.Sprintf("%s:%s", documentPrefix, id))
}

// makeDigestKey generates a key for a document's content digest.
func makeDigestKey(id string) []byte {
	return []byte(fmt.Sprintf("%s:%s", digestPrefix, id))
}

// documentIDFromKey strips the document prefix from a full key.
func documentIDFromKey(key []byte) string {
	prefix := documentPrefix + ":"
	if len(key) <= len(prefix) {
		return ""
	}
	return string(key[len(prefix):])
}
