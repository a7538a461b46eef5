package util

import "encoding/hex"

// StorageKey renders a binary fingerprint as its wire/storage form.
// Equal byte sequences must always render identically (cache addressing),
// so this is plain lowercase hex with no salting or truncation.
func StorageKey(key []byte) string {
	return hex.EncodeToString(key)
}
