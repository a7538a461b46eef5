package util

import (
	"strings"
	"testing"
)

func TestStorageKeyStableAndLowercase(t *testing.T) {
	key := []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x00, 0x7F}

	first := StorageKey(key)
	for i := 0; i < 100; i++ {
		if got := StorageKey(key); got != first {
			t.Fatalf("StorageKey not stable: got %q want %q", got, first)
		}
	}
	if first != strings.ToLower(first) {
		t.Fatalf("StorageKey not lowercase: %q", first)
	}
	if first != "deadbeef007f" {
		t.Fatalf("unexpected encoding: %q", first)
	}
}

func TestStorageKeyDistinguishesKeys(t *testing.T) {
	if StorageKey([]byte{0x01}) == StorageKey([]byte{0x10}) {
		t.Fatalf("distinct keys must not collide")
	}
	if StorageKey(nil) != "" {
		t.Fatalf("empty key should render empty")
	}
}
