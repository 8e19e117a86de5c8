package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadOrCreateHostKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "host_key")

	created := loadOrCreateHostKey(path)
	if created == nil {
		t.Fatal("no signer generated")
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("host key not persisted: %v", err)
	}

	// A second call must load the persisted key, not mint a new one.
	loaded := loadOrCreateHostKey(path)
	if string(loaded.PublicKey().Marshal()) != string(created.PublicKey().Marshal()) {
		t.Error("reloaded key differs from the generated one")
	}
}

func TestLoadOrCreateHostKeyIgnoresGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "host_key")
	if err := os.WriteFile(path, []byte("not a pem key"), 0600); err != nil {
		t.Fatal(err)
	}
	if signer := loadOrCreateHostKey(path); signer == nil {
		t.Fatal("unreadable key file should fall back to generation")
	}
}
