package finsuite

import (
	"errors"
	"testing"
)

func TestDirStore(t *testing.T) {
	store, err := OpenDirStore(t.TempDir() + "/ws")
	if err != nil {
		t.Fatalf("OpenDirStore() failed: %v", err)
	}

	var missing []string
	if err := store.Get("nope", &missing); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() on a fresh store = %v, want ErrNotFound", err)
	}

	want := []string{"a", "b"}
	if err := store.Set("list", want); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	var got []string
	if err := store.Get("list", &got); err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("Get() = %v, want %v", got, want)
	}

	if err := store.Set("other", 42); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	keys, err := store.Keys()
	if err != nil {
		t.Fatalf("Keys() failed: %v", err)
	}
	if len(keys) != 2 || keys[0] != "list" || keys[1] != "other" {
		t.Errorf("Keys() = %v, want [list other]", keys)
	}

	// Overwrite replaces the previous value.
	if err := store.Set("list", []string{"c"}); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	got = nil
	if err := store.Get("list", &got); err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if len(got) != 1 || got[0] != "c" {
		t.Errorf("Get() after overwrite = %v, want [c]", got)
	}
}

func TestMemStore(t *testing.T) {
	store := NewMemStore()

	var v int
	if err := store.Get("n", &v); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() on a fresh store = %v, want ErrNotFound", err)
	}
	if err := store.Set("n", 7); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if err := store.Get("n", &v); err != nil || v != 7 {
		t.Errorf("Get() = %d, %v, want 7", v, err)
	}
	keys, err := store.Keys()
	if err != nil || len(keys) != 1 || keys[0] != "n" {
		t.Errorf("Keys() = %v, %v, want [n]", keys, err)
	}
}
