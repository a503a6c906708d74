package storage

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "bellum.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSetGetRoundTrip(t *testing.T) {
	store := openTestStore(t)

	if err := store.Set(KeyToken, "abc.def.ghi"); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := store.Get(KeyToken)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != "abc.def.ghi" {
		t.Errorf("got %q", got)
	}
}

func TestGetAbsentKeyIsEmpty(t *testing.T) {
	store := openTestStore(t)

	got, err := store.Get("nonexistent")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != "" {
		t.Errorf("expected empty value, got %q", got)
	}
}

func TestSetOverwrites(t *testing.T) {
	store := openTestStore(t)

	store.Set(KeyLanguage, "en")
	store.Set(KeyLanguage, "pt-BR")

	got, _ := store.Get(KeyLanguage)
	if got != "pt-BR" {
		t.Errorf("expected last write to win, got %q", got)
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	store := openTestStore(t)

	store.Set(KeyToken, "tok")
	if err := store.Delete(KeyToken); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := store.Delete(KeyToken); err != nil {
		t.Fatalf("second delete: %v", err)
	}
	got, _ := store.Get(KeyToken)
	if got != "" {
		t.Errorf("expected cleared value, got %q", got)
	}
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bellum.db")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	store.Set(KeyToken, "persisted")
	store.Close()

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	got, _ := reopened.Get(KeyToken)
	if got != "persisted" {
		t.Errorf("expected persisted value, got %q", got)
	}
}
