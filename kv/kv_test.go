package kv

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_PutGet(t *testing.T) {
	s := openTemp(t)

	if err := s.Put("users", []byte(`[{"id":"u1"}]`)); err != nil {
		t.Fatal(err)
	}
	got, err := s.Get("users")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, []byte(`[{"id":"u1"}]`)) {
		t.Errorf("Get() = %q", got)
	}
}

func TestStore_PutReplaces(t *testing.T) {
	s := openTemp(t)

	s.Put("k", []byte("one"))
	if err := s.Put("k", []byte("two")); err != nil {
		t.Fatal(err)
	}
	got, err := s.Get("k")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "two" {
		t.Errorf("Get() after overwrite = %q, want two", got)
	}
}

func TestStore_GetMissing(t *testing.T) {
	s := openTemp(t)

	if _, err := s.Get("never written"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestStore_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Put("k", []byte("v")); err != nil {
		t.Fatal(err)
	}
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	got, err := s.Get("k")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "v" {
		t.Errorf("Get() after reopen = %q, want v", got)
	}
}
