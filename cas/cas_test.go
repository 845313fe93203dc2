package cas

import (
	"bytes"
	"errors"
	"os"
	"testing"
)

func TestPutGetRoundTrip(t *testing.T) {
	store, err := NewStore(t.TempDir(), 16)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	data := []byte("hello, content-addressable world")
	digest, isNew, err := store.Put(data)
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if !isNew {
		t.Error("first Put of new content reported isNew=false")
	}

	got, err := store.Get(digest)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("Get returned %q, want %q", got, data)
	}
}

func TestPutDeduplicates(t *testing.T) {
	store, err := NewStore(t.TempDir(), 16)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	data := []byte("duplicate me")
	d1, isNew1, err := store.Put(data)
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	d2, isNew2, err := store.Put(append([]byte{}, data...))
	if err != nil {
		t.Fatalf("Put: %v", err)
	}

	if d1 != d2 {
		t.Errorf("identical content produced different digests: %s vs %s", d1, d2)
	}
	if !isNew1 {
		t.Error("first Put reported isNew=false")
	}
	if isNew2 {
		t.Error("second Put of identical content reported isNew=true")
	}
}

func TestGetMissingDigest(t *testing.T) {
	store, err := NewStore(t.TempDir(), 16)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	_, err = store.Get("0000000000000000000000000000000000000000")
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Get on missing digest: got err %v, want os.ErrNotExist", err)
	}
}

func TestHas(t *testing.T) {
	store, err := NewStore(t.TempDir(), 16)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	data := []byte("present")
	digest, _, err := store.Put(data)
	if err != nil {
		t.Fatalf("Put: %v", err)
	}

	if !store.Has(digest) {
		t.Error("Has returned false for stored content")
	}
	if store.Has("ffffffffffffffffffffffffffffffffffffffff") {
		t.Error("Has returned true for content never stored")
	}
}
