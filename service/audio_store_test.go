package service

import (
	"bytes"
	"testing"
)

func TestAudioStorePutGet(t *testing.T) {
	store := NewAudioStore(4)

	id := store.Put([]byte("audio-1"))
	if id == "" {
		t.Fatal("expected non-empty id")
	}

	audio, ok := store.Get(id)
	if !ok {
		t.Fatal("stored audio not found")
	}
	if !bytes.Equal(audio, []byte("audio-1")) {
		t.Errorf("unexpected audio: %q", audio)
	}
}

func TestAudioStoreMiss(t *testing.T) {
	store := NewAudioStore(4)

	if _, ok := store.Get("no-such-id"); ok {
		t.Error("expected miss for unknown id")
	}
}

func TestAudioStoreEvictsOldest(t *testing.T) {
	store := NewAudioStore(2)

	first := store.Put([]byte("one"))
	second := store.Put([]byte("two"))
	third := store.Put([]byte("three"))

	if _, ok := store.Get(first); ok {
		t.Error("oldest entry should have been evicted")
	}
	for _, id := range []string{second, third} {
		if _, ok := store.Get(id); !ok {
			t.Errorf("entry %s should still be present", id)
		}
	}
}
