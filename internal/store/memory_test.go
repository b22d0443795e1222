package store

import (
	"context"
	"testing"
	"time"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	if _, found, err := s.Get(ctx, "nobody"); err != nil || found {
		t.Errorf("Get(missing) = found=%v err=%v, want not found", found, err)
	}

	rec := &Record{
		Name:      "Jane Doe",
		Prompt:    "You are Jane Doe.",
		VoiceID:   "v-1",
		CreatedAt: time.Now(),
	}
	if err := s.Save(ctx, rec); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, found, err := s.Get(ctx, "Jane Doe")
	if err != nil || !found {
		t.Fatalf("Get() = found=%v err=%v", found, err)
	}
	if got.Prompt != rec.Prompt || got.VoiceID != "v-1" {
		t.Errorf("Get() = %+v", got)
	}

	// Save overwrites.
	rec.VoiceID = "v-2"
	if err := s.Save(ctx, rec); err != nil {
		t.Fatal(err)
	}
	got, _, _ = s.Get(ctx, "Jane Doe")
	if got.VoiceID != "v-2" {
		t.Errorf("VoiceID after overwrite = %q, want v-2", got.VoiceID)
	}

	n, err := s.Count(ctx)
	if err != nil || n != 1 {
		t.Errorf("Count() = %d, %v, want 1", n, err)
	}
}

func TestMemoryStoreReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	s.Save(ctx, &Record{Name: "x", Prompt: "original"})

	got, _, _ := s.Get(ctx, "x")
	got.Prompt = "mutated"

	again, _, _ := s.Get(ctx, "x")
	if again.Prompt != "original" {
		t.Error("caller mutation leaked into the store")
	}
}

func TestHasVoice(t *testing.T) {
	if (&Record{}).HasVoice() {
		t.Error("empty record should have no voice")
	}
	if !(&Record{VoiceID: "v"}).HasVoice() {
		t.Error("record with voice id should have a voice")
	}
}
