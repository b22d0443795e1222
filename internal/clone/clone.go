package clone

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Eric-Mao06/Mailfish/internal/store"
)

func (s *implService) CreateClone(ctx context.Context, name string) (*store.Record, error) {
	s.logger.Info(ctx, "Creating clone for %q", name)

	report, err := s.researcher.Research(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("research: %w", err)
	}

	prompt, err := s.persona.DerivePrompt(ctx, name, report)
	if err != nil {
		return nil, fmt.Errorf("derive prompt: %w", err)
	}

	rec := &store.Record{
		Name:      name,
		Prompt:    prompt,
		VoiceID:   s.cloneVoiceFromVideo(ctx, name, report),
		CreatedAt: time.Now(),
	}

	if err := s.store.Save(ctx, rec); err != nil {
		return nil, fmt.Errorf("save persona: %w", err)
	}

	s.logger.Info(ctx, "Clone created for %q (voice: %v)", name, rec.HasVoice())
	return rec, nil
}

// cloneVoiceFromVideo runs the discovery -> extraction -> registration chain.
// Every failure along it returns an empty voice id: the persona still gets
// created, just without speech.
func (s *implService) cloneVoiceFromVideo(ctx context.Context, name, report string) string {
	urls, err := s.researcher.FindVideos(ctx, name, bioLine(report))
	if err != nil {
		s.logger.Warn(ctx, "Video discovery failed for %q: %v", name, err)
		return ""
	}
	if len(urls) == 0 {
		s.logger.Warn(ctx, "No candidate videos for %q", name)
		return ""
	}

	audioPath, ok := s.coordinator.ExtractFirstAvailable(ctx, urls)
	if !ok {
		s.logger.Warn(ctx, "No audio obtained for %q, persona will be text-only", name)
		return ""
	}

	voiceID, err := s.voice.Clone(ctx, audioPath, name, "AI clone of "+name)
	if err != nil {
		s.logger.Warn(ctx, "Voice registration failed for %q: %v", name, err)
		return ""
	}
	return voiceID
}

func (s *implService) Chat(ctx context.Context, name, message string) (string, error) {
	rec, found, err := s.store.Get(ctx, name)
	if err != nil {
		return "", fmt.Errorf("lookup persona: %w", err)
	}
	if !found {
		return "", ErrPersonaNotFound
	}

	return s.persona.Chat(ctx, name, rec.Prompt, message)
}

func (s *implService) Speak(ctx context.Context, name, text string) ([]byte, error) {
	rec, found, err := s.store.Get(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("lookup persona: %w", err)
	}
	if !found {
		return nil, ErrPersonaNotFound
	}
	if !rec.HasVoice() {
		return nil, ErrNoVoice
	}

	return s.voice.Synthesize(ctx, rec.VoiceID, text)
}

func (s *implService) RegisterVoiceSample(ctx context.Context, name, audioPath string) error {
	voiceID, err := s.voice.Clone(ctx, audioPath, name, "AI clone of "+name)
	if err != nil {
		return fmt.Errorf("register sample: %w", err)
	}

	rec, found, err := s.store.Get(ctx, name)
	if err != nil {
		return fmt.Errorf("lookup persona: %w", err)
	}
	if !found {
		// Voice arrived before the persona: keep the id, prompt comes later.
		rec = &store.Record{Name: name, CreatedAt: time.Now()}
	}
	rec.VoiceID = voiceID

	return s.store.Save(ctx, rec)
}

func (s *implService) Lookup(ctx context.Context, name string) (*store.Record, bool, error) {
	return s.store.Get(ctx, name)
}

// bioLine condenses a research report into a one-line hint for video search.
func bioLine(report string) string {
	line := strings.TrimSpace(report)
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	if len(line) > 200 {
		line = line[:200]
	}
	return strings.TrimSpace(line)
}
