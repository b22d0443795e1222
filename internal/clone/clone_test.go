package clone

import (
	"context"
	"errors"
	"testing"

	"github.com/Eric-Mao06/Mailfish/internal/extractor"
	"github.com/Eric-Mao06/Mailfish/internal/logger"
	"github.com/Eric-Mao06/Mailfish/internal/store"
)

type fakeResearcher struct {
	report    string
	reportErr error
	urls      []string
	urlsErr   error
}

func (f *fakeResearcher) Research(ctx context.Context, name string) (string, error) {
	return f.report, f.reportErr
}

func (f *fakeResearcher) FindVideos(ctx context.Context, name, bio string) ([]string, error) {
	return f.urls, f.urlsErr
}

type fakePersona struct {
	prompt string
	reply  string
	err    error
}

func (f *fakePersona) DerivePrompt(ctx context.Context, name, research string) (string, error) {
	return f.prompt, f.err
}

func (f *fakePersona) Chat(ctx context.Context, name, systemPrompt, message string) (string, error) {
	return f.reply, f.err
}

type fakeVoice struct {
	voiceID    string
	cloneErr   error
	audio      []byte
	synthErr   error
	clonedFrom string
}

func (f *fakeVoice) Clone(ctx context.Context, audioPath, name, description string) (string, error) {
	f.clonedFrom = audioPath
	return f.voiceID, f.cloneErr
}

func (f *fakeVoice) Synthesize(ctx context.Context, voiceID, text string) ([]byte, error) {
	return f.audio, f.synthErr
}

type fakeCoordinator struct {
	path string
	ok   bool
}

func (f *fakeCoordinator) ExtractFirstAvailable(ctx context.Context, urls []string) (string, bool) {
	return f.path, f.ok
}

func (f *fakeCoordinator) Stats() extractor.CoordinatorStats {
	return extractor.CoordinatorStats{}
}

func newTestService(r *fakeResearcher, p *fakePersona, v *fakeVoice, c *fakeCoordinator) (Service, store.Store) {
	s := store.NewMemory()
	return New(r, p, v, c, s, logger.New("error", "console")), s
}

func TestCreateCloneWithVoice(t *testing.T) {
	svc, _ := newTestService(
		&fakeResearcher{report: "Jane is an engineer.", urls: []string{"https://youtu.be/a"}},
		&fakePersona{prompt: "You are Jane."},
		&fakeVoice{voiceID: "v-1"},
		&fakeCoordinator{path: "/tmp/a.mp3", ok: true},
	)

	rec, err := svc.CreateClone(context.Background(), "Jane Doe")
	if err != nil {
		t.Fatalf("CreateClone() error = %v", err)
	}
	if rec.Prompt != "You are Jane." {
		t.Errorf("Prompt = %q", rec.Prompt)
	}
	if rec.VoiceID != "v-1" {
		t.Errorf("VoiceID = %q, want v-1", rec.VoiceID)
	}
}

func TestCreateCloneDegradesWhenNoAudio(t *testing.T) {
	svc, s := newTestService(
		&fakeResearcher{report: "report", urls: []string{"https://youtu.be/a"}},
		&fakePersona{prompt: "prompt"},
		&fakeVoice{voiceID: "never-used"},
		&fakeCoordinator{ok: false},
	)

	rec, err := svc.CreateClone(context.Background(), "Jane Doe")
	if err != nil {
		t.Fatalf("CreateClone() error = %v, no-audio must not fail the workflow", err)
	}
	if rec.HasVoice() {
		t.Errorf("VoiceID = %q, want empty for degraded persona", rec.VoiceID)
	}

	stored, found, _ := s.Get(context.Background(), "Jane Doe")
	if !found || stored.Prompt != "prompt" {
		t.Error("degraded persona not stored")
	}
}

func TestCreateCloneDegradesWhenNoVideosFound(t *testing.T) {
	svc, _ := newTestService(
		&fakeResearcher{report: "report", urls: nil},
		&fakePersona{prompt: "prompt"},
		&fakeVoice{voiceID: "never-used"},
		&fakeCoordinator{path: "/should/not/happen", ok: true},
	)

	rec, err := svc.CreateClone(context.Background(), "Jane Doe")
	if err != nil {
		t.Fatalf("CreateClone() error = %v", err)
	}
	if rec.HasVoice() {
		t.Error("voice registered with no candidate videos")
	}
}

func TestCreateCloneDegradesWhenVoiceRegistrationFails(t *testing.T) {
	svc, _ := newTestService(
		&fakeResearcher{report: "report", urls: []string{"u"}},
		&fakePersona{prompt: "prompt"},
		&fakeVoice{cloneErr: errors.New("api down")},
		&fakeCoordinator{path: "/tmp/a.mp3", ok: true},
	)

	rec, err := svc.CreateClone(context.Background(), "Jane Doe")
	if err != nil {
		t.Fatalf("CreateClone() error = %v", err)
	}
	if rec.HasVoice() {
		t.Error("voice id set despite registration failure")
	}
}

func TestCreateCloneFailsWhenResearchFails(t *testing.T) {
	svc, _ := newTestService(
		&fakeResearcher{reportErr: errors.New("api down")},
		&fakePersona{},
		&fakeVoice{},
		&fakeCoordinator{},
	)

	if _, err := svc.CreateClone(context.Background(), "Jane Doe"); err == nil {
		t.Error("CreateClone() expected error when research fails")
	}
}

func TestChat(t *testing.T) {
	svc, s := newTestService(
		&fakeResearcher{},
		&fakePersona{reply: "Hello, I'm Jane."},
		&fakeVoice{},
		&fakeCoordinator{},
	)
	s.Save(context.Background(), &store.Record{Name: "Jane Doe", Prompt: "You are Jane."})

	reply, err := svc.Chat(context.Background(), "Jane Doe", "hi")
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}
	if reply != "Hello, I'm Jane." {
		t.Errorf("reply = %q", reply)
	}
}

func TestChatUnknownPersona(t *testing.T) {
	svc, _ := newTestService(&fakeResearcher{}, &fakePersona{}, &fakeVoice{}, &fakeCoordinator{})

	_, err := svc.Chat(context.Background(), "Nobody", "hi")
	if !errors.Is(err, ErrPersonaNotFound) {
		t.Errorf("Chat() error = %v, want ErrPersonaNotFound", err)
	}
}

func TestSpeak(t *testing.T) {
	svc, s := newTestService(
		&fakeResearcher{},
		&fakePersona{},
		&fakeVoice{audio: []byte("mp3")},
		&fakeCoordinator{},
	)
	s.Save(context.Background(), &store.Record{Name: "Jane Doe", VoiceID: "v-1"})

	audio, err := svc.Speak(context.Background(), "Jane Doe", "hello")
	if err != nil {
		t.Fatalf("Speak() error = %v", err)
	}
	if string(audio) != "mp3" {
		t.Errorf("audio = %q", audio)
	}
}

func TestSpeakWithoutVoice(t *testing.T) {
	svc, s := newTestService(&fakeResearcher{}, &fakePersona{}, &fakeVoice{}, &fakeCoordinator{})
	s.Save(context.Background(), &store.Record{Name: "Jane Doe", Prompt: "p"})

	_, err := svc.Speak(context.Background(), "Jane Doe", "hello")
	if !errors.Is(err, ErrNoVoice) {
		t.Errorf("Speak() error = %v, want ErrNoVoice", err)
	}
}

func TestRegisterVoiceSample(t *testing.T) {
	v := &fakeVoice{voiceID: "v-local"}
	svc, s := newTestService(&fakeResearcher{}, &fakePersona{}, v, &fakeCoordinator{})
	s.Save(context.Background(), &store.Record{Name: "Jane Doe", Prompt: "p"})

	if err := svc.RegisterVoiceSample(context.Background(), "Jane Doe", "/tmp/jane.mp3"); err != nil {
		t.Fatalf("RegisterVoiceSample() error = %v", err)
	}
	if v.clonedFrom != "/tmp/jane.mp3" {
		t.Errorf("cloned from %q", v.clonedFrom)
	}

	rec, _, _ := s.Get(context.Background(), "Jane Doe")
	if rec.VoiceID != "v-local" || rec.Prompt != "p" {
		t.Errorf("record = %+v, want voice updated and prompt kept", rec)
	}
}

func TestRegisterVoiceSampleForUnknownPersona(t *testing.T) {
	svc, s := newTestService(&fakeResearcher{}, &fakePersona{}, &fakeVoice{voiceID: "v-x"}, &fakeCoordinator{})

	if err := svc.RegisterVoiceSample(context.Background(), "New Person", "/tmp/x.mp3"); err != nil {
		t.Fatalf("RegisterVoiceSample() error = %v", err)
	}

	rec, found, _ := s.Get(context.Background(), "New Person")
	if !found || rec.VoiceID != "v-x" {
		t.Errorf("record = %+v, want voice-only persona created", rec)
	}
}

func TestBioLine(t *testing.T) {
	if got := bioLine("First line.\nSecond line."); got != "First line." {
		t.Errorf("bioLine() = %q", got)
	}
	if got := bioLine("  padded  "); got != "padded" {
		t.Errorf("bioLine() = %q", got)
	}
}
