package extractor

import "testing"

func TestVideoID(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"watch url", "https://www.youtube.com/watch?v=jNQXAC9IVRw", "jNQXAC9IVRw"},
		{"watch url without www", "https://youtube.com/watch?v=jNQXAC9IVRw", "jNQXAC9IVRw"},
		{"short url", "https://youtu.be/jNQXAC9IVRw", "jNQXAC9IVRw"},
		{"embed url", "https://www.youtube.com/embed/jNQXAC9IVRw", "jNQXAC9IVRw"},
		{"shorts url", "https://www.youtube.com/shorts/jNQXAC9IVRw", "jNQXAC9IVRw"},
		{"legacy v path", "https://www.youtube.com/v/jNQXAC9IVRw", "jNQXAC9IVRw"},
		{"mobile url", "https://m.youtube.com/watch?v=jNQXAC9IVRw", "jNQXAC9IVRw"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := videoID(tt.url); got != tt.want {
				t.Errorf("videoID(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestVideoIDNonYouTubeIsStable(t *testing.T) {
	url := "https://vimeo.com/123456"

	a := videoID(url)
	b := videoID(url)
	if a != b {
		t.Errorf("videoID not stable: %q vs %q", a, b)
	}
	if len(a) != 12 {
		t.Errorf("hashed id length = %d, want 12", len(a))
	}
	if a == videoID("https://vimeo.com/654321") {
		t.Error("distinct URLs produced the same id")
	}
}
