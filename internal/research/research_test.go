package research

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/Eric-Mao06/Mailfish/internal/logger"
)

func newTestResearcher(t *testing.T, handler http.HandlerFunc) Researcher {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	r := New("test-key", "sonar-pro", "sonar-reasoning-pro", logger.New("error", "console")).(*implResearcher)
	r.baseURL = srv.URL
	return r
}

func completionResponse(content string) []byte {
	data, _ := json.Marshal(map[string]interface{}{
		"choices": []map[string]interface{}{
			{"message": map[string]string{"content": content}},
		},
	})
	return data
}

func TestResearch(t *testing.T) {
	r := newTestResearcher(t, func(w http.ResponseWriter, req *http.Request) {
		if req.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("missing auth header")
		}
		var body chatRequest
		json.NewDecoder(req.Body).Decode(&body)
		if body.Model != "sonar-pro" {
			t.Errorf("model = %q, want sonar-pro", body.Model)
		}
		w.Write(completionResponse("A detailed report."))
	})

	report, err := r.Research(context.Background(), "Jane Doe")
	if err != nil {
		t.Fatalf("Research() error = %v", err)
	}
	if report != "A detailed report." {
		t.Errorf("report = %q", report)
	}
}

func TestResearchAPIError(t *testing.T) {
	r := newTestResearcher(t, func(w http.ResponseWriter, req *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	})

	if _, err := r.Research(context.Background(), "Jane Doe"); err == nil {
		t.Error("Research() expected error on non-200")
	}
}

func TestFindVideosExtractsAndDeduplicates(t *testing.T) {
	answer := `Here are some videos:
1. https://www.youtube.com/watch?v=jNQXAC9IVRw (keynote)
2. https://youtube.com/watch?v=abc_DEF-123
3. https://www.youtube.com/watch?v=jNQXAC9IVRw again
Hope that helps!`

	r := newTestResearcher(t, func(w http.ResponseWriter, req *http.Request) {
		var body chatRequest
		json.NewDecoder(req.Body).Decode(&body)
		if body.Model != "sonar-reasoning-pro" {
			t.Errorf("model = %q, want sonar-reasoning-pro", body.Model)
		}
		w.Write(completionResponse(answer))
	})

	urls, err := r.FindVideos(context.Background(), "Jane Doe", "engineer")
	if err != nil {
		t.Fatalf("FindVideos() error = %v", err)
	}

	want := []string{
		"https://www.youtube.com/watch?v=jNQXAC9IVRw",
		"https://youtube.com/watch?v=abc_DEF-123",
	}
	if !reflect.DeepEqual(urls, want) {
		t.Errorf("FindVideos() = %v, want %v", urls, want)
	}
}

func TestFindVideosNoURLs(t *testing.T) {
	r := newTestResearcher(t, func(w http.ResponseWriter, req *http.Request) {
		w.Write(completionResponse("I could not find any suitable videos."))
	})

	urls, err := r.FindVideos(context.Background(), "Jane Doe", "")
	if err != nil {
		t.Fatalf("FindVideos() error = %v", err)
	}
	if len(urls) != 0 {
		t.Errorf("FindVideos() = %v, want empty", urls)
	}
}
