package extractor

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

const probeTimeout = 45 * time.Second

// StreamDescriptor is one available encoded rendition of a video's tracks.
// Bitrate is nil when the upstream metadata gave no parseable value.
type StreamDescriptor struct {
	Bitrate  *float64
	HasAudio bool
	HasVideo bool
	Location string
	Ext      string
}

type videoMetadata struct {
	Title    string
	Duration float64
	Formats  []StreamDescriptor
}

// yt-dlp format entries are loosely typed: abr/tbr show up as numbers,
// strings, or null depending on the extractor that produced them.
type ytdlpFormat struct {
	FormatID string      `json:"format_id"`
	ACodec   string      `json:"acodec"`
	VCodec   string      `json:"vcodec"`
	Ext      string      `json:"ext"`
	URL      string      `json:"url"`
	ABR      interface{} `json:"abr"`
	TBR      interface{} `json:"tbr"`
}

type ytdlpInfo struct {
	Title    string        `json:"title"`
	Duration float64       `json:"duration"`
	Formats  []ytdlpFormat `json:"formats"`
}

// probe resolves duration and available streams for url via yt-dlp.
func (e *implExtractor) probe(ctx context.Context, url string) (*videoMetadata, error) {
	out, err := e.executor.ExecuteWithDeadline(ctx, probeTimeout,
		e.cfg.YTDLPBinary, "-J", "--no-warnings", "--skip-download", url)
	if err != nil {
		return nil, fmt.Errorf("yt-dlp metadata: %w", err)
	}

	var info ytdlpInfo
	if err := json.Unmarshal([]byte(out), &info); err != nil {
		return nil, fmt.Errorf("yt-dlp metadata parse: %w", err)
	}

	meta := &videoMetadata{
		Title:    info.Title,
		Duration: info.Duration,
		Formats:  make([]StreamDescriptor, 0, len(info.Formats)),
	}
	for _, f := range info.Formats {
		if f.URL == "" {
			continue
		}
		meta.Formats = append(meta.Formats, StreamDescriptor{
			Bitrate:  parseBitrate(f.ABR, f.TBR),
			// Only an explicit "none" marks a stream as audioless; some
			// extractors omit acodec for streams that do carry audio.
			HasAudio: f.ACodec != "none",
			HasVideo: f.VCodec != "" && f.VCodec != "none",
			Location: f.URL,
			Ext:      f.Ext,
		})
	}

	return meta, nil
}

// parseBitrate resolves the audio bitrate, falling back to the total bitrate
// when abr is missing. Non-numeric values count as absent, not zero.
func parseBitrate(abr, tbr interface{}) *float64 {
	if v := toFloat(abr); v != nil {
		return v
	}
	return toFloat(tbr)
}

func toFloat(v interface{}) *float64 {
	switch n := v.(type) {
	case float64:
		return &n
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return nil
		}
		return &f
	default:
		return nil
	}
}
