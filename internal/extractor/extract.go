package extractor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Full-video fallback has no window to budget from, so it gets a flat cap.
const fallbackTimeout = 10 * time.Minute

// Extract resolves metadata for one candidate URL, picks a stream, and
// drives ffmpeg to produce a bounded local audio sample. Every failure is
// returned as a typed reason; nothing escapes as a panic and no partial file
// is ever left at the canonical output path.
func (e *implExtractor) Extract(ctx context.Context, url string) (string, error) {
	id := videoID(url)
	outputPath := filepath.Join(e.downloadDir, id+".mp3")

	meta, err := e.probe(ctx, url)
	if err != nil {
		e.logger.Warn(ctx, "Metadata resolution failed for %s: %v", url, err)
		return "", fmt.Errorf("%w: %v", ErrMetadataUnavailable, err)
	}

	duration := int(meta.Duration)
	if duration <= 0 {
		e.logger.Warn(ctx, "No usable duration for %s", url)
		return "", ErrUnknownDuration
	}

	format, ok := selectAudioFormat(meta.Formats)
	if !ok {
		// Discrete fallback step: no stream qualified, so pull the whole
		// video's audio track at a moderate bitrate instead of a window.
		e.logger.Info(ctx, "No qualifying stream for %s, trying full download", url)
		path, ferr := e.fullDownload(ctx, url, outputPath)
		if ferr != nil {
			e.logger.Warn(ctx, "Full download fallback failed for %s: %v", url, ferr)
			return "", fmt.Errorf("%w: %v", ErrNoAudioFormat, ferr)
		}
		return path, nil
	}

	window, err := planWindow(duration, e.cfg.MaxSampleSeconds)
	if err != nil {
		return "", err
	}

	e.logger.Info(ctx, "Extracting %ds window at offset %ds from %s (%q)",
		window.Duration, window.Start, url, meta.Title)

	if err := e.windowedTranscode(ctx, format.Location, window, outputPath); err != nil {
		return "", err
	}

	return outputPath, nil
}

// windowedTranscode seeks into the stream and re-encodes one window to mp3.
// Output goes to a uniquely named .part file first and is renamed only after
// the size check, so a killed or failed run never corrupts the canonical path.
func (e *implExtractor) windowedTranscode(ctx context.Context, streamURL string, w extractionWindow, outputPath string) error {
	tmpPath, err := tempOutputPath(outputPath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrProcessFailed, err)
	}

	args := []string{
		"-y",
		"-loglevel", "error",
		"-nostdin",
		"-ss", strconv.Itoa(w.Start),
		"-i", streamURL,
		"-t", strconv.Itoa(w.Duration),
		"-vn",
		"-acodec", "libmp3lame",
		"-ar", strconv.Itoa(e.cfg.SampleRate),
		"-ac", strconv.Itoa(e.cfg.Channels),
		"-b:a", e.cfg.AudioBitrate,
		tmpPath,
	}

	timeout := transcodeTimeout(w, time.Duration(e.cfg.BaseTimeoutSecs)*time.Second)

	if _, err := e.executor.ExecuteWithDeadline(ctx, timeout, e.cfg.FFmpegBinary, args...); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: %v", ErrProcessFailed, err)
	}

	return finalizeOutput(tmpPath, outputPath)
}

// fullDownload is the last-resort strategy: let yt-dlp fetch and convert the
// entire audio track, then move it onto the canonical path.
func (e *implExtractor) fullDownload(ctx context.Context, url, outputPath string) (string, error) {
	tmpPath, err := tempOutputPath(outputPath)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrProcessFailed, err)
	}
	// yt-dlp creates its own output files; leave only the reserved name.
	os.Remove(tmpPath)

	args := []string{
		"-x",
		"--audio-format", "mp3",
		"--audio-quality", "96K",
		"--no-warnings",
		"-o", tmpPath,
		url,
	}

	if _, err := e.executor.ExecuteWithDeadline(ctx, fallbackTimeout, e.cfg.YTDLPBinary, args...); err != nil {
		removeGlob(tmpPath + "*")
		return "", fmt.Errorf("%w: %v", ErrProcessFailed, err)
	}

	// yt-dlp may rewrite the extension on the output template.
	if _, err := os.Stat(tmpPath); err != nil {
		matches, _ := filepath.Glob(tmpPath + "*")
		if len(matches) == 0 {
			return "", ErrEmptyOutput
		}
		tmpPath = matches[0]
	}

	if err := finalizeOutput(tmpPath, outputPath); err != nil {
		return "", err
	}
	return outputPath, nil
}

// tempOutputPath reserves a temp file next to outputPath with a unique name.
// Concurrent extractions of the same video may target the same canonical
// path; each attempt gets its own temp file so a slow transcode can never
// keep writing through a file a faster sibling already promoted.
func tempOutputPath(outputPath string) (string, error) {
	f, err := os.CreateTemp(filepath.Dir(outputPath), filepath.Base(outputPath)+".*.part")
	if err != nil {
		return "", err
	}
	f.Close()
	return f.Name(), nil
}

// finalizeOutput promotes a completed temp file to the canonical path, or
// removes it when the transcode reported success but produced nothing.
func finalizeOutput(tmpPath, outputPath string) error {
	info, err := os.Stat(tmpPath)
	if err != nil || info.Size() == 0 {
		os.Remove(tmpPath)
		return ErrEmptyOutput
	}
	if err := os.Rename(tmpPath, outputPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: %v", ErrEmptyOutput, err)
	}
	return nil
}

func removeGlob(pattern string) {
	matches, _ := filepath.Glob(pattern)
	for _, m := range matches {
		os.Remove(m)
	}
}
