package extractor

// selectAudioFormat picks the stream best suited for a voice sample.
// Ordered preference, first match wins:
//  1. bitrate in the 64-96kbps speech sweet spot
//  2. any bitrate <= 128kbps
//  3. an audio-only stream
//  4. the first stream that has audio at all
//
// Streams without an audio codec are never returned. Streams with an absent
// bitrate skip the bitrate tiers but stay eligible for 3 and 4. The result is
// always an element of formats, never synthesized.
func selectAudioFormat(formats []StreamDescriptor) (StreamDescriptor, bool) {
	audio := make([]StreamDescriptor, 0, len(formats))
	for _, f := range formats {
		if f.HasAudio {
			audio = append(audio, f)
		}
	}
	if len(audio) == 0 {
		return StreamDescriptor{}, false
	}

	for _, f := range audio {
		if f.Bitrate != nil && *f.Bitrate >= 64 && *f.Bitrate <= 96 {
			return f, true
		}
	}

	for _, f := range audio {
		if f.Bitrate != nil && *f.Bitrate <= 128 {
			return f, true
		}
	}

	for _, f := range audio {
		if !f.HasVideo {
			return f, true
		}
	}

	return audio[0], true
}
