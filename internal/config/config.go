package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Paths      PathsConfig      `yaml:"paths"`
	Extraction ExtractionConfig `yaml:"extraction"`
	APIs       APIsConfig       `yaml:"apis"`
	Redis      RedisConfig      `yaml:"redis"`
	Logging    LoggingConfig    `yaml:"logging"`
}

type ServerConfig struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type PathsConfig struct {
	Downloads string `yaml:"downloads"`
	Samples   string `yaml:"samples"`
}

type ExtractionConfig struct {
	MaxSampleSeconds int    `yaml:"max_sample_seconds"`
	MaxConcurrent    int    `yaml:"max_concurrent"`
	BaseTimeoutSecs  int    `yaml:"base_timeout_seconds"`
	AudioBitrate     string `yaml:"audio_bitrate"`
	SampleRate       int    `yaml:"sample_rate"`
	Channels         int    `yaml:"channels"`
	YTDLPBinary      string `yaml:"ytdlp_binary"`
	FFmpegBinary     string `yaml:"ffmpeg_binary"`
}

type APIsConfig struct {
	PerplexityKey   string   `yaml:"perplexity_key"`
	ResearchModel   string   `yaml:"research_model"`
	DiscoveryModel  string   `yaml:"discovery_model"`
	GeminiKeys      []string `yaml:"gemini_keys"`
	GeminiModel     string   `yaml:"gemini_model"`
	ElevenLabsKey   string   `yaml:"elevenlabs_key"`
	ElevenLabsModel string   `yaml:"elevenlabs_model"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads a YAML config file, expands ${ENV_VAR} references (so API keys
// stay out of the file), and applies defaults via Validate.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.APIs.PerplexityKey == "" {
		return fmt.Errorf("apis.perplexity_key is required")
	}
	if len(c.APIs.GeminiKeys) == 0 {
		return fmt.Errorf("apis.gemini_keys is required")
	}
	if c.APIs.ElevenLabsKey == "" {
		return fmt.Errorf("apis.elevenlabs_key is required")
	}

	if c.Server.Addr == "" {
		c.Server.Addr = "localhost:5000"
	}
	if len(c.Server.AllowedOrigins) == 0 {
		c.Server.AllowedOrigins = []string{"http://localhost:3000"}
	}
	if c.Paths.Downloads == "" {
		c.Paths.Downloads = "data/downloads"
	}
	if c.Paths.Samples == "" {
		c.Paths.Samples = "data/samples"
	}
	if c.Extraction.MaxSampleSeconds == 0 {
		c.Extraction.MaxSampleSeconds = 300
	}
	if c.Extraction.MaxConcurrent == 0 {
		c.Extraction.MaxConcurrent = 3
	}
	if c.Extraction.BaseTimeoutSecs < 60 {
		// Transcode watchdog needs headroom for stream startup
		c.Extraction.BaseTimeoutSecs = 60
	}
	if c.Extraction.AudioBitrate == "" {
		c.Extraction.AudioBitrate = "96k"
	}
	if c.Extraction.SampleRate == 0 {
		c.Extraction.SampleRate = 44100
	}
	if c.Extraction.Channels == 0 {
		c.Extraction.Channels = 1
	}
	if c.Extraction.YTDLPBinary == "" {
		c.Extraction.YTDLPBinary = "yt-dlp"
	}
	if c.Extraction.FFmpegBinary == "" {
		c.Extraction.FFmpegBinary = "ffmpeg"
	}
	if c.APIs.ResearchModel == "" {
		c.APIs.ResearchModel = "sonar-pro"
	}
	if c.APIs.DiscoveryModel == "" {
		c.APIs.DiscoveryModel = "sonar-reasoning-pro"
	}
	if c.APIs.GeminiModel == "" {
		c.APIs.GeminiModel = "gemini-2.0-flash"
	}
	if c.APIs.ElevenLabsModel == "" {
		c.APIs.ElevenLabsModel = "eleven_monolingual_v1"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	return nil
}
