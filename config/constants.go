package config

import "time"

// Script Timing Constants
const (
	// MinTotalSeconds is the shortest allowed script (short-form window lower bound)
	MinTotalSeconds = 12.0

	// MaxTotalSeconds is the longest allowed script (short-form window upper bound)
	MaxTotalSeconds = 19.0

	// MinSegmentSeconds is the minimum readable duration of any segment
	MinSegmentSeconds = 1.0

	// MaxWordsPerSecond caps narration density so every line is speakable in its segment
	MaxWordsPerSecond = 3.0

	// MinWordSeconds is the floor applied to each subtitle word
	MinWordSeconds = 0.12
)

// Category Constants
const (
	// DefaultCategory is used when the caller passes an empty or blank category
	DefaultCategory = "viral content"
)

// Subtitle Export Constants
const (
	// SubtitleMaxWordsLine is the maximum number of words grouped into one subtitle line
	SubtitleMaxWordsLine = 4

	// SubtitleFontSize is the ASS font size for the 1080x1920 canvas
	SubtitleFontSize = 72

	// SubtitlePlayResX is the ASS script width (9:16 aspect ratio)
	SubtitlePlayResX = 1080

	// SubtitlePlayResY is the ASS script height (9:16 aspect ratio)
	SubtitlePlayResY = 1920
)

// Preview Video Constants
const (
	// VideoCodec is the preview encoding codec
	VideoCodec = "libx264"

	// VideoPreset is the ffmpeg encoding speed preset
	VideoPreset = "fast"

	// VideoEndPadding keeps the last frame on screen after the final word (seconds)
	VideoEndPadding = 0.5
)

// Service Constants
const (
	// DefaultPort is the API server port when PORT is unset
	DefaultPort = "8080"

	// DefaultCacheTTL is how long a generated package stays in Redis
	DefaultCacheTTL = time.Hour

	// DefaultBatchConcurrency limits the number of packages generated simultaneously in batch mode
	DefaultBatchConcurrency = 4

	// DefaultBatchOutputDir is where batch mode writes package files
	DefaultBatchOutputDir = "output"

	// PublishTimeout bounds a single S3 upload
	PublishTimeout = 30 * time.Second
)

// Kafka Constants
const (
	// DefaultRequestsTopic carries GenerationRequest messages
	DefaultRequestsTopic = "viralreel.generation.requests"

	// DefaultResultsTopic carries GenerationResult messages
	DefaultResultsTopic = "viralreel.generation.results"

	// DefaultConsumerGroup is the worker consumer group
	DefaultConsumerGroup = "viralreel-worker"
)
