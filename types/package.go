package types

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// ScriptSegment is one timed beat of the short-form script arc
type ScriptSegment struct {
	Order           int     `json:"order" yaml:"order"`
	Label           string  `json:"label" yaml:"label"`
	DurationSeconds float64 `json:"durationSeconds" yaml:"durationSeconds"`
	Text            string  `json:"text" yaml:"text"`
	Objective       string  `json:"objective" yaml:"objective"`
}

// NarrationLine is the voice-over for a single script segment
type NarrationLine struct {
	SegmentType  string `json:"segmentType" yaml:"segmentType"`
	Text         string `json:"text" yaml:"text"`
	VoiceProfile string `json:"voiceProfile" yaml:"voiceProfile"`
	Pacing       string `json:"pacing" yaml:"pacing"`
	Notes        string `json:"notes" yaml:"notes"`
}

// ScenePlan describes the visuals shown under a script segment
type ScenePlan struct {
	SegmentType     string `json:"segmentType" yaml:"segmentType"`
	VisualPrompt    string `json:"visualPrompt" yaml:"visualPrompt"`
	MotionDirection string `json:"motionDirection" yaml:"motionDirection"`
	SupportingBroll string `json:"supportingBroll" yaml:"supportingBroll"`
	OverlayText     string `json:"overlayText" yaml:"overlayText"`
}

// EditingBeat is a single timestamped edit instruction
type EditingBeat struct {
	Timestamp string `json:"timestamp" yaml:"timestamp"`
	Action    string `json:"action" yaml:"action"`
	Detail    string `json:"detail" yaml:"detail"`
}

// SubtitleWord is one displayed word with its offsets in seconds from script start
type SubtitleWord struct {
	Word  string  `json:"word" yaml:"word"`
	Start float64 `json:"start" yaml:"start"`
	End   float64 `json:"end" yaml:"end"`
}

// Package is the complete production blueprint generated for a category
type Package struct {
	Category          string          `json:"category" yaml:"category"`
	TrendInsights     []string        `json:"trendInsights" yaml:"trendInsights"`
	InsightSummary    string          `json:"insightSummary" yaml:"insightSummary"`
	HookFormula       string          `json:"hookFormula" yaml:"hookFormula"`
	Script            []ScriptSegment `json:"script" yaml:"script"`
	Narration         []NarrationLine `json:"narration" yaml:"narration"`
	Scenes            []ScenePlan     `json:"scenes" yaml:"scenes"`
	EditingPlan       []EditingBeat   `json:"editingPlan" yaml:"editingPlan"`
	Subtitles         []SubtitleWord  `json:"subtitles" yaml:"subtitles"`
	ViralTitles       []string        `json:"viralTitles" yaml:"viralTitles"`
	Captions          []string        `json:"captions" yaml:"captions"`
	Hashtags          []string        `json:"hashtags" yaml:"hashtags"`
	Keywords          []string        `json:"keywords" yaml:"keywords"`
	ThumbnailPrompt   string          `json:"thumbnailPrompt" yaml:"thumbnailPrompt"`
	BestPostTime      string          `json:"bestPostTime" yaml:"bestPostTime"`
	CallToAction      string          `json:"callToAction" yaml:"callToAction"`
	AutoReplyComments []string        `json:"autoReplyComments" yaml:"autoReplyComments"`
}

// TotalDuration returns the summed script duration in seconds
func (p Package) TotalDuration() float64 {
	total := 0.0
	for _, seg := range p.Script {
		total += seg.DurationSeconds
	}
	return total
}

// NarrationText joins the narration lines in segment order
func (p Package) NarrationText() string {
	parts := make([]string, 0, len(p.Narration))
	for _, line := range p.Narration {
		if t := strings.TrimSpace(line.Text); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}

// PackageID creates a stable ID from an already normalized category
func PackageID(category string) string {
	hash := sha256.Sum256([]byte(category))
	return hex.EncodeToString(hash[:])[:16]
}

// GenerationRequest is the envelope consumed by the worker
type GenerationRequest struct {
	RequestID string `json:"requestId"`
	Category  string `json:"category"`
}

// GenerationResult is the envelope published once a package is built
type GenerationResult struct {
	RequestID   string    `json:"requestId"`
	PackageID   string    `json:"packageId"`
	Status      string    `json:"status"` // "success", "invalid"
	Error       string    `json:"error,omitempty"`
	Package     *Package  `json:"package,omitempty"`
	GeneratedAt time.Time `json:"generatedAt"`
}
