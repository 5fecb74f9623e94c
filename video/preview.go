// Package video renders silent preview clips with the package subtitles
// burned in, so editors can check caption timing before recording.
package video

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"viralreel/config"
	"viralreel/render"
	"viralreel/subtitles"
	"viralreel/types"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// Preview describes one preview render
type Preview struct {
	Background string // any video; looped, center cropped to 9:16
	Output     string
	ASSPath    string // written next to Output when empty
}

// Command builds the ffmpeg invocation for a clip of duration seconds
func (p Preview) Command(duration float64) *exec.Cmd {
	video := ffmpeg.Input(p.Background, ffmpeg.KwArgs{"stream_loop": "-1"})

	// Crop and scale to the subtitle canvas so ASS coordinates line up
	cropped := ffmpeg.Filter(
		[]*ffmpeg.Stream{video},
		"crop",
		ffmpeg.Args{"ih*9/16", "ih"},
	).Filter(
		"scale",
		ffmpeg.Args{fmt.Sprint(config.SubtitlePlayResX), fmt.Sprint(config.SubtitlePlayResY)},
	)

	// ffmpeg-go escapes filter arguments; paths only need forward slashes
	withSubs := ffmpeg.Filter([]*ffmpeg.Stream{cropped}, "ass", ffmpeg.Args{filepath.ToSlash(p.assPath())})

	return ffmpeg.Output([]*ffmpeg.Stream{withSubs}, p.Output, ffmpeg.KwArgs{
		"t":      fmt.Sprintf("%.2f", duration+config.VideoEndPadding),
		"c:v":    config.VideoCodec,
		"preset": config.VideoPreset,
		"an":     "",
	}).OverWriteOutput().Compile()
}

// Prepare writes the ASS script for pkg and returns the ffmpeg command
// that burns it into the background
func (p Preview) Prepare(pkg types.Package) (*exec.Cmd, error) {
	if p.Background == "" || p.Output == "" {
		return nil, fmt.Errorf("preview needs a background video and an output path")
	}

	ass := subtitles.ASS(subtitles.Lines(pkg), render.Headline(pkg))
	if err := os.WriteFile(p.assPath(), []byte(ass), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write subtitles: %w", err)
	}
	return p.Command(pkg.TotalDuration()), nil
}

// Render prepares and runs the ffmpeg command
func (p Preview) Render(pkg types.Package) error {
	cmd, err := p.Prepare(pkg)
	if err != nil {
		return err
	}
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("ffmpeg failed: %w\n%s", err, out)
	}
	return nil
}

func (p Preview) assPath() string {
	if p.ASSPath != "" {
		return p.ASSPath
	}
	return strings.TrimSuffix(p.Output, filepath.Ext(p.Output)) + ".ass"
}
