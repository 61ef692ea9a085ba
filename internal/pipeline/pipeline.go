// Package pipeline orchestrates the brainseg run: load the slice,
// classify pixels into tissue masks, encode the masks, and write the
// output document. The whole run is one synchronous pass; any failure
// aborts it with no partial output.
package pipeline

import (
	"fmt"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/rs/zerolog"

	"brainseg/internal/config"
	"brainseg/internal/imaging"
	"brainseg/internal/segment"
)

// Kind labels the stage a run failed in, so operators can tell bad
// input from an encoding failure from an unwritable output location.
type Kind int

const (
	// KindInput covers missing, malformed or empty source images.
	KindInput Kind = iota + 1

	// KindEncoding covers PNG serialization failures.
	KindEncoding

	// KindOutput covers failures writing result files.
	KindOutput
)

// String returns the operator-facing label for the failure stage.
func (k Kind) String() string {
	switch k {
	case KindInput:
		return "input error"
	case KindEncoding:
		return "encoding error"
	case KindOutput:
		return "output error"
	default:
		return "error"
	}
}

// Error wraps a stage failure with its Kind. It unwraps to the
// underlying cause, so errors.Is/As keep working through it.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Pipeline runs the load -> classify -> encode -> write transform once.
type Pipeline struct {
	cfg *config.Config
	log zerolog.Logger
}

// New creates a pipeline for the given configuration.
func New(cfg *config.Config, log zerolog.Logger) *Pipeline {
	return &Pipeline{cfg: cfg, log: log}
}

// Run executes the transform. It returns nil on success; otherwise a
// *Error whose Kind identifies the failed stage. Either all three masks
// are encoded and written, or nothing is.
func (p *Pipeline) Run() error {
	src, err := imaging.LoadGrayscale(p.cfg.Input.Path)
	if err != nil {
		return &Error{Kind: KindInput, Err: err}
	}
	bounds := src.Bounds()
	p.log.Info().
		Str("path", p.cfg.Input.Path).
		Int("width", bounds.Dx()).
		Int("height", bounds.Dy()).
		Msg("loaded input slice")

	bands := segment.DefaultBands()
	masks, err := segment.BuildMasks(src, bands)
	if err != nil {
		return &Error{Kind: KindInput, Err: err}
	}

	for _, s := range segment.ComputeStats(src, bands) {
		p.log.Debug().
			Stringer("tissue", s.Tissue).
			Int("pixels", s.Pixels).
			Float64("fraction", s.Fraction).
			Float64("mean_intensity", s.MeanIntensity).
			Float64("std_dev", s.StdDev).
			Msg("tissue statistics")
	}

	doc, err := segment.EncodeMasks(masks)
	if err != nil {
		return &Error{Kind: KindEncoding, Err: err}
	}

	if err := doc.WriteFile(p.cfg.Output.Path); err != nil {
		return &Error{Kind: KindOutput, Err: err}
	}

	if p.cfg.Output.OverlayPath != "" {
		overlay, err := segment.Overlay(src, masks)
		if err != nil {
			return &Error{Kind: KindEncoding, Err: err}
		}
		if err := imgio.Save(p.cfg.Output.OverlayPath, overlay, imgio.PNGEncoder()); err != nil {
			return &Error{Kind: KindOutput, Err: fmt.Errorf("failed to write overlay: %w", err)}
		}
		p.log.Info().Str("path", p.cfg.Output.OverlayPath).Msg("wrote overlay")
	}

	p.log.Info().Str("path", p.cfg.Output.Path).Msg("masks generated successfully")
	return nil
}
