package jot

import (
	"fmt"
	"strings"
)

// Page size constants.
const (
	PageSizeLetter = "letter"
	PageSizeA4     = "a4"
	PageSizeLegal  = "legal"
)

// Orientation constants.
const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
)

// Margin bounds in inches.
const (
	MinMargin     = 0.25
	MaxMargin     = 3.0
	DefaultMargin = 0.5
)

// pageDimensions holds portrait width and height in inches.
var pageDimensions = map[string][2]float64{
	PageSizeLetter: {8.5, 11},
	PageSizeA4:     {8.27, 11.69},
	PageSizeLegal:  {8.5, 14},
}

// PageSettings configures PDF page dimensions.
type PageSettings struct {
	Size        string  // "letter", "a4", "legal"
	Orientation string  // "portrait", "landscape"
	Margin      float64 // inches, applied to all sides
}

// DefaultPageSettings returns page settings with default values.
func DefaultPageSettings() *PageSettings {
	return &PageSettings{
		Size:        PageSizeLetter,
		Orientation: OrientationPortrait,
		Margin:      DefaultMargin,
	}
}

// NewPageSettings builds settings from optional values; empty strings and a
// zero margin take the defaults. The result is validated.
func NewPageSettings(size, orientation string, margin float64) (*PageSettings, error) {
	p := DefaultPageSettings()
	if size != "" {
		p.Size = size
	}
	if orientation != "" {
		p.Orientation = orientation
	}
	if margin != 0 {
		p.Margin = margin
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks that page settings are valid.
// Returns nil if p is nil (nil means use defaults).
// Comparison is case-insensitive.
func (p *PageSettings) Validate() error {
	if p == nil {
		return nil
	}

	if _, ok := pageDimensions[strings.ToLower(p.Size)]; !ok {
		return fmt.Errorf("%w: %q (must be letter, a4 or legal)", ErrInvalidPageSize, p.Size)
	}

	switch strings.ToLower(p.Orientation) {
	case OrientationPortrait, OrientationLandscape:
	default:
		return fmt.Errorf("%w: %q (must be portrait or landscape)", ErrInvalidOrientation, p.Orientation)
	}

	if p.Margin < MinMargin || p.Margin > MaxMargin {
		return fmt.Errorf("%w: %.2f (must be between %.2f and %.2f)", ErrInvalidMargin, p.Margin, MinMargin, MaxMargin)
	}

	return nil
}

// Dimensions returns the paper width and height in inches, swapped for
// landscape. A nil or invalid receiver yields US Letter portrait.
func (p *PageSettings) Dimensions() (width, height float64) {
	if p == nil {
		d := pageDimensions[PageSizeLetter]
		return d[0], d[1]
	}
	d, ok := pageDimensions[strings.ToLower(p.Size)]
	if !ok {
		d = pageDimensions[PageSizeLetter]
	}
	if strings.EqualFold(p.Orientation, OrientationLandscape) {
		return d[1], d[0]
	}
	return d[0], d[1]
}

// margin returns the margin in inches, defaulting for a nil receiver.
func (p *PageSettings) margin() float64 {
	if p == nil {
		return DefaultMargin
	}
	return p.Margin
}
