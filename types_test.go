package jot

import (
	"errors"
	"testing"
)

// ---------------------------------------------------------------------------
// TestPageSettings_Validate - Page settings validation
// ---------------------------------------------------------------------------

func TestPageSettings_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		page    *PageSettings
		wantErr error
	}{
		{"nil is valid", nil, nil},
		{"defaults", DefaultPageSettings(), nil},
		{"a4 landscape", &PageSettings{Size: "a4", Orientation: "landscape", Margin: 1}, nil},
		{"case insensitive", &PageSettings{Size: "LEGAL", Orientation: "Portrait", Margin: 0.5}, nil},
		{"min margin", &PageSettings{Size: "letter", Orientation: "portrait", Margin: MinMargin}, nil},
		{"max margin", &PageSettings{Size: "letter", Orientation: "portrait", Margin: MaxMargin}, nil},
		{"unknown size", &PageSettings{Size: "tabloid", Orientation: "portrait", Margin: 0.5}, ErrInvalidPageSize},
		{"empty size", &PageSettings{Orientation: "portrait", Margin: 0.5}, ErrInvalidPageSize},
		{"unknown orientation", &PageSettings{Size: "a4", Orientation: "diagonal", Margin: 0.5}, ErrInvalidOrientation},
		{"margin too small", &PageSettings{Size: "a4", Orientation: "portrait", Margin: 0.1}, ErrInvalidMargin},
		{"margin too large", &PageSettings{Size: "a4", Orientation: "portrait", Margin: 3.5}, ErrInvalidMargin},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if err := tt.page.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewPageSettings(t *testing.T) {
	t.Parallel()

	p, err := NewPageSettings("", "landscape", 0)
	if err != nil {
		t.Fatalf("NewPageSettings() error = %v", err)
	}
	if p.Size != PageSizeLetter || p.Orientation != OrientationLandscape || p.Margin != DefaultMargin {
		t.Errorf("NewPageSettings() = %+v, want letter/landscape/%.2f", p, DefaultMargin)
	}

	if _, err := NewPageSettings("a5", "", 0); !errors.Is(err, ErrInvalidPageSize) {
		t.Errorf("NewPageSettings(a5) error = %v, want %v", err, ErrInvalidPageSize)
	}
}

// ---------------------------------------------------------------------------
// TestPageSettings_Dimensions - Paper size in inches
// ---------------------------------------------------------------------------

func TestPageSettings_Dimensions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		page       *PageSettings
		wantWidth  float64
		wantHeight float64
	}{
		{"nil is letter portrait", nil, 8.5, 11},
		{"letter portrait", &PageSettings{Size: "letter", Orientation: "portrait"}, 8.5, 11},
		{"letter landscape", &PageSettings{Size: "letter", Orientation: "landscape"}, 11, 8.5},
		{"a4 portrait", &PageSettings{Size: "a4", Orientation: "portrait"}, 8.27, 11.69},
		{"legal landscape", &PageSettings{Size: "Legal", Orientation: "LANDSCAPE"}, 14, 8.5},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w, h := tt.page.Dimensions()
			if w != tt.wantWidth || h != tt.wantHeight {
				t.Errorf("Dimensions() = %vx%v, want %vx%v", w, h, tt.wantWidth, tt.wantHeight)
			}
		})
	}
}

func TestPrintOptions(t *testing.T) {
	t.Parallel()

	opts := printOptions(&PageSettings{Size: "a4", Orientation: "landscape", Margin: 1.25})
	if *opts.PaperWidth != 11.69 || *opts.PaperHeight != 8.27 {
		t.Errorf("paper = %vx%v, want 11.69x8.27", *opts.PaperWidth, *opts.PaperHeight)
	}
	for name, m := range map[string]*float64{
		"top": opts.MarginTop, "bottom": opts.MarginBottom, "left": opts.MarginLeft, "right": opts.MarginRight,
	} {
		if *m != 1.25 {
			t.Errorf("margin %s = %v, want 1.25", name, *m)
		}
	}
	if !opts.PrintBackground {
		t.Error("PrintBackground = false, want true")
	}

	if def := printOptions(nil); *def.MarginTop != DefaultMargin {
		t.Errorf("default margin = %v, want %v", *def.MarginTop, DefaultMargin)
	}
}
