// SPDX-License-Identifier: Unlicense OR MIT

// Package opentype implements parsing of OpenType font files into
// faces usable by text shapers.
package opentype

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/font"
	fontapi "github.com/go-text/typesetting/opentype/api/font"
	"github.com/go-text/typesetting/opentype/api/metadata"
	"github.com/go-text/typesetting/opentype/loader"

	uifont "frostui.org/font"
)

// Face is a thread-safe representation of a loaded font. For efficiency, applications
// should construct a face for any given font file once, reusing it across different
// text shapers.
type Face struct {
	face    font.Font
	aspect  metadata.Aspect
	family  string
	variant string
}

// Parse constructs a Face from source bytes.
func Parse(src []byte) (Face, error) {
	ld, err := loader.NewLoader(bytes.NewReader(src))
	if err != nil {
		return Face{}, err
	}
	font, aspect, family, variant, err := parseLoader(ld)
	if err != nil {
		return Face{}, fmt.Errorf("failed parsing truetype font: %w", err)
	}
	return Face{
		face:    font,
		aspect:  aspect,
		family:  family,
		variant: variant,
	}, nil
}

// ParseCollection parses an OpenType font file, with support for collections.
// Single font files are supported, returning a slice with length 1. The
// returned fonts are wrapped in FontFaces with inferred font metadata.
//
// BUG: the only Variant that can be detected automatically is "Mono".
func ParseCollection(src []byte) ([]uifont.FontFace, error) {
	lds, err := loader.NewLoaders(bytes.NewReader(src))
	if err != nil {
		return nil, err
	}
	out := make([]uifont.FontFace, len(lds))
	for i, ld := range lds {
		face, aspect, family, variant, err := parseLoader(ld)
		if err != nil {
			return nil, fmt.Errorf("reading font %d of collection: %s", i, err)
		}
		ff := Face{
			face:    face,
			aspect:  aspect,
			family:  family,
			variant: variant,
		}
		out[i] = uifont.FontFace{
			Face: ff,
			Font: ff.Font(),
		}
	}

	return out, nil
}

// parseLoader parses the contents of the loader into a face and its metadata.
func parseLoader(ld *loader.Loader) (_ font.Font, _ metadata.Aspect, family, variant string, _ error) {
	ft, err := fontapi.NewFont(ld)
	if err != nil {
		return nil, metadata.Aspect{}, "", "", err
	}
	data := metadata.Metadata(ld)
	if data.IsMonospace {
		variant = "Mono"
	}
	return ft, data.Aspect, data.Family, variant, nil
}

// Face returns a thread-unsafe wrapper for this Face suitable for use by a
// single shaper. Face may be invoked any number of times and is safe so long
// as each return value is only used by one goroutine.
func (f Face) Face() font.Face {
	return &fontapi.Face{Font: f.face}
}

// Font returns a font descriptor with populated metadata for the face.
//
// BUG: the only Variant that can be detected automatically is "Mono".
func (f Face) Font() uifont.Font {
	return uifont.Font{
		Typeface: uifont.Typeface(f.family),
		Style:    f.style(),
		Weight:   f.weight(),
		Variant:  uifont.Variant(f.variant),
	}
}

func (f Face) style() uifont.Style {
	switch f.aspect.Style {
	case metadata.StyleItalic:
		return uifont.Italic
	case metadata.StyleNormal:
		fallthrough
	default:
		return uifont.Regular
	}
}

func (f Face) weight() uifont.Weight {
	switch f.aspect.Weight {
	case metadata.WeightThin:
		return uifont.Thin
	case metadata.WeightExtraLight:
		return uifont.ExtraLight
	case metadata.WeightLight:
		return uifont.Light
	case metadata.WeightNormal:
		return uifont.Normal
	case metadata.WeightMedium:
		return uifont.Medium
	case metadata.WeightSemibold:
		return uifont.SemiBold
	case metadata.WeightBold:
		return uifont.Bold
	case metadata.WeightExtraBold:
		return uifont.ExtraBold
	case metadata.WeightBlack:
		return uifont.Black
	default:
		return uifont.Normal
	}
}
