// SPDX-License-Identifier: Unlicense OR MIT

package headless

import (
	"encoding/xml"
	"image"
	"io"
	"strconv"
	"strings"
)

// svgDimensions extracts the viewport dimensions from the root
// element of an SVG document: the width and height attributes when
// present, otherwise the viewBox extent. Malformed documents yield
// the zero point.
func svgDimensions(r io.Reader) image.Point {
	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if err != nil {
			return image.Point{}
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if start.Name.Local != "svg" {
			return image.Point{}
		}
		var width, height float64
		var viewBox string
		for _, attr := range start.Attr {
			switch attr.Name.Local {
			case "width":
				width = svgLength(attr.Value)
			case "height":
				height = svgLength(attr.Value)
			case "viewBox":
				viewBox = attr.Value
			}
		}
		if width > 0 && height > 0 {
			return image.Pt(int(width+.5), int(height+.5))
		}
		if viewBox != "" {
			if fields := strings.Fields(strings.ReplaceAll(viewBox, ",", " ")); len(fields) == 4 {
				w, errW := strconv.ParseFloat(fields[2], 64)
				h, errH := strconv.ParseFloat(fields[3], 64)
				if errW == nil && errH == nil && w > 0 && h > 0 {
					return image.Pt(int(w+.5), int(h+.5))
				}
			}
		}
		return image.Point{}
	}
}

// svgLength parses a length attribute, ignoring a trailing px unit.
// Lengths in other units are not resolvable without a rendering
// context and parse as zero.
func svgLength(v string) float64 {
	v = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(v), "px"))
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 {
		return 0
	}
	return f
}
