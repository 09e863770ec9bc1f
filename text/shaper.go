// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"

	"frostui.org/f32"
	uifont "frostui.org/font"
)

// Parameters specify how a body of text should be laid out.
type Parameters struct {
	// Font describes the preferred typeface.
	Font uifont.Font
	// PxPerEm is the size of the text in pixels per em.
	PxPerEm fixed.Int26_6
	// MaxWidth is the width in pixels available for a line of text.
	// Text longer than MaxWidth wraps onto new lines.
	MaxWidth int
	// Direction is the dominant direction of the text.
	Direction Direction
	// Language is a BCP-47 tag describing the language of the text.
	Language string
}

// Shaper converts strings of text into measurements that can be
// queried for dimensions and hit tested. Results are cached and
// reused across calls until Trim evicts them.
//
// A Shaper is not safe for concurrent use.
type Shaper struct {
	orderer faceOrderer

	shaper        shaping.HarfbuzzShaper
	wrapper       shaping.LineWrapper
	bidiParagraph bidi.Paragraph

	cache layoutCache

	// Scratch buffers reused between shaping operations.
	splitScratch1, splitScratch2 []shaping.Input
	outScratch                   []shaping.Output
}

// NewShaper constructs a shaper with the provided font collection.
// Faces are prioritized in collection order, with the first face
// being the default.
func NewShaper(collection []uifont.FontFace) *Shaper {
	s := new(Shaper)
	for _, f := range collection {
		s.orderer.insert(f.Font, f.Face.Face())
	}
	return s
}

// MeasureString returns the dimensions of txt laid out with params.
func (s *Shaper) MeasureString(params Parameters, txt string) f32.Point {
	return s.layoutString(params, txt).size()
}

// HitTest locates the character of txt, laid out with params, at
// point. If nearestOnly is false and point lies within a character's
// box that character is reported as a direct hit; otherwise the
// character with the nearest box centroid is reported. The second
// return value is false when txt contains no characters.
func (s *Shaper) HitTest(params Parameters, txt string, point f32.Point, nearestOnly bool) (Hit, bool) {
	return s.layoutString(params, txt).hitTest(point, nearestOnly)
}

// Trim evicts cached layouts that have not been used since the
// previous call to Trim.
func (s *Shaper) Trim() {
	s.cache.Trim()
}

// layoutString shapes txt with params, returning a cached result
// when available.
func (s *Shaper) layoutString(params Parameters, txt string) document {
	key := layoutKey{
		ppem:     params.PxPerEm,
		maxWidth: params.MaxWidth,
		str:      txt,
		dir:      params.Direction,
		lang:     params.Language,
		font:     params.Font,
	}
	if doc, ok := s.cache.Get(key); ok {
		return doc
	}
	doc := s.layoutText(params, []rune(txt))
	s.cache.Put(key, doc)
	return doc
}

// layoutText splits txt into paragraphs, shapes and wraps each, and
// assembles the result. Rune offsets within the returned document are
// relative to the whole of txt.
func (s *Shaper) layoutText(params Parameters, txt []rune) document {
	var doc document
	faces := s.orderer.sortedFacesFor(params.Font)
	start := 0
	for i := 0; i <= len(txt); i++ {
		if i != len(txt) && txt[i] != '\n' {
			continue
		}
		para := replaceControlCharacters(txt[start:i])
		for _, wrapped := range s.shapeAndWrap(faces, params, para) {
			l := toLine(wrapped, params.Direction)
			for ri := range l.runs {
				run := &l.runs[ri]
				run.runes.Offset += start
				for gi := range run.glyphs {
					run.glyphs[gi].clusterIndex += start
				}
			}
			doc.lines = append(doc.lines, l)
		}
		start = i + 1
	}
	calculateYOffsets(doc.lines)
	return doc
}

// shapeAndWrap invokes the text shaper and wraps the output into lines.
func (s *Shaper) shapeAndWrap(faces []font.Face, params Parameters, paragraph []rune) []shaping.Line {
	runs := shaping.NewSliceIterator(s.shapeText(faces, params, paragraph))
	lines, _ := s.wrapper.WrapParagraph(shaping.WrapConfig{}, params.MaxWidth, paragraph, runs)
	return lines
}

// shapeText invokes the text shaper and returns the raw shaped runs.
// It does not wrap lines.
func (s *Shaper) shapeText(faces []font.Face, params Parameters, txt []rune) []shaping.Output {
	if len(faces) < 1 {
		return nil
	}
	lang := "en"
	if params.Language != "" {
		lang = params.Language
	}
	lcfg := langConfig{
		Language:  language.NewLanguage(lang),
		Direction: mapDirection(params.Direction),
	}
	// Create an initial input covering the whole text.
	input := toInput(faces[0], params.PxPerEm, lcfg, txt)
	// Break the input on direction, font coverage and script boundaries.
	inputs := s.splitBidi(input)
	inputs = s.splitByFaces(inputs, faces, s.splitScratch1[:0])
	inputs = splitByScript(inputs, s.splitScratch2[:0])
	// Shape all inputs.
	s.outScratch = s.outScratch[:0]
	for _, in := range inputs {
		s.outScratch = append(s.outScratch, s.shaper.Shape(in))
	}
	return s.outScratch
}

// splitBidi divides the input on boundaries of bidirectional text,
// setting the direction of each returned run.
func (s *Shaper) splitBidi(input shaping.Input) []shaping.Input {
	var splitInputs []shaping.Input
	if input.Direction.Axis() != di.Horizontal || input.RunStart == input.RunEnd {
		return []shaping.Input{input}
	}
	def := bidi.LeftToRight
	if input.Direction.Progression() == di.TowardTopLeft {
		def = bidi.RightToLeft
	}
	s.bidiParagraph.SetString(string(input.Text), bidi.DefaultDirection(def))
	out, err := s.bidiParagraph.Order()
	if err != nil {
		return []shaping.Input{input}
	}
	for i := 0; i < out.NumRuns(); i++ {
		currentInput := input
		run := out.Run(i)
		dir := run.Direction()
		_, endRune := run.Pos()
		currentInput.RunEnd = endRune + 1
		if dir == bidi.RightToLeft {
			currentInput.Direction = di.DirectionRTL
		} else {
			currentInput.Direction = di.DirectionLTR
		}
		splitInputs = append(splitInputs, currentInput)
		input.RunStart = currentInput.RunEnd
	}
	return splitInputs
}

// splitByFaces divides the inputs by font coverage in the provided
// faces. It will use buf as the backing storage of the returned slice
// if buf is non-nil.
func (s *Shaper) splitByFaces(inputs []shaping.Input, faces []font.Face, buf []shaping.Input) []shaping.Input {
	var split []shaping.Input
	if buf == nil {
		split = make([]shaping.Input, 0, len(inputs))
	} else {
		split = buf
	}
	for _, input := range inputs {
		split = append(split, shaping.SplitByFontGlyphs(input, faces)...)
	}
	return split
}

// splitByScript divides the inputs into new, smaller inputs on script
// boundaries and sets the script of each. It will use buf as the
// backing memory for the returned slice if buf is non-nil.
func splitByScript(inputs []shaping.Input, buf []shaping.Input) []shaping.Input {
	var splitInputs []shaping.Input
	if buf == nil {
		splitInputs = make([]shaping.Input, 0, len(inputs))
	} else {
		splitInputs = buf
	}
	for _, input := range inputs {
		currentInput := input
		if input.RunStart == input.RunEnd {
			return []shaping.Input{input}
		}
		firstNonCommonRune := input.RunStart
		for i := firstNonCommonRune; i < input.RunEnd; i++ {
			if language.LookupScript(input.Text[i]) != language.Common {
				firstNonCommonRune = i
				break
			}
		}
		currentInput.Script = language.LookupScript(input.Text[firstNonCommonRune])
		for i := firstNonCommonRune + 1; i < input.RunEnd; i++ {
			r := input.Text[i]
			runeScript := language.LookupScript(r)

			if runeScript == language.Common || runeScript == currentInput.Script {
				continue
			}

			if i != input.RunStart {
				currentInput.RunEnd = i
				splitInputs = append(splitInputs, currentInput)
			}

			currentInput = input
			currentInput.RunStart = i
			currentInput.Script = runeScript
		}
		// Close and add the last input.
		currentInput.RunEnd = input.RunEnd
		splitInputs = append(splitInputs, currentInput)
	}

	return splitInputs
}

// replaceControlCharacters replaces problematic unicode
// code points with spaces to ensure proper rune accounting.
func replaceControlCharacters(in []rune) []rune {
	for i, r := range in {
		switch r {
		// ASCII File separator.
		case '':
		// ASCII Group separator.
		case '':
		// ASCII Record separator.
		case '':
		case '\r':
		case '\n':
		// Unicode "next line" character.
		case '':
		// Unicode "paragraph separator".
		case ' ':
		default:
			continue
		}
		in[i] = ' '
	}
	return in
}

// langConfig describes the language and writing system of a body of text.
type langConfig struct {
	// Language the text is written in.
	language.Language
	// Writing system used to represent the text.
	language.Script
	// Direction of the text, usually driven by the writing system.
	di.Direction
}

// toInput converts its parameters into a shaping.Input.
func toInput(face font.Face, ppem fixed.Int26_6, lc langConfig, runes []rune) shaping.Input {
	var input shaping.Input
	input.Direction = lc.Direction
	input.Text = runes
	input.Size = ppem
	input.Face = face
	input.Language = lc.Language
	input.Script = lc.Script
	input.RunStart = 0
	input.RunEnd = len(runes)
	return input
}

func mapDirection(d Direction) di.Direction {
	switch d {
	case RTL:
		return di.DirectionRTL
	default:
		return di.DirectionLTR
	}
}

func unmapDirection(d di.Direction) Direction {
	switch d {
	case di.DirectionRTL:
		return RTL
	default:
		return LTR
	}
}

// toGlyphs converts shaper glyphs into the minimal representation
// needed for measurement.
func toGlyphs(in []shaping.Glyph) []glyph {
	out := make([]glyph, 0, len(in))
	for _, g := range in {
		out = append(out, glyph{
			clusterIndex: g.ClusterIndex,
			runeCount:    g.RuneCount,
			glyphCount:   g.GlyphCount,
			xAdvance:     g.XAdvance,
			yAdvance:     g.YAdvance,
			xOffset:      g.XOffset,
			yOffset:      g.YOffset,
		})
	}
	return out
}

// toLine converts a wrapped line into a line with the provided
// dominant text direction.
func toLine(o shaping.Line, dir Direction) line {
	if len(o) < 1 {
		return line{}
	}
	l := line{
		runs:      make([]runLayout, len(o)),
		direction: dir,
	}
	for i := range o {
		run := o[i]
		l.runs[i] = runLayout{
			glyphs: toGlyphs(run.Glyphs),
			runes: Range{
				Count:  run.Runes.Count,
				Offset: run.Runes.Offset,
			},
			direction: unmapDirection(run.Direction),
			advance:   run.Advance,
		}
		l.runeCount += run.Runes.Count
		l.width += run.Advance
		if l.ascent < run.LineBounds.Ascent {
			l.ascent = run.LineBounds.Ascent
		}
		if desc := -run.LineBounds.Descent + run.LineBounds.Gap; l.descent < desc {
			l.descent = desc
		}
	}
	computeVisualOrder(&l)
	return l
}

// computeVisualOrder populates the line's visualOrder field and the
// visualPosition field of each run, and resolves the X of each run.
func computeVisualOrder(l *line) {
	l.visualOrder = make([]int, len(l.runs))
	const none = -1
	bidiRangeStart := none

	// visPos returns the visual position for an individual
	// logically-indexed run in this line, taking only the line's
	// overall text direction into account.
	visPos := func(logicalIndex int) int {
		if l.direction == RTL {
			return len(l.runs) - 1 - logicalIndex
		}
		return logicalIndex
	}

	// resolveBidi populates the line's visual order fields for the
	// elements in the half-open range [bidiRangeStart:bidiRangeEnd)
	// indicating that those elements should be displayed in
	// reverse-visual order.
	resolveBidi := func(bidiRangeStart, bidiRangeEnd int) {
		firstVisual := bidiRangeEnd - 1
		for startIdx := bidiRangeStart; startIdx < bidiRangeEnd; startIdx++ {
			pos := visPos(firstVisual)
			l.runs[startIdx].visualPosition = pos
			l.visualOrder[pos] = startIdx
			firstVisual--
		}
	}
	for runIdx, run := range l.runs {
		if run.direction != l.direction {
			if bidiRangeStart == none {
				bidiRangeStart = runIdx
			}
			continue
		} else if bidiRangeStart != none {
			// Just found the end of a bidi range.
			resolveBidi(bidiRangeStart, runIdx)
			bidiRangeStart = none
		}
		pos := visPos(runIdx)
		l.runs[runIdx].visualPosition = pos
		l.visualOrder[pos] = runIdx
	}
	if bidiRangeStart != none {
		// Iteration ended within a bidi segment, resolve it.
		resolveBidi(bidiRangeStart, len(l.runs))
	}
	// Iterate and resolve the X of each run.
	x := fixed.Int26_6(0)
	for _, runIdx := range l.visualOrder {
		l.runs[runIdx].x = x
		x += l.runs[runIdx].advance
	}
}

// faceOrderer chooses the order in which faces are applied to text.
type faceOrderer struct {
	def         uifont.Font
	fonts       []uifont.Font
	faces       map[uifont.Font]font.Face
	faceScratch []font.Face
}

func (o *faceOrderer) insert(fnt uifont.Font, face font.Face) {
	if len(o.fonts) == 0 {
		o.def = fnt
	}
	if o.faces == nil {
		o.faces = make(map[uifont.Font]font.Face)
	}
	if _, ok := o.faces[fnt]; ok {
		return
	}
	o.fonts = append(o.fonts, fnt)
	o.faces[fnt] = face
}

// sortedFacesFor returns the registered faces with the best match for
// fnt first and the remaining faces in registration order.
func (o *faceOrderer) sortedFacesFor(fnt uifont.Font) []font.Face {
	primary, ok := o.fontForStyle(fnt)
	if !ok {
		fnt.Typeface = o.def.Typeface
		primary, ok = o.fontForStyle(fnt)
		if !ok {
			primary = o.def
		}
	}
	o.faceScratch = o.faceScratch[:0]
	if face, ok := o.faces[primary]; ok {
		o.faceScratch = append(o.faceScratch, face)
	}
	for _, f := range o.fonts {
		if f == primary {
			continue
		}
		o.faceScratch = append(o.faceScratch, o.faces[f])
	}
	return o.faceScratch
}

// fontForStyle returns the closest existing font to the requested
// font within the same typeface.
func (o *faceOrderer) fontForStyle(fnt uifont.Font) (uifont.Font, bool) {
	if closest, ok := closestFont(fnt, o.fonts); ok {
		return closest, true
	}
	fnt.Style = uifont.Regular
	if closest, ok := closestFont(fnt, o.fonts); ok {
		return closest, true
	}
	return fnt, false
}

// closestFont returns the closest Font in available by weight.
// In case of equality the lighter weight will be returned.
func closestFont(lookup uifont.Font, available []uifont.Font) (uifont.Font, bool) {
	found := false
	var match uifont.Font
	for _, cf := range available {
		if cf == lookup {
			return lookup, true
		}
		if cf.Typeface != lookup.Typeface || cf.Variant != lookup.Variant || cf.Style != lookup.Style {
			continue
		}
		if !found {
			found = true
			match = cf
			continue
		}
		cDist := weightDistance(lookup.Weight, cf.Weight)
		mDist := weightDistance(lookup.Weight, match.Weight)
		if cDist < mDist {
			match = cf
		} else if cDist == mDist && cf.Weight < match.Weight {
			match = cf
		}
	}
	return match, found
}

// weightDistance returns the distance value between two font weights.
func weightDistance(wa uifont.Weight, wb uifont.Weight) int {
	// Avoid dealing with negative Weight values.
	a := int(wa) + 400
	b := int(wb) + 400
	diff := a - b
	if diff < 0 {
		return -diff
	}
	return diff
}
