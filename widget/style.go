// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image/color"
	"math"
)

// ContainerStyle decorates a Container and the overlay surfaces that
// borrow its look, such as Tooltip and Modal.
type ContainerStyle struct {
	// TextColor overrides the inherited text color when non-zero.
	TextColor    color.NRGBA
	Background   color.NRGBA
	BorderRadius float32
	BorderWidth  float32
	BorderColor  color.NRGBA
}

// ContainerStyleSheet produces a container style. A nil sheet means
// an undecorated container.
type ContainerStyleSheet interface {
	Style() ContainerStyle
}

func containerStyle(s ContainerStyleSheet) ContainerStyle {
	if s == nil {
		return ContainerStyle{}
	}
	return s.Style()
}

// RadioStyle is the appearance of a Radio button.
type RadioStyle struct {
	Background  color.NRGBA
	DotColor    color.NRGBA
	BorderWidth float32
	BorderColor color.NRGBA
	// TextColor overrides the inherited text color when non-zero.
	TextColor color.NRGBA
}

// RadioStyleSheet produces a radio style for an interaction state.
type RadioStyleSheet interface {
	Active() RadioStyle
	Hovered() RadioStyle
}

type defaultRadioSheet struct{}

func (defaultRadioSheet) Active() RadioStyle {
	return RadioStyle{
		Background:  color.NRGBA{R: 0xf2, G: 0xf2, B: 0xf2, A: 0xff},
		DotColor:    color.NRGBA{R: 0x4d, G: 0x4d, B: 0x4d, A: 0xff},
		BorderWidth: 1,
		BorderColor: color.NRGBA{R: 0x99, G: 0x99, B: 0x99, A: 0xff},
	}
}

func (d defaultRadioSheet) Hovered() RadioStyle {
	s := d.Active()
	s.Background = color.NRGBA{R: 0xe6, G: 0xe6, B: 0xe6, A: 0xff}
	return s
}

func radioStyle(s RadioStyleSheet, hovered bool) RadioStyle {
	if s == nil {
		s = defaultRadioSheet{}
	}
	if hovered {
		return s.Hovered()
	}
	return s.Active()
}

// TogglerStyle is the appearance of a Toggler.
type TogglerStyle struct {
	Background       color.NRGBA
	BackgroundBorder color.NRGBA
	Foreground       color.NRGBA
	ForegroundBorder color.NRGBA
}

// TogglerStyleSheet produces a toggler style for an interaction
// state and the current value.
type TogglerStyleSheet interface {
	Active(on bool) TogglerStyle
	Hovered(on bool) TogglerStyle
}

type defaultTogglerSheet struct{}

func (defaultTogglerSheet) Active(on bool) TogglerStyle {
	s := TogglerStyle{
		Background: color.NRGBA{R: 0xb3, G: 0xb3, B: 0xb3, A: 0xff},
		Foreground: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	}
	if on {
		s.Background = color.NRGBA{G: 0xcc, A: 0xff}
	}
	return s
}

func (d defaultTogglerSheet) Hovered(on bool) TogglerStyle {
	s := d.Active(on)
	s.Foreground = color.NRGBA{R: 0xf2, G: 0xf2, B: 0xf2, A: 0xff}
	return s
}

func togglerStyle(s TogglerStyleSheet, hovered, on bool) TogglerStyle {
	if s == nil {
		s = defaultTogglerSheet{}
	}
	if hovered {
		return s.Hovered(on)
	}
	return s.Active(on)
}

// FillMode controls how much of the space given to a Rule its line
// occupies.
//
// The zero value fills all of it.
type FillMode struct {
	kind          uint8
	percent       float32
	first, second float32
}

const (
	fillFull uint8 = iota
	fillPercent
	fillPadded
)

// FillPercent centers the line in the space, filling the given
// percentage of it.
func FillPercent(percent float32) FillMode {
	return FillMode{kind: fillPercent, percent: percent}
}

// FillPadded insets the line by padding on both ends.
func FillPadded(padding float32) FillMode {
	return FillMode{kind: fillPadded, first: padding, second: padding}
}

// FillPaddedAsymmetric insets the line by different paddings at each
// end.
func FillPaddedAsymmetric(first, second float32) FillMode {
	return FillMode{kind: fillPadded, first: first, second: second}
}

// Fill returns the offset and length of the line within space.
func (m FillMode) Fill(space float32) (offset, length float32) {
	switch m.kind {
	case fillFull:
		return 0, space
	case fillPercent:
		if m.percent >= 100 {
			return 0, space
		}
		length = float32(math.Round(float64(space * m.percent / 100)))
		offset = float32(math.Round(float64((space - length) / 2)))
		return offset, length
	case fillPadded:
		length = space - m.first - m.second
		if length < 0 {
			length = 0
		}
		return m.first, length
	default:
		panic("unreachable")
	}
}

// RuleStyle is the appearance of a Rule.
type RuleStyle struct {
	Color color.NRGBA
	// Width is the line thickness.
	Width  float32
	Radius float32
	Mode   FillMode
}

// RuleStyleSheet produces a rule style.
type RuleStyleSheet interface {
	Style() RuleStyle
}

type defaultRuleSheet struct{}

func (defaultRuleSheet) Style() RuleStyle {
	return RuleStyle{
		Color: color.NRGBA{R: 0x99, G: 0x99, B: 0x99, A: 0xff},
		Width: 1,
		Mode:  FillPercent(90),
	}
}

func ruleStyle(s RuleStyleSheet) RuleStyle {
	if s == nil {
		s = defaultRuleSheet{}
	}
	return s.Style()
}
