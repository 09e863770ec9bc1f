// SPDX-License-Identifier: Unlicense OR MIT

package key

import (
	"testing"
)

func TestModifiersContain(t *testing.T) {
	const allMods = ModAlt | ModShift | ModSuper | ModCtrl | ModCommand
	tests := []struct {
		set        Modifiers
		matches    []Modifiers
		mismatches []Modifiers
	}{
		{ModCtrl, []Modifiers{ModCtrl, 0}, []Modifiers{ModShift, ModCtrl | ModShift}},
		{ModCtrl | ModShift, []Modifiers{ModCtrl, ModShift, ModCtrl | ModShift}, []Modifiers{ModAlt}},
		{allMods, []Modifiers{allMods, ModCommand}, nil},
	}
	for _, tst := range tests {
		for _, m := range tst.matches {
			if !tst.set.Contain(m) {
				t.Errorf("modifier set %q didn't contain %q", tst.set, m)
			}
		}
		for _, m := range tst.mismatches {
			if tst.set.Contain(m) {
				t.Errorf("modifier set %q contains %q", tst.set, m)
			}
		}
	}
}

func TestModifiersString(t *testing.T) {
	if got, want := (ModCtrl | ModShift).String(), "Ctrl-Shift"; got != want {
		t.Errorf("got %q; want %q", got, want)
	}
}
