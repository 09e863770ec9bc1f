// SPDX-License-Identifier: Unlicense OR MIT

package event

import "testing"

func TestStatusMerge(t *testing.T) {
	tests := []struct {
		a, b, want Status
	}{
		{Ignored, Ignored, Ignored},
		{Ignored, Captured, Captured},
		{Captured, Ignored, Captured},
		{Captured, Captured, Captured},
	}
	for _, tc := range tests {
		if got := tc.a.Merge(tc.b); got != tc.want {
			t.Errorf("%v.Merge(%v) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestQueueOrder(t *testing.T) {
	var q Queue
	q.Push("first")
	q.Push(2)
	q.Push("third")
	if got, want := q.Len(), 3; got != want {
		t.Fatalf("Len: got %d, want %d", got, want)
	}
	msgs := q.Drain()
	if got, want := len(msgs), 3; got != want {
		t.Fatalf("Drain: got %d messages, want %d", got, want)
	}
	if msgs[0] != "first" || msgs[1] != 2 || msgs[2] != "third" {
		t.Errorf("Drain: got %v out of order", msgs)
	}
	if got, want := q.Len(), 0; got != want {
		t.Errorf("Len after Drain: got %d, want %d", got, want)
	}
	if msgs := q.Drain(); msgs != nil {
		t.Errorf("second Drain: got %v, want nil", msgs)
	}
}
