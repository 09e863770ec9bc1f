// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"strconv"
	"testing"
)

func TestLayoutLRU(t *testing.T) {
	c := new(layoutCache)
	put := func(i int) {
		c.Put(layoutKey{str: strconv.Itoa(i)}, document{})
	}
	get := func(i int) bool {
		_, ok := c.Get(layoutKey{str: strconv.Itoa(i)})
		return ok
	}
	for i := 0; i < maxSize; i++ {
		put(i)
	}
	for i := 0; i < maxSize; i++ {
		if !get(i) {
			t.Fatalf("key %d was evicted", i)
		}
	}
	put(maxSize)
	for i := 1; i < maxSize+1; i++ {
		if !get(i) {
			t.Fatalf("key %d was evicted", i)
		}
	}
	if i := 0; get(i) {
		t.Fatalf("key %d was not evicted", i)
	}
}

func TestLayoutTrim(t *testing.T) {
	c := new(layoutCache)
	c.Trim()
	c.Put(layoutKey{str: "stale"}, document{})
	c.Put(layoutKey{str: "fresh"}, document{})
	c.Trim()
	if got, want := len(c.m), 2; got != want {
		t.Fatalf("got %d entries after first trim, want %d", got, want)
	}
	if _, ok := c.Get(layoutKey{str: "fresh"}); !ok {
		t.Fatal("fresh entry missing")
	}
	c.Trim()
	if _, ok := c.m[layoutKey{str: "stale"}]; ok {
		t.Error("stale entry survived trim")
	}
	if _, ok := c.m[layoutKey{str: "fresh"}]; !ok {
		t.Error("fresh entry was evicted")
	}
}
