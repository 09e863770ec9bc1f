// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"golang.org/x/image/math/fixed"

	uifont "frostui.org/font"
)

// layoutCache is a bounded LRU of shaped text. Entries also carry the
// frame counter of their last use so that Trim can evict layouts that
// no recent frame touched.
type layoutCache struct {
	m          map[layoutKey]*layoutElem
	head, tail *layoutElem
	frame      uint64
}

type layoutElem struct {
	next, prev *layoutElem
	key        layoutKey
	doc        document
	// frame is the value of the cache frame counter when this entry
	// was last returned.
	frame uint64
}

type layoutKey struct {
	ppem     fixed.Int26_6
	maxWidth int
	str      string
	dir      Direction
	lang     string
	font     uifont.Font
}

const maxSize = 1000

func (l *layoutCache) Get(k layoutKey) (document, bool) {
	if lt, ok := l.m[k]; ok {
		lt.frame = l.frame
		l.remove(lt)
		l.insert(lt)
		return lt.doc, true
	}
	return document{}, false
}

func (l *layoutCache) Put(k layoutKey, doc document) {
	if l.m == nil {
		l.m = make(map[layoutKey]*layoutElem)
		l.head = new(layoutElem)
		l.tail = new(layoutElem)
		l.head.prev = l.tail
		l.tail.next = l.head
	}
	val := &layoutElem{key: k, doc: doc, frame: l.frame}
	l.m[k] = val
	l.insert(val)
	if len(l.m) > maxSize {
		oldest := l.tail.next
		l.remove(oldest)
		delete(l.m, oldest.key)
	}
}

// Trim evicts entries that have not been used since the previous call
// to Trim. Use stamps are monotonic from the tail towards the head,
// so eviction stops at the first fresh entry.
func (l *layoutCache) Trim() {
	if l.m == nil {
		return
	}
	for e := l.tail.next; e != nil && e != l.head && e.frame < l.frame; {
		next := e.next
		l.remove(e)
		delete(l.m, e.key)
		e = next
	}
	l.frame++
}

func (l *layoutCache) remove(lt *layoutElem) {
	lt.next.prev = lt.prev
	lt.prev.next = lt.next
}

func (l *layoutCache) insert(lt *layoutElem) {
	lt.next = l.head
	lt.prev = l.head.prev
	lt.prev.next = lt
	lt.next.prev = lt
}
