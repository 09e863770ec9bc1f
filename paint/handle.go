// SPDX-License-Identifier: Unlicense OR MIT

package paint

import (
	"hash/maphash"
	"image"
	"sync/atomic"
)

var (
	handleSeed = maphash.MakeSeed()
	handleCnt  atomic.Uint64
)

// ImageHandle is a cheap reference to raster image data. Handles with
// equal IDs refer to identical data, letting backends cache decoded
// pixels across frames.
type ImageHandle struct {
	id   uint64
	path string
	data []byte
	img  image.Image
}

// ImageFromPath creates a handle referring to the image file at path.
func ImageFromPath(path string) ImageHandle {
	return ImageHandle{
		id:   hashBytes('p', []byte(path)),
		path: path,
	}
}

// ImageFromBytes creates a handle referring to encoded image data.
func ImageFromBytes(data []byte) ImageHandle {
	return ImageHandle{
		id:   hashBytes('b', data),
		data: data,
	}
}

// ImageFromImage creates a handle referring to a decoded image. Each
// call returns a handle with a distinct ID.
func ImageFromImage(img image.Image) ImageHandle {
	return ImageHandle{
		id:  uniqueID(),
		img: img,
	}
}

// ID returns the identity of the data behind the handle.
func (h ImageHandle) ID() uint64 { return h.id }

// Path returns the file path of the image, or the empty string for
// handles not backed by a file.
func (h ImageHandle) Path() string { return h.path }

// Bytes returns the encoded image data, or nil for handles not backed
// by memory.
func (h ImageHandle) Bytes() []byte { return h.data }

// Image returns the decoded image, or nil for handles not backed by a
// decoded image.
func (h ImageHandle) Image() image.Image { return h.img }

// SvgHandle is a cheap reference to vector image data. Handles with
// equal IDs refer to identical data.
type SvgHandle struct {
	id   uint64
	path string
	data []byte
}

// SvgFromPath creates a handle referring to the SVG file at path.
func SvgFromPath(path string) SvgHandle {
	return SvgHandle{
		id:   hashBytes('p', []byte(path)),
		path: path,
	}
}

// SvgFromBytes creates a handle referring to SVG document data.
func SvgFromBytes(data []byte) SvgHandle {
	return SvgHandle{
		id:   hashBytes('b', data),
		data: data,
	}
}

// ID returns the identity of the data behind the handle.
func (h SvgHandle) ID() uint64 { return h.id }

// Path returns the file path of the document, or the empty string for
// handles not backed by a file.
func (h SvgHandle) Path() string { return h.path }

// Bytes returns the document data, or nil for handles not backed by
// memory.
func (h SvgHandle) Bytes() []byte { return h.data }

func hashBytes(tag byte, b []byte) uint64 {
	var h maphash.Hash
	h.SetSeed(handleSeed)
	h.WriteByte(tag)
	h.Write(b)
	return h.Sum64()
}

func uniqueID() uint64 {
	return handleCnt.Add(1)
}
