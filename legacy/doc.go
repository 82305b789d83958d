// Package legacy implements the flat binary convention used by filters on
// connections that predate the structured-message protocol.
//
// A legacy filter payload is a sequence of fixed-width and length-prefixed
// fields with no framing of its own. The reader on the other side knows the
// layout from the filter's type tag, so every writer must agree byte for byte
// with that reader, and the size a writer predicts must match what it writes.
//
// # Field Types
//
//   - TypeTag: 1-byte length followed by the tag bytes (at most 255 bytes)
//   - Int32:   4-byte big-endian two's-complement integer
//   - ByteArray: 3-byte big-endian length followed by the raw bytes
//
// # Layouts
//
// Rather than computing a size by hand and writing fields by hand, filters
// describe their payload once as a Layout:
//
//	layout := legacy.Layout{
//	    legacy.TypeTag(name),
//	    legacy.Int32(limit),
//	    legacy.Int32(offset),
//	}
//	size := layout.Size()        // exact byte count
//	err := layout.AppendTo(buf)  // writes exactly size bytes
//
// AppendTo validates every field before writing, so a rejected layout leaves
// the buffer untouched.
package legacy
