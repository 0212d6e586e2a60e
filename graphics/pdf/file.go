// seehuhn.de/go/pitch - draw football pitches and match events
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package pdf

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"io"
)

// file writes the object structure of a PDF file.  The first error is
// stored in err and all later writes are skipped.
type file struct {
	w       *posWriter
	offsets []int64 // offsets[i] is the position of object i+1
	err     error
}

func newFile(w io.Writer) *file {
	f := &file{w: &posWriter{w: w}}
	f.printf("%%PDF-1.4\n%%\x80\x80\x80\x80\n")
	return f
}

func (f *file) printf(format string, args ...any) {
	if f.err != nil {
		return
	}
	_, f.err = fmt.Fprintf(f.w, format, args...)
}

// alloc reserves an object number.
func (f *file) alloc() int {
	f.offsets = append(f.offsets, -1)
	return len(f.offsets)
}

// object writes an indirect object with the given body.
func (f *file) object(ref int, body string) {
	f.offsets[ref-1] = f.w.pos
	f.printf("%d 0 obj\n%s\nendobj\n", ref, body)
}

// stream writes a compressed stream object.  The dictionary entries in
// dict must not include /Length or /Filter.
func (f *file) stream(ref int, dict string, data []byte) {
	if f.err != nil {
		return
	}
	buf := &bytes.Buffer{}
	zw := zlib.NewWriter(buf)
	_, err := zw.Write(data)
	if err == nil {
		err = zw.Close()
	}
	if err != nil {
		f.err = err
		return
	}

	f.offsets[ref-1] = f.w.pos
	f.printf("%d 0 obj\n<<%s /Filter /FlateDecode /Length %d>>\nstream\n", ref, dict, buf.Len())
	if f.err == nil {
		_, f.err = f.w.Write(buf.Bytes())
	}
	f.printf("\nendstream\nendobj\n")
}

// close writes the cross-reference table and the trailer.
func (f *file) close(catalog, info int) error {
	xRefPos := f.w.pos
	f.printf("xref\n0 %d\n0000000000 65535 f \n", len(f.offsets)+1)
	for _, pos := range f.offsets {
		if pos < 0 {
			f.printf("0000000000 65535 f \n")
		} else {
			f.printf("%010d 00000 n \n", pos)
		}
	}
	f.printf("trailer\n<</Size %d /Root %d 0 R", len(f.offsets)+1, catalog)
	if info > 0 {
		f.printf(" /Info %d 0 R", info)
	}
	f.printf(">>\nstartxref\n%d\n%%%%EOF\n", xRefPos)
	return f.err
}

type posWriter struct {
	w   io.Writer
	pos int64
}

func (w *posWriter) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	w.pos += int64(n)
	return n, err
}
