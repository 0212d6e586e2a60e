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
	"fmt"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

const (
	firstChar = 32
	lastChar  = 255
)

// fontInfo holds the metrics of the embedded text font, in PDF glyph space
// units (1/1000 of the font size).
type fontInfo struct {
	widths    [lastChar - firstChar + 1]float64
	bbox      [4]float64
	ascent    float64
	descent   float64 // negative
	capHeight float64
}

var (
	textFont     *fontInfo
	textFontErr  error
	textFontOnce sync.Once
)

// loadFont returns the metrics of the Go Regular font, for the glyphs of
// the WinAnsi encoding.
func loadFont() (*fontInfo, error) {
	textFontOnce.Do(func() {
		textFont, textFontErr = readFont(goregular.TTF)
	})
	return textFont, textFontErr
}

func readFont(data []byte) (*fontInfo, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, err
	}
	buf := &sfnt.Buffer{}
	ppem := fixed.I(1000)
	units := func(x fixed.Int26_6) float64 {
		return float64(x) / 64
	}

	info := &fontInfo{}
	for c := firstChar; c <= lastChar; c++ {
		r := charmap.Windows1252.DecodeByte(byte(c))
		gid, err := f.GlyphIndex(buf, r)
		if err != nil {
			return nil, err
		}
		if gid == 0 {
			continue
		}
		adv, err := f.GlyphAdvance(buf, gid, ppem, font.HintingNone)
		if err != nil {
			return nil, err
		}
		info.widths[c-firstChar] = units(adv)
	}

	b, err := f.Bounds(buf, ppem, font.HintingNone)
	if err != nil {
		return nil, err
	}
	info.bbox = [4]float64{units(b.Min.X), -units(b.Max.Y), units(b.Max.X), -units(b.Min.Y)}

	m, err := f.Metrics(buf, ppem, font.HintingNone)
	if err != nil {
		return nil, err
	}
	info.ascent = units(m.Ascent)
	info.descent = -units(m.Descent)
	info.capHeight = units(m.CapHeight)
	return info, nil
}

// encodeText converts s to character codes of the embedded font, using the
// WinAnsi encoding.  Characters outside this encoding are replaced.
func encodeText(s string) []byte {
	enc := encoding.ReplaceUnsupported(charmap.Windows1252.NewEncoder())
	out, err := enc.Bytes([]byte(s))
	if err != nil {
		return nil
	}
	return out
}

// width returns the width of the encoded text in glyph space units.
func (info *fontInfo) width(codes []byte) float64 {
	var w float64
	for _, c := range codes {
		if c >= firstChar {
			w += info.widths[int(c)-firstChar]
		}
	}
	return w
}

// fontDicts returns the bodies of the font dictionary and the font
// descriptor, for the given object numbers of the descriptor and the font
// file.
func (info *fontInfo) fontDicts(descRef, fileRef int) (string, string) {
	var widths strings.Builder
	for i, w := range info.widths {
		if i > 0 {
			widths.WriteByte(' ')
		}
		widths.WriteString(format(w))
	}
	fontDict := fmt.Sprintf("<</Type /Font /Subtype /TrueType /BaseFont /GoRegular"+
		" /FirstChar %d /LastChar %d /Widths [%s] /FontDescriptor %d 0 R /Encoding /WinAnsiEncoding>>",
		firstChar, lastChar, widths.String(), descRef)

	b := info.bbox
	descDict := fmt.Sprintf("<</Type /FontDescriptor /FontName /GoRegular /Flags 32"+
		" /FontBBox [%s %s %s %s] /ItalicAngle 0 /Ascent %s /Descent %s /CapHeight %s"+
		" /StemV 80 /FontFile2 %d 0 R>>",
		format(b[0]), format(b[1]), format(b[2]), format(b[3]),
		format(info.ascent), format(info.descent), format(info.capHeight), fileRef)
	return fontDict, descDict
}
