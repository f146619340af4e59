package render

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Plain PPM line limits. Six full-intensity triples ("255 255 255") come
// to 71 bytes, so both limits are enforced.
const (
	ppmMaxLineLen     = 70
	ppmTriplesPerLine = 6
)

// WritePPM writes the canvas as a plain (P3) PPM image.
// Each canvas row starts on a new line and is wrapped between triples.
func (c *Canvas) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)

	header := make([]byte, 0, 32)
	header = append(header, "P3\n"...)
	header = strconv.AppendInt(header, int64(c.width), 10)
	header = append(header, ' ')
	header = strconv.AppendInt(header, int64(c.height), 10)
	header = append(header, '\n')
	header = strconv.AppendInt(header, MaxChannel, 10)
	header = append(header, '\n')
	if _, err := bw.Write(header); err != nil {
		return err
	}

	line := make([]byte, 0, ppmMaxLineLen+1)
	var triple []byte
	for y := range c.height {
		line = line[:0]
		n := 0
		for _, px := range c.pixels[y*c.width : (y+1)*c.width] {
			triple = px.appendPPM(triple[:0])
			if n > 0 && (n == ppmTriplesPerLine || len(line)+1+len(triple) > ppmMaxLineLen) {
				line = append(line, '\n')
				if _, err := bw.Write(line); err != nil {
					return err
				}
				line = line[:0]
				n = 0
			}
			if n > 0 {
				line = append(line, ' ')
			}
			line = append(line, triple...)
			n++
		}
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// PPM returns the canvas as plain PPM text.
func (c *Canvas) PPM() string {
	var sb strings.Builder
	// strings.Builder never fails.
	_ = c.WritePPM(&sb)
	return sb.String()
}
