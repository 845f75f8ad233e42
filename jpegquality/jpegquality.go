// Package jpegquality estimates the quality setting a JPEG stream was
// encoded with. The estimate inverts the IJG scaling formula over the
// quantization tables found in the DQT segment, using the reference tables
// from Annex K of the JPEG specification as the baseline.
package jpegquality

import (
	"bytes"
	"errors"
	"io"
)

var (
	ErrInvalidJPEG  = errors.New("invalid JPEG header")
	ErrWrongTable   = errors.New("wrong size for quantization table")
	ErrShortSegment = errors.New("short segment length")
	ErrShortDQT     = errors.New("section DQT is too short")
)

// Annex K reference tables: luminance first, chrominance second. Only their
// sums participate in the estimate, so the zig-zag ordering of the DQT
// segment does not matter.
var refTables = [2][64]int{
	{
		16, 11, 10, 16, 24, 40, 51, 61,
		12, 12, 14, 19, 26, 58, 60, 55,
		14, 13, 16, 24, 40, 57, 69, 56,
		14, 17, 22, 29, 51, 87, 80, 62,
		18, 22, 37, 56, 68, 109, 103, 77,
		24, 35, 55, 64, 81, 104, 113, 92,
		49, 64, 78, 87, 103, 121, 120, 101,
		72, 92, 95, 98, 112, 100, 103, 99,
	},
	{
		17, 18, 24, 47, 99, 99, 99, 99,
		18, 21, 26, 66, 99, 99, 99, 99,
		24, 26, 56, 99, 99, 99, 99, 99,
		47, 66, 99, 99, 99, 99, 99, 99,
		99, 99, 99, 99, 99, 99, 99, 99,
		99, 99, 99, 99, 99, 99, 99, 99,
		99, 99, 99, 99, 99, 99, 99, 99,
		99, 99, 99, 99, 99, 99, 99, 99,
	},
}

type jpegReader struct {
	rs io.ReadSeeker
	q  int
}

// New reads enough of rs to estimate the quality the stream was encoded
// with. The reader is rewound first, so repeated calls over the same reader
// give the same answer.
func New(rs io.ReadSeeker) (*jpegReader, error) {
	jr := &jpegReader{rs: rs}

	if _, err := jr.rs.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	var sign [2]byte
	if _, err := io.ReadFull(jr.rs, sign[:]); err != nil {
		return nil, err
	}
	if sign[0] != 0xff || sign[1] != 0xd8 {
		return nil, ErrInvalidJPEG
	}

	q, err := jr.readQuality()
	if err != nil {
		return nil, err
	}
	jr.q = q
	return jr, nil
}

// NewWithBytes estimates the quality of an in-memory JPEG.
func NewWithBytes(buf []byte) (*jpegReader, error) {
	return New(bytes.NewReader(buf))
}

// Quality returns the estimated encoding quality, 1 to 100.
func (jr *jpegReader) Quality() int {
	return jr.q
}

// readMarker returns the next marker, zero when the stream ends before one
// is found. Fill bytes and stuffed zeros are skipped.
func (jr *jpegReader) readMarker() int {
	var mark [2]byte
	for {
		if _, err := io.ReadFull(jr.rs, mark[:]); err != nil {
			return 0
		}
		if mark[0] == 0xff && mark[1] != 0xff && mark[1] != 0x00 {
			return int(mark[0])<<8 | int(mark[1])
		}
	}
}

func (jr *jpegReader) readUint16() (int, error) {
	var buf [2]byte
	if _, err := io.ReadFull(jr.rs, buf[:]); err != nil {
		return 0, err
	}
	return int(buf[0])<<8 | int(buf[1]), nil
}

// readQuality scans segments until the first DQT and averages the per-table
// estimates. Only 8 bit tables are supported, 16 bit precision makes the
// segment length fail the 65 byte alignment check.
func (jr *jpegReader) readQuality() (int, error) {
	for {
		mark := jr.readMarker()
		if mark == 0 {
			return 0, ErrInvalidJPEG
		}

		length, err := jr.readUint16()
		if err != nil {
			return 0, err
		}
		length -= 2
		if length < 0 {
			return 0, ErrShortSegment
		}

		if mark&0xff != 0xdb {
			// not a quantization table, skip the segment
			if _, err := jr.rs.Seek(int64(length), io.SeekCurrent); err != nil {
				return 0, err
			}
			continue
		}

		if length < 65 {
			return 0, ErrShortDQT
		}
		if length%65 != 0 {
			return 0, ErrWrongTable
		}

		tables := make([]byte, length)
		if _, err := io.ReadFull(jr.rs, tables); err != nil {
			return 0, err
		}

		var total, count float64
		for i := 0; i < len(tables); i += 65 {
			index := int(tables[i] & 0x0f)
			if index >= len(refTables) {
				continue
			}

			sum, allOnes := 0, true
			for _, v := range tables[i+1 : i+65] {
				sum += int(v)
				if v != 1 {
					allOnes = false
				}
			}
			if allOnes {
				// the scaled table degenerated to its floor, anything
				// from here up encodes losslessly against the baseline
				total += 100
				count++
				continue
			}

			refSum := 0
			for _, v := range refTables[index] {
				refSum += v
			}

			scale := 100 * float64(sum) / float64(refSum)
			if scale > 100 {
				total += 5000 / scale
			} else {
				total += (200 - scale) / 2
			}
			count++
		}
		if count == 0 {
			return 0, ErrWrongTable
		}

		q := int(total/count + 0.5)
		if q < 1 {
			q = 1
		} else if q > 100 {
			q = 100
		}
		return q, nil
	}
}
