package convert

import (
	"bufio"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

// Sources the converter accepts.
const (
	documentExt = ".md"
	archiveExt  = ".zip"
)

// isDocumentFile reports whether path names a Markdown source. Matching is by
// extension only, Markdown has no reliable magic bytes to sniff.
func isDocumentFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), documentExt)
}

// isArchiveFile reports whether path names a zip archive. The extension alone
// is not trusted, file content is sniffed as well.
func isArchiveFile(path string) (bool, error) {
	if !strings.EqualFold(filepath.Ext(path), archiveExt) {
		return false, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	// filetype needs at most 262 bytes to classify
	header := make([]byte, 262)
	n, err := io.ReadFull(f, header)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return false, err
	}
	return filetype.Is(header[:n], "zip"), nil
}

// srcEncoding enumerates Unicode encodings recognized by BOM sniffing.
type srcEncoding int

const (
	encUnknown srcEncoding = iota
	encUTF8
	encUTF16BigEndian
	encUTF16LittleEndian
	encUTF32BigEndian
	encUTF32LittleEndian
)

// detectUTF inspects the first bytes of a document for a byte order mark.
// UTF-32LE must be checked before UTF-16LE since the UTF-16LE mark is a
// prefix of the UTF-32LE one.
func detectUTF(buf []byte) srcEncoding {
	switch {
	case len(buf) >= 3 && buf[0] == 0xEF && buf[1] == 0xBB && buf[2] == 0xBF:
		return encUTF8
	case len(buf) >= 4 && buf[0] == 0x00 && buf[1] == 0x00 && buf[2] == 0xFE && buf[3] == 0xFF:
		return encUTF32BigEndian
	case len(buf) >= 4 && buf[0] == 0xFF && buf[1] == 0xFE && buf[2] == 0x00 && buf[3] == 0x00:
		return encUTF32LittleEndian
	case len(buf) >= 2 && buf[0] == 0xFE && buf[1] == 0xFF:
		return encUTF16BigEndian
	case len(buf) >= 2 && buf[0] == 0xFF && buf[1] == 0xFE:
		return encUTF16LittleEndian
	default:
		return encUnknown
	}
}

// selectReader wraps r with a decoder translating enc to UTF-8 and dropping
// the mark. Unknown encoding is passed through and treated as UTF-8 without
// a mark.
func selectReader(r io.Reader, enc srcEncoding) io.Reader {
	switch enc {
	case encUTF8:
		return unicode.UTF8BOM.NewDecoder().Reader(r)
	case encUTF16BigEndian:
		return unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewDecoder().Reader(r)
	case encUTF16LittleEndian:
		return unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder().Reader(r)
	case encUTF32BigEndian:
		return utf32.UTF32(utf32.BigEndian, utf32.ExpectBOM).NewDecoder().Reader(r)
	case encUTF32LittleEndian:
		return utf32.UTF32(utf32.LittleEndian, utf32.ExpectBOM).NewDecoder().Reader(r)
	default:
		return r
	}
}

// selectDocumentReader peeks at the head of r and wraps it so the rest of the
// pipeline always sees plain UTF-8.
func selectDocumentReader(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	buf, _ := br.Peek(4)
	return selectReader(br, detectUTF(buf))
}
