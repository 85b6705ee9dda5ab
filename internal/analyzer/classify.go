package analyzer

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// headerLen is the number of bytes read from a file for signature
// detection.
const headerLen = 32

// textThreshold is the fraction of header bytes that must be
// printable for the text-content heuristic to fire.
const textThreshold = 0.85

// Classify determines a file's category. With signature detection
// enabled the header bytes are consulted first; the lowercase
// extension is the fallback. Classify never fails: files that match
// nothing are CategoryOther.
func Classify(path string, header []byte, useSignatures bool) Category {
	if useSignatures {
		if category, ok := DetectSignature(header); ok {
			return category
		}
	}

	if category, ok := extensionCategories[strings.ToLower(filepath.Ext(path))]; ok {
		return category
	}

	return CategoryOther
}

// DetectSignature identifies a category from a file's leading bytes.
// Matching walks the signature table in declaration order, then the
// MP4 ftyp box, then the text heuristic. An empty header never
// matches.
func DetectSignature(header []byte) (Category, bool) {
	if len(header) == 0 {
		return "", false
	}

	for _, sig := range signatures {
		if !bytes.HasPrefix(header, sig.prefix) {
			continue
		}

		// A RIFF prefix alone is not conclusive; only a recognized
		// subtype resolves it.
		if bytes.Equal(sig.prefix, []byte("RIFF")) {
			if category, ok := riffSubtype(header); ok {
				return category, true
			}

			continue
		}

		return sig.category, true
	}

	if category, ok := mp4Subtype(header); ok {
		return category, true
	}

	if isTextContent(header) {
		return CategoryText, true
	}

	return "", false
}

// riffSubtype disambiguates RIFF containers via bytes 8:12.
func riffSubtype(header []byte) (Category, bool) {
	if len(header) < 12 {
		return "", false
	}

	switch string(header[8:12]) {
	case "WAVE":
		return CategoryAudio, true
	case "AVI ":
		return CategoryVideo, true
	default:
		return "", false
	}
}

// mp4Subtype identifies the MP4 family via the ftyp box at offset 4.
func mp4Subtype(header []byte) (Category, bool) {
	if len(header) < 12 || string(header[4:8]) != "ftyp" {
		return "", false
	}

	switch string(header[8:12]) {
	case "mp41", "mp42", "isom", "f4v ", "F4V ", "M4V ":
		return CategoryVideo, true
	case "M4A ":
		return CategoryAudio, true
	default:
		return "", false
	}
}

// isTextContent reports whether data looks like text: a byte-order
// mark, or more than 85% printable ASCII plus common whitespace.
func isTextContent(data []byte) bool {
	if len(data) == 0 {
		return false
	}

	if bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}) || // UTF-8 BOM
		bytes.HasPrefix(data, []byte{0xFF, 0xFE}) || // UTF-16 LE BOM
		bytes.HasPrefix(data, []byte{0xFE, 0xFF}) { // UTF-16 BE BOM
		return true
	}

	printable := 0

	for _, b := range data {
		if b == '\t' || b == '\n' || b == '\r' || (b >= 32 && b < 127) {
			printable++
		}
	}

	return float64(printable)/float64(len(data)) > textThreshold
}

// readHeader reads the classification prefix from a file. Errors are
// swallowed: an unreadable header degrades to extension-only
// classification.
func readHeader(path string) []byte {
	file, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer file.Close()

	buf := make([]byte, headerLen)
	n, _ := io.ReadFull(file, buf)

	return buf[:n]
}
