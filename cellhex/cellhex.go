// Package cellhex turns the textual dumps printed by contract tooling
// (Cell{...} wrappers, 0x prefixed or bare hex) into raw msg_address bytes.
package cellhex

import (
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"

	"github.com/tvirgg/p2p-sc-v2/msgaddr"
)

const cellPrefix = "Cell{"

// ErrEmpty is returned when nothing is left to decode after unwrapping.
var ErrEmpty = errors.New("empty hex payload")

// Unwrap strips a Cell{...} wrapper, surrounding whitespace and a 0x prefix.
func Unwrap(text string) string {
	if i := strings.Index(text, cellPrefix); i >= 0 {
		text = text[i+len(cellPrefix):]
		if j := strings.Index(text, "}"); j >= 0 {
			text = text[:j]
		}
	}
	text = strings.TrimSpace(text)

	// Remove 0x prefix if present
	if strings.HasPrefix(text, "0x") || strings.HasPrefix(text, "0X") {
		text = text[2:]
	}
	return text
}

// NormalizeStrict unwraps and hex-decodes text without touching the bytes.
func NormalizeStrict(text string) ([]byte, error) {
	payload := Unwrap(text)
	if payload == "" {
		return nil, ErrEmpty
	}

	raw, err := hex.DecodeString(payload)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid hex %q", payload)
	}
	return raw, nil
}

/*
 * Normalize decodes text like NormalizeStrict and then drops one leading
 * zero byte when more than msgaddr.RecordLength bytes were decoded. Some
 * serializers put a length marker in front of the record.
 *
 * The drop is not checked against the tag byte, so a 35 byte record that
 * really starts with 0x00 is shifted by one. Use NormalizeStrict when the
 * input is known to carry no marker.
 */
func Normalize(text string) ([]byte, error) {
	raw, err := NormalizeStrict(text)
	if err != nil {
		return nil, err
	}
	if raw[0] == 0x00 && len(raw) > msgaddr.RecordLength {
		raw = raw[1:]
	}
	return raw, nil
}

// Convert normalizes text and returns the friendly address it holds.
func Convert(text string) (string, error) {
	raw, err := Normalize(text)
	if err != nil {
		return "", err
	}

	addr, err := msgaddr.Convert(raw)
	if err != nil {
		return "", errors.Wrap(err, "convert msg_address")
	}
	return addr, nil
}
