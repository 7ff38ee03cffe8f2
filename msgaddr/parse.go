package msgaddr

import (
	"encoding/base64"
	"encoding/binary"
	"strings"
)

// ParseFriendly reverses Encode. It accepts padded or unpadded input and
// rejects anything whose style byte or checksum does not match.
func ParseFriendly(s string) (int8, Hash, error) {
	var hash Hash

	decoded, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(s, "="))
	if err != nil {
		return 0, hash, err
	}
	if len(decoded) != encodedLength {
		return 0, hash, &MalformedInputError{Field: "address", Length: len(decoded), Want: encodedLength}
	}

	if decoded[0] != friendlyStyle {
		return 0, hash, &UnsupportedTagError{Field: "style", Tag: decoded[0], Want: friendlyStyle}
	}

	// Get stored checksum (big-endian)
	stored := binary.BigEndian.Uint16(decoded[canonicalLength:])
	computed := Checksum(decoded[:canonicalLength])
	if stored != computed {
		return 0, hash, &ChecksumMismatchError{Stored: stored, Computed: computed}
	}

	copy(hash[:], decoded[2:canonicalLength])
	return int8(decoded[1]), hash, nil
}
