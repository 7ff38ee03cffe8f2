// Package msgaddr turns serialized TON msg_address records into the
// user-friendly base64 form and back.
package msgaddr

import "encoding/hex"

const (
	// StdAddrTag is the leading byte of an addr_std record without anycast.
	StdAddrTag byte = 0x43

	// RecordLength is the number of bytes Decode reads from a raw record.
	RecordLength = 34

	HashLength = 32
)

// Hash is the 256-bit account part of a standard address.
type Hash [HashLength]byte

func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

/*
 * Decode extracts the workchain id and account hash from a raw msg_address.
 *
 * Parameters:
 * - raw: serialized record, [tag:1][workchain:1][hash:32], any tail is ignored
 *
 * Returns:
 * - int8: signed workchain id (0xFF decodes to -1)
 * - Hash: the 32 byte account hash
 * - error: *MalformedInputError when raw is shorter than 34 bytes,
 *          *UnsupportedTagError when the tag is not 0x43
 */
func Decode(raw []byte) (int8, Hash, error) {
	var hash Hash

	if len(raw) < RecordLength {
		return 0, hash, &MalformedInputError{Field: "record", Length: len(raw), Want: RecordLength, AtLeast: true}
	}

	if raw[0] != StdAddrTag {
		return 0, hash, &UnsupportedTagError{Field: "tag", Tag: raw[0], Want: StdAddrTag}
	}

	workchain := int8(raw[1])

	part := raw[2:RecordLength]
	if len(part) != HashLength {
		return 0, hash, &MalformedInputError{Field: "hash", Length: len(part), Want: HashLength}
	}
	copy(hash[:], part)

	return workchain, hash, nil
}
