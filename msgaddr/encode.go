package msgaddr

import (
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/sigurn/crc16"
)

const (
	// friendlyStyle is the first byte of every friendly address this package
	// produces. It is not the input tag.
	friendlyStyle byte = 0x51

	canonicalLength = 2 + HashLength
	encodedLength   = canonicalLength + 2

	// FriendlyLength is the length of every string returned by Encode.
	FriendlyLength = encodedLength / 3 * 4
)

var xmodemTable = crc16.MakeTable(crc16.CRC16_XMODEM)

// Checksum returns the CRC16/XMODEM of data (poly 0x1021, init 0, no final xor).
func Checksum(data []byte) uint16 {
	return crc16.Checksum(data, xmodemTable)
}

func canonical(workchain int8, hash Hash) [canonicalLength]byte {
	var addr [canonicalLength]byte
	addr[0] = friendlyStyle
	addr[1] = byte(workchain)
	copy(addr[2:], hash[:])
	return addr
}

/*
 * Encode builds the friendly representation of a standard address.
 *
 * The 34 byte canonical form 0x51 | workchain | hash is followed by its
 * CRC16/XMODEM in big-endian, and the 36 bytes are written as URL-safe
 * base64 with the padding removed.
 */
func Encode(workchain int8, hash Hash) string {
	addr := canonical(workchain, hash)

	var full [encodedLength]byte
	copy(full[:], addr[:])
	binary.BigEndian.PutUint16(full[canonicalLength:], Checksum(addr[:]))

	return strings.TrimRight(base64.URLEncoding.EncodeToString(full[:]), "=")
}

// Convert decodes a raw msg_address record and returns its friendly form.
func Convert(raw []byte) (string, error) {
	workchain, hash, err := Decode(raw)
	if err != nil {
		return "", err
	}
	return Encode(workchain, hash), nil
}

// Raw formats the address as "workchain:hex", the form explorers and
// lite clients print.
func Raw(workchain int8, hash Hash) string {
	return fmt.Sprintf("%d:%s", workchain, hash)
}
