package mac_oui

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"net"
)

// macToUint64 converts a 6-byte hardware address into the 48-bit integer
// used as the range index key: two zero bytes in front, then the address,
// read as one big-endian uint64. The top 16 bits are always zero.
func macToUint64(hw net.HardwareAddr) (uint64, error) {
	padded := make([]byte, 8)
	copy(padded[2:], hw)

	var q uint64
	if err := binary.Read(bytes.NewReader(padded), binary.BigEndian, &q); err != nil {
		return 0, fmt.Errorf("%w: % x: %v", ErrEncoding, padded, err)
	}
	return q, nil
}

// parseMac parses a textual MAC address (colon, dash or dot separated)
// and rejects anything that is not a 48-bit address, including EUI-64
// literals that net.ParseMAC would otherwise accept.
func parseMac(s string) (net.HardwareAddr, error) {
	hw, err := net.ParseMAC(s)
	if err != nil || len(hw) != 6 {
		return nil, fmt.Errorf("%w: %q", ErrAddressParse, s)
	}
	return hw, nil
}
