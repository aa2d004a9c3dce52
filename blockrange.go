package mac_oui

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// addressBits is the width of a MAC-48 address.
	addressBits = 48
	// maxAddress is the largest 48-bit value, ff:ff:ff:ff:ff:ff.
	maxAddress = uint64(1)<<addressBits - 1

	minMask = 8
	maskOUI = 24
	maxMask = addressBits
)

var blockCleaner = strings.NewReplacer(":", "", "-", "", ".", "")

// parseBlockRange decodes a block notation like "70:B3:D5" or
// "70:B3:D5:84:C0:00/36" into the closed interval [start, end] it covers
// in the 48-bit address space, plus the prefix length.
//
// Without a "/mask" suffix the block is an MA-L and the mask is 24; the
// hex value then holds only the top 24 bits and is shifted into position.
// With an explicit mask the hex value is taken as the full prefix already
// positioned in the address space and must have no bits set below the
// mask boundary; the index relies on blocks being mask-aligned. The end
// is then just the start with every bit below the mask set.
func parseBlockRange(notation string) (start, end uint64, mask int, err error) {
	parts := strings.Split(notation, "/")
	switch len(parts) {
	case 1:
		mask = maskOUI
	case 2:
		mask, err = strconv.Atoi(parts[1])
		if err != nil {
			return 0, 0, 0, fmt.Errorf("%w: %q: mask %q is not a number", ErrMalformedBlockNotation, notation, parts[1])
		}
		if mask < minMask || mask > maxMask {
			return 0, 0, 0, fmt.Errorf("%w: %q: mask %d outside [%d, %d]", ErrInvalidMask, notation, mask, minMask, maxMask)
		}
	default:
		return 0, 0, 0, fmt.Errorf("%w: %q: too many mask separators", ErrMalformedBlockNotation, notation)
	}

	hex := strings.ToUpper(blockCleaner.Replace(parts[0]))
	ouiInt, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: %q is not a hex prefix", ErrMalformedBlockNotation, notation)
	}

	if mask == maskOUI {
		if ouiInt > maxAddress>>maskOUI {
			return 0, 0, 0, fmt.Errorf("%w: %q: prefix wider than %d bits", ErrMalformedBlockNotation, notation, addressBits-maskOUI)
		}
		start = ouiInt << maskOUI
	} else {
		if ouiInt > maxAddress {
			return 0, 0, 0, fmt.Errorf("%w: %q: prefix wider than %d bits", ErrMalformedBlockNotation, notation, addressBits)
		}
		if ouiInt&(maxAddress>>mask) != 0 {
			return 0, 0, 0, fmt.Errorf("%w: %q: prefix not aligned to /%d", ErrMalformedBlockNotation, notation, mask)
		}
		start = ouiInt
	}
	end = start | maxAddress>>mask
	return start, end, mask, nil
}
