package mac_oui

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBlockRange(t *testing.T) {
	cases := []struct {
		notation string
		start    uint64
		end      uint64
		mask     int
	}{
		{"70:B3:D5", 0x70B3D5000000, 0x70B3D5FFFFFF, 24},
		{"70-B3-D5", 0x70B3D5000000, 0x70B3D5FFFFFF, 24},
		{"70.B3.D5", 0x70B3D5000000, 0x70B3D5FFFFFF, 24},
		{"70:b3:d5", 0x70B3D5000000, 0x70B3D5FFFFFF, 24},
		{"000000", 0x000000000000, 0x000000FFFFFF, 24},
		{"FFFFFF", 0xFFFFFF000000, 0xFFFFFFFFFFFF, 24},
		{"70:B3:D5:84:C0:00/36", 0x70B3D584C000, 0x70B3D584CFFF, 36},
		{"8C:1F:64:E0:00:00/28", 0x8C1F64E00000, 0x8C1F64EFFFFF, 28},
		{"FF:FF:FF:FF:FF:FF/48", 0xFFFFFFFFFFFF, 0xFFFFFFFFFFFF, 48},
		{"70:00:00:00:00:00/8", 0x700000000000, 0x70FFFFFFFFFF, 8},
	}
	for _, tc := range cases {
		t.Run(tc.notation, func(t *testing.T) {
			start, end, mask, err := parseBlockRange(tc.notation)
			require.NoError(t, err)
			assert.Equal(t, tc.start, start)
			assert.Equal(t, tc.end, end)
			assert.Equal(t, tc.mask, mask)
		})
	}
}

// Every mask in [8, 48] must decode to an interval of exactly 2^(48-mask)
// addresses with all sub-mask bits set at the end.
func TestParseBlockRangeWidths(t *testing.T) {
	const base = uint64(0x70B3D584C0A7)
	for mask := minMask; mask <= maxMask; mask++ {
		width := uint64(1) << (addressBits - mask)
		aligned := base &^ (width - 1)

		notation := fmt.Sprintf("%012X/%d", aligned, mask)
		if mask == maskOUI {
			// the /24 form holds only the top 24 bits
			notation = fmt.Sprintf("%06X", aligned>>maskOUI)
		}

		start, end, _, err := parseBlockRange(notation)
		require.NoError(t, err, "mask %d", mask)
		assert.Equal(t, aligned, start, "mask %d", mask)
		assert.Equal(t, width, end-start+1, "mask %d", mask)
		assert.Equal(t, end, start|(width-1), "mask %d", mask)
	}
}

func TestParseBlockRangeRejects(t *testing.T) {
	cases := []struct {
		notation string
		kind     error
	}{
		{"70:B3:D5/7", ErrInvalidMask},
		{"70:B3:D5/49", ErrInvalidMask},
		{"70:B3:D5/0", ErrInvalidMask},
		{"70:B3:D5/-1", ErrInvalidMask},
		{"70:B3:D5/24/28", ErrMalformedBlockNotation},
		{"70:B3:D5/abc", ErrMalformedBlockNotation},
		{"xx:yy:zz", ErrMalformedBlockNotation},
		{"", ErrMalformedBlockNotation},
		{"/36", ErrMalformedBlockNotation},
		{"70:B3:D5:84:C0:01/36", ErrMalformedBlockNotation},       // bits set below the mask boundary
		{"8C:1F:64:E8:00:00/28", ErrMalformedBlockNotation},       // ditto
		{"70:B3:D5:84", ErrMalformedBlockNotation},                // 32 bits with implicit /24
		{"70:B3:D5:84:C0:00:11/48", ErrMalformedBlockNotation},    // wider than the address space
		{"FF:FF:FF:FF:FF:FF:FF:FF/36", ErrMalformedBlockNotation}, // ditto
	}
	for _, tc := range cases {
		t.Run(tc.notation, func(t *testing.T) {
			_, _, _, err := parseBlockRange(tc.notation)
			require.ErrorIs(t, err, tc.kind)
		})
	}
}
