package mac_oui

// Assignment block sizes used by the IEEE registries.
const (
	BlockSizeLarge      = "MA-L" // 24-bit prefix
	BlockSizeMedium     = "MA-M" // 28-bit prefix
	BlockSizeSmall      = "MA-S" // 36-bit prefix
	BlockSizeIndividual = "IAB"  // legacy 36-bit individual block
)

// Record is one row of the OUI reference table. Records are built once
// during load and never mutated afterwards.
type Record struct {
	// Oui is the original block notation, e.g. "70:B3:D5" or
	// "70:B3:D5:84:C0:00/36" with an explicit prefix length.
	Oui string
	// IsPrivate reports whether the registrant asked the provider to
	// redact the company fields below.
	IsPrivate bool
	// CompanyName is the organization the block is registered to.
	CompanyName string
	// CompanyAddress is the registrant's postal address.
	CompanyAddress string
	// CountryCode is the registrant's ISO 3166 country code.
	CountryCode string
	// AssignmentBlockSize is one of the BlockSize constants.
	AssignmentBlockSize string
	// DateCreated and DateUpdated are YYYY-MM-DD strings, kept as text.
	DateCreated string
	DateUpdated string
}

// parsePrivateFlag maps the provider's flag column to a bool. The data
// contains "1" for private rows and anything else (including malformed
// values in old exports) for public ones, so this is a total function.
func parsePrivateFlag(s string) bool {
	return s == "1"
}
