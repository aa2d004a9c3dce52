//go:build !oui_no_db

package mac_oui

import (
	"bytes"
	_ "embed"
)

// defaultCSV is a snapshot of the upstream reference table. Refresh it
// with cmd/update-oui.
//
//go:embed assets/oui.csv
var defaultCSV []byte

func openDefault() (*DB, error) {
	return loadTable(bytes.NewReader(defaultCSV))
}
