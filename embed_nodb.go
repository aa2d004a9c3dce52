//go:build oui_no_db

package mac_oui

import "fmt"

// openDefault for builds without the bundled table: the binary carries no
// dataset, so the default DB is unavailable and callers must use
// FromCSVFile.
func openDefault() (*DB, error) {
	return nil, fmt.Errorf("%w: built with oui_no_db, no bundled table", ErrSourceUnavailable)
}
