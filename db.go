package mac_oui

import (
	"fmt"
	"os"
	"sync"
)

// DB is an in-memory OUI database: a range index over the 48-bit address
// space plus a per-manufacturer index, both built once by FromCSVFile or
// Default. A DB is immutable after construction and safe for concurrent
// lookups without locking.
type DB struct {
	ranges    rangeIndex
	byCompany map[string][]*Record

	companies []string
	ouis      []string
	records   int

	ambiguous       int
	ambiguousSample string
}

// FromCSVFile loads a reference table from the given CSV file. The file
// must carry the upstream export's header row; see the oui CSV download
// at https://macaddress.io/database-download/csv.
func FromCSVFile(path string) (*DB, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	defer f.Close()
	return loadTable(f)
}

// LookupByMac resolves a textual MAC address to the record owning the
// block it falls in. A nil record with a nil error means no loaded block
// covers the address. When several blocks cover it, the smallest block
// (longest prefix) wins.
func (db *DB) LookupByMac(mac string) (*Record, error) {
	hw, err := parseMac(mac)
	if err != nil {
		return nil, err
	}
	q, err := macToUint64(hw)
	if err != nil {
		return nil, err
	}
	if e, ok := db.ranges.lookup(q); ok {
		return e.rec, nil
	}
	return nil, nil
}

// LookupByManufacturer returns the records registered under the exact
// given name, in table order. The name is compared byte for byte; no
// normalization is applied. ok is false when the name is absent.
// The returned slice is shared and must not be modified.
func (db *DB) LookupByManufacturer(name string) ([]*Record, bool) {
	recs, ok := db.byCompany[name]
	return recs, ok
}

// TotalRecords reports the number of rows loaded into the database.
func (db *DB) TotalRecords() int { return db.records }

// Manufacturers returns the distinct manufacturer names, sorted.
func (db *DB) Manufacturers() []string {
	return append([]string(nil), db.companies...)
}

// Ouis returns the distinct block notations, sorted.
func (db *DB) Ouis() []string {
	return append([]string(nil), db.ouis...)
}

// Ambiguous reports how many loaded blocks sit under more than one
// enclosing block, with a sample notation. A non-zero count points at an
// unusual (possibly corrupt) source table; lookups on such a table still
// resolve deterministically by longest prefix.
func (db *DB) Ambiguous() (int, string) {
	return db.ambiguous, db.ambiguousSample
}

// Default DB singleton and wrappers
var (
	defOnce sync.Once
	defDB   *DB
	defErr  error
)

// Default returns the process-wide DB built from the bundled reference
// table. The table is decoded on first use only; every caller afterwards
// shares the same read-only handle.
func Default() (*DB, error) {
	defOnce.Do(func() {
		defDB, defErr = openDefault()
	})
	return defDB, defErr
}

// Lookup is a package-level helper resolving a MAC address against the
// default DB.
func Lookup(mac string) (*Record, error) {
	db, err := Default()
	if err != nil {
		return nil, err
	}
	return db.LookupByMac(mac)
}

// LookupManufacturer is a package-level helper querying the default DB
// by manufacturer name. A failed default-DB load is reported as ok=false,
// the same as an absent name; call Default directly to tell the two
// apart.
func LookupManufacturer(name string) ([]*Record, bool) {
	db, err := Default()
	if err != nil {
		return nil, false
	}
	return db.LookupByManufacturer(name)
}
