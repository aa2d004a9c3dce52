package mac_oui

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Column names of the upstream CSV export, normalized to lowercase with
// punctuation removed. "isiab" is the name older exports used for the
// private flag.
const (
	colOui        = "oui"
	colPrivate    = "isprivate"
	colPrivateOld = "isiab"
	colCompany    = "companyname"
	colAddress    = "companyaddress"
	colCountry    = "countrycode"
	colBlockSize  = "assignmentblocksize"
	colCreated    = "datecreated"
	colUpdated    = "dateupdated"
)

func normalizeColumn(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// loadTable reads the whole reference table and builds the two indexes in
// one pass. Any malformed row aborts the load; a partially built DB is
// never returned.
func loadTable(r io.Reader) (*DB, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: empty table", ErrTableSchemaMismatch)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTableSchemaMismatch, err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[normalizeColumn(name)] = i
	}
	private, ok := cols[colPrivate]
	if !ok {
		private, ok = cols[colPrivateOld]
	}
	if !ok {
		return nil, fmt.Errorf("%w: no %s/%s column in header %q", ErrTableSchemaMismatch, colPrivate, colPrivateOld, header)
	}
	for _, name := range []string{colOui, colCompany, colAddress, colCountry, colBlockSize, colCreated, colUpdated} {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("%w: no %s column in header %q", ErrTableSchemaMismatch, name, header)
		}
	}

	db := &DB{byCompany: make(map[string][]*Record, 1024)}
	companies := make(map[string]struct{}, 1024)
	ouis := make(map[string]struct{}, 4096)

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTableSchemaMismatch, err)
		}

		rec := &Record{
			Oui:                 row[cols[colOui]],
			IsPrivate:           parsePrivateFlag(row[private]),
			CompanyName:         row[cols[colCompany]],
			CompanyAddress:      row[cols[colAddress]],
			CountryCode:         row[cols[colCountry]],
			AssignmentBlockSize: row[cols[colBlockSize]],
			DateCreated:         row[cols[colCreated]],
			DateUpdated:         row[cols[colUpdated]],
		}

		start, end, mask, err := parseBlockRange(rec.Oui)
		if err != nil {
			return nil, err
		}
		db.ranges.insert(start, end, mask, rec)
		db.byCompany[rec.CompanyName] = append(db.byCompany[rec.CompanyName], rec)
		companies[rec.CompanyName] = struct{}{}
		ouis[rec.Oui] = struct{}{}
		db.records++
	}

	db.ranges.freeze()
	db.companies = sortedKeys(companies)
	db.ouis = sortedKeys(ouis)

	// Blocks nest at most one level in a sane table (a small block inside
	// its parent allocation). Anything deeper is flagged so callers can
	// tell a suspect dataset from a clean one.
	for _, e := range db.ranges.entries {
		if d := db.ranges.overlapDepth(e); d > 2 {
			if db.ambiguous == 0 {
				db.ambiguousSample = e.rec.Oui
			}
			db.ambiguous++
		}
	}

	return db, nil
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
