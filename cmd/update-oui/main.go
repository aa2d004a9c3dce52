package main

import (
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"regexp"
	"strings"

	"github.com/charmbracelet/log"

	mac_oui "github.com/pre-history/mac-oui"
)

const ouiURL = "https://macaddress.io/database-download/csv"

func download(url, dest string) error {
	log.Info("downloading", "url", url)

	resp, err := http.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download failed: %s", resp.Status)
	}

	fout, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer fout.Close()

	_, err = io.Copy(fout, resp.Body)
	return err
}

// filterTable copies src to dest keeping the header row and every row
// whose companyName matches re.
func filterTable(src, dest string, re *regexp.Regexp) error {
	fin, err := os.Open(src)
	if err != nil {
		return err
	}
	defer fin.Close()

	fout, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer fout.Close()

	reader := csv.NewReader(fin)
	writer := csv.NewWriter(fout)
	defer writer.Flush()

	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("read header: %w", err)
	}
	nameCol := -1
	for i, name := range header {
		if strings.EqualFold(strings.TrimSpace(name), "companyName") {
			nameCol = i
		}
	}
	if nameCol < 0 {
		return fmt.Errorf("no companyName column in header %q", header)
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	kept := 0
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		if !re.MatchString(row[nameCol]) {
			continue
		}
		if err := writer.Write(row); err != nil {
			return err
		}
		kept++
	}
	log.Info("filtered table", "kept", kept)
	return nil
}

func main() {
	url := flag.String("url", ouiURL, "source URL of the oui CSV export")
	out := flag.String("out", "assets/oui.csv", "destination file")
	match := flag.String("match", "", "keep only rows whose companyName matches this regexp")
	flag.Parse()

	tmp := *out + ".tmp"
	defer os.Remove(tmp)

	if err := download(*url, tmp); err != nil {
		log.Fatal("download", "err", err)
	}

	if *match != "" {
		re, err := regexp.Compile(*match)
		if err != nil {
			log.Fatal("bad -match regexp", "err", err)
		}
		filtered := tmp + ".filtered"
		if err := filterTable(tmp, filtered, re); err != nil {
			log.Fatal("filter", "err", err)
		}
		if err := os.Rename(filtered, tmp); err != nil {
			log.Fatal("replace", "err", err)
		}
	}

	// Refuse to install a table the library cannot load.
	db, err := mac_oui.FromCSVFile(tmp)
	if err != nil {
		log.Fatal("downloaded table does not load", "err", err)
	}
	log.Info("validated table",
		"records", db.TotalRecords(),
		"manufacturers", len(db.Manufacturers()),
		"blocks", len(db.Ouis()))

	if err := os.Rename(tmp, *out); err != nil {
		log.Fatal("install", "err", err)
	}
	log.Info("updated", "file", *out)
}
