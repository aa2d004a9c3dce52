package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/davecgh/go-spew/spew"
	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	mac_oui "github.com/pre-history/mac-oui"
)

var dbPath string

// openDB picks the table source: --db flag, then MAC_OUI_DB, then the
// bundled snapshot.
func openDB() (*mac_oui.DB, error) {
	path := dbPath
	if path == "" {
		path = os.Getenv("MAC_OUI_DB")
	}
	if path != "" {
		return mac_oui.FromCSVFile(path)
	}
	return mac_oui.Default()
}

func lookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <mac>...",
		Short: "Resolve MAC addresses to the registering organization",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB()
			if err != nil {
				return err
			}
			for _, mac := range args {
				rec, err := db.LookupByMac(mac)
				if err != nil {
					log.Error("lookup failed", "mac", mac, "err", err)
					continue
				}
				if rec == nil {
					fmt.Printf("No entry found for: %s\n", mac)
					continue
				}
				fmt.Print(spew.Sdump(rec))
			}
			return nil
		},
	}
}

func manufacturerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "manufacturer <name>",
		Short: "List the address blocks registered under an organization name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB()
			if err != nil {
				return err
			}
			recs, ok := db.LookupByManufacturer(args[0])
			if !ok {
				fmt.Printf("No entry found for: %s\n", args[0])
				return nil
			}
			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"OUI", "Block", "Country", "Created", "Updated"})
			for _, r := range recs {
				table.Append([]string{r.Oui, r.AssignmentBlockSize, r.CountryCode, r.DateCreated, r.DateUpdated})
			}
			table.Render()
			return nil
		},
	}
}

func statsCmd() *cobra.Command {
	const peek = 20
	return &cobra.Command{
		Use:   "stats",
		Short: "Print summary counts for the loaded table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB()
			if err != nil {
				return err
			}
			manufacturers := db.Manufacturers()

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"Metric", "Value"})
			table.Append([]string{"Total records", fmt.Sprint(db.TotalRecords())})
			table.Append([]string{"Total manufacturers", fmt.Sprint(len(manufacturers))})
			table.Append([]string{"Total MAC blocks", fmt.Sprint(len(db.Ouis()))})
			if n, sample := db.Ambiguous(); n > 0 {
				table.Append([]string{"Deeply nested blocks", fmt.Sprintf("%d (e.g. %s)", n, sample)})
			}
			table.Render()

			fmt.Println("==== Manufacturers ====")
			elided := len(manufacturers) > 2*peek
			for i, m := range manufacturers {
				if elided && i >= peek && i < len(manufacturers)-peek {
					if i == peek {
						fmt.Println("...")
					}
					continue
				}
				fmt.Println(m)
			}
			return nil
		},
	}
}

func main() {
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:           "mac-oui",
		Short:         "Look up MAC address block registrations",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dbPath, "db", "", "oui CSV file to load instead of the bundled table (or set MAC_OUI_DB)")
	root.AddCommand(lookupCmd(), manufacturerCmd(), statsCmd())

	if err := root.Execute(); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}
