package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/zfacksandahler/btc-energy-model/internal/config"
	"github.com/zfacksandahler/btc-energy-model/internal/data"
	"github.com/zfacksandahler/btc-energy-model/internal/energy"
	"github.com/zfacksandahler/btc-energy-model/internal/report"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "load":
		cmdLoad(os.Args[2:])
	case "report":
		cmdReport(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli load --data hashrate_data.csv")
	fmt.Println("  cli report --data hashrate_data.csv [--config examples/config.yaml] [--out results/report.csv]")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - load verifies the dataset parses without error")
	fmt.Println("  - report prints the per-year energy estimate table")
}

func cmdLoad(args []string) {
	fs := flag.NewFlagSet("load", flag.ExitOnError)
	dataPath := fs.String("data", "hashrate_data.csv", "Path to hashrate CSV")
	_ = fs.Parse(args)

	records, err := data.LoadHashrateCSV(*dataPath)
	if err != nil {
		fatal(err)
	}

	fmt.Printf("Loaded %d records\n", len(records))
	for _, rec := range records {
		fmt.Printf("Year: %d, Hashrate: %g PH/s\n", rec.Year, rec.AvgHashratePHs)
	}
}

func cmdReport(args []string) {
	fs := flag.NewFlagSet("report", flag.ExitOnError)
	dataPath := fs.String("data", "hashrate_data.csv", "Path to hashrate CSV")
	cfgPath := fs.String("config", "", "Optional YAML config")
	outPath := fs.String("out", "", "Optional path to write the report CSV")
	_ = fs.Parse(args)

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			fatal(err)
		}
		cfg = loaded
	}

	records, err := data.LoadHashrateCSV(*dataPath)
	if err != nil {
		fatal(err)
	}

	calc := energy.New(cfg.Curve.ToModelCurve())
	calc.HoursPerYear = cfg.HoursPerYear
	res, err := calc.Run(records)
	if err != nil {
		fatal(err)
	}

	fmt.Print(report.FormatTable(res, cfg.Display.Decimals))

	if *outPath != "" {
		if err := energy.WriteReportCSV(*outPath, res); err != nil {
			fatal(err)
		}
		fmt.Printf("\nWrote CSV: %s\n", *outPath)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
