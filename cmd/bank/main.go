package main

import (
	"flag"
	"fmt"
	"interestbank/internal/config"
	"interestbank/internal/money"
	"interestbank/internal/sample"
	"log"
	"os"
)

func main() {
	months := flag.Int("months", 6, "interest horizon in months")
	verbose := flag.Bool("v", false, "print each account's interest")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	display, err := money.NewDisplay(cfg.Currency, cfg.Locale)
	if err != nil {
		log.Fatalf("currency display: %v", err)
	}

	p, _ := sample.Build()

	if *verbose {
		for _, x := range p.Breakdown(*months) {
			owner := ""
			if x.Account.Owner != nil {
				owner = x.Account.Owner.Name
			}
			fmt.Fprintf(os.Stdout, "%-9s %-10s %s\n", x.Account.Kind(), owner, display.Format(x.Interest))
		}
	}

	fmt.Fprintf(os.Stdout, "Total interest for all accounts: %s\n", display.Format(p.TotalInterest(*months)))
}
