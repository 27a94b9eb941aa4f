// Package main prints the evolution table as CSV, one edge per row, for
// planning artwork and sounds.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/hatch/evolution"
)

func main() {
	from := flag.String("from", "", "Only print edges leaving this form (e.g. Chick)")
	noHeader := flag.Bool("no-header", false, "Omit the CSV header row")
	forms := flag.Bool("forms", false, "Print the forms with their art file names instead")
	flag.Parse()

	if *forms {
		for _, s := range evolution.States() {
			fmt.Printf("%d,%s,%s.png\n", s, s, s.Slug())
		}
		return
	}

	edges := evolution.Edges()
	if *from != "" {
		s, err := evolution.ParseState(*from)
		if err != nil {
			log.Fatalf("bad -from: %v", err)
		}
		var kept []evolution.Edge
		for _, e := range edges {
			if e.From == s {
				kept = append(kept, e)
			}
		}
		edges = kept
	}

	marshal := gocsv.Marshal
	if *noHeader {
		marshal = gocsv.MarshalWithoutHeaders
	}
	if err := marshal(edges, os.Stdout); err != nil {
		log.Fatalf("writing csv: %v", err)
	}
}
