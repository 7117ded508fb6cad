package main

import (
	"flag"
	"log"
	"os"

	"github.com/depthline/bookmirror/internal/usecase/book"
	"github.com/depthline/bookmirror/pkg/latency"
)

func main() {
	batches := flag.Int("batches", 100, "Number of timed batches per operation")
	tickDomain := flag.Int("tick-domain", book.DefaultTickDomain, "Number of price ticks the book covers")
	flag.Parse()

	harness, err := latency.NewHarness(*tickDomain, *batches)
	if err != nil {
		log.Fatalf("Failed to create harness: %v", err)
	}

	log.Printf("Running latency harness: tickDomain=%d batches=%d", *tickDomain, *batches)

	results, err := harness.Run()
	if err != nil {
		log.Fatalf("Harness run failed: %v", err)
	}

	latency.WriteReport(os.Stdout, results)
}
