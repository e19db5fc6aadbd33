package main

import (
	"flag"
	"fmt"
	"log"

	"onebrc/internal/brc"
)

func main() {
	inputFile := flag.String("i", "data/measurements.txt", "input file")
	flag.Parse()

	r, err := brc.NewMmapReader(*inputFile)
	if err != nil {
		log.Fatal(err)
	}

	out, err := brc.Summarize(r)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(out)
}
