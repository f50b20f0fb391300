package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/KirkDiggler/spellbook-discord/internal/dice"
)

func main() {
	seed := flag.Int64("seed", 0, "seed the roller for reproducible rolls")
	flag.Parse()

	if flag.NArg() == 0 {
		log.Fatal("Usage: roll [-seed N] <notation> [notation ...]")
	}

	roller := dice.NewRandomRoller()
	if *seed != 0 {
		roller = dice.NewSeededRoller(*seed)
	}

	for _, notation := range flag.Args() {
		formula, err := dice.Parse(notation)
		if err != nil {
			log.Fatalf("Bad notation %q: %v", notation, err)
		}

		result, err := formula.Roll(roller)
		if err != nil {
			log.Fatalf("Rolling %q: %v", notation, err)
		}

		fmt.Printf("%s = %s\n", notation, result.Text())
	}
}
