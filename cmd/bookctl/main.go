package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/orderbooklabs/clob-engine/harness"
	"github.com/orderbooklabs/clob-engine/matching"
)

func main() {
	var scriptPath string
	flag.StringVar(&scriptPath, "script", "", "path to a harness scenario file")
	flag.Parse()

	if scriptPath == "" {
		log.Fatal("missing required -script flag")
	}

	file, err := os.Open(scriptPath)
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	script, err := harness.Parse(file, func(lineNo int, line string, err error) {
		log.Printf("skipping malformed line %d (%q): %v", lineNo, line, err)
	})
	if err != nil {
		log.Fatal(err)
	}

	engine := matching.NewEngine()
	defer engine.Close()

	observed := harness.Run(engine, script)

	if observed.Matches(script.Result) {
		fmt.Println("PASS")
		return
	}

	fmt.Println("FAIL")
	fmt.Printf("want: size=%d bid_levels=%d ask_levels=%d\n",
		script.Result.Size, script.Result.BidLevels, script.Result.AskLevels)
	fmt.Printf("got:  size=%d bid_levels=%d ask_levels=%d\n",
		observed.Size, observed.BidLevels, observed.AskLevels)
	os.Exit(1)
}
