package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/oarkflow/log"

	"github.com/oarkflow/stem"
	"github.com/oarkflow/stem/verify"
	"github.com/oarkflow/stem/web"
)

var (
	hostPtr     = flag.String("host", "0.0.0.0", "Domain name or IP")
	portPtr     = flag.String("port", "3000", "Port available to be used on server")
	wordsPtr    = flag.String("words", "", "Space-separated words to stem and print")
	filePtr     = flag.String("file", "", "Word list file, one word per line")
	expectedPtr = flag.String("expected", "", "Expected stem file, line-aligned with -file")
	keyPtr      = flag.String("key", "default", "Engine key")
	workersPtr  = flag.Int("workers", 0, "Workers for batch verification")
)

func main() {
	flag.Parse()
	engine, err := stem.GetEngine(*keyPtr)
	if err != nil {
		log.Error().Err(err).Msg("Unable to create engine")
		os.Exit(1)
	}
	if *wordsPtr != "" {
		stemmed, err := engine.StemText(*wordsPtr)
		if err != nil {
			log.Error().Err(err).Msg("Unable to stem words")
			os.Exit(1)
		}
		fmt.Println(stemmed)
		return
	}
	if *filePtr != "" && *expectedPtr != "" {
		report, err := verify.Run(*filePtr, *expectedPtr, verify.Options{Engine: engine, Workers: *workersPtr})
		if err != nil {
			log.Error().Err(err).Msg("Unable to verify stems")
			os.Exit(1)
		}
		bt, err := report.JSON()
		if err != nil {
			log.Error().Err(err).Msg("Unable to render report")
			os.Exit(1)
		}
		// Mismatches are reported, not fatal.
		fmt.Println(string(bt))
		return
	}
	addr := fmt.Sprintf("%s:%s", *hostPtr, *portPtr)
	web.StartServer(addr)
}
