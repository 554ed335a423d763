package main

import (
	"flag"
	"log"

	"github.com/kolibri8/nescore/internal/nes"
	"github.com/kolibri8/nescore/internal/ui"
	"github.com/pkg/profile"
)

func main() {
	cpuprofile := flag.Bool("cpuprofile", false, "write a cpu profile of the run to ./cpu.pprof")
	flag.Parse()

	if flag.NArg() < 1 {
		log.Fatal("usage: nesrun [-cpuprofile] <rom.nes>")
	}

	if *cpuprofile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	cart, err := nes.NewCartridgeFromFile(flag.Arg(0))
	if err != nil {
		log.Fatalf("couldn't load rom: %s\n", err.Error())
	}

	console := nes.NewConsole()
	console.LoadCartridge(cart)

	if err := ui.RunUI(ui.New(console)); err != nil {
		log.Fatalf("ui exited with error: %s\n", err.Error())
	}
}
