//go:build !libretro && !ios

package main

import (
	"flag"
	"log"
	"strconv"

	"github.com/user-none/eblitui/standalone"

	"github.com/user-none/softfilter/adapter"
	"github.com/user-none/softfilter/scaler"
)

func main() {
	imagePath := flag.String("image", "", "path to image file (opens UI if not provided)")
	filterName := flag.String("filter", "", "filter ID or name")
	format := flag.String("format", "", "pixel format: rgb565 or xrgb8888")
	threads := flag.Int("threads", 0, "render bands per frame")
	flag.Parse()

	factory := &adapter.Factory{}

	if *imagePath != "" {
		options := map[string]string{}
		if *filterName != "" {
			options[scaler.OptionFilter] = *filterName
		}
		if *format != "" {
			options[scaler.OptionFormat] = *format
		}
		if *threads > 0 {
			options[scaler.OptionThreads] = strconv.Itoa(*threads)
		}
		if err := standalone.RunDirect(factory, *imagePath, "ntsc", options); err != nil {
			log.Fatal(err)
		}
		return
	}

	if err := standalone.Run(factory); err != nil {
		log.Fatal(err)
	}
}
