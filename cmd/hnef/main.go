// hnef writes and inspects encoded Tafl boards.
//
// To write the starting position of a variant:
//
//	hnef --layout=hnefatafl --output=board.hnef
//
// To decode and display one or more encoded boards:
//
//	hnef --input=board.hnef,other.hnef --hex --config=strict
package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/gomlx/exceptions"
	"github.com/janpfeifer/hnefGo/internal/parameters"
	. "github.com/janpfeifer/hnefGo/internal/state"
	"github.com/janpfeifer/hnefGo/internal/ui/cli"
	"github.com/janpfeifer/must"
	"k8s.io/klog/v2"
)

var (
	_ = fmt.Printf

	flagLayout = flag.String("layout", "hnefatafl",
		fmt.Sprintf("Starting position written with --output, one of %v.", LayoutStrings()))
	flagOutput = flag.String("output", "", "File where to write the encoded --layout board. "+
		"An existing file is first renamed with a \"~\" suffix.")
	flagInput  = flag.String("input", "", "Comma-separated list of encoded board files to decode and display.")
	flagHex    = flag.Bool("hex", false, "Also display the bytes of each encoded board.")
	flagConfig = flag.String("config", "", "Configuration, a comma-separated list of key=value: "+
		"\"strict\" rejects reserved bits and trailing bytes when decoding, "+
		"\"color=false\" disables colors, \"clear\" clears the screen before each board.")
)

// config parsed from --config.
type config struct {
	strict, color, clearScreen bool
}

func parseConfig(configStr string) (cfg config, err error) {
	params := parameters.NewFromConfigString(configStr)
	if cfg.strict, err = parameters.PopParamOr(params, "strict", false); err != nil {
		return
	}
	if cfg.color, err = parameters.PopParamOr(params, "color", true); err != nil {
		return
	}
	if cfg.clearScreen, err = parameters.PopParamOr(params, "clear", false); err != nil {
		return
	}
	err = parameters.CheckAllConsumed(params)
	return
}

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	if *flagOutput == "" && *flagInput == "" {
		klog.Exitf("Nothing to do: set --output to write a board and/or --input to read boards.")
	}
	cfg, err := parseConfig(*flagConfig)
	if err != nil {
		klog.Exitf("Invalid --config=%q: %+v", *flagConfig, err)
	}
	ui := cli.New(cfg.color, cfg.clearScreen)

	if *flagOutput != "" {
		layout := must.M1(ParseLayout(*flagLayout))
		board := must.M1(NewLayoutBoard(layout))
		must.M(writeBoard(*flagOutput, board))
		klog.Infof("Wrote %s board (%d bytes) to %q", layout, board.EncodedLen(), *flagOutput)
		ui.Print(board, fmt.Sprintf("%s -> %s", layout, *flagOutput))
	}

	if *flagInput != "" {
		var filenames []string
		for _, name := range strings.Split(*flagInput, ",") {
			if name = strings.TrimSpace(name); name != "" {
				filenames = append(filenames, name)
			}
		}
		if len(filenames) == 0 {
			exceptions.Panicf("invalid --input=%q, no file names given", *flagInput)
		}
		decoded, err := decodeFiles(filenames, cfg.strict)
		if err != nil {
			klog.Fatalf("Failed to decode boards: %+v", err)
		}
		for _, d := range decoded {
			ui.Print(d.board, d.filename)
			if *flagHex {
				ui.PrintHex(d.encoded)
			}
		}
	}
}
