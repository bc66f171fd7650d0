package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/termkey"
)

func main() {
	configPath := flag.String("config", "", "TOML file with timing settings, watched for changes")
	termName := flag.String("term", "", "terminal name override (defaults to $TERM)")
	flag.Parse()

	svc := termkey.NewService()

	if *configPath != "" {
		if err := termkey.LoadFile(*configPath, svc.Config()); err != nil {
			fmt.Fprintf(os.Stderr, "config: %v\n", err)
			os.Exit(1)
		}
		stop, err := termkey.WatchFile(*configPath, svc.Config())
		if err != nil {
			fmt.Fprintf(os.Stderr, "config watch: %v\n", err)
			os.Exit(1)
		}
		defer stop()
	}

	if err := svc.Init(termkey.LookupTable(*termName)); err != nil {
		fmt.Fprintf(os.Stderr, "init failed: %v\n", err)
		os.Exit(1)
	}
	if err := svc.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "start failed: %v\n", err)
		os.Exit(1)
	}
	defer svc.Stop()

	// Raw mode: \r\n line endings, no buffering games
	fmt.Print("termkey echo - press keys, Ctrl+C to quit\r\n")

	for ev := range svc.Events() {
		switch ev.Type {
		case termkey.EventKey:
			label := ev.String()
			pad := 24 - runewidth.StringWidth(label)
			if pad < 1 {
				pad = 1
			}
			fmt.Printf("%s%*s key=%d rune=%q mods=%03b\r\n",
				label, pad, "", ev.Key, ev.Rune, ev.Modifiers)
			if ev.Key == termkey.KeyCtrlC {
				svc.Stop()
			}
		case termkey.EventResize:
			fmt.Printf("resize %dx%d\r\n", ev.Width, ev.Height)
		case termkey.EventError:
			fmt.Printf("read error: %v\r\n", ev.Err)
		case termkey.EventClosed:
			// Channel closes right after this marker
		}
	}

	st := svc.Engine().Stats()
	fmt.Printf("\nevents=%d discarded_bytes=%d discarded_runs=%d esc_timeouts=%d\n",
		st.KeyEvents, st.BytesDiscarded, st.RunsDiscarded, st.EscTimeouts)
}
