package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"mapedit/internal/config"
	"mapedit/internal/tui"
)

func main() {
	var (
		cfgPath = flag.String("config", "mapedit.yaml", "Editor configuration file (YAML)")
		logPath = flag.String("log", "", "Write logs to this file (overrides log_file)")
		watch   = flag.Bool("watch", true, "Reload the configuration when it changes")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [outline.geojson|.kml|.wkt|things.csv]\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	haveCfg := err == nil
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Fatal(err)
		}
		cfg = config.Default()
	}

	// the alt screen owns stdout, so logs go to a file or nowhere
	logFile := cfg.LogFile
	if *logPath != "" {
		logFile = *logPath
	}
	if logFile != "" {
		f, err := tea.LogToFile(logFile, "mapedit")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	var m tui.Model
	if flag.NArg() > 0 {
		m = tui.NewWithPath(cfg, flag.Arg(0))
	} else {
		m = tui.New(cfg)
	}
	if haveCfg && *watch {
		w, err := config.Watch(*cfgPath)
		if err != nil {
			log.Printf("watch %s: %v", *cfgPath, err)
		} else {
			defer w.Close()
			m = m.WithConfigWatch(*cfgPath, w)
		}
	}

	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}
