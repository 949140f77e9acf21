// Command mado-probe resolves and prints the display metrics of the
// running session, exercising the same resolution chain a GUI host uses.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/sonoshi/mado/app"
	"github.com/sonoshi/mado/app/config"
	"github.com/sonoshi/mado/dpi"
	"github.com/sonoshi/mado/infra/metricstore"
	"github.com/sonoshi/mado/platform"
	"github.com/sonoshi/mado/util/log"
	"github.com/sonoshi/mado/winsys"
	"github.com/sonoshi/mado/winsys/glfwwin"
	"github.com/sonoshi/mado/winsys/x11"
)

var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configFile  = flag.String("config", config.ConfigFile, "configuration `file` to load; generated when absent.")
		backend     = flag.String("backend", "x11", "windowing `backend` to probe, { x11 | glfw }.")
		snapshot    = flag.String("snapshot", "", "`file` to store resolved metrics in; reused as fallback when probing fails.")
		watch       = flag.Bool("watch", false, "keep running and re-report on config changes.")
		showVersion = flag.Bool("version", false, "show version info and quit.")
	)
	flag.Parse()

	if *showVersion {
		fmt.Println(version)
		return 0
	}

	conf, err := config.LoadOrDefault(*configFile)
	switch err {
	case config.ErrDefaultConfigGenerated:
		fmt.Fprintf(os.Stderr, "config file (%v) does not exist, default config written there.\n", *configFile)
	case nil:
	default:
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	reset, err := config.SetupLog(conf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "log configuration failed: %v\n", err)
		return 1
	}
	defer reset()

	caps := platform.Detect()
	win, closeWin, err := openBackend(*backend, caps)
	if err != nil {
		log.Infof("backend %s unavailable: %v", *backend, err)
		return reportFromSnapshot(conf, caps, *snapshot)
	}
	defer closeWin()

	a, err := app.New(conf, caps, win)
	if err != nil {
		log.Infoln(err)
		return 1
	}
	if err := report(a, conf, *snapshot); err != nil {
		log.Infoln(err)
		return 1
	}

	if *watch {
		stop, err := a.WatchConfig(*configFile)
		if err != nil {
			log.Infoln(err)
			return 1
		}
		defer stop()
		log.Infof("watching %s, press enter to quit", *configFile)
		fmt.Fscanln(os.Stdin)
	}
	return 0
}

// openBackend connects the requested windowing backend. The returned close
// function releases its resources.
func openBackend(name string, caps *platform.Capabilities) (winsys.Library, func(), error) {
	switch name {
	case "x11":
		lib, err := x11.Open()
		if err != nil {
			return nil, nil, err
		}
		caps.SetX11Display(lib.Display())
		return lib, func() { lib.Close() }, nil
	case "glfw":
		if err := glfw.Init(); err != nil {
			return nil, nil, fmt.Errorf("glfw init: %w", err)
		}
		return glfwwin.New(), glfw.Terminate, nil
	default:
		return nil, nil, fmt.Errorf("unknown backend %q", name)
	}
}

func report(a *app.App, conf *config.Config, snapshot string) error {
	m, err := a.Metrics()
	if err != nil {
		return err
	}
	printMetrics(m)

	px, err := a.PtToPx(conf.FontSize)
	if err != nil {
		return err
	}
	fmt.Printf("%gpt font:  %d px\n", conf.FontSize, px)

	if snapshot != "" {
		if err := metricstore.Save(snapshot, m); err != nil {
			log.Infoln(err)
		} else {
			log.Debugf("metrics stored in %s", snapshot)
		}
	}
	return nil
}

// reportFromSnapshot serves the last stored metrics when no backend can be
// probed, e.g. in a headless session.
func reportFromSnapshot(conf *config.Config, caps *platform.Capabilities, snapshot string) int {
	if snapshot == "" {
		fmt.Fprintln(os.Stderr, "no backend and no snapshot to fall back to")
		return 1
	}
	m, err := metricstore.Load(snapshot)
	if err != nil {
		log.Infoln(err)
		return 1
	}
	fmt.Println("(served from snapshot)")
	printMetrics(m)
	return 0
}

func printMetrics(m dpi.Metrics) {
	fmt.Printf("physical:  %g x %g dpi\n", m.Physical.X, m.Physical.Y)
	fmt.Printf("logical:   %g x %g dpi\n", m.Logical.X, m.Logical.Y)
}
