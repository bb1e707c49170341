package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/kaelbrook/cdclsat/parsers"
	"github.com/kaelbrook/cdclsat/sat"
)

var flagCPUProfile = flag.Bool(
	"cpuprof",
	false,
	"save pprof CPU profile in cpuprof",
)

var flagMemProfile = flag.Bool(
	"memprof",
	false,
	"save pprof memory profile in memprof",
)

var flagGzipped = flag.Bool(
	"gzip",
	false,
	"instance file is gzip-compressed",
)

var flagVerbosity = flag.Int(
	"v",
	0,
	"diagnostic verbosity (0 = silent)",
)

var flagNoPreprocess = flag.Bool(
	"no-preprocess",
	false,
	"disable the inprocessing preprocessor",
)

func parseConfig() (*config, error) {
	flag.Parse()

	if flag.NArg() == 0 || flag.Arg(0) == "" {
		return nil, fmt.Errorf("missing instance file")
	}
	return &config{
		instanceFile: flag.Arg(0),
		memProfile:   *flagMemProfile,
		cpuProfile:   *flagCPUProfile,
		gzipped:      *flagGzipped,
		verbosity:    *flagVerbosity,
		noPreprocess: *flagNoPreprocess,
	}, nil
}

type config struct {
	instanceFile string
	memProfile   bool
	cpuProfile   bool
	gzipped      bool
	verbosity    int
	noPreprocess bool
}

func run(cfg *config) error {
	params := sat.DefaultParams
	params.Verbosity = cfg.verbosity
	params.Preprocess = !cfg.noPreprocess

	s := sat.NewSolver(params)
	s.SetOutput(os.Stdout)

	if err := parsers.LoadDIMACS(cfg.instanceFile, cfg.gzipped, s); err != nil {
		return fmt.Errorf("could not parse instance: %s", err)
	}

	fmt.Printf("c variables:  %d\n", s.NumVars())

	t := time.Now()
	status := s.Solve()
	elapsed := time.Since(t)

	stats := s.Stats()
	fmt.Printf("c time (sec): %f\n", elapsed.Seconds())
	fmt.Printf("c conflicts:  %d (%.2f /sec)\n", stats.Conflicts, float64(stats.Conflicts)/elapsed.Seconds())
	fmt.Printf("c status:     %s\n", status.String())

	if status == sat.Sat {
		model := s.Model()
		fmt.Print("v")
		for i, v := range model {
			if v.Bool() {
				fmt.Printf(" %d", i+1)
			} else {
				fmt.Printf(" -%d", i+1)
			}
		}
		fmt.Println(" 0")
	}

	return nil
}

func main() {
	cfg, err := parseConfig()
	if err != nil {
		log.Fatal(err)
	}

	if cfg.cpuProfile {
		f, err := os.Create("cpuprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}

	if cfg.memProfile {
		f, err := os.Create("memprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
		return
	}
}
