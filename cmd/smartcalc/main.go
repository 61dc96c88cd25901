package main

import (
	"fmt"
	"io"
	"os"

	"fortio.org/log"
	"git.sr.ht/~sircmpwn/getopt"
	"golang.org/x/term"

	"github.com/zephyrtronium/smartcalc"
	"github.com/zephyrtronium/smartcalc/internal/config"
	"github.com/zephyrtronium/smartcalc/internal/repl"
)

const usage = `usage: smartcalc [options] [line...]

Reads lines from standard input, or handles each line argument in order.

options:
  -c FILE  configuration file (default %s)
  -v       verbose logging
  -q       log errors only
  -n       disable color
  -w       write the configuration file and exit
  -h       print this help
`

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout))
}

// terminal reports whether f is an open terminal. Anything other than an
// *os.File is not.
func terminal(f any) bool {
	file, ok := f.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}

func run(args []string, stdin io.Reader, stdout io.Writer) int {
	opts, optind, err := getopt.Getopts(args, "c:vqnwh")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintf(os.Stderr, usage, config.GetConfigPath())
		return 2
	}
	var (
		cfgpath        = config.GetConfigPath()
		verbose, quiet bool
		nocolor, write bool
	)
	for _, opt := range opts {
		switch opt.Option {
		case 'c':
			cfgpath = opt.Value
		case 'v':
			verbose = true
		case 'q':
			quiet = true
		case 'n':
			nocolor = true
		case 'w':
			write = true
		default: // case 'h':
			fmt.Fprintf(stdout, usage, config.GetConfigPath())
			return 0
		}
	}
	lines := args[optind:]

	cfg, err := config.Load(cfgpath)
	if err != nil {
		log.Errf("loading config: %v", err)
		return 1
	}
	if err := log.SetLogLevelStr(cfg.LogLevel); err != nil {
		log.Warnf("ignoring log level %q from %s: %v", cfg.LogLevel, cfgpath, err)
	}
	switch {
	case verbose:
		log.SetLogLevel(log.Verbose)
	case quiet:
		log.SetLogLevel(log.Error)
	}
	if write {
		if err := cfg.Save(cfgpath); err != nil {
			log.Errf("writing config: %v", err)
			return 1
		}
		fmt.Fprintln(stdout, "wrote", cfgpath)
		return 0
	}

	interactive := len(lines) == 0 && terminal(stdin)
	ropts := repl.Options{
		Color: !nocolor && cfg.UseColor(terminal(stdout)),
	}
	if interactive {
		ropts.Prompt = cfg.Prompt
		ropts.Greeting = cfg.Greeting
	}
	log.LogVf("config %s: %+v", cfgpath, cfg)

	s := repl.New(smartcalc.NewContext(), stdout, ropts)
	if len(lines) > 0 {
		for _, line := range lines {
			if s.Handle(line) {
				break
			}
		}
		return 0
	}
	if err := s.Run(stdin); err != nil {
		log.Errf("reading input: %v", err)
		return 1
	}
	return 0
}
