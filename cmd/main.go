package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/RomuloAS/TBFSBS/internal/config"
	"github.com/RomuloAS/TBFSBS/internal/inputs"
	"github.com/RomuloAS/TBFSBS/internal/tbfsbs"

	"github.com/charmbracelet/log"
)

// version is the program version. It can be overridden at build time with -ldflags "-X main.version=..."
var version = "0.1.0"

// timestampWriter prefixes each flushed line with an RFC3339 timestamp.
type timestampWriter struct {
	w   io.Writer
	buf bytes.Buffer
	mu  sync.Mutex
}

// Write buffers bytes until a newline is found; for each full line, write a timestamped
// line to the underlying writer. Partial lines are kept in the buffer.
func (t *timestampWriter) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	n, _ := t.buf.Write(p)
	total := n
	for {
		line, err := t.buf.ReadString('\n')
		if err != nil {
			break
		}
		ts := time.Now().Format(time.RFC3339)
		if _, err := t.w.Write([]byte(ts + " " + line)); err != nil {
			return total, err
		}
	}
	return total, nil
}

// terminalWriter wraps an io.Writer and exposes an Fd method so libraries that
// inspect the file descriptor (for TTY detection) can work with wrapped writers.
type terminalWriter struct {
	w  io.Writer
	fd uintptr
}

func (tw *terminalWriter) Write(p []byte) (int, error) { return tw.w.Write(p) }

// Fd exposes the underlying file descriptor (e.g., os.Stderr.Fd()).
func (tw *terminalWriter) Fd() uintptr { return tw.fd }

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(),
		"Usage: %s [options] input [input ...]\n\n"+
			"Parse TBFSBS (Text-Based Format for Storing Biological Sequences) file[s].\n"+
			"Inputs are files or folders; folders are expanded recursively.\n\n"+
			"Options:\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	// CLI flags
	var outputFlag string
	flag.StringVar(&outputFlag, "o", "", "output file name")
	flag.StringVar(&outputFlag, "output", "", "output file name")
	var wrapFlag int
	flag.IntVar(&wrapFlag, "w", 0, "maximum length of the sequence line in the output")
	flag.IntVar(&wrapFlag, "wrap", 0, "maximum length of the sequence line in the output")
	configFlag := flag.String("config", "", "path to config.json (optional)")
	verbose := flag.Bool("verbose", false, "enable verbose (debug) logging")
	versionFlag := flag.Bool("version", false, "print version and exit")
	flag.Usage = usage
	flag.Parse()

	if *versionFlag {
		fmt.Println("tbfsbs", version)
		return
	}

	// load config (optional file); a present but unreadable file is fatal
	cfg, err := config.LoadConfig(*configFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, "tbfsbs: invalid config file:", err)
		os.Exit(1)
	}

	// merge CLI flags into config (flags override config when provided)
	if outputFlag != "" {
		cfg.Output = outputFlag
	}
	if wrapFlag != 0 {
		cfg.Wrap = wrapFlag
	}

	// configure logger output
	var loggerOut io.Writer = os.Stderr
	var logFileHandle *os.File
	if cfg.LogFile != "" {
		if f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); err == nil {
			// write to both stderr and file so running interactively still shows logs
			loggerOut = io.MultiWriter(os.Stderr, f)
			logFileHandle = f
			// keep file handle open until program exit
			defer func() { _ = logFileHandle.Close() }()
		}
	}
	// If stderr is a terminal-like device, force colors for libraries that honor FORCE_COLOR.
	if fi, err := os.Stderr.Stat(); err == nil {
		if fi.Mode()&os.ModeCharDevice != 0 {
			_ = os.Setenv("FORCE_COLOR", "1")
		}
	}
	// create logger backed by the timestamping writer and expose Fd so charm.log can detect TTY
	tw := &timestampWriter{w: loggerOut}
	termW := &terminalWriter{w: tw, fd: os.Stderr.Fd()}
	logger := log.New(termW)

	// apply log level from flags/config (flags override config)
	if *verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		switch strings.ToLower(cfg.LogLevel) {
		case "debug":
			logger.SetLevel(log.DebugLevel)
		case "info", "":
			logger.SetLevel(log.InfoLevel)
		case "warn", "warning":
			logger.SetLevel(log.WarnLevel)
		case "error":
			logger.SetLevel(log.ErrorLevel)
		default:
			logger.SetLevel(log.InfoLevel)
			logger.Warn("unknown log_level in config.json, defaulting to info", "provided", cfg.LogLevel)
		}
	}

	if flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}
	if cfg.Wrap < 0 {
		logger.Fatal("wrap must be a positive integer", "wrap", cfg.Wrap)
	}

	logger.Debug("loaded config", "output", cfg.Output, "wrap", cfg.Wrap, "log_file", cfg.LogFile, "log_level", cfg.LogLevel)
	logger.Info("starting tbfsbs", "inputs", flag.NArg(), "output", cfg.Output, "wrap", cfg.Wrap)

	files, err := inputs.Resolve(flag.Args())
	if err != nil {
		logger.Fatal("failed to resolve inputs", "err", err)
	}
	logger.Debug("resolved inputs", "files", len(files))

	var all []tbfsbs.Record
	for _, path := range files {
		records, err := parseFile(path)
		if err != nil {
			logger.Fatal("failed to parse input", "path", path, "err", err)
		}
		logger.Debug("parsed file", "path", path, "records", len(records))

		fmt.Printf("File: %s\n\n", path)
		for _, rec := range records {
			fmt.Print(rec.Summary())
			fmt.Println()
		}
		all = append(all, records...)
	}
	logger.Info("parsed all inputs", "files", len(files), "records", len(all))

	if cfg.Output != "" {
		if err := writeFile(cfg.Output, all, cfg.Wrap); err != nil {
			logger.Fatal("failed to write output", "path", cfg.Output, "err", err)
		}
		logger.Info("wrote output", "path", cfg.Output, "records", len(all), "wrap", cfg.Wrap)
	}
}

// parseFile opens path and parses all TBFSBS records from it.
func parseFile(path string) ([]tbfsbs.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return tbfsbs.ParseRecords(f)
}

// writeFile serializes records to path with the given wrap width.
func writeFile(path string, records []tbfsbs.Record, wrap int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := tbfsbs.Write(f, records, wrap); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
