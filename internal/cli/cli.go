// Package cli implements the textlzw command.
//
//	textlzw [flags] -    compress stdin to stdout
//	textlzw [flags] +    expand stdin to stdout
//
// Diagnostics go to stderr through a "[textlzw] " logger; stdout only ever
// receives the output stream.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"time"

	json "github.com/json-iterator/go"

	"github.com/arloliu/textlzw/errs"
	"github.com/arloliu/textlzw/format"
	"github.com/arloliu/textlzw/frame"
	"github.com/arloliu/textlzw/internal/pool"
	"github.com/arloliu/textlzw/lzw"
)

// Exit statuses returned by Run.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

const (
	modeCompress = "-"
	modeExpand   = "+"
)

type settings struct {
	mode      string
	width     int
	framed    bool
	codec     format.CompressionType
	stats     bool
	statsJSON bool
	verbose   bool
}

// Report is the -stats-json document.
type Report struct {
	Mode      string    `json:"mode"`
	Framed    bool      `json:"framed"`
	Codec     string    `json:"codec,omitempty"`
	Stats     lzw.Stats `json:"lzw"`
	Ratio     float64   `json:"ratio"`
	ElapsedNs int64     `json:"elapsed_ns"`
}

// Run executes the command with args (without the program name) and returns the exit status.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "[textlzw] ", log.LstdFlags)

	s, err := parseArgs(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitOK
		}
		logger.Print(err)

		return ExitUsage
	}

	if err := run(s, stdin, stdout, stderr, logger); err != nil {
		logger.Print(err)
		return ExitFailure
	}

	return ExitOK
}

func parseArgs(args []string, stderr io.Writer) (settings, error) {
	fs := flag.NewFlagSet("textlzw", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: textlzw [flags] -|+")
		fmt.Fprintln(fs.Output(), "  -  compress stdin to stdout")
		fmt.Fprintln(fs.Output(), "  +  expand stdin to stdout")
		fs.PrintDefaults()
	}

	var (
		s         settings
		codecName string
	)
	fs.IntVar(&s.width, "width", lzw.DefaultCodeWidth, "code width in bits (9-16), must match on both sides")
	fs.BoolVar(&s.framed, "frame", false, "wrap the code stream in a checksummed frame")
	fs.StringVar(&codecName, "codec", "", "secondary compression inside the frame (implies -frame): "+codecNames())
	fs.BoolVar(&s.stats, "stats", false, "log a one-line summary to stderr")
	fs.BoolVar(&s.statsJSON, "stats-json", false, "write a JSON report to stderr")
	fs.BoolVar(&s.verbose, "v", false, "log dictionary growth details to stderr")

	if err := fs.Parse(args); err != nil {
		return s, err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return s, fmt.Errorf("%w: expected exactly one of %q or %q, got %d arguments",
			errs.ErrInvalidMode, modeCompress, modeExpand, fs.NArg())
	}
	s.mode = fs.Arg(0)
	if s.mode != modeCompress && s.mode != modeExpand {
		fs.Usage()
		return s, fmt.Errorf("%w: %q", errs.ErrInvalidMode, s.mode)
	}

	if s.width < lzw.MinCodeWidth || s.width > lzw.MaxCodeWidth {
		fs.Usage()
		return s, fmt.Errorf("%w: %d", errs.ErrInvalidCodeWidth, s.width)
	}

	s.codec = format.CompressionNone
	if codecName != "" {
		codec, err := format.ParseCompressionType(codecName)
		if err != nil {
			fs.Usage()
			return s, fmt.Errorf("%w: %q", err, codecName)
		}
		s.codec = codec
		s.framed = true
	}

	return s, nil
}

func codecNames() string {
	names := ""
	for i, c := range format.AllCompressionTypes() {
		if i > 0 {
			names += ", "
		}
		names += c.String()
	}

	return names
}

func run(s settings, stdin io.Reader, stdout, stderr io.Writer, logger *log.Logger) error {
	input := pool.GetInputBuffer()
	defer pool.PutInputBuffer(input)

	if _, err := input.ReadFrom(stdin); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	growth := newGrowthTracker()
	start := time.Now()

	var (
		out   []byte
		stats lzw.Stats
		err   error
	)
	switch {
	case s.mode == modeCompress && s.framed:
		out, stats, err = frame.EncodeWithStats(input.Bytes(),
			frame.WithCodeWidth(s.width),
			frame.WithCompression(s.codec),
		)
	case s.mode == modeCompress:
		out, stats, err = compressRaw(s, input.Bytes(), growth)
	case s.framed:
		out, stats, err = frame.DecodeWithStats(input.Bytes())
	default:
		out, stats, err = expandRaw(s, input.Bytes(), growth)
	}
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	if _, err := stdout.Write(out); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if s.verbose {
		growth.log(logger, s)
	}
	if s.stats {
		logger.Printf("%s: %d -> %d bytes (%.2f%%), width=%d codes=%d learned=%d frozen=%t in %s",
			modeName(s.mode), stats.InputBytes, stats.OutputBytes, stats.Ratio()*100,
			stats.CodeWidth, stats.CodesEmitted, stats.CodesAssigned, stats.Frozen, elapsed)
	}
	if s.statsJSON {
		report := Report{
			Mode:      modeName(s.mode),
			Framed:    s.framed,
			Stats:     stats,
			Ratio:     stats.Ratio(),
			ElapsedNs: elapsed.Nanoseconds(),
		}
		if s.framed {
			report.Codec = s.codec.String()
		}

		return writeReport(stderr, report)
	}

	return nil
}

func compressRaw(s settings, data []byte, growth *growthTracker) ([]byte, lzw.Stats, error) {
	enc, err := lzw.NewEncoder(lzw.WithCodeWidth(s.width), lzw.WithAssignHook(growth.observe))
	if err != nil {
		return nil, lzw.Stats{}, err
	}

	return enc.CompressWithStats(data)
}

func expandRaw(s settings, data []byte, growth *growthTracker) ([]byte, lzw.Stats, error) {
	dec, err := lzw.NewDecoder(lzw.WithCodeWidth(s.width), lzw.WithAssignHook(growth.observe))
	if err != nil {
		return nil, lzw.Stats{}, err
	}

	return dec.ExpandWithStats(data)
}

func writeReport(w io.Writer, report Report) error {
	stream := json.ConfigDefault.BorrowStream(w)
	defer json.ConfigDefault.ReturnStream(stream)

	stream.WriteVal(report)
	stream.WriteRaw("\n")
	if err := stream.Flush(); err != nil {
		return fmt.Errorf("failed to write stats report: %w", err)
	}

	return stream.Error
}

func modeName(mode string) string {
	if mode == modeCompress {
		return "compress"
	}

	return "expand"
}
