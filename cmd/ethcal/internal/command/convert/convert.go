// Package convert implements the "convert" command.
package convert

import (
	"context"
	"fmt"
	"time"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/SebastiaanKlippert/go-ethcal"
	"github.com/SebastiaanKlippert/go-ethcal/cmd/ethcal/internal/ethcalcmd"
	"github.com/SebastiaanKlippert/go-ethcal/internal/cliio"
	"github.com/spf13/pflag"
)

const (
	// inputFlagName is the flag name for the input file.
	inputFlagName = "input"
	// fromEthiopianFlagName is the flag name for Ethiopian input.
	fromEthiopianFlagName = "from-ethiopian"
	// charsetFlagName is the flag name for the input character set.
	charsetFlagName = "charset"
)

// NewCommand returns a new convert command that converts one date per input line.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name,
		Short: "Convert a list of dates, one per line",
		Long: `Convert a list of dates, one per line, read from a file or stdin.

By default the input is Gregorian: YYYY-MM-DD dates or RFC 3339 timestamps, the
time of day of a timestamp is kept. With --from-ethiopian the input is Ethiopian
YYYY-MM-DD date text. Lines that fail to convert are reported and do not stop
the conversion.`,
		Args: appcmd.NoArgs,
		Run: builder.NewRunFunc(
			func(ctx context.Context, container appext.Container) error {
				return run(ctx, container, flags)
			},
		),
		BindFlags: flags.Bind,
	}
}

type flags struct {
	// Input is the input file path, "-" for stdin.
	Input string
	// FromEthiopian reads Ethiopian dates instead of Gregorian ones.
	FromEthiopian bool
	// Charset is the character set of the input.
	Charset string
	// Location is the time zone of Gregorian results.
	Location string
	// Format is the output format (text, json, yaml).
	Format string
}

func newFlags() *flags {
	return &flags{}
}

// Bind registers the flag definitions with the given flag set.
func (f *flags) Bind(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&f.Input, inputFlagName, "-", `The input file, "-" for stdin`)
	flagSet.BoolVar(&f.FromEthiopian, fromEthiopianFlagName, false, "The input is Ethiopian date text")
	flagSet.StringVar(&f.Charset, charsetFlagName, "utf-8", "The character set of the input (for example windows-1252)")
	flagSet.StringVar(&f.Location, ethcalcmd.LocationFlagName, "UTC", "The time zone of Gregorian results")
	flagSet.StringVar(&f.Format, ethcalcmd.FormatFlagName, ethcalcmd.DefaultFormat, "Output format (text, json, yaml)")
}

func run(_ context.Context, container appext.Container, flags *flags) error {
	format, err := ethcalcmd.ParseFormat(flags.Format)
	if err != nil {
		return err
	}
	loc, err := ethcalcmd.LoadLocation(flags.Location)
	if err != nil {
		return err
	}
	decoder, err := ethcal.NewDecoder(flags.Charset)
	if err != nil {
		return appcmd.NewInvalidArgumentErrorf("--%s: %v", charsetFlagName, err)
	}
	direction := ethcal.ToEthiopian
	if flags.FromEthiopian {
		direction = ethcal.FromEthiopian
	}
	options := []ethcal.ReaderOption{
		ethcal.WithDecoder(decoder),
		ethcal.WithDirection(direction),
		ethcal.WithConverter(ethcalcmd.NewConverter(loc)),
	}
	var reader *ethcal.Reader
	if flags.Input == "-" {
		reader, err = ethcal.OpenStream(container.Stdin(), options...)
	} else {
		reader, err = ethcal.OpenFile(flags.Input, options...)
	}
	if err != nil {
		return err
	}

	logger := container.Logger()
	records := reader.Records()
	results := make([]cliio.Result, 0, len(records))
	failed := 0
	for _, record := range records {
		result := toResult(record, direction)
		if record.Err != nil {
			failed++
			logger.Warn("conversion failed", "line", record.Line, "input", record.Input, "error", record.Err)
		}
		results = append(results, result)
	}
	logger.Debug("converted", "direction", direction.String(), "records", len(records), "failed", failed)
	if err := cliio.WriteResults(container.Stdout(), format, results); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d records failed to convert", failed, len(records))
	}
	return nil
}

func toResult(record *ethcal.Record, direction ethcal.Direction) cliio.Result {
	result := cliio.Result{
		Input:  record.Input,
		Line:   record.Line,
		Output: record.Output,
	}
	if record.Err != nil {
		result.Error = record.Err.Error()
		return result
	}
	switch direction {
	case ethcal.FromEthiopian:
		result.Ethiopian = record.Ethiopian.Date.String()
		result.Gregorian = record.Output
	default:
		result.Ethiopian = record.Output
		result.Gregorian = record.Gregorian.Format(time.RFC3339Nano)
	}
	return result
}
