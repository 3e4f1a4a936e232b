// Package to implements the "to" command.
package to

import (
	"context"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/SebastiaanKlippert/go-ethcal/cmd/ethcal/internal/ethcalcmd"
	"github.com/SebastiaanKlippert/go-ethcal/internal/cliio"
	"github.com/spf13/pflag"
)

// NewCommand returns a new to command that converts a Gregorian date to the Ethiopian calendar.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name,
		Short: "Convert a Gregorian date or timestamp to the Ethiopian calendar",
		Args:  appcmd.NoArgs,
		Run: builder.NewRunFunc(
			func(ctx context.Context, container appext.Container) error {
				return run(ctx, container, flags)
			},
		),
		BindFlags: flags.Bind,
	}
}

type flags struct {
	// Date is the Gregorian date (YYYY-MM-DD) or RFC 3339 timestamp to convert.
	Date string
	// Time keeps the time of day in the output.
	Time bool
	// Location is the time zone a date without offset is interpreted in.
	Location string
	// Format is the output format (text, json, yaml).
	Format string
}

func newFlags() *flags {
	return &flags{}
}

// Bind registers the flag definitions with the given flag set.
func (f *flags) Bind(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&f.Date, ethcalcmd.DateFlagName, "", "The Gregorian date (YYYY-MM-DD) or RFC 3339 timestamp to convert")
	flagSet.BoolVar(&f.Time, ethcalcmd.TimeFlagName, false, "Keep the time of day")
	flagSet.StringVar(&f.Location, ethcalcmd.LocationFlagName, ethcalcmd.DefaultLocation, "The time zone for dates without an offset")
	flagSet.StringVar(&f.Format, ethcalcmd.FormatFlagName, ethcalcmd.DefaultFormat, "Output format (text, json, yaml)")
}

func run(_ context.Context, container appext.Container, flags *flags) error {
	if flags.Date == "" {
		return appcmd.NewInvalidArgumentErrorf("--%s is required", ethcalcmd.DateFlagName)
	}
	format, err := ethcalcmd.ParseFormat(flags.Format)
	if err != nil {
		return err
	}
	loc, err := ethcalcmd.LoadLocation(flags.Location)
	if err != nil {
		return err
	}
	gregorian, hasTime, err := ethcalcmd.ParseGregorian(flags.Date, loc)
	if err != nil {
		return err
	}
	ts, err := ethcalcmd.NewConverter(loc).Timestamp(gregorian)
	if err != nil {
		return ethcalcmd.ConversionError(flags.Date, err)
	}
	container.Logger().Debug("converted", "gregorian", gregorian, "ethiopian", ts.String())
	return cliio.WriteResult(
		container.Stdout(),
		format,
		ethcalcmd.EthiopianResult(flags.Date, gregorian, ts, flags.Time && hasTime),
	)
}
