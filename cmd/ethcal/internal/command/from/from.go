// Package from implements the "from" command.
package from

import (
	"context"
	"time"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/SebastiaanKlippert/go-ethcal"
	"github.com/SebastiaanKlippert/go-ethcal/cmd/ethcal/internal/ethcalcmd"
	"github.com/SebastiaanKlippert/go-ethcal/internal/cliio"
	"github.com/spf13/pflag"
)

// NewCommand returns a new from command that converts an Ethiopian date to the Gregorian calendar.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name,
		Short: "Convert an Ethiopian date to the Gregorian calendar",
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
	// Date is the Ethiopian date (YYYY-MM-DD) to convert.
	Date string
	// Location is the time zone of the resulting Gregorian midnight.
	Location string
	// Format is the output format (text, json, yaml).
	Format string
}

func newFlags() *flags {
	return &flags{}
}

// Bind registers the flag definitions with the given flag set.
func (f *flags) Bind(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&f.Date, ethcalcmd.DateFlagName, "", "The Ethiopian date (YYYY-MM-DD) to convert")
	flagSet.StringVar(&f.Location, ethcalcmd.LocationFlagName, ethcalcmd.DefaultLocation, "The time zone of the resulting Gregorian midnight")
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
	result, err := toResult(flags.Date, loc)
	if err != nil {
		return ethcalcmd.ConversionError(flags.Date, err)
	}
	container.Logger().Debug("converted", "ethiopian", result.Ethiopian, "gregorian", result.Gregorian)
	return cliio.WriteResult(container.Stdout(), format, result)
}

// toResult reports the parsed date in its canonical form, not as it was typed.
func toResult(input string, loc *time.Location) (cliio.Result, error) {
	date, err := ethcal.ParseDate(input)
	if err != nil {
		return cliio.Result{}, err
	}
	gregorian, err := date.Gregorian(loc)
	if err != nil {
		return cliio.Result{}, err
	}
	return cliio.Result{
		Input:     input,
		Ethiopian: date.String(),
		Gregorian: gregorian.Format("2006-01-02"),
		Output:    gregorian.Format("2006-01-02"),
	}, nil
}
