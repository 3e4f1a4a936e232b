// Package now implements the "now" command.
package now

import (
	"context"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/SebastiaanKlippert/go-ethcal/cmd/ethcal/internal/ethcalcmd"
	"github.com/SebastiaanKlippert/go-ethcal/internal/cliio"
	"github.com/spf13/pflag"
)

// NewCommand returns a new now command that prints the current Ethiopian date.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name,
		Short: "Print the current date in the Ethiopian calendar",
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
	// Time prints the time of day as well.
	Time bool
	// Location is the time zone "now" is read in.
	Location string
	// Format is the output format (text, json, yaml).
	Format string
}

func newFlags() *flags {
	return &flags{}
}

// Bind registers the flag definitions with the given flag set.
func (f *flags) Bind(flagSet *pflag.FlagSet) {
	flagSet.BoolVar(&f.Time, ethcalcmd.TimeFlagName, false, "Print the time of day as well")
	flagSet.StringVar(&f.Location, ethcalcmd.LocationFlagName, ethcalcmd.DefaultLocation, "The time zone to read the current time in")
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
	converter := ethcalcmd.NewConverter(loc)
	// The converter's clock is stable, so Now and CurrentTimestamp see the same instant.
	gregorian := converter.Now()
	ts, err := converter.CurrentTimestamp()
	if err != nil {
		return err
	}
	return cliio.WriteResult(
		container.Stdout(),
		format,
		ethcalcmd.EthiopianResult("", gregorian, ts, flags.Time),
	)
}
