package main

import (
	"context"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/SebastiaanKlippert/go-ethcal/cmd/ethcal/internal/command/convert"
	"github.com/SebastiaanKlippert/go-ethcal/cmd/ethcal/internal/command/from"
	"github.com/SebastiaanKlippert/go-ethcal/cmd/ethcal/internal/command/now"
	"github.com/SebastiaanKlippert/go-ethcal/cmd/ethcal/internal/command/to"
	"github.com/SebastiaanKlippert/go-ethcal/cmd/ethcal/internal/command/version"
)

func main() {
	appcmd.Main(context.Background(), newRootCommand("ethcal"))
}

// newRootCommand creates the root ethcal command with all sub-commands.
func newRootCommand(name string) *appcmd.Command {
	builder := appext.NewBuilder(name)
	return &appcmd.Command{
		Use:                 name,
		Short:               "Convert dates between the Gregorian and Ethiopian calendars",
		BindPersistentFlags: builder.BindRoot,
		SubCommands: []*appcmd.Command{
			to.NewCommand("to", builder),
			from.NewCommand("from", builder),
			now.NewCommand("now", builder),
			convert.NewCommand("convert", builder),
			version.NewCommand("version", builder),
		},
	}
}
