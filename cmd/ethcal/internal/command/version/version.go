// Package version implements the "version" command.
package version

import (
	"context"
	"fmt"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/SebastiaanKlippert/go-ethcal"
)

// NewCommand returns a new version command that prints the library version.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	return &appcmd.Command{
		Use:   name,
		Short: "Print the ethcal version",
		Args:  appcmd.NoArgs,
		Run: builder.NewRunFunc(
			func(_ context.Context, container appext.Container) error {
				_, err := fmt.Fprintln(container.Stdout(), ethcal.Version())
				return err
			},
		),
	}
}
