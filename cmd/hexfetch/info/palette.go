package info

import (
	"os"

	"github.com/hyzeos/hexfetch/cmd/hexfetch/common"
	"github.com/hyzeos/hexfetch/pkg/report"
	"github.com/spf13/cobra"
)

type paletteCommand struct {
	*common.Context
}

func PaletteCommand(ctx *common.Context) *cobra.Command {
	var cmd paletteCommand
	cmd.Context = ctx

	cobraCmd := &cobra.Command{
		Use:               "palette",
		Short:             "Render the 16-color palette swatch",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE:              cmd.run,
	}

	return cobraCmd
}

func (cmd *paletteCommand) run(_ *cobra.Command, _ []string) error {
	report.SetColorMode(cmd.Config.Color)
	report.Palette(report.NewTerm(os.Stdout))
	return nil
}
