package info

import (
	"fmt"
	"os"

	"github.com/hyzeos/hexfetch/cmd/hexfetch/common"
	"github.com/hyzeos/hexfetch/pkg/hardware"
	"github.com/hyzeos/hexfetch/pkg/report"
	"github.com/spf13/cobra"
)

type fetchCommand struct {
	*common.Context
}

func FetchCommand(ctx *common.Context) *cobra.Command {
	var cmd fetchCommand
	cmd.Context = ctx

	cobraCmd := &cobra.Command{
		Use:               "fetch",
		Short:             "Render the system information report",
		Long:              "Render the system information report: CPU identity, memory size, and uptime, framed by the HyzeOS banner and palette swatch",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE:              cmd.run,
	}

	return cobraCmd
}

func (cmd *fetchCommand) run(_ *cobra.Command, _ []string) error {
	mem, err := hardware.OpenDevMem()
	if err != nil {
		return fmt.Errorf("reading physical memory: %v, try again with sudo", err)
	}
	defer mem.Close()

	report.SetColorMode(cmd.Config.Color)

	r := report.Renderer{Query: hardware.HostQuery, Mem: mem}
	r.Fetch(report.NewTerm(os.Stdout))

	return nil
}
