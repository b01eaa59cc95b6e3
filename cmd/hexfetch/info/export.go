package info

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/hyzeos/hexfetch/cmd/hexfetch/common"
	"github.com/hyzeos/hexfetch/pkg/hardware"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type exportCommand struct {
	*common.Context

	// flags
	format string
}

func ExportCommand(ctx *common.Context) *cobra.Command {
	var cmd exportCommand
	cmd.Context = ctx

	cobraCmd := &cobra.Command{
		Use:               "export",
		Short:             "Print the probed machine information",
		Long:              "Print the probed machine information, including the raw report values and decoded host processor details",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE:              cmd.run,
	}

	// flags
	cobraCmd.Flags().StringVar(&cmd.format, "format", "", "output format: yaml, json, or table")

	return cobraCmd
}

func (cmd *exportCommand) run(_ *cobra.Command, _ []string) error {
	mem, err := hardware.OpenDevMem()
	if err != nil {
		return fmt.Errorf("reading physical memory: %v, try again with sudo", err)
	}
	defer mem.Close()

	format := cmd.format
	if format == "" {
		format = cmd.Config.Format
	}

	stop := common.StartProgressSpinner("Collecting")
	snap := hardware.Collect(hardware.HostQuery, mem)
	stop()

	switch format {
	case "json":
		jsonString, err := json.MarshalIndent(snap, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal to JSON: %s", err)
		}
		fmt.Printf("%s\n", jsonString)
	case "yaml":
		yamlString, err := yaml.Marshal(snap)
		if err != nil {
			return fmt.Errorf("failed to marshal to YAML: %s", err)
		}
		fmt.Printf("%s", yamlString)
	case "table":
		return printSnapshotTable(snap)
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	return nil
}

func printSnapshotTable(snap hardware.Snapshot) error {
	rows := [][]string{
		{"vendor", snap.Vendor},
		{"brand", snap.Brand},
		{"memory", fmt.Sprintf("%d MB (%d KB)", snap.MemoryMb, snap.MemoryKb)},
		{"uptime", fmt.Sprintf("%ds", snap.UptimeSeconds)},
		{"physical cores", strconv.Itoa(snap.Host.PhysicalCores)},
		{"logical cores", strconv.Itoa(snap.Host.LogicalCores)},
		{"threads per core", strconv.Itoa(snap.Host.ThreadsPerCore)},
		{"frequency", fmt.Sprintf("%d MHz", snap.Host.FrequencyMHz)},
		{"cache line", strconv.Itoa(snap.Host.CacheLine)},
		{"cache l1d/l2/l3", fmt.Sprintf("%d/%d/%d", snap.Host.CacheL1D, snap.Host.CacheL2, snap.Host.CacheL3)},
		{"features", strings.Join(snap.Host.Features, ", ")},
	}

	options := []tablewriter.Option{
		tablewriter.WithRenderer(renderer.NewColorized(renderer.ColorizedConfig{
			Header: renderer.Tint{
				FG: renderer.Colors{color.Bold}, // Bold headers
			},
			Column: renderer.Tint{
				FG: renderer.Colors{color.Reset},
				BG: renderer.Colors{color.Reset},
			},
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Separators: tw.Separators{ShowHeader: tw.Off, ShowFooter: tw.Off, BetweenRows: tw.Off, BetweenColumns: tw.Off},
				Lines: tw.Lines{
					ShowTop:        tw.Off,
					ShowBottom:     tw.Off,
					ShowHeaderLine: tw.Off,
					ShowFooterLine: tw.Off,
				},
				CompactMode: tw.On,
			},
		})),
		tablewriter.WithConfig(tablewriter.Config{
			Header: tw.CellConfig{
				Alignment: tw.CellAlignment{Global: tw.AlignLeft},
			},
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{AutoWrap: tw.WrapTruncate},
				Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			},
		}),
	}

	table := tablewriter.NewTable(os.Stdout, options...)
	table.Header([]string{"field", "value"})
	if err := table.Bulk(rows); err != nil {
		return fmt.Errorf("error adding data to table: %v", err)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("error rendering table: %v", err)
	}

	return nil
}
