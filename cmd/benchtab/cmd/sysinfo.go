package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/psantana5/benchtab/internal/sysinfo"
)

// sysinfoCmd represents the sysinfo command
var sysinfoCmd = &cobra.Command{
	Use:   "sysinfo",
	Short: "Show the hardware benchmarks run on",
	RunE:  runSysinfo,
}

func init() {
	rootCmd.AddCommand(sysinfoCmd)
}

func runSysinfo(cmd *cobra.Command, args []string) error {
	info, err := sysinfo.Collect()
	if err != nil {
		return fmt.Errorf("failed to collect host information: %w", err)
	}

	if outputFormat == "json" {
		data, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	table.Append([]string{"Hostname", info.Hostname})
	table.Append([]string{"OS", fmt.Sprintf("%s/%s", info.OS, info.Arch)})
	if info.Platform != "" {
		table.Append([]string{"Platform", info.Platform})
	}
	cpuInfo := fmt.Sprintf("%d threads", info.CPUThreads)
	if info.CPUModel != "" {
		cpuInfo = fmt.Sprintf("%s (%d threads)", info.CPUModel, info.CPUThreads)
	}
	table.Append([]string{"CPU", cpuInfo})
	if info.RAMBytes > 0 {
		totalGB := float64(info.RAMBytes) / (1024 * 1024 * 1024)
		table.Append([]string{"Total RAM", fmt.Sprintf("%.2f GB", totalGB)})
	}

	table.Render()
	return nil
}
