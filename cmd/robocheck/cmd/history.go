package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/chazu/robocheck/pkg/check"
	"github.com/chazu/robocheck/pkg/history"
	"github.com/chazu/robocheck/pkg/report"
)

var errNoHistory = errors.New("no history database configured (use --history or ROBOCHECK_HISTORY)")

func recordRun(path string, sum *check.Summary) (string, error) {
	store, err := history.Open(&history.Config{DBPath: path})
	if err != nil {
		return "", err
	}
	defer store.Close()
	return store.Record(sum.Report)
}

func openHistory(cmd *cobra.Command) (*history.Store, error) {
	cfg, _, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	if cfg.History == "" {
		return nil, errNoHistory
	}
	return history.Open(&history.Config{DBPath: cfg.History})
}

func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history [FILE]",
		Short: "List recorded runs",
		Args:  cobra.MaximumNArgs(1),
		RunE:  HistoryHandler,
	}
	cmd.Flags().IntP("limit", "n", 20, "Most runs to list (0 for all)")

	showCmd := &cobra.Command{
		Use:   "show ID",
		Short: "Print the report of a recorded run",
		Args:  cobra.ExactArgs(1),
		RunE:  HistoryShowHandler,
	}

	cmd.AddCommand(showCmd)
	return cmd
}

func HistoryHandler(cmd *cobra.Command, args []string) error {
	store, err := openHistory(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	var runs []*history.Run
	if len(args) == 1 {
		runs, err = store.FindByFile(args[0])
	} else {
		limit, _ := cmd.Flags().GetInt("limit")
		runs, err = store.List(limit)
	}
	if err != nil {
		return err
	}

	var data [][]string
	for _, run := range runs {
		status := "ok"
		if !run.OK() {
			status = "failed"
		}
		data = append(data, []string{
			run.ID,
			run.CreatedAt,
			run.Report.File,
			strconv.Itoa(run.Report.Lines),
			strconv.Itoa(len(run.Report.Diagnostics)),
			status,
		})
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"ID", "CREATED", "FILE", "LINES", "INVALID", "STATUS"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()

	return nil
}

func HistoryShowHandler(cmd *cobra.Command, args []string) error {
	store, err := openHistory(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	run, err := store.Load(args[0])
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	return report.Write(cmd.OutOrStdout(), &run.Report)
}
