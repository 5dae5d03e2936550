package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/warp/shift-pay/api"
	"github.com/warp/shift-pay/factory"
	"github.com/warp/shift-pay/payroll"
)

const appVersion = "0.3.0"

func newRootCmd() *cobra.Command {
	var ratesFile string

	root := &cobra.Command{
		Use:           "paycalc",
		Short:         "Pay breakdown calculator for hourly shift work",
		Version:       appVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetVersionTemplate("paycalc v{{.Version}}\n")
	root.PersistentFlags().StringVar(&ratesFile, "rates", "", "JSON rate table file (default rates when empty)")

	calculator := func() (*payroll.Calculator, error) {
		return factory.NewRateFactory().Calculator(ratesFile)
	}

	root.AddCommand(
		newCalculateCmd(calculator),
		newPeriodCmd(),
		newFeeCmd(calculator),
		newDaysCmd(),
	)
	return root
}

func newCalculateCmd(calculator func() (*payroll.Calculator, error)) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Compute period totals for a batch of shifts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			calc, err := calculator()
			if err != nil {
				return err
			}

			in := cmd.InOrStdin()
			if file != "-" {
				f, err := os.Open(file)
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			req, err := readRequest(in)
			if err != nil {
				return err
			}
			result, err := api.Calculate(calc, req)
			if err != nil {
				return err
			}
			return printTotals(cmd.OutOrStdout(), calc, result)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "-", "request JSON file, - for stdin")
	return cmd
}

func newPeriodCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "period YEAR MONTH",
		Short: "Show the payroll period paid in a month",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := positiveArg("year", args[0])
			if err != nil {
				return err
			}
			month, err := positiveArg("month", args[1])
			if err != nil {
				return err
			}
			if month > 12 {
				return fmt.Errorf("invalid month %d", month)
			}

			p := payroll.ResolvePayrollPeriod(year, time.Month(month))
			fmt.Fprintf(cmd.OutOrStdout(), "%04d-%02d: %s to %s (%d days)\n",
				year, month, p.Start, p.End, len(p.Days()))
			return nil
		},
	}
}

func newFeeCmd(calculator func() (*payroll.Calculator, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "fee DAYS",
		Short: "Show the job introduction fee for a month with DAYS work days",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			days, err := strconv.Atoi(args[0])
			if err != nil || days < 0 {
				return fmt.Errorf("invalid work day count %q", args[0])
			}
			calc, err := calculator()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), calc.JobIntroductionFee(days))
			return nil
		},
	}
}

func newDaysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "days MONTH",
		Short: "Show the number of days in a month",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			month, err := strconv.Atoi(args[0])
			days := payroll.DaysInMonth(month)
			if err != nil || days == 0 {
				return fmt.Errorf("invalid month %q", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), days)
			return nil
		},
	}
}

// =============================================================================
// HELPERS
// =============================================================================

func positiveArg(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid %s %q", name, s)
	}
	return n, nil
}

func readRequest(r io.Reader) (api.CalculationRequest, error) {
	var req api.CalculationRequest
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return req, fmt.Errorf("failed to parse request: %w", err)
	}
	return req, nil
}
