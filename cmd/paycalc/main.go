// Command paycalc computes shift pay from the command line.
//
//	paycalc calculate -f request.json   period totals for a batch of shifts
//	paycalc period 2026 1               payroll period paid in a month
//	paycalc fee 2                       job introduction fee
//	paycalc days 2                      days in a month
//
// The request file has the same shape as the body of POST /api/calculations.
// Use --rates to compute with a custom rate table.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
