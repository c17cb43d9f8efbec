// SPDX-License-Identifier: MIT

// Command cgcalc computes Clebsch-Gordan coefficients for finite point groups.
//
//	cgcalc cg B1 E E --group D4
//	cgcalc decompose T1 T1 --group O --canonical
//	cgcalc chars --group-file mygroup.yaml --output yaml
//	cgcalc verify --group O
//
// Settings come from flags, then CGCALC_* environment variables, then the
// file given by --config.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "cgcalc:", err)
		os.Exit(1)
	}
}
