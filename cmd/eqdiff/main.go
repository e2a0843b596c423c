package main

import (
	"fmt"
	"os"

	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/consensys/eqdiff/common"
	"github.com/consensys/eqdiff/diff"
	"github.com/consensys/eqdiff/field"
	"github.com/consensys/eqdiff/field/babybear"
	"github.com/consensys/eqdiff/field/bn254"
	"github.com/consensys/eqdiff/field/goldilocks"
	"github.com/consensys/eqdiff/field/koalabear"
	"github.com/consensys/eqdiff/field/small"
)

// The battery is fixed: pseudorandom trials at dimension 10 on every
// shipped field width, plus the historical reproduction vector on bn254.
const (
	nVars  = 10
	trials = 100
	seed   = 0xf45c9df123f
)

var rootCmd = &cobra.Command{
	Use:   "eqdiff",
	Short: "Differential tester for equality-table construction over prime fields.",
	Long: "eqdiff builds the evaluation table of the scaled multilinear equality polynomial " +
		"twice, with a recursive shared-scalar construction and with a naive per-cell one, " +
		"and compares the results cell for cell across several modulus widths. " +
		"It exits with a nonzero status if any configuration diverges.",
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		log.SetLevel(log.DebugLevel)
	}

	if profiled, _ := cmd.Flags().GetBool("profile"); profiled {
		defer profile.Start(profile.ProfilePath("."), profile.Quiet).Stop()
	}

	timer := common.NewTimer("differential battery")
	defer timer.Close()

	cfg := diff.Config{NVars: nVars, Trials: trials, Seed: seed}

	cases := []diff.Case{
		diff.NewCase[babybear.Element](babybear.Field{}),
		diff.NewCase[koalabear.Element](koalabear.Field{}),
		diff.NewCase[small.Element](small.New(1<<31-1, 7)), // Mersenne31
		diff.NewCase[goldilocks.Element](goldilocks.Field{}),
		diff.NewCase[bn254.Element](bn254.Field{}),
	}

	reports := make([]diff.Report, 0, len(cases)+1)
	for _, c := range cases {
		reports = append(reports, c.Run(cfg))
	}
	reports = append(reports, repro())

	failed := 0
	for _, r := range reports {
		fmt.Println(r.String())
		if !r.OK() {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%v/%v configurations diverged", failed, len(reports))
	}

	fmt.Println("PASS")
	return nil
}

// repro replays the fixed vector of the original divergence report:
// point = 7, 14, ..., 70 and scalar = 12345 over the bn254 scalar field.
func repro() diff.Report {
	var f field.Field[bn254.Element] = bn254.Field{}

	point := make([]bn254.Element, nVars)
	for i := range point {
		point[i] = f.NewElement(uint64(i+1) * 7)
	}

	return diff.RunFixed(f, point, f.NewElement(12345))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.Flags().Bool("profile", false, "write a CPU profile of the battery")
	rootCmd.SilenceUsage = true
}
