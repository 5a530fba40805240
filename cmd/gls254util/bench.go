package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"gls254"
)

func newBenchCommand() *cobra.Command {
	var iterations int

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark mul_gen, mul, simul and mul_mod_q",
		RunE: func(cmd *cobra.Command, args []string) error {
			runBench(iterations)
			return nil
		},
	}
	cmd.Flags().IntVar(&iterations, "iterations", 10000, "number of calls per operation")

	return cmd
}

func runBench(iterations int) {
	var g, h gls254.Point
	g.Generator()
	h.Double(&g)

	k1 := [4]uint64{0x0123456789ABCDEF, 0xFEDCBA9876543210, 0x1111111111111111, 0x0222222222222222}
	k2 := [4]uint64{0x9988776655443322, 0x1234567812345678, 0x0ABCDEF012345678, 0x0111111111111111}

	timeOp("mul_gen_ct", iterations, func() {
		gls254.MulGen(&k1, true)
	})
	timeOp("mul_gen_nonct", iterations, func() {
		gls254.MulGen(&k1, false)
	})
	timeOp("mul", iterations, func() {
		gls254.Mul(&k1, &g)
	})
	timeOp("simul", iterations, func() {
		gls254.Simul(&k1, &g, &k2, &h)
	})

	var out [4]uint64
	timeOp("mul_mod_q", iterations, func() {
		gls254.MulModQ(&k1, &k2, &k1, &out)
	})
}

func timeOp(name string, iterations int, f func()) {
	start := time.Now()
	for i := 0; i < iterations; i++ {
		f()
	}
	elapsed := time.Since(start)
	perOp := elapsed / time.Duration(iterations)
	logger.Info("benchmark", "op", name, "iterations", iterations, "total", elapsed.String(), "per_op", perOp.String())
	fmt.Printf("%-12s %8d iterations  %v/op\n", name, iterations, perOp)
}
