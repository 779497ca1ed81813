package main

import (
	"crypto/rand"
	"fmt"
	"os"
	"time"

	"github.com/VividCortex/ewma"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
	"k8s.io/klog/v2"

	"go.firedancer.io/bignum/pkg/bigint"
	"go.firedancer.io/bignum/pkg/metrics"
)

// property is one spec.md §8 quantified invariant check: it draws its
// own random operands (sized by bits) and returns an error describing
// the first counterexample found, or nil if the check held.
type property struct {
	name string
	run  func(bits int) error
}

var properties = []property{
	{"ring-add-commutative", checkAddCommutative},
	{"ring-add-associative", checkAddAssociative},
	{"ring-distributive", checkDistributive},
	{"division-identity", checkDivisionIdentity},
	{"positive-modulus", checkPositiveModulus},
	{"gcd-divides-both", checkGCDDividesBoth},
	{"shift-roundtrip", checkShiftRoundtrip},
	{"sqrt-bounds", checkSqrtBounds},
}

func newBenchCmd(reg *metrics.Registry) *cobra.Command {
	var iterations int
	var bits int

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run the spec.md §8 property checks against random operands",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(reg, iterations, bits)
		},
	}
	cmd.Flags().IntVar(&iterations, "iterations", 1000, "iterations per property")
	cmd.Flags().IntVar(&bits, "bits", 256, "approximate bit length of random operands")
	return cmd
}

func runBench(reg *metrics.Registry, iterations, bits int) error {
	total := int64(len(properties) * iterations)
	showBar := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

	var p *mpb.Progress
	var bar *mpb.Bar
	if showBar {
		p = mpb.New(mpb.WithWidth(64))
		bar = p.AddBar(total,
			mpb.PrependDecorators(decor.Name("bench")),
			mpb.AppendDecorators(decor.Percentage(), decor.Name(" "), decor.EwmaETA(decor.ET_STYLE_GO, 30)),
		)
	}

	avg := ewma.NewMovingAverage()
	failures := 0

	for _, prop := range properties {
		stop := reg.Timer("bench_" + prop.name)
		for i := 0; i < iterations; i++ {
			start := time.Now()
			if err := prop.run(bits); err != nil {
				failures++
				klog.Errorf("bench: %s failed: %v", prop.name, err)
			}
			elapsed := time.Since(start)
			avg.Add(float64(elapsed.Microseconds()))
			if bar != nil {
				bar.EwmaIncrement(elapsed)
			}
		}
		stop()
	}
	if p != nil {
		p.Wait()
	}

	fmt.Printf("ran %d properties x %d iterations, %d failure(s), avg op latency %.1fus\n",
		len(properties), iterations, failures, avg.Value())
	if failures > 0 {
		return fmt.Errorf("bignumctl bench: %d propert(y/ies) failed", failures)
	}
	return nil
}

func randomInt(bits int) (*bigint.Int, error) {
	if bits <= 0 {
		bits = 1
	}
	byteLen := (bits + 7) / 8
	buf := make([]byte, byteLen+1) // +1 for a sign byte
	if _, err := rand.Read(buf); err != nil {
		return nil, err
	}
	sign := 1
	if buf[0]&1 == 1 {
		sign = -1
	}
	v := bigint.FromSignAndBytes(sign, buf[1:])
	return v, nil
}

func checkAddCommutative(bits int) error {
	a, err := randomInt(bits)
	if err != nil {
		return err
	}
	b, err := randomInt(bits)
	if err != nil {
		return err
	}
	if !bigint.Add(a, b).Equal(bigint.Add(b, a)) {
		return fmt.Errorf("a+b != b+a for a=%s b=%s", a, b)
	}
	return nil
}

func checkAddAssociative(bits int) error {
	a, err := randomInt(bits)
	if err != nil {
		return err
	}
	b, err := randomInt(bits)
	if err != nil {
		return err
	}
	c, err := randomInt(bits)
	if err != nil {
		return err
	}
	lhs := bigint.Add(bigint.Add(a, b), c)
	rhs := bigint.Add(a, bigint.Add(b, c))
	if !lhs.Equal(rhs) {
		return fmt.Errorf("(a+b)+c != a+(b+c) for a=%s b=%s c=%s", a, b, c)
	}
	return nil
}

func checkDistributive(bits int) error {
	a, err := randomInt(bits / 2)
	if err != nil {
		return err
	}
	b, err := randomInt(bits / 2)
	if err != nil {
		return err
	}
	c, err := randomInt(bits / 2)
	if err != nil {
		return err
	}
	lhs := bigint.Mul(a, bigint.Add(b, c))
	rhs := bigint.Add(bigint.Mul(a, b), bigint.Mul(a, c))
	if !lhs.Equal(rhs) {
		return fmt.Errorf("a*(b+c) != a*b+a*c for a=%s b=%s c=%s", a, b, c)
	}
	return nil
}

func checkDivisionIdentity(bits int) error {
	a, err := randomInt(bits)
	if err != nil {
		return err
	}
	b, err := randomInt(bits / 2)
	if err != nil {
		return err
	}
	if b.IsZero() {
		return nil
	}
	q, r, err := bigint.DivMod(a, b)
	if err != nil {
		return err
	}
	if !bigint.Add(bigint.Mul(q, b), r).Equal(a) {
		return fmt.Errorf("q*b+r != a for a=%s b=%s", a, b)
	}
	if r.Abs().Cmp(b.Abs()) >= 0 {
		return fmt.Errorf("|r| >= |b| for a=%s b=%s", a, b)
	}
	return nil
}

func checkPositiveModulus(bits int) error {
	a, err := randomInt(bits)
	if err != nil {
		return err
	}
	m, err := randomInt(bits / 2)
	if err != nil {
		return err
	}
	m = m.Abs()
	if m.IsZero() {
		return nil
	}
	r, err := bigint.Mod(a, m)
	if err != nil {
		return err
	}
	if r.Sign() < 0 || r.Cmp(m) >= 0 {
		return fmt.Errorf("mod out of range for a=%s m=%s -> %s", a, m, r)
	}
	return nil
}

func checkGCDDividesBoth(bits int) error {
	a, err := randomInt(bits / 2)
	if err != nil {
		return err
	}
	b, err := randomInt(bits / 2)
	if err != nil {
		return err
	}
	g := bigint.GCD(a, b)
	if g.IsZero() {
		return nil
	}
	if _, _, err := bigint.DivMod(a, g); err != nil {
		return err
	}
	if rem, err := bigint.Rem(a, g); err != nil || !rem.IsZero() {
		return fmt.Errorf("gcd does not divide a: a=%s g=%s", a, g)
	}
	if rem, err := bigint.Rem(b, g); err != nil || !rem.IsZero() {
		return fmt.Errorf("gcd does not divide b: b=%s g=%s", b, g)
	}
	return nil
}

func checkShiftRoundtrip(bits int) error {
	a, err := randomInt(bits)
	if err != nil {
		return err
	}
	n := 1 + bits%37
	shifted := bigint.ShiftLeft(a, n)
	back := bigint.ShiftRight(shifted, n)
	if !back.Equal(a) {
		return fmt.Errorf("(a<<n)>>n != a for a=%s n=%d", a, n)
	}
	return nil
}

func checkSqrtBounds(bits int) error {
	a, err := randomInt(bits)
	if err != nil {
		return err
	}
	a = a.Abs()
	s, rem, err := bigint.SqrtAndRemainder(a)
	if err != nil {
		return err
	}
	if bigint.Add(bigint.Mul(s, s), rem).Cmp(a) != 0 {
		return fmt.Errorf("s*s+rem != a for a=%s", a)
	}
	next := bigint.Mul(bigint.Add(s, bigint.One), bigint.Add(s, bigint.One))
	if next.Cmp(a) <= 0 {
		return fmt.Errorf("(s+1)^2 <= a for a=%s s=%s", a, s)
	}
	return nil
}
