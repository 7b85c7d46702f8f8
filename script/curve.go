// Package script compiles Tengo sources into curve functions usable with
// gen.Function. A curve script defines f, a function of one number:
//
//	math := import("math")
//	f := func(x) {
//		return 50 + 100 * math.sin(0.01 * x)
//	}
package script

import (
	"fmt"
	"math"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

const curveDispatchScript = `
__y := f(__x)
`

// Curve is a compiled curve script. It is not safe for concurrent use;
// Clone a Curve per goroutine if evaluating from several.
type Curve struct {
	compiled *tengo.Compiled
}

// Compile compiles a curve script. The script must define f; scripts that
// don't fail here, not at evaluation time.
func Compile(src []byte) (*Curve, error) {
	combined := string(src) + "\n" + curveDispatchScript
	s := tengo.NewScript([]byte(combined))
	_ = s.Add("__x", 0.0)
	s.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile curve: %w", err)
	}
	return &Curve{compiled: compiled}, nil
}

// CompileExpr compiles a single Tengo expression in x, e.g.
// "50 + 100 * math.sin(0.01 * x)". The math module is in scope.
func CompileExpr(expr string) (*Curve, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, fmt.Errorf("script: empty curve expression")
	}
	src := fmt.Sprintf("math := import(\"math\")\nf := func(x) {\n\treturn %s\n}\n", expr)
	return Compile([]byte(src))
}

// Eval runs the script with the given x and returns f(x).
func (c *Curve) Eval(x float64) (float64, error) {
	if err := c.compiled.Set("__x", x); err != nil {
		return 0, fmt.Errorf("script: set curve input: %w", err)
	}
	if err := c.compiled.Run(); err != nil {
		return 0, fmt.Errorf("script: eval curve: %w", err)
	}
	return c.compiled.Get("__y").Float(), nil
}

// Func adapts the curve to the plain function shape gen.Function samples.
// Evaluation errors surface as NaN samples.
func (c *Curve) Func() func(float64) float64 {
	return func(x float64) float64 {
		y, err := c.Eval(x)
		if err != nil {
			return math.NaN()
		}
		return y
	}
}

// Clone returns an independently runnable copy of the compiled curve.
func (c *Curve) Clone() *Curve {
	return &Curve{compiled: c.compiled.Clone()}
}
