package graph

import (
	"log/slog"

	"github.com/josh65536/graph-war/log"
)

// Parametric is a compiled curve: x(t) and y(t) expression trees plus
// the auxiliary assignments either may reference. The source strings
// are retained for redisplay only; evaluation never consults them.
type Parametric struct {
	X       Function
	Y       Function
	Assigns []Function

	SourceX     string
	SourceY     string
	SourceWhere string
}

// compiler holds per-Compile configuration.
type compiler struct {
	logger log.Logger
}

// Option configures a single Compile call.
type Option func(*compiler)

// WithLogger sets the structured logger for trace-level debugging.
// If not provided, the logger is zero-valued and all logging is a no-op.
func WithLogger(logger log.Logger) Option {
	return func(c *compiler) {
		c.logger = logger
	}
}

// Compile compiles a submission: an x(t) expression, a y(t) expression,
// and a where clause of zero or more name = expression assignments.
// The where clause compiles first, so its names are in scope for both
// coordinate expressions. On failure the returned error is always a
// *CompileError identifying the offending input and position.
func Compile(xSrc, ySrc, whereSrc string, opts ...Option) (*Parametric, error) {
	var c compiler
	for _, opt := range opts {
		opt(&c)
	}

	vars := newResolver()

	assigns, err := c.compileWhere(whereSrc, vars)
	if err != nil {
		return nil, newCompileError(PartWhere, err)
	}

	x, err := c.compileCoord(PartX, xSrc, vars)
	if err != nil {
		return nil, newCompileError(PartX, err)
	}

	y, err := c.compileCoord(PartY, ySrc, vars)
	if err != nil {
		return nil, newCompileError(PartY, err)
	}

	c.logger.Trace(
		"compiled submission",
		slog.Int("assigns", len(assigns)),
	)

	return &Parametric{
		X:           x,
		Y:           y,
		Assigns:     assigns,
		SourceX:     xSrc,
		SourceY:     ySrc,
		SourceWhere: whereSrc,
	}, nil
}

func (c *compiler) compileWhere(
	src string,
	vars map[string]int,
) ([]Function, error) {
	toks, err := lexAll(src)
	if err != nil {
		return nil, err
	}

	tree, err := parseAssigns(toks)
	if err != nil {
		return nil, err
	}

	c.logger.Trace(
		"parsed where clause",
		slog.Int("assignments", len(tree.kids)),
	)

	return buildAssigns(tree, vars)
}

func (c *compiler) compileCoord(
	part, src string,
	vars map[string]int,
) (Function, error) {
	toks, err := lexAll(src)
	if err != nil {
		return nil, err
	}

	tree, err := parseFunc(toks)
	if err != nil {
		return nil, err
	}

	c.logger.Trace(
		"parsed expression",
		slog.String("part", part),
		slog.Int("tokens", len(toks)),
	)

	return buildFunction(tree, vars)
}

// Eval evaluates both coordinates at t.
func (p *Parametric) Eval(t float64) (x, y float64) {
	return p.X.Eval(t, p.Assigns), p.Y.Eval(t, p.Assigns)
}

// Point is one sample of a compiled curve.
type Point struct {
	T float64 `json:"t" yaml:"t"`
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Points samples the curve at n+1 evenly spaced parameter values over
// [0, 1], endpoints included.
func (p *Parametric) Points(n int) []Point {
	if n < 1 {
		n = 1
	}

	pts := make([]Point, n+1)
	for i := range pts {
		t := float64(i) / float64(n)
		x, y := p.Eval(t)
		pts[i] = Point{T: t, X: x, Y: y}
	}

	return pts
}
