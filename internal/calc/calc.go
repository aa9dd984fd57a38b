// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package calc evaluates fixed-point operations given as text.
package calc

import (
	"context"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.brendoncarroll.net/stdctx/logctx"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"

	"github.com/db47h/fixed"
	fixctx "github.com/db47h/fixed/context"
	fmath "github.com/db47h/fixed/math"
)

// Undefined is the result of operations that have no value for their
// arguments, like tan(π/2) or sqrt(-1).
const Undefined = "undefined"

// Evaluation errors.
var (
	ErrUnknownOp = errors.New("unknown operation")
	ErrArgs      = errors.New("wrong number of arguments")
	ErrFormat    = errors.New("unknown number format")
)

// A Calculator evaluates operations in one number format. It is safe for
// concurrent use.
type Calculator struct {
	cfg   Config
	eval  func(op string, args []string) (string, error)
	cache *lru.Cache[string, string]
}

// New returns a Calculator configured by cfg.
func New(cfg *Config) (*Calculator, error) {
	policy, err := fixed.ParsePolicy(strings.ToLower(cfg.Policy))
	if err != nil {
		return nil, fmt.Errorf("calc: policy %q: %w", cfg.Policy, err)
	}
	out := output{prec: cfg.Prec}
	if cfg.Locale != "" {
		if out.tag, err = language.Parse(cfg.Locale); err != nil {
			return nil, fmt.Errorf("calc: locale %q: %w", cfg.Locale, err)
		}
		out.local = true
	}

	c := &Calculator{cfg: *cfg}
	switch strings.ToLower(cfg.Format) {
	case "q16.16", "int16_16":
		c.eval = (&evaluator[fixed.Int16_16]{policy, int16Ops, out}).eval
	case "uq16.16", "uint16_16":
		c.eval = (&evaluator[fixed.Uint16_16]{policy, uint16Ops, out}).eval
	case "uq8.8", "uint8_8":
		c.eval = (&evaluator[fixed.Uint8_8]{policy, uint8Ops, out}).eval
	default:
		return nil, fmt.Errorf("calc: %w %q", ErrFormat, cfg.Format)
	}
	if cfg.CacheSize > 0 {
		if c.cache, err = lru.New[string, string](cfg.CacheSize); err != nil {
			return nil, fmt.Errorf("calc: %w", err)
		}
	}
	return c, nil
}

// Eval applies op to args and returns the formatted result, or Undefined.
func (c *Calculator) Eval(ctx context.Context, op string, args ...string) (string, error) {
	op = strings.ToLower(op)
	expr := strings.Join(append([]string{op}, args...), " ")
	if c.cache != nil {
		if s, ok := c.cache.Get(expr); ok {
			logctx.Debug(ctx, "cache hit", zap.String("expr", expr))
			return s, nil
		}
	}
	s, err := c.eval(op, args)
	if err != nil {
		logctx.Info(ctx, "evaluation failed", zap.String("expr", expr), zap.Error(err))
		return "", err
	}
	logctx.Debug(ctx, "evaluated", zap.String("expr", expr), zap.String("result", s))
	if c.cache != nil {
		c.cache.Add(expr, s)
	}
	return s, nil
}

// EvalLine evaluates a line of the form "op arg...".
func (c *Calculator) EvalLine(ctx context.Context, line string) (string, error) {
	f := strings.Fields(line)
	if len(f) == 0 {
		return "", fmt.Errorf("calc: empty expression: %w", ErrArgs)
	}
	return c.Eval(ctx, f[0], f[1:]...)
}

// A Result is the outcome of the evaluation of one line.
type Result struct {
	Line  string
	Value string
	Err   error
}

// EvalAll evaluates lines concurrently and returns the results in the same
// order. The error is only set if ctx is canceled.
func (c *Calculator) EvalAll(ctx context.Context, lines []string) ([]Result, error) {
	res := make([]Result, len(lines))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(c.cfg.Workers, 1))
	for i, l := range lines {
		i, l := i, l
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			v, err := c.EvalLine(ctx, l)
			res[i] = Result{l, v, err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	logctx.Debug(ctx, "batch done", zap.Int("lines", len(lines)))
	return res, nil
}

type value[T any] interface {
	fixed.Arith[T]
	Text(fmt byte, prec int) string
	TextLocale(tag language.Tag, prec int) string
}

type output struct {
	tag   language.Tag
	local bool
	prec  int
}

func format[T value[T]](o output, x T) string {
	if o.local {
		return x.TextLocale(o.tag, o.prec)
	}
	return x.Text('f', o.prec)
}

type evaluator[T value[T]] struct {
	policy fixed.Policy
	ops    *ops[T]
	out    output
}

func (e *evaluator[T]) eval(op string, args []string) (string, error) {
	ctx := fixctx.New[T](e.policy)
	nargs := func(n int) error {
		if len(args) != n {
			return fmt.Errorf("calc: %s: %w: got %d, expected %d", op, ErrArgs, len(args), n)
		}
		return nil
	}
	var (
		z  T
		ok = true
	)
	switch op {
	case "add", "sub", "mul", "div":
		if err := nargs(2); err != nil {
			return "", err
		}
		x, y := ctx.Parse(args[0]), ctx.Parse(args[1])
		switch op {
		case "add":
			z = ctx.Add(x, y)
		case "sub":
			z = ctx.Sub(x, y)
		case "mul":
			z = ctx.Mul(x, y)
		case "div":
			z = ctx.Quo(x, y)
		}
	case "sum":
		xs := make([]T, len(args))
		for i, a := range args {
			xs[i] = ctx.Parse(a)
		}
		z = ctx.Sum(xs...)
	case "neg":
		if err := nargs(1); err != nil {
			return "", err
		}
		z = ctx.Sub(0, ctx.Parse(args[0]))
	case "bits":
		if err := nargs(1); err != nil {
			return "", err
		}
		x := ctx.Parse(args[0])
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("calc: %s: %w", op, err)
		}
		return fmt.Sprintf("%+v", x), nil
	case "lerp":
		if err := nargs(3); err != nil {
			return "", err
		}
		a, b := ctx.Parse(args[0]), ctx.Parse(args[1])
		t, err := fraction(args[2])
		if err != nil {
			return "", fmt.Errorf("calc: %s: %w", op, err)
		}
		z = fixed.Lerp(a, b, t)
		if t == math.MaxUint32 {
			// t == 1
			z = b
		}
	case "pow":
		if err := nargs(2); err != nil {
			return "", err
		}
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return "", fmt.Errorf("calc: %s: %w", op, err)
		}
		x := ctx.Parse(args[0])
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("calc: %s: %w", op, err)
		}
		if z, ok, err = viaInt16_16(x, func(x fixed.Int16_16) (fixed.Int16_16, bool, error) {
			z, err := fmath.Pow(x, n)
			return z, true, err
		}); err != nil {
			return "", fmt.Errorf("calc: %s: %w", op, err)
		}
	case "log2", "ln", "log10":
		if err := nargs(1); err != nil {
			return "", err
		}
		f := map[string]func(fixed.Int16_16) (fixed.Int16_16, bool){
			"log2": fmath.Log2, "ln": fmath.Ln, "log10": fmath.Log10,
		}[op]
		x := ctx.Parse(args[0])
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("calc: %s: %w", op, err)
		}
		var err error
		if z, ok, err = viaInt16_16(x, func(x fixed.Int16_16) (fixed.Int16_16, bool, error) {
			z, ok := f(x)
			return z, ok, nil
		}); err != nil {
			return "", fmt.Errorf("calc: %s: %w", op, err)
		}
	default:
		if f, found := e.ops.unary[op]; found {
			if err := nargs(1); err != nil {
				return "", err
			}
			z, ok = f(ctx.Parse(args[0]))
		} else if f, found := e.ops.binary[op]; found {
			if err := nargs(2); err != nil {
				return "", err
			}
			z, ok = f(ctx.Parse(args[0]), ctx.Parse(args[1]))
		} else {
			return "", fmt.Errorf("calc: %w %q", ErrUnknownOp, op)
		}
	}
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("calc: %s: %w", op, err)
	}
	if !ok {
		return Undefined, nil
	}
	return format(e.out, z), nil
}

var typeInt16_16 = reflect.TypeOf(fixed.Int16_16(0))

// viaInt16_16 evaluates f, a function of the math package, for x of any
// format. x must be exactly representable as an Int16_16. A negative result
// has no value in an unsigned format, a result above the maximum of T is an
// overflow and the fraction of other results is truncated.
func viaInt16_16[T fixed.Fixed](x T, f func(fixed.Int16_16) (fixed.Int16_16, bool, error)) (z T, ok bool, err error) {
	v, err := fixed.Convert(x, typeInt16_16)
	if err != nil {
		return 0, false, err
	}
	if back, err := fixed.Convert(v.(fixed.Int16_16), reflect.TypeOf(x)); err != nil || back != any(x) {
		return 0, false, &fixed.Error{Op: "Convert", Err: fixed.ErrOverflow}
	}
	r, ok, err := f(v.(fixed.Int16_16))
	if err != nil || !ok {
		return 0, ok, err
	}
	if reflect.TypeOf(z) == typeInt16_16 {
		return any(r).(T), true, nil
	}
	if r < 0 {
		return 0, false, nil
	}
	if hi, _ := fixed.Convert(^T(0), typeInt16_16); r > hi.(fixed.Int16_16) {
		return 0, false, &fixed.Error{Op: "Convert", Err: fixed.ErrOverflow}
	}
	w, err := fixed.Convert(r, reflect.TypeOf(z))
	if err != nil {
		return 0, false, err
	}
	return w.(T), true, nil
}

// fraction parses s, a decimal number in [0, 1], as a Lerp factor.
func fraction(s string) (uint32, error) {
	ctx := fixctx.New[fixed.Uint16_16](fixed.Check)
	t := ctx.Parse(s)
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	switch {
	case t > fixed.Uint16_16One:
		return 0, &fixed.Error{Op: "Lerp", Err: fixed.ErrInvalidArgument}
	case t == fixed.Uint16_16One:
		return math.MaxUint32, nil
	}
	return uint32(t) << 16, nil
}
