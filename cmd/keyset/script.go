package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/keyset"
	"github.com/npillmayer/keyset/console"
)

type op struct {
	insert bool
	key    int
	label  string
}

// parseOps reads operations of the form "+k", "k" or "-k".
func parseOps(args []string) ([]op, error) {
	ops := make([]op, 0, len(args))
	for _, arg := range args {
		o := op{insert: true, label: arg}
		s := arg
		switch {
		case strings.HasPrefix(s, "+"):
			s = s[1:]
		case strings.HasPrefix(s, "-"):
			o.insert = false
			s = s[1:]
		default:
			o.label = "+" + arg
		}
		k, err := strconv.Atoi(s)
		if err != nil || s == "" || s[0] == '+' || s[0] == '-' {
			return nil, fmt.Errorf("%w: operation %q, expected +k, -k or k for integer k",
				keyset.ErrIllegalArguments, arg)
		}
		o.key = k
		ops = append(ops, o)
	}
	return ops, nil
}

type scriptOptions struct {
	order int
	dot   bool
	check bool
}

// runScript applies ops to a fresh set and prints a line per step.
func runScript(ops []op, p *console.Printer, out io.Writer, opts scriptOptions) error {
	set, err := keyset.NewSet[int](keyset.Config{Order: opts.order})
	if err != nil {
		return err
	}
	for _, o := range ops {
		var changed bool
		if o.insert {
			changed, err = set.Add(o.key)
		} else {
			changed, err = set.Remove(o.key)
		}
		if err != nil {
			return err
		}
		mark := console.Unchanged
		if changed && o.insert {
			mark = console.Added
		} else if changed {
			mark = console.Removed
		}
		if err = console.Step(p, o.label, mark, set.Leaves(), o.key); err != nil {
			return err
		}
		if opts.check {
			if err = set.Check(); err != nil {
				return fmt.Errorf("after %s: %w", o.label, err)
			}
		}
	}
	if err = p.Line(fmt.Sprintf("%d keys, height %d, order %d", set.Len(), set.Height(), set.Order())); err != nil {
		return err
	}
	if opts.dot {
		return set.WriteDot(out)
	}
	return nil
}
