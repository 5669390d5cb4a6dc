package cmd

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/openfga/lists/pkg/list"
	"github.com/openfga/lists/pkg/logger"
)

// defaultTrace pushes 1, 2 and 3, pops twice, pushes 4 and 5, then pops until the list is empty.
var defaultTrace = []string{
	"push=1", "push=2", "push=3",
	"pop", "pop",
	"push=4", "push=5",
	"pop", "pop", "pop", "pop",
}

// NewTraceCommand returns the command that replays list operations.
func NewTraceCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trace [op...]",
		Short: "Replay list operations and print every result",
		Long: `Replay list operations against a fresh list and print one line per operation.

Operations are push=<n>, pop, peek, set=<n> (replace the top value through PeekMut),
incr (add one to the top value through Update) and clear.
Without arguments the trace pushes 1, 2 and 3, pops twice, pushes 4 and 5 and pops until empty.`,
		Example: "lists trace push=1 push=2 peek set=5 pop pop pop",
		RunE:    runTrace,
	}

	bindTraceFlags(cmd)

	return cmd
}

type traceOp struct {
	name string
	arg  int64
}

func (o traceOp) String() string {
	switch o.name {
	case "push", "set":
		return o.name + "=" + strconv.FormatInt(o.arg, 10)
	default:
		return o.name
	}
}

func parseTraceOps(args []string) ([]traceOp, error) {
	ops := make([]traceOp, 0, len(args))
	for _, arg := range args {
		name, value, hasValue := strings.Cut(arg, "=")
		switch name {
		case "push", "set":
			if !hasValue {
				return nil, fmt.Errorf("operation '%s' needs a value, e.g. '%s=1'", arg, name)
			}
			n, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid value in '%s': %w", arg, err)
			}
			ops = append(ops, traceOp{name: name, arg: n})
		case "pop", "peek", "incr", "clear":
			if hasValue {
				return nil, fmt.Errorf("operation '%s' takes no value", name)
			}
			ops = append(ops, traceOp{name: name})
		default:
			return nil, fmt.Errorf("unknown operation '%s'", arg)
		}
	}
	return ops, nil
}

// tracer applies one operation and describes its result. The boolean is true when the
// operation found the list empty.
type tracer interface {
	apply(op traceOp) (string, bool, error)
	len() int
	String() string
}

func formatResult(call string, v int64, ok bool) string {
	if !ok {
		return call + " = empty"
	}
	return call + " = " + strconv.FormatInt(v, 10)
}

type genericTracer struct {
	l *list.List[int64]
}

func (g *genericTracer) apply(op traceOp) (string, bool, error) {
	switch op.name {
	case "push":
		g.l.Push(op.arg)
		return fmt.Sprintf("push(%d)", op.arg), false, nil
	case "pop":
		v, ok := g.l.Pop()
		return formatResult("pop()", v, ok), !ok, nil
	case "peek":
		v, ok := g.l.Peek()
		return formatResult("peek()", v, ok), !ok, nil
	case "set":
		lease, ok := g.l.PeekMut()
		if !ok {
			return "peek_mut() = empty", true, nil
		}
		old := lease.Get()
		lease.Set(op.arg)
		lease.Release()
		return fmt.Sprintf("peek_mut() = %d -> %d", old, op.arg), false, nil
	case "incr":
		var updated int64
		ok := g.l.Update(func(v *int64) {
			*v++
			updated = *v
		})
		return formatResult("update()", updated, ok), !ok, nil
	case "clear":
		n := g.l.Len()
		g.l.Clear()
		return fmt.Sprintf("clear() released %d", n), false, nil
	}
	return "", false, fmt.Errorf("unsupported operation '%s'", op.name)
}

func (g *genericTracer) len() int { return g.l.Len() }

func (g *genericTracer) String() string { return g.l.String() }

type int32Tracer struct {
	l *list.Int32List
}

func (f *int32Tracer) apply(op traceOp) (string, bool, error) {
	switch op.name {
	case "push":
		if op.arg < math.MinInt32 || op.arg > math.MaxInt32 {
			return "", false, fmt.Errorf("value %d does not fit the int32 list", op.arg)
		}
		f.l.Push(int32(op.arg))
		return fmt.Sprintf("push(%d)", op.arg), false, nil
	case "pop":
		v, ok := f.l.Pop()
		return formatResult("pop()", int64(v), ok), !ok, nil
	case "clear":
		n := f.l.Len()
		f.l.Clear()
		return fmt.Sprintf("clear() released %d", n), false, nil
	}
	return "", false, fmt.Errorf("operation '%s' is not supported by the int32 list", op.name)
}

func (f *int32Tracer) len() int { return f.l.Len() }

func (f *int32Tracer) String() string { return f.l.String() }

func runTrace(cmd *cobra.Command, args []string) error {
	config, err := ReadConfig()
	if err != nil {
		return err
	}

	log, err := logger.NewLogger(config.Log.Format, config.Log.Level)
	if err != nil {
		return err
	}
	defer func() {
		_ = log.Sync()
	}()

	if len(args) == 0 {
		args = defaultTrace
	}

	return executeTrace(cmd.OutOrStdout(), log, config.Trace, args)
}

// executeTrace writes one line per operation to out. It stops at the first operation that
// fails, or that finds the list empty when cfg.Strict is set.
func executeTrace(out io.Writer, log logger.Logger, cfg TraceConfig, args []string) error {
	ops, err := parseTraceOps(args)
	if err != nil {
		return err
	}

	var t tracer = &genericTracer{l: list.New[int64]()}
	kind := "generic"
	if cfg.Fixed {
		t = &int32Tracer{l: list.NewInt32()}
		kind = "int32"
	}

	for i, op := range ops {
		line, empty, err := t.apply(op)
		if err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
		if empty && cfg.Strict {
			return fmt.Errorf("step %d: %s: %w", i+1, op, list.ErrEmptyList)
		}

		log.Debug("applied operation",
			zap.String("list", kind),
			zap.Int("step", i+1),
			zap.Stringer("op", op),
			zap.String("result", line),
		)

		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}

	log.Info("trace complete",
		zap.String("list", kind),
		zap.Int("operations", len(ops)),
		zap.Int("remaining", t.len()),
		zap.String("contents", t.String()),
	)

	return nil
}
