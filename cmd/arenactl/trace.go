package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joshuapare/arenakit/heap/alloc"
	"github.com/joshuapare/arenakit/heap/printer"
)

// OpKind identifies a trace operation.
type OpKind string

const (
	OpAlloc    OpKind = "alloc"
	OpFree     OpKind = "free"
	OpInfo     OpKind = "info"
	OpMap      OpKind = "map"
	OpValidate OpKind = "validate"
)

// Op is one parsed trace line.
type Op struct {
	Kind OpKind
	Name string
	Size int
	Line int
}

// ErrTraceSyntax indicates a malformed trace line.
var ErrTraceSyntax = errors.New("trace: syntax error")

// parseTrace reads a trace, one operation per line.
func parseTrace(r io.Reader) ([]Op, error) {
	var ops []Op
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		op := Op{Kind: OpKind(fields[0]), Line: line}
		switch op.Kind {
		case OpAlloc:
			if len(fields) != 3 {
				return nil, fmt.Errorf("%w: line %d: usage: alloc <name> <size>", ErrTraceSyntax, line)
			}
			size, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: bad size %q", ErrTraceSyntax, line, fields[2])
			}
			op.Name, op.Size = fields[1], size
		case OpFree:
			if len(fields) != 2 {
				return nil, fmt.Errorf("%w: line %d: usage: free <name>", ErrTraceSyntax, line)
			}
			op.Name = fields[1]
		case OpInfo, OpMap, OpValidate:
			if len(fields) != 1 {
				return nil, fmt.Errorf("%w: line %d: %s takes no arguments", ErrTraceSyntax, line, op.Kind)
			}
		default:
			return nil, fmt.Errorf("%w: line %d: unknown operation %q", ErrTraceSyntax, line, fields[0])
		}
		ops = append(ops, op)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read trace: %w", err)
	}
	return ops, nil
}

// loadTrace parses the trace file at path. An empty path yields no ops.
func loadTrace(path string) ([]Op, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open trace: %w", err)
	}
	defer f.Close()
	return parseTrace(f)
}

// OpResult records the outcome of one replayed operation.
type OpResult struct {
	Line  int    `json:"line"`
	Op    string `json:"op"`
	Name  string `json:"name,omitempty"`
	Size  int    `json:"size,omitempty"`
	Ptr   int    `json:"ptr,omitempty"`
	Error string `json:"error,omitempty"`
}

// replayer executes trace operations against one allocator.
type replayer struct {
	a        *alloc.Allocator
	p        *printer.Printer
	handles  map[string]alloc.Ptr
	validate bool
}

func newReplayer(a *alloc.Allocator, p *printer.Printer, validate bool) *replayer {
	return &replayer{a: a, p: p, handles: make(map[string]alloc.Ptr), validate: validate}
}

// exec runs op. Allocation failures are recorded in the result; unknown
// names, invariant violations and output errors abort the replay.
func (r *replayer) exec(op Op) (OpResult, error) {
	res := OpResult{Line: op.Line, Op: string(op.Kind), Name: op.Name, Size: op.Size}

	switch op.Kind {
	case OpAlloc:
		if _, ok := r.handles[op.Name]; ok {
			return res, fmt.Errorf("line %d: %q is still allocated", op.Line, op.Name)
		}
		p, _, err := r.a.Alloc(op.Size)
		if err != nil {
			res.Error = err.Error()
			break
		}
		r.handles[op.Name] = p
		res.Ptr = int(p)
	case OpFree:
		p := alloc.Nil
		if op.Name != "nil" {
			var ok bool
			if p, ok = r.handles[op.Name]; !ok {
				return res, fmt.Errorf("line %d: %q is not allocated", op.Line, op.Name)
			}
		}
		if err := r.a.Free(p); err != nil {
			res.Error = err.Error()
			break
		}
		delete(r.handles, op.Name)
		res.Ptr = int(p)
	case OpInfo:
		if err := r.p.PrintInfo(r.a.Info()); err != nil {
			return res, err
		}
	case OpMap:
		if err := r.p.PrintBlocks(r.a.Arena().Bytes()); err != nil {
			return res, err
		}
	case OpValidate:
		if err := r.a.Validate(); err != nil {
			return res, fmt.Errorf("line %d: %w", op.Line, err)
		}
	}

	if r.validate && (op.Kind == OpAlloc || op.Kind == OpFree) {
		if err := r.a.Validate(); err != nil {
			return res, fmt.Errorf("line %d: %w", op.Line, err)
		}
	}
	return res, nil
}

// replay runs every op in order and returns the results.
func (r *replayer) replay(ops []Op) ([]OpResult, error) {
	results := make([]OpResult, 0, len(ops))
	for _, op := range ops {
		res, err := r.exec(op)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}
