package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	interpruntime "github.com/coralang/interp-runtime"

	"github.com/coralang/interp-runtime/bridge"
	"github.com/coralang/interp-runtime/ndarray"
	"github.com/coralang/interp-runtime/object"
)

var conversions = []string{"i8", "i16", "i32", "i64", "f32", "f64", "c64", "c128", "bool"}

func main() {
	var (
		value       = flag.String("value", "", "Literal to box and convert")
		as          = flag.String("as", "i64", "Native target type ("+strings.Join(conversions, "|")+")")
		shape       = flag.String("shape", "", "Comma-separated extents for an array descriptor demo (e.g. 2,3)")
		dtype       = flag.String("dtype", "float64", "Array dtype for -shape")
		transpose   = flag.Bool("transpose", false, "Transpose the array before deriving the descriptor")
		list        = flag.Bool("list", false, "List supported conversions and exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		debug       = flag.Bool("debug", false, "Enable debug logging")
	)
	flag.Parse()

	if *debug {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer l.Sync()
		object.SetLogger(l)
	}

	if *list {
		listConversions()
		return
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *shape != "" {
		if err := runArray(*shape, *dtype, *transpose); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *value == "" {
		fmt.Fprintln(os.Stderr, "Usage: inspect -value <literal> [-as type]")
		fmt.Fprintln(os.Stderr, "       inspect -shape 2,3 [-dtype name] [-transpose]")
		fmt.Fprintln(os.Stderr, "       inspect -list")
		fmt.Fprintln(os.Stderr, "       inspect -i  (interactive mode)")
		os.Exit(1)
	}

	if err := runScalar(*value, *as); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func listConversions() {
	fmt.Println("Supported conversions:")
	fmt.Println("  i8, i16, i32, i64   signed integers (narrowing truncates)")
	fmt.Println("  f32, f64            floats (f32 narrows)")
	fmt.Println("  c64, c128           complex (boxed form is a double pair)")
	fmt.Println("  bool                singleton identity")
	fmt.Println()
	fmt.Println("Array dtypes:")
	fmt.Println("  bool int8 int16 int32 int64 uint8 uint16 uint32 uint64")
	fmt.Println("  float32 float64 complex64 complex128")
}

// runScalar boxes the literal, converts it back through the bridge, and
// reports both directions.
func runScalar(literal, as string) error {
	in := object.New()
	b := bridge.New(in)

	boxed, err := boxLiteral(b, literal, as)
	if err != nil {
		return err
	}

	fmt.Printf("Boxed: %s (%s)\n", boxed, boxed.Type())

	native, err := convert(b, boxed, as)
	if err != nil {
		fmt.Printf("Conversion failed: %v\n", err)
		fmt.Printf("Pending indicator: %v\n", in.Err())
		return nil
	}
	fmt.Printf("Native %s: %v\n", as, native)
	fmt.Printf("Allocations: %d\n", in.Allocs())
	return nil
}

func runArray(shapeStr, dtypeStr string, transpose bool) error {
	var shape []int64
	for _, part := range strings.Split(shapeStr, ",") {
		d, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil || d < 0 {
			return fmt.Errorf("bad extent %q", part)
		}
		shape = append(shape, d)
	}

	dt, ok := ndarray.ParseDType(dtypeStr)
	if !ok {
		return fmt.Errorf("unknown dtype %q", dtypeStr)
	}

	arr := ndarray.New(dt, shape...)
	if transpose {
		arr = arr.Transpose()
	}

	in := object.New()
	b := bridge.New(in)
	desc := b.AsDescriptor(arr)

	fmt.Printf("Array: %s\n", arr)
	fmt.Printf("  ndim:            %d\n", desc.NDim)
	fmt.Printf("  dtype:           %s (itemsize %d)\n", desc.DType, desc.ItemSize)
	fmt.Printf("  shape:           %v\n", desc.Shape)
	fmt.Printf("  byte strides:    %v\n", arr.Strides())
	fmt.Printf("  element strides: %v\n", desc.Strides)
	fmt.Printf("  elements:        %d (%d bytes)\n", desc.Len, desc.NBytes)
	fmt.Printf("  view:            %v\n", desc.IsView)
	fmt.Printf("  owns data:       %v\n", arr.HasFlag(ndarray.OwnsData))
	fmt.Printf("  C-contiguous:    %v\n", arr.HasFlag(ndarray.CContiguous))
	fmt.Printf("  F-contiguous:    %v\n", arr.HasFlag(ndarray.FContiguous))
	return nil
}

// boxLiteral parses a literal into the boxed form matching the target type.
func boxLiteral(b *bridge.Bridge, literal, as string) (interpruntime.Value, error) {
	switch as {
	case "i8", "i16", "i32", "i64":
		v, err := strconv.ParseInt(literal, 0, 64)
		if err != nil {
			return nil, fmt.Errorf("bad integer literal %q: %w", literal, err)
		}
		return b.FromInt64(v), nil
	case "f32", "f64":
		v, err := strconv.ParseFloat(literal, 64)
		if err != nil {
			return nil, fmt.Errorf("bad float literal %q: %w", literal, err)
		}
		return b.FromFloat64(v), nil
	case "c64", "c128":
		v, err := strconv.ParseComplex(literal, 128)
		if err != nil {
			return nil, fmt.Errorf("bad complex literal %q: %w", literal, err)
		}
		return b.FromComplex128(v), nil
	case "bool":
		return b.FromBool(literal == "true" || literal == "1"), nil
	default:
		return nil, fmt.Errorf("unknown target type %q", as)
	}
}

// convert runs the inbound conversion matching the target type.
func convert(b *bridge.Bridge, o interpruntime.Value, as string) (any, error) {
	switch as {
	case "i8":
		return b.AsInt8(o)
	case "i16":
		return b.AsInt16(o)
	case "i32":
		return b.AsInt32(o)
	case "i64":
		return b.AsInt64(o)
	case "f32":
		return b.AsFloat32(o)
	case "f64":
		return b.AsFloat64(o)
	case "c64":
		return b.AsComplex64(o)
	case "c128":
		return b.AsComplex128(o)
	case "bool":
		return b.AsBool(o), nil
	default:
		return nil, fmt.Errorf("unknown target type %q", as)
	}
}
