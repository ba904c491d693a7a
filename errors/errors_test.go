package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:    PhaseExtract,
				Kind:     KindTypeMismatch,
				Path:     []string{"arg0"},
				GoType:   "int64",
				HostType: "str",
				Detail:   "cannot extract",
			},
			contains: []string{"[extract]", "type_mismatch", "arg0", "int64", "str", "cannot extract"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseArray,
				Kind:  KindOutOfBounds,
			},
			contains: []string{"[array]", "out_of_bounds"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseExtract,
				Kind:   KindConversionFailed,
				Detail: "extraction primitive failed",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[extract]", "conversion_failed", "extraction primitive failed", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseExtract,
		Kind:  KindConversionFailed,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}

	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase: PhaseExtract,
		Kind:  KindTypeMismatch,
		Path:  []string{"foo"},
	}

	if !err.Is(&Error{Phase: PhaseExtract, Kind: KindTypeMismatch}) {
		t.Error("Is should match same phase and kind")
	}

	if err.Is(&Error{Phase: PhaseBox, Kind: KindTypeMismatch}) {
		t.Error("Is should not match different phase")
	}

	if err.Is(&Error{Phase: PhaseExtract, Kind: KindOutOfBounds}) {
		t.Error("Is should not match different kind")
	}

	target := &Error{Phase: PhaseExtract, Kind: KindTypeMismatch}
	if !errors.Is(err, target) {
		t.Error("errors.Is should match")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseExtract, KindTypeMismatch).
		Path("arg0").
		GoType("int64").
		HostType("str").
		Value(42).
		Cause(cause).
		Detail("expected %s, got %s", "int", "str").
		Build()

	if err.Phase != PhaseExtract {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseExtract)
	}
	if err.Kind != KindTypeMismatch {
		t.Errorf("Kind = %v, want %v", err.Kind, KindTypeMismatch)
	}
	if len(err.Path) != 1 || err.Path[0] != "arg0" {
		t.Errorf("Path = %v, want [arg0]", err.Path)
	}
	if err.GoType != "int64" {
		t.Errorf("GoType = %q, want int64", err.GoType)
	}
	if err.HostType != "str" {
		t.Errorf("HostType = %q, want str", err.HostType)
	}
	if err.Value != 42 {
		t.Errorf("Value = %v, want 42", err.Value)
	}
	if !errors.Is(err.Cause, cause) {
		t.Error("Cause not preserved")
	}
	if err.Detail != "expected int, got str" {
		t.Errorf("Detail = %q", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("TypeMismatch", func(t *testing.T) {
		err := TypeMismatch(PhaseExtract, "float64", "complex")
		if err.Kind != KindTypeMismatch || err.GoType != "float64" || err.HostType != "complex" {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("ConversionFailed", func(t *testing.T) {
		cause := errors.New("pending")
		err := ConversionFailed("int32", cause)
		if err.Phase != PhaseExtract || err.Kind != KindConversionFailed {
			t.Errorf("unexpected error: %v", err)
		}
		if !errors.Is(err, &Error{Phase: PhaseExtract, Kind: KindConversionFailed}) {
			t.Error("errors.Is should match conversion failure")
		}
		if !errors.Is(err, cause) {
			t.Error("cause should be in the chain")
		}
	})

	t.Run("OutOfBounds", func(t *testing.T) {
		err := OutOfBounds(PhaseArray, []string{"shape"}, 3, 2)
		if !strings.Contains(err.Error(), "index 3 out of bounds (length 2)") {
			t.Errorf("unexpected message: %v", err)
		}
	})

	t.Run("InvalidDType", func(t *testing.T) {
		err := InvalidDType(PhaseArray, "int32", "float64")
		if err.Kind != KindInvalidDType {
			t.Errorf("Kind = %v", err.Kind)
		}
	})

	t.Run("Unsupported", func(t *testing.T) {
		err := Unsupported(PhaseExtract, "decimal extraction")
		if !strings.Contains(err.Error(), "decimal extraction") {
			t.Errorf("unexpected message: %v", err)
		}
	})
}
