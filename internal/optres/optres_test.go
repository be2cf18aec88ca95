package optres

import (
	"errors"
	"testing"
)

// --- Option ---

func TestOption_Some(t *testing.T) {
	o := Some(7)
	if !o.IsSome() || o.IsNone() {
		t.Fatalf("expected Some")
	}
	v, ok := o.Get()
	if !ok || v != 7 {
		t.Fatalf("Get() = %v, %v; want 7, true", v, ok)
	}
	if s := o.String(); s != "Some(7)" {
		t.Errorf("String() = %q, want Some(7)", s)
	}
}

func TestOption_None(t *testing.T) {
	o := None[int]()
	if o.IsSome() {
		t.Fatalf("expected None")
	}
	if _, ok := o.Get(); ok {
		t.Fatalf("Get() reported present on None")
	}
	if s := o.String(); s != "None" {
		t.Errorf("String() = %q, want None", s)
	}
}

func TestOption_ZeroValueIsNone(t *testing.T) {
	var o Option[string]
	if !o.IsNone() {
		t.Fatalf("zero value should be None")
	}
}

func TestOption_OrElse(t *testing.T) {
	if got := Some(3).OrElse(9); got != 3 {
		t.Errorf("Some(3).OrElse(9) = %d, want 3", got)
	}
	if got := None[int]().OrElse(9); got != 9 {
		t.Errorf("None.OrElse(9) = %d, want 9", got)
	}
}

// --- Result ---

func TestResult_Ok(t *testing.T) {
	r := Ok(42)
	if !r.IsOk() {
		t.Fatalf("expected Ok")
	}
	v, err := r.Get()
	if err != nil || v != 42 {
		t.Fatalf("Get() = %v, %v; want 42, nil", v, err)
	}
	if s := r.String(); s != "Ok(42)" {
		t.Errorf("String() = %q, want Ok(42)", s)
	}
}

func TestResult_Err(t *testing.T) {
	cause := errors.New("nope")
	r := Err[int](cause)
	if r.IsOk() {
		t.Fatalf("expected Err")
	}
	if _, err := r.Get(); !errors.Is(err, cause) {
		t.Fatalf("Get() err = %v, want %v", err, cause)
	}
	if s := r.String(); s != "Err(nope)" {
		t.Errorf("String() = %q, want Err(nope)", s)
	}
}

func TestResult_ErrNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("Err(nil) should panic")
		}
	}()
	Err[int](nil)
}
