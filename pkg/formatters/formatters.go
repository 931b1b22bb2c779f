// Package formatters adapts foreign value categories for direct use as
// formatting arguments. Each constructor wraps a value in a type whose
// Format method renders a fixed textual form no matter which verb or
// flags the template used, so call sites never hand-convert these
// values before logging them.
package formatters

import (
	"fmt"
	"io"
	"net/url"
	"strconv"
	"unsafe"
)

// CodeValue renders an error-code-like value as its own description.
type CodeValue struct {
	err error
}

// Code adapts any error-code-like value for interpolation. The rendered
// text is the value's own description accessor.
func Code(err error) CodeValue {
	return CodeValue{err: err}
}

func (v CodeValue) Format(f fmt.State, verb rune) {
	if v.err == nil {
		_, _ = io.WriteString(f, "<nil>")
		return
	}
	_, _ = io.WriteString(f, v.err.Error())
}

// ViewValue renders a string-view-like value as the exact character
// span it references, with no quoting or escaping.
type ViewValue struct {
	s string
}

// View adapts any named string or byte-slice type. The distinct view
// types collapse to one rule because they are behaviorally identical:
// render the referenced span verbatim.
func View[T ~string | ~[]byte](v T) ViewValue {
	return ViewValue{s: string(v)}
}

func (v ViewValue) Format(f fmt.State, verb rune) {
	_, _ = io.WriteString(f, v.s)
}

// URLValue renders a URL as its full serialized form.
type URLValue struct {
	u *url.URL
}

// URL adapts a parsed URL for interpolation; the rendered text is the
// underlying serialized buffer. A nil URL renders as the empty string.
func URL(u *url.URL) URLValue {
	return URLValue{u: u}
}

func (v URLValue) Format(f fmt.State, verb rune) {
	if v.u == nil {
		return
	}
	_, _ = io.WriteString(f, v.u.String())
}

// PtrValue renders a pointer as the decimal numeral of its bit pattern.
type PtrValue struct {
	addr uintptr
}

// Ptr adapts a pointer for interpolation. The decimal form is
// deliberate: deterministic, grep-friendly, and never confused with the
// %p hex rendering of the same address. A nil pointer renders as 0.
func Ptr[T any](p *T) PtrValue {
	return PtrValue{addr: uintptr(unsafe.Pointer(p))}
}

func (v PtrValue) Format(f fmt.State, verb rune) {
	_, _ = io.WriteString(f, strconv.FormatUint(uint64(v.addr), 10))
}
