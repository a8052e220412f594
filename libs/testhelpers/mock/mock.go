// Package mock implements expectation based mocks. A mock type embeds an
// *Expector, the test registers the calls it expects in order via Expect,
// and each mocked method reports its arguments through Record which
// returns the canned values attached to the expectation.
package mock

import (
	"fmt"
	"reflect"
	"runtime"
	"sync"
	"testing"
)

// Expectation represents a single expected call and the values the mock
// should return for it.
type Expectation struct {
	Func    interface{}
	Args    []interface{}
	Returns []interface{}
}

// NewExpectation returns an expectation for a call of f with the provided arguments.
func NewExpectation(f interface{}, args ...interface{}) *Expectation {
	return &Expectation{Func: f, Args: args}
}

// WithReturns attaches the values the mock should return when the expectation is met.
func (e *Expectation) WithReturns(rets ...interface{}) *Expectation {
	e.Returns = rets
	return e
}

// Expector tracks the ordered list of expectations for a mock.
type Expector struct {
	T testing.TB

	mu       sync.Mutex
	expected []*Expectation
	recorded int
}

// Expect appends an expectation to the ordered list of expected calls.
func (e *Expector) Expect(exp *Expectation) {
	e.mu.Lock()
	e.expected = append(e.expected, exp)
	e.mu.Unlock()
}

// Record reports a call made against the mock. It fails the test if the
// call does not match the next expectation, and otherwise returns the
// expectation's canned return values.
func (e *Expector) Record(args ...interface{}) []interface{} {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.recorded >= len(e.expected) {
		e.T.Fatalf("unexpected call with args %+v: no expectations remain", args)
		return nil
	}
	exp := e.expected[e.recorded]
	e.recorded++
	if !reflect.DeepEqual(exp.Args, args) {
		e.T.Fatalf("call %d to %s:\nexp args: %+v\ngot args: %+v", e.recorded, funcName(exp.Func), exp.Args, args)
	}
	return exp.Returns
}

// Finish fails the test if any registered expectations were not met.
func (e *Expector) Finish() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.recorded != len(e.expected) {
		e.T.Fatalf("%d expectation(s) were not met, next: %s", len(e.expected)-e.recorded, funcName(e.expected[e.recorded].Func))
	}
}

// Finisher is any mock that can verify all its expectations were met.
type Finisher interface {
	Finish()
}

// FinishAll calls Finish on all the provided mocks.
func FinishAll(mocks ...Finisher) {
	for _, m := range mocks {
		m.Finish()
	}
}

// NextError is a convenience method that returns the next error in the list if one
// exists and pops it from the list. If one is not present it returns nil and the empty list.
func NextError(errs []error) ([]error, error) {
	if len(errs) == 0 {
		return nil, nil
	}
	return errs[1:], errs[0]
}

// SafeError returns the value as an error if it is one and nil otherwise.
func SafeError(v interface{}) error {
	if v == nil {
		return nil
	}
	err, ok := v.(error)
	if !ok {
		return fmt.Errorf("expected error return, got %T", v)
	}
	return err
}

func funcName(f interface{}) string {
	if f == nil {
		return "unknown"
	}
	v := reflect.ValueOf(f)
	if v.Kind() != reflect.Func {
		return fmt.Sprintf("%T", f)
	}
	fn := runtime.FuncForPC(v.Pointer())
	if fn == nil {
		return "unknown"
	}
	return fn.Name()
}
