package quest

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// NotFound indicates that an attribute was absent after full resolution of an
// object and its ancestors. Resolution itself reports misses as data (a nil
// owner); this error exists for callers that escalate a miss, such as the
// __get_attr__ meta-method.
type NotFound struct {
	// Name is the attribute that failed to resolve.
	Name string
}

func (e *NotFound) Error() string {
	return fmt.Sprintf("attribute %q not found", e.Name)
}

// IsNotFound reports whether err is a NotFound resolution miss.
func IsNotFound(err error) bool {
	var e *NotFound
	return errors.As(err, &e)
}

func newNotFound(name string) error {
	return errors.WithStackDepth(&NotFound{Name: name}, 1)
}

// UnsupportedOp indicates that an operator's canonical attribute could not be
// resolved on its receiver. Unlike a plain resolution miss, this is a
// user-visible failure and is never silently swallowed; the only operator
// with a fallback is stringification.
type UnsupportedOp struct {
	// Op is the exact operator syntax that failed, e.g. "<=>".
	Op string
	// Receiver describes the receiver the operator was applied to.
	Receiver string
}

func (e *UnsupportedOp) Error() string {
	return fmt.Sprintf("operator %q not supported by %s", e.Op, e.Receiver)
}

// IsUnsupportedOp reports whether err is an operator dispatch failure.
func IsUnsupportedOp(err error) bool {
	var e *UnsupportedOp
	return errors.As(err, &e)
}

func newUnsupportedOp(op, receiver string) error {
	return errors.WithStackDepth(&UnsupportedOp{Op: op, Receiver: receiver}, 1)
}

// AssertionFailed indicates a failed assert. It terminates the enclosing
// evaluation unit; the runtime never retries or suppresses it.
type AssertionFailed struct {
	// Expr is a textual form of the condition that was false.
	Expr string
}

func (e *AssertionFailed) Error() string {
	return fmt.Sprintf("assertion failed: %s", e.Expr)
}

// IsAssertionFailed reports whether err is a failed assertion.
func IsAssertionFailed(err error) bool {
	var e *AssertionFailed
	return errors.As(err, &e)
}

func newAssertionFailed(expr string) error {
	return errors.WithStackDepth(&AssertionFailed{Expr: expr}, 1)
}
