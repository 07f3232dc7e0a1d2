package arr

import (
	"errors"
	"fmt"
	"strings"
)

// EvaluationError captures the engine, expression and element position that
// produced an expression failure.
type EvaluationError struct {
	Engine string
	Expr   string
	// Index is the element position being evaluated, or -1 when the failure
	// is not tied to an element (compilation, for example).
	Index int
	Err   error
}

func (e *EvaluationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Index < 0 {
		return fmt.Sprintf("arr: %s evaluator %s: %v", e.Engine, describeExpression(e.Expr), e.Err)
	}
	return fmt.Sprintf("arr: %s evaluator %s index=%d: %v", e.Engine, describeExpression(e.Expr), e.Index, e.Err)
}

func (e *EvaluationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func describeExpression(expr string) string {
	if expr == "" {
		return "expr=<empty>"
	}
	return fmt.Sprintf("expr=%q", expr)
}

func wrapEvaluatorError(engine string, err error) error {
	if err == nil {
		return nil
	}

	var evalErr *EvaluationError
	if errors.As(err, &evalErr) {
		return err
	}

	if strings.HasPrefix(err.Error(), "arr:") {
		return err
	}
	return fmt.Errorf("arr: %s evaluator: %w", engine, err)
}

func wrapEvaluationError(engine, expr string, err error) error {
	if err == nil {
		return nil
	}

	var evalErr *EvaluationError
	if errors.As(err, &evalErr) {
		if evalErr.Engine == "" {
			evalErr.Engine = engine
		}
		if evalErr.Expr == "" {
			evalErr.Expr = expr
		}
		return evalErr
	}

	return &EvaluationError{
		Engine: engine,
		Expr:   expr,
		Index:  -1,
		Err:    err,
	}
}

// atIndex stamps the element position on an evaluation error.
func atIndex(err error, index int) error {
	if err == nil {
		return nil
	}
	var evalErr *EvaluationError
	if errors.As(err, &evalErr) {
		evalErr.Index = index
		return evalErr
	}
	return &EvaluationError{Index: index, Err: err}
}
