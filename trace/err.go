package trace

import (
	"errors"

	"github.com/ezrec/tapebf/translate"
)

var f = translate.From

var (
	ErrWatchResult = errors.New(f("watch expression has no result"))
)

// ErrWatch indicates a watch expression that failed to compile or evaluate.
type ErrWatch struct {
	Expr string
	Err  error
}

func (err *ErrWatch) Error() string {
	return f("watch '%v' %v", err.Expr, err.Err)
}

func (err *ErrWatch) Unwrap() error {
	return err.Err
}
