package errno

import "fmt"

// BizError 业务错误，携带错误码与底层原因，便于适配层统一转换。
type BizError interface {
	error
	Errno() *Errno
	Message() string
	Unwrap() error
}

type bizError struct {
	errno *Errno
	cause error
	args  []interface{}
}

// NewSimpleBizError wraps an Errno with an optional cause. args, when given,
// are applied to the Errno message as format arguments.
func NewSimpleBizError(e *Errno, cause error, args ...interface{}) BizError {
	if e == nil {
		e = ErrUnknown
	}
	return &bizError{errno: e, cause: cause, args: args}
}

func (e *bizError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message(), e.cause)
	}
	return e.Message()
}

// Message returns the user-facing message without the underlying cause.
func (e *bizError) Message() string {
	if len(e.args) > 0 {
		return fmt.Sprintf(e.errno.Message, e.args...)
	}
	return e.errno.Message
}

func (e *bizError) Errno() *Errno {
	return e.errno
}

func (e *bizError) Unwrap() error {
	return e.cause
}
