package errkit

import "fmt"

// Coded is implemented by every typed error in this module so that
// callers can recover a machine-readable code without string matching.
type Coded interface {
	error
	Code() string
}

// Envelope is a machine-readable JSON shape for a Coded error. Neither
// CLI writes it: the generation-failures file holds plain
// qid/prediction_id/error objects, and there is no
// classification-failures stream.
type Envelope struct {
	Code    string `json:"code"`
	Phase   string `json:"phase"`
	Message string `json:"message"`
	// Context carries the identifiers relevant to the failure, e.g.
	// "qid" and "id" for a prediction, or "lang" for a language pack
	// lookup. Kept as strings so the envelope has no schema dependency
	// on the data types that produced it.
	Context map[string]string `json:"context,omitempty"`
}

// NewEnvelope builds an Envelope from a Coded error and optional context.
func NewEnvelope(err Coded, context map[string]string) Envelope {
	phase := ""
	if info, ok := Lookup(err.Code()); ok {
		phase = info.Phase
	}
	return Envelope{
		Code:    err.Code(),
		Phase:   phase,
		Message: err.Error(),
		Context: context,
	}
}

// BaseError is embedded by concrete error types to satisfy Coded with
// minimal boilerplate.
type BaseError struct {
	code string
	msg  string
}

// NewBase constructs a BaseError for the given code and message.
func NewBase(code, msg string, args ...any) BaseError {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return BaseError{code: code, msg: msg}
}

func (e BaseError) Error() string { return e.msg }
func (e BaseError) Code() string  { return e.code }
