package code

import (
	"fmt"
	"net/http"
)

// ErrCode is the error currency of the service. Business and repo layers return
// *ErrCode values; the web layer translates them into the reply envelope.
type ErrCode struct {
	Code      int    `json:"code"`
	HTTPCode  int    `json:"-"`
	Msg       string `json:"msg"`
	Retryable bool   `json:"retryable,omitempty"`
	cause     error
}

func (e *ErrCode) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("code=%d msg=%s cause=%v", e.Code, e.Msg, e.cause)
	}
	return fmt.Sprintf("code=%d msg=%s", e.Code, e.Msg)
}

func (e *ErrCode) Unwrap() error { return e.cause }

// WithErr returns a copy carrying err as the cause. The original sentinel is
// never mutated so equality checks against it keep working.
func (e *ErrCode) WithErr(err error) *ErrCode {
	clone := *e
	clone.cause = err
	return &clone
}

// WithMsg returns a copy with a replaced user-facing message.
func (e *ErrCode) WithMsg(msg string) *ErrCode {
	clone := *e
	clone.Msg = msg
	return &clone
}

// WithMsgf is WithMsg with formatting.
func (e *ErrCode) WithMsgf(format string, args ...any) *ErrCode {
	return e.WithMsg(fmt.Sprintf(format, args...))
}

// Is lets errors.Is match a derived error against its sentinel by code.
func (e *ErrCode) Is(target error) bool {
	t, ok := target.(*ErrCode)
	return ok && t.Code == e.Code
}

func newCode(c, httpCode int, msg string) *ErrCode {
	return &ErrCode{Code: c, HTTPCode: httpCode, Msg: msg}
}

var (
	// Validation failures are rejected at the boundary, before any store call.
	ParamErr = newCode(40001, http.StatusBadRequest, "invalid parameter")

	// ConfirmExpiredErr covers an unknown or timed-out delete confirmation token.
	ConfirmExpiredErr = newCode(41001, http.StatusGone, "delete confirmation expired")

	UnDefineErr    = newCode(50000, http.StatusInternalServerError, "internal error")
	CreateDataErr  = newCode(50001, http.StatusInternalServerError, "create record failed")
	QueryRecordErr = newCode(50002, http.StatusInternalServerError, "query records failed")
	DeleteDataErr  = newCode(50003, http.StatusInternalServerError, "delete record failed")

	// StoreBusyErr means no store connection became available within the bounded
	// wait. It is retryable and must never be conflated with an empty result.
	StoreBusyErr = func() *ErrCode {
		e := newCode(50301, http.StatusServiceUnavailable, "record store busy, retry later")
		e.Retryable = true
		return e
	}()

	RPCHttpErr     = newCode(50201, http.StatusBadGateway, "upstream request failed")
	RPCHttpCodeErr = newCode(50202, http.StatusBadGateway, "upstream returned unexpected status")
)
