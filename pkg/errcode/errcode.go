package errcode

import "net/http"

// Err 业务错误码
type Err struct {
	Code   int    `json:"code"`
	Msg    string `json:"message"`
	Status int    `json:"-"`
}

func (e *Err) Error() string {
	return e.Msg
}

// HTTPStatus 返回对应的HTTP状态码
func (e *Err) HTTPStatus() int {
	if e.Status == 0 {
		return http.StatusInternalServerError
	}
	return e.Status
}

func NewErr(code int, status int, msg string) *Err {
	return &Err{Code: code, Msg: msg, Status: status}
}

var (
	ErrUnexpected = NewErr(10001, http.StatusInternalServerError, "unexpected error")
	ErrParams     = NewErr(10002, http.StatusBadRequest, "invalid params")
	ErrNotFound   = NewErr(10003, http.StatusNotFound, "resource not found")
)

// NewCustomErr 自定义业务错误
func NewCustomErr(msg string) *Err {
	return NewErr(ErrUnexpected.Code, http.StatusInternalServerError, msg)
}

func NewParamsErr(msg string) *Err {
	return NewErr(ErrParams.Code, http.StatusBadRequest, msg)
}

func NewNotFoundErr(msg string) *Err {
	return NewErr(ErrNotFound.Code, http.StatusNotFound, msg)
}
