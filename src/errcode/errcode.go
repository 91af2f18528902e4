package errcode

import (
	"NFTMarketLedger/src/ledger"
)

// Err 对外错误,code进响应体,msg给调用方看
type Err struct {
	code int
	msg  string
}

func NewErr(code int, msg string) *Err {
	return &Err{code: code, msg: msg}
}

// NewCustomErr 业务自定义错误,统一挂在自定义错误码下
func NewCustomErr(msg string) *Err {
	return NewErr(CodeCustom, msg)
}

func (e *Err) Code() int {
	return e.code
}

func (e *Err) Error() string {
	return e.msg
}

const (
	CodeOK     = 200
	CodeCustom = 7000
)

var (
	ErrUnexpected        = NewErr(500, "The server is out of service. Try again later")
	ErrInvalidParams     = NewErr(400, "Invalid request params")
	ErrUnauthorized      = NewErr(401, "Caller is not allowed to perform this operation")
	ErrInsufficientFunds = NewErr(402, "Insufficient withdrawable or attached funds")
	ErrIneligibleAsset   = NewErr(403, "Asset or currency is not eligible for listing")
	ErrNotFound          = NewErr(404, "Record not found")
	ErrInvalidState      = NewErr(409, "Operation not allowed in current state")
	ErrTransferFailure   = NewErr(502, "External transfer failed")
)

// FromLedgerErr 把账本错误类别翻译成对外错误码,消息保留原始错误链
func FromLedgerErr(err error) *Err {
	var code int
	switch ledger.KindOf(err) {
	case ledger.KindNotFound:
		code = ErrNotFound.code
	case ledger.KindInvalidState:
		code = ErrInvalidState.code
	case ledger.KindUnauthorized:
		code = ErrUnauthorized.code
	case ledger.KindInsufficientFunds:
		code = ErrInsufficientFunds.code
	case ledger.KindIneligibleAsset:
		code = ErrIneligibleAsset.code
	case ledger.KindInvalidParams:
		code = ErrInvalidParams.code
	case ledger.KindTransferFailure:
		code = ErrTransferFailure.code
	default:
		return ErrUnexpected
	}
	return NewErr(code, err.Error())
}
