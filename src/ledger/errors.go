package ledger

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind 账本错误的分类。每个前置条件失败都必须能按类别区分,
// 调用方和测试据此断言是哪条前置条件未满足
type Kind int8

const (
	KindNotFound          Kind = iota + 1 // 引用了不存在的挂单/拍卖id
	KindInvalidState                      // 状态前置条件不满足
	KindUnauthorized                      // 调用者缺少所需角色
	KindInsufficientFunds                 // 余额/外部支付/库存不足
	KindIneligibleAsset                   // 合约、币种或版税能力校验失败
	KindInvalidParams                     // 参数非法
	KindTransferFailure                   // 外部转账失败
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "NotFound"
	case KindInvalidState:
		return "InvalidState"
	case KindUnauthorized:
		return "Unauthorized"
	case KindInsufficientFunds:
		return "InsufficientFunds"
	case KindIneligibleAsset:
		return "IneligibleAsset"
	case KindInvalidParams:
		return "InvalidParams"
	case KindTransferFailure:
		return "TransferFailure"
	default:
		return "Unknown"
	}
}

// Error 带分类的账本错误
type Error struct {
	Kind Kind   // 错误类别
	Op   string // 触发错误的操作名
	Err  error  // 底层原因
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func failf(kind Kind, op, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Op: op, Err: errors.Errorf(format, args...)}
}

// wrapf 包装外部协作方返回的错误,保留底层原因供调用方排查
func wrapf(kind Kind, op string, err error, msg string) *Error {
	return &Error{Kind: kind, Op: op, Err: errors.Wrap(err, msg)}
}

// KindOf 提取错误的账本分类,非账本错误返回0
func KindOf(err error) Kind {
	var le *Error
	if errors.As(err, &le) {
		return le.Kind
	}
	return 0
}
