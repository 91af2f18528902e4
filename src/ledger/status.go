package ledger

// Status 挂单/拍卖的派生状态。状态不落库,每次按固定优先级从字段和当前时间推导,
// 避免出现第二份可能失步的事实来源
type Status int8

const (
	StatusPending      Status = iota + 1 // 尚未开始
	StatusActive                         // 进行中
	StatusEnded                          // 已结束
	StatusCancelled                      // 已取消(或平台已在资格名单中下线)
	StatusEndedClaimed                   // 已结束且已结算,仅拍卖使用
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "PENDING"
	case StatusActive:
		return "ACTIVE"
	case StatusEnded:
		return "ENDED"
	case StatusCancelled:
		return "CANCELLED"
	case StatusEndedClaimed:
		return "ENDED_CLAIMED"
	default:
		return "UNKNOWN"
	}
}

// saleStatus 按优先级推导挂单状态: CANCELLED → PENDING → ACTIVE → ENDED。
// deprecated 表示平台自身已被资格名单下线,所有挂单视同取消
func saleStatus(s *Sale, now int64, deprecated bool) Status {
	switch {
	case s.Cancelled || deprecated:
		return StatusCancelled
	case now < s.StartTime:
		return StatusPending
	case now < s.EndTime && s.Purchased < s.Amount:
		return StatusActive
	default:
		return StatusEnded
	}
}

// auctionStatus 按优先级推导拍卖状态:
// CANCELLED → ENDED_CLAIMED → PENDING → ACTIVE → ENDED
func auctionStatus(a *Auction, now int64, deprecated bool) Status {
	switch {
	case a.Cancelled || deprecated:
		return StatusCancelled
	case a.Claimed:
		return StatusEndedClaimed
	case now < a.StartTime:
		return StatusPending
	case now < a.EndTime:
		return StatusActive
	default:
		return StatusEnded
	}
}
