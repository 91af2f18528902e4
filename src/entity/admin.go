package entity

type SetFeeParam struct {
	Caller string `json:"caller"` //须为管理员
	Rate   int64  `json:"rate"`   //手续费率分子
	Scale  int64  `json:"scale"`  //手续费率分母
}

type SetFeeRecipientParam struct {
	Caller    string `json:"caller"`    //须为管理员
	Recipient string `json:"recipient"` //新手续费收款地址
}

type ApprovalParam struct {
	Caller   string `json:"caller"`   //须为管理员
	Address  string `json:"address"`  //合约或币种地址
	Approved bool   `json:"approved"` //准入开关
}

type ApproveAllCurrenciesParam struct {
	Caller string `json:"caller"` //须为管理员
}

// ChangedResp 管理操作是否发生实际变更
type ChangedResp struct {
	Changed bool `json:"changed"`
}

type FeeInfoResp struct {
	Rate      int64  `json:"rate"`      //手续费率分子
	Scale     int64  `json:"scale"`     //手续费率分母
	Recipient string `json:"recipient"` //手续费收款地址
}
