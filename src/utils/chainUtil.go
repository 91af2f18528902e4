package utils

type ChainIdMap map[int]string

// DefaultChainIdToChain 配置未给出chain_supported时的兜底映射
var DefaultChainIdToChain = ChainIdMap{
	1:        "eth",
	11155111: "sepolia",
}
