// Package sigRegistry holds the event-topic and function-selector constants
// the classifier matches raw log data against, together with the log-shape
// heuristics built on top of them. Topic constants are keccak-256 hashes of
// the canonical event signatures; selector constants are the first 4 bytes
// of the keccak-256 hash of the function signature.
package sigRegistry

import (
	"strings"

	"github.com/txlens/txlens/pkg/ethereum"
)

// Event signature topics (topic 0 values).
const (
	// ERC-20 / ERC-721
	EventTransfer = "0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef"
	EventApproval = "0x8c5be1e5ebec7d5bd14f71427d1e84f3dd0314c0f7b2291e5b200ac8c7c3b925"

	// DEX swaps, the two common pool encodings
	EventSwapV2 = "0xd78ad95fa46c994b6551d0da85fc275fe613ce37657fb8d5e3d130840159d822"
	EventSwapV3 = "0xc42079f94a6350d7e6235f29174924f928cc2ac818eb64fed8004e115fbcca67"

	// Liquidity pool mint/burn
	EventMintV2 = "0x4c209b5fc8ad50758f13e2e1088ba56a560dff690a1c6fef26394f4c03821c4f"
	EventBurnV2 = "0xdccd412f0b1252819cb1fd330b93224ca42612892bb3f4f789976e6d81936496"

	// ERC-1155
	EventTransferSingle = "0xc3d58168c5ae7397731d063d5bbf3d657854427343f4c083240f7aacaa2d0f62"
	EventTransferBatch  = "0x4a39dc06d4c0dbc64b70af90fd698a233a518aa5d07e595d983b8c0526c8f7fb"

	// Staking-style vaults
	EventDeposit  = "0xe1fffcc4923d04b559f4d29a8bfc6cda04eb5b0d3c460751c2402c5c5cc9109c"
	EventWithdraw = "0x884edad9ce6fa2440d8a54cc123490eb96d2768479d49ff9c7366125a9424364"
)

// Function selectors.
const (
	// ERC-20
	SelectorTransfer     = "0xa9059cbb"
	SelectorApprove      = "0x095ea7b3"
	SelectorTransferFrom = "0x23b872dd"

	// DEX router swap family
	SelectorSwapExactTokens     = "0x38ed1739"
	SelectorSwapTokensForExact  = "0x8803dbee"
	SelectorSwapExactNative     = "0x7ff36ab5"
	SelectorSwapTokensForNative = "0x18cbafe5"
	SelectorSwapNativeForTokens = "0xfb3bdb41"
	SelectorMulticall           = "0x5ae401dc"
	SelectorExecute             = "0x3593564c"

	// Liquidity management
	SelectorAddLiquidity          = "0xe8e33700"
	SelectorAddLiquidityNative    = "0xf305d719"
	SelectorRemoveLiquidity       = "0xbaa2abde"
	SelectorRemoveLiquidityNative = "0x02751cec"

	// Staking
	SelectorStake        = "0xa694fc3a"
	SelectorUnstake      = "0x2e17de78"
	SelectorClaimRewards = "0x372500ab"
	SelectorDeposit      = "0xb6b55f25"
	SelectorWithdraw     = "0x2e1a7d4d"

	// Bridges
	SelectorSwapBridge = "0x9fbf10fc"
	SelectorSendFrom   = "0xc19d93fb"
)

// methodNames maps well-known selectors to their canonical text signatures.
// Used to humanize generic calls and by the lending-action fallback.
var methodNames = map[string]string{
	SelectorTransfer:              "transfer(address,uint256)",
	SelectorApprove:               "approve(address,uint256)",
	SelectorTransferFrom:          "transferFrom(address,address,uint256)",
	SelectorSwapExactTokens:       "swapExactTokensForTokens(uint256,uint256,address[],address,uint256)",
	SelectorSwapTokensForExact:    "swapTokensForExactTokens(uint256,uint256,address[],address,uint256)",
	SelectorSwapExactNative:       "swapExactETHForTokens(uint256,address[],address,uint256)",
	SelectorSwapTokensForNative:   "swapExactTokensForETH(uint256,uint256,address[],address,uint256)",
	SelectorSwapNativeForTokens:   "swapETHForExactTokens(uint256,address[],address,uint256)",
	SelectorMulticall:             "multicall(uint256,bytes[])",
	SelectorExecute:               "execute(bytes,bytes[],uint256)",
	SelectorAddLiquidity:          "addLiquidity(address,address,uint256,uint256,uint256,uint256,address,uint256)",
	SelectorAddLiquidityNative:    "addLiquidityETH(address,uint256,uint256,uint256,address,uint256)",
	SelectorRemoveLiquidity:       "removeLiquidity(address,address,uint256,uint256,uint256,address,uint256)",
	SelectorRemoveLiquidityNative: "removeLiquidityETH(address,uint256,uint256,uint256,address,uint256)",
	SelectorStake:                 "stake(uint256)",
	SelectorUnstake:               "unstake(uint256)",
	SelectorClaimRewards:          "claimRewards()",
	SelectorDeposit:               "deposit(uint256)",
	SelectorWithdraw:              "withdraw(uint256)",
	"0x70a08231":                  "balanceOf(address)",
	"0xdd62ed3e":                  "allowance(address,address)",
	"0x40c10f19":                  "mint(address,uint256)",
	"0x42966c68":                  "burn(uint256)",
	"0xf2fde38b":                  "transferOwnership(address)",
	"0xd0e30db0":                  "deposit()",
	"0xc5ebeaec":                  "borrow(uint256)",
	"0x0e752702":                  "repayBorrow(uint256)",
	"0x617ba037":                  "supply(address,uint256,address,uint16)",
	"0x573ade81":                  "repay(address,uint256,uint256,address)",
	"0x69328dec":                  "withdraw(address,uint256,address)",
}

// MethodName returns the canonical text signature for a selector, or the
// empty string when the selector is not in the table.
func MethodName(selector string) string {
	return methodNames[strings.ToLower(selector)]
}

// IsSwapEvent reports whether a topic-0 value is one of the known DEX swap
// event encodings.
func IsSwapEvent(signature string) bool {
	return signature == EventSwapV2 || signature == EventSwapV3
}

// IsNftBatchEvent reports whether a topic-0 value is an ERC-1155 single or
// batch transfer event.
func IsNftBatchEvent(signature string) bool {
	return signature == EventTransferSingle || signature == EventTransferBatch
}

// TransferShape classifies a Transfer-event log by its topic layout.
type TransferShape int

const (
	// TransferShapeNone: not a Transfer event at all.
	TransferShapeNone TransferShape = iota
	// TransferShapeValue: ERC-20 layout, 3 topics with the amount in the
	// data field.
	TransferShapeValue
	// TransferShapeIndexed: ERC-721 layout, 4 topics with an indexed token
	// id in topic 3.
	TransferShapeIndexed
)

// ClassifyTransferLog returns the shape of a Transfer-event log. The topic
// count is the only reliable discriminator between a value-carrying ERC-20
// transfer and an indexed-token-id NFT transfer, since both share the same
// topic-0 signature.
func ClassifyTransferLog(log *ethereum.EthereumEventLog) TransferShape {
	if log.EventSignature() != EventTransfer {
		return TransferShapeNone
	}
	switch len(log.Topics) {
	case 3:
		return TransferShapeValue
	case 4:
		return TransferShapeIndexed
	default:
		return TransferShapeNone
	}
}

// TopicAddress extracts an address from a 32-byte indexed topic value (the
// last 20 bytes), returned 0x-prefixed and lower-cased. Topics shorter than
// an address render as-is.
func TopicAddress(topic ethereum.EthereumHexString) string {
	s := strings.TrimPrefix(topic.Lower(), "0x")
	if len(s) < 40 {
		return "0x" + s
	}
	return "0x" + s[len(s)-40:]
}
