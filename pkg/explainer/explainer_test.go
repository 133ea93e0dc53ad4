package explainer

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/txlens/txlens/internal/tests"
	"github.com/txlens/txlens/pkg/classifier"
	"github.com/txlens/txlens/pkg/protocolRegistry"
	"github.com/txlens/txlens/pkg/tokenRegistry"
	"go.uber.org/zap"
)

func newExplainer() *Explainer {
	return NewExplainer(zap.NewNop(), tokenRegistry.NewRegistry(), protocolRegistry.NewRegistry())
}

var oneBnb = big.NewInt(1_000_000_000_000_000_000)

func oneToken(units int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(units), oneBnb)
}

func Test_ExplainTransfer(t *testing.T) {
	e := newExplainer()

	t.Run("Should explain a token transfer from its log", func(t *testing.T) {
		tx := tests.NewTransaction(tests.UsdtToken, nil, "0xa9059cbb")
		receipt := tests.NewReceipt(
			tests.NewTransferLog(tests.UsdtToken, tests.Sender, tests.Recipient, oneToken(150)),
		)
		result := e.ExplainTransfer(tx, receipt)

		assert.Equal(t, classifier.TypeTransfer, result.Type)
		assert.Equal(t, "0x1111...1111 transferred 150.00 USDT to 0x2222...2222.", result.Summary)
		assert.Len(t, result.Participants, 2)
		assert.Equal(t, "sender", result.Participants[0].Role)
		assert.Equal(t, "recipient", result.Participants[1].Role)

		action, ok := result.Actions[0].(*TransferAction)
		assert.True(t, ok)
		assert.Equal(t, "USDT", action.Token)
		assert.Equal(t, tests.UsdtToken, action.CoinType)
		assert.Equal(t, "150.00", action.Amount)
	})

	t.Run("Should explain a native transfer without logs", func(t *testing.T) {
		tx := tests.NewTransaction(tests.Recipient, oneBnb, "0x")
		result := e.ExplainTransfer(tx, tests.NewReceipt())

		assert.Equal(t, "0x1111...1111 transferred 1.0000 BNB to 0x2222...2222.", result.Summary)

		action := result.Actions[0].(*TransferAction)
		assert.Equal(t, "BNB", action.Token)
		assert.Equal(t, tokenRegistry.NativeAssetKey, action.CoinType)
	})

	t.Run("Should shorten unknown token addresses", func(t *testing.T) {
		unknownToken := "0x00000000000000000000000000000000deadbeef"
		tx := tests.NewTransaction(unknownToken, nil, "0xa9059cbb")
		receipt := tests.NewReceipt(
			tests.NewTransferLog(unknownToken, tests.Sender, tests.Recipient, oneToken(5)),
		)
		result := e.ExplainTransfer(tx, receipt)
		assert.Contains(t, result.Summary, "0x0000...beef")
	})
}

func Test_ExplainApproval(t *testing.T) {
	e := newExplainer()
	pancakePadded := "00000000000000000000000010ed43c718714eb63d5aa57b78b54704e256024e"

	t.Run("Should explain a bounded approval", func(t *testing.T) {
		amount := "00000000000000000000000000000000000000000000001b1ae4d6e2ef500000" // 500e18
		tx := tests.NewTransaction(tests.UsdtToken, nil, "0x095ea7b3"+pancakePadded+amount)
		result := e.ExplainApproval(tx, tests.NewReceipt())

		assert.Equal(t, classifier.TypeApproval, result.Type)
		assert.Equal(t, "0x1111...1111 approved 500.00 USDT for PancakeSwap.", result.Summary)

		action := result.Actions[0].(*ApprovalAction)
		assert.False(t, action.IsUnlimited)
		assert.Equal(t, "PancakeSwap", action.SpenderProtocol)
		assert.Equal(t, false, result.Metadata["isUnlimitedApproval"])
	})

	t.Run("Should flag an unlimited approval", func(t *testing.T) {
		maxUint := strings.Repeat("f", 64)
		tx := tests.NewTransaction(tests.UsdtToken, nil, "0x095ea7b3"+pancakePadded+maxUint)
		result := e.ExplainApproval(tx, tests.NewReceipt())

		assert.Contains(t, result.Summary, "Unlimited")
		action := result.Actions[0].(*ApprovalAction)
		assert.True(t, action.IsUnlimited)
		assert.Equal(t, "Unlimited", action.Amount)

		foundWarning := false
		for _, d := range result.Details {
			if strings.HasPrefix(d, "Warning:") {
				foundWarning = true
			}
		}
		assert.True(t, foundWarning)
	})

	t.Run("Exactly the 2^128-1 threshold counts as unlimited", func(t *testing.T) {
		threshold := strings.Repeat("0", 32) + strings.Repeat("f", 32)
		tx := tests.NewTransaction(tests.UsdtToken, nil, "0x095ea7b3"+pancakePadded+threshold)
		result := e.ExplainApproval(tx, tests.NewReceipt())
		assert.True(t, result.Actions[0].(*ApprovalAction).IsUnlimited)
	})

	t.Run("Truncated call data degrades to zero values", func(t *testing.T) {
		tx := tests.NewTransaction(tests.UsdtToken, nil, "0x095ea7b3")
		result := e.ExplainApproval(tx, tests.NewReceipt())
		assert.Equal(t, classifier.TypeApproval, result.Type)
		action := result.Actions[0].(*ApprovalAction)
		assert.Equal(t, "0x"+strings.Repeat("0", 40), action.Spender)
		assert.Equal(t, "0", action.Amount)
	})

	t.Run("A truncated amount word keeps its low-order value", func(t *testing.T) {
		// Only the last 8 bytes of the amount word survive (1e18). The
		// decoded amount must stay small, not inflate into the unlimited
		// range.
		tx := tests.NewTransaction(tests.UsdtToken, nil, "0x095ea7b3"+pancakePadded+"0de0b6b3a7640000")
		result := e.ExplainApproval(tx, tests.NewReceipt())

		action := result.Actions[0].(*ApprovalAction)
		assert.False(t, action.IsUnlimited)
		assert.Equal(t, "1.00", action.Amount)
		assert.Equal(t, false, result.Metadata["isUnlimitedApproval"])
	})
}

func Test_ExplainSwap(t *testing.T) {
	e := newExplainer()

	t.Run("Should reconstruct both legs from transfers", func(t *testing.T) {
		tx := tests.NewTransaction(tests.PancakeV2Router, nil, "0x38ed1739")
		receipt := tests.NewReceipt(
			tests.NewTransferLog(tests.UsdtToken, tests.Sender, tests.PancakeV2Router, oneToken(300)),
			tests.NewEventLog(tests.PancakeV2Router, tests.SwapV2Topic),
			tests.NewTransferLog(tests.CakeToken, tests.PancakeV2Router, tests.Sender, oneToken(100)),
		)
		result := e.ExplainSwap(tx, receipt)

		assert.Equal(t, classifier.TypeSwap, result.Type)
		assert.Equal(t, "0x1111...1111 swapped 300.00 USDT for 100.00 CAKE on PancakeSwap.", result.Summary)

		action := result.Actions[0].(*SwapAction)
		assert.Equal(t, "USDT", action.FromToken)
		assert.Equal(t, "CAKE", action.ToToken)
		assert.False(t, action.IsMultiHop)
		assert.Equal(t, 1, action.Hops)

		foundRate := false
		for _, d := range result.Details {
			if strings.HasPrefix(d, "Rate: 1 USDT = 0.333333 CAKE") {
				foundRate = true
			}
		}
		assert.True(t, foundRate)
	})

	t.Run("Native value is the sold asset when no outgoing transfer exists", func(t *testing.T) {
		tx := tests.NewTransaction(tests.PancakeV2Router, oneBnb, "0x7ff36ab5")
		receipt := tests.NewReceipt(
			tests.NewEventLog(tests.PancakeV2Router, tests.SwapV2Topic),
			tests.NewTransferLog(tests.CakeToken, tests.PancakeV2Router, tests.Sender, oneToken(4)),
		)
		result := e.ExplainSwap(tx, receipt)

		action := result.Actions[0].(*SwapAction)
		assert.Equal(t, "BNB", action.FromToken)
		assert.Equal(t, "1.00", action.FromAmount)
		assert.Equal(t, "CAKE", action.ToToken)
	})

	t.Run("Multiple swap events mean a multi-hop route", func(t *testing.T) {
		tx := tests.NewTransaction(tests.PancakeV2Router, nil, "0x38ed1739")
		receipt := tests.NewReceipt(
			tests.NewTransferLog(tests.UsdtToken, tests.Sender, tests.PancakeV2Router, oneToken(10)),
			tests.NewEventLog(tests.PancakeV2Router, tests.SwapV2Topic),
			tests.NewEventLog(tests.PancakeV2Router, tests.SwapV2Topic),
			tests.NewTransferLog(tests.CakeToken, tests.PancakeV2Router, tests.Sender, oneToken(3)),
		)
		result := e.ExplainSwap(tx, receipt)

		assert.Contains(t, result.Summary, "(multi-hop)")
		action := result.Actions[0].(*SwapAction)
		assert.True(t, action.IsMultiHop)
		assert.Equal(t, 2, action.Hops)
	})

	t.Run("Unresolvable legs render as question marks", func(t *testing.T) {
		tx := tests.NewTransaction(tests.PancakeV2Router, nil, "0x38ed1739")
		result := e.ExplainSwap(tx, tests.NewReceipt())
		assert.Contains(t, result.Summary, "?")

		foundRate := false
		for _, d := range result.Details {
			if strings.HasPrefix(d, "Rate:") {
				foundRate = true
			}
		}
		assert.False(t, foundRate, "no rate line without both legs")
	})
}

func Test_ExplainLiquidity(t *testing.T) {
	e := newExplainer()

	t.Run("Should collect up to two pooled assets on add", func(t *testing.T) {
		tx := tests.NewTransaction(tests.PancakeV2Router, nil, "0xe8e33700")
		receipt := tests.NewReceipt(
			tests.NewTransferLog(tests.UsdtToken, tests.Sender, tests.PancakeV2Router, oneToken(500)),
			tests.NewTransferLog(tests.CakeToken, tests.Sender, tests.PancakeV2Router, oneToken(100)),
		)
		result := e.ExplainLiquidity(tx, receipt, true)

		assert.Equal(t, classifier.TypeLiquidityAdd, result.Type)
		assert.Equal(t, "0x1111...1111 added liquidity: 500.00 USDT + 100.00 CAKE on PancakeSwap.", result.Summary)

		action := result.Actions[0].(*LiquidityAction)
		assert.Equal(t, "USDT", action.TokenA)
		assert.Equal(t, "CAKE", action.TokenB)
	})

	t.Run("Native value leads the asset list on add", func(t *testing.T) {
		tx := tests.NewTransaction(tests.PancakeV2Router, oneBnb, "0xf305d719")
		receipt := tests.NewReceipt(
			tests.NewTransferLog(tests.CakeToken, tests.Sender, tests.PancakeV2Router, oneToken(25)),
		)
		result := e.ExplainLiquidity(tx, receipt, true)

		action := result.Actions[0].(*LiquidityAction)
		assert.Equal(t, "BNB", action.TokenA)
		assert.Equal(t, "CAKE", action.TokenB)
	})

	t.Run("Remove collects incoming transfers", func(t *testing.T) {
		tx := tests.NewTransaction(tests.PancakeV2Router, nil, "0xbaa2abde")
		receipt := tests.NewReceipt(
			tests.NewTransferLog(tests.UsdtToken, tests.PancakeV2Router, tests.Sender, oneToken(500)),
			tests.NewTransferLog(tests.CakeToken, tests.PancakeV2Router, tests.Sender, oneToken(100)),
		)
		result := e.ExplainLiquidity(tx, receipt, false)

		assert.Equal(t, classifier.TypeLiquidityRemove, result.Type)
		assert.Contains(t, result.Summary, "removed liquidity")
		assert.Contains(t, result.Summary, "500.00 USDT + 100.00 CAKE")
	})

	t.Run("No resolvable assets still yields a summary", func(t *testing.T) {
		tx := tests.NewTransaction(tests.PancakeV2Router, nil, "0xbaa2abde")
		result := e.ExplainLiquidity(tx, tests.NewReceipt(), false)
		assert.Contains(t, result.Summary, "tokens")
	})
}

func Test_ExplainNftTransfer(t *testing.T) {
	e := newExplainer()
	nftContract := "0x5555555555555555555555555555555555555555"

	t.Run("Should read the token id from topic 3", func(t *testing.T) {
		tx := tests.NewTransaction(nftContract, nil, "0x23b872dd")
		receipt := tests.NewReceipt(
			tests.NewNftTransferLog(nftContract, tests.Sender, tests.Recipient, big.NewInt(42)),
		)
		result := e.ExplainNftTransfer(tx, receipt)

		assert.Equal(t, classifier.TypeNftTransfer, result.Type)
		assert.Contains(t, result.Summary, "NFT #42")

		action := result.Actions[0].(*NftTransferAction)
		assert.Equal(t, "42", action.ObjectId)
		assert.Equal(t, nftContract, action.ObjectType)
	})

	t.Run("Should degrade to generic without a 4-topic log", func(t *testing.T) {
		tx := tests.NewTransaction(nftContract, nil, "0x23b872dd")
		result := e.ExplainNftTransfer(tx, tests.NewReceipt())
		assert.Equal(t, classifier.TypeGeneric, result.Type)
	})
}

func Test_ExplainNftPurchase(t *testing.T) {
	e := newExplainer()

	tx := tests.NewTransaction(tests.OpenSeaSeaport, oneBnb, "0xdeadbeef")
	result := e.ExplainNftPurchase(tx, tests.NewReceipt())

	assert.Equal(t, classifier.TypeNftPurchase, result.Type)
	assert.Equal(t, "0x1111...1111 purchased an NFT for 1.0000 BNB on OpenSea.", result.Summary)

	action := result.Actions[0].(*NftPurchaseAction)
	assert.Equal(t, "OpenSea", action.Marketplace)
	assert.Equal(t, "1.0000 BNB", action.Price)
}

func Test_ExplainContractDeploy(t *testing.T) {
	e := newExplainer()

	tx := tests.NewTransaction("", nil, "0x6080604052")
	receipt := tests.NewReceipt()
	receipt.ContractAddress = "0x3333333333333333333333333333333333333333"
	result := e.ExplainContractDeploy(tx, receipt)

	assert.Equal(t, classifier.TypePublish, result.Type)
	assert.Equal(t, "0x1111...1111 deployed a new smart contract.", result.Summary)

	action := result.Actions[0].(*PublishAction)
	assert.Equal(t, "0x3333333333333333333333333333333333333333", action.PackageId)
	assert.NotNil(t, action.Modules)
}

func Test_ExplainGeneric(t *testing.T) {
	e := newExplainer()

	t.Run("Should report the selector and value", func(t *testing.T) {
		tx := tests.NewTransaction(tests.Recipient, oneBnb, "0xdeadbeef")
		result := e.ExplainGeneric(tx, tests.NewReceipt())

		assert.Equal(t, classifier.TypeGeneric, result.Type)
		assert.Contains(t, result.Details, "Method: 0xdeadbeef")
		assert.Contains(t, result.Details, "Value: 1.0000 BNB")
	})

	t.Run("Should name a known protocol", func(t *testing.T) {
		tx := tests.NewTransaction(tests.PancakeV2Router, nil, "0xdeadbeef")
		result := e.ExplainGeneric(tx, tests.NewReceipt())
		assert.Equal(t, "0x1111...1111 interacted with PancakeSwap.", result.Summary)
	})

	t.Run("Should include the text signature for known selectors", func(t *testing.T) {
		tx := tests.NewTransaction(tests.Recipient, nil, "0x70a08231")
		result := e.ExplainGeneric(tx, tests.NewReceipt())
		assert.Contains(t, result.Details, "Signature: balanceOf(address)")
	})

	t.Run("Should never fail on degenerate input", func(t *testing.T) {
		tx := tests.NewTransaction("", nil, "")
		result := e.ExplainGeneric(tx, tests.NewReceipt())
		assert.Equal(t, classifier.TypeGeneric, result.Type)
		assert.NotEmpty(t, result.Summary)
	})
}
