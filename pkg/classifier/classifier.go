// Package classifier assigns exactly one TransactionType to a confirmed
// transaction by inspecting its call-data selector, the receipt's emitted
// event topics and the destination address's registry reputation.
//
// The checks are layered from most certain to least certain: emitted event
// signatures cannot be faked without actually performing the operation, so
// they take precedence over selector dispatch, which in turn precedes
// address reputation (which could be stale or reused). First match wins.
package classifier

import (
	"strings"

	"github.com/txlens/txlens/pkg/calldata"
	"github.com/txlens/txlens/pkg/ethereum"
	"github.com/txlens/txlens/pkg/protocolRegistry"
	"github.com/txlens/txlens/pkg/sigRegistry"
	"go.uber.org/zap"
)

// Classifier is a stateless decision procedure over raw transaction data.
// Safe for concurrent use.
type Classifier struct {
	logger    *zap.Logger
	protocols *protocolRegistry.Registry
}

// NewClassifier creates a new Classifier.
//
// Parameters:
//   - logger: Logger for recording classification decisions at debug level
//   - protocols: Protocol registry consulted for address reputation
//
// Returns:
//   - *Classifier: A configured classifier
func NewClassifier(logger *zap.Logger, protocols *protocolRegistry.Registry) *Classifier {
	return &Classifier{
		logger:    logger,
		protocols: protocols,
	}
}

// Classify determines the transaction type. It is total: it never fails and
// never returns anything outside the TransactionType set, falling back to
// TypeGeneric when nothing more specific matches.
func (c *Classifier) Classify(tx *ethereum.EthereumTransaction, receipt *ethereum.EthereumTransactionReceipt) TransactionType {
	txType := c.classify(tx, receipt)
	c.logger.Debug("classified transaction",
		zap.String("transactionHash", tx.Hash.Value()),
		zap.String("type", string(txType)),
	)
	return txType
}

func (c *Classifier) classify(tx *ethereum.EthereumTransaction, receipt *ethereum.EthereumTransactionReceipt) TransactionType {
	input := calldata.NewReader(tx.Input.Value())
	selector := input.Selector()
	to := tx.To.Lower()

	// Contract creation
	if tx.IsContractCreation() && receipt.ContractAddress != "" {
		return TypePublish
	}

	// Bare native-asset movement
	if tx.Input.IsEmptyCallData() {
		return TypeTransfer
	}

	if selector == sigRegistry.SelectorApprove {
		return TypeApproval
	}

	// Event-signature checks run before the remaining selector dispatch:
	// routers and aggregators hide swaps behind opaque selectors, but the
	// pools always emit.
	hasSwapEvent := false
	for _, log := range receipt.Logs {
		sig := log.EventSignature()
		if sigRegistry.IsSwapEvent(sig) {
			hasSwapEvent = true
			break
		}
	}
	if hasSwapEvent {
		return TypeSwap
	}
	for _, log := range receipt.Logs {
		switch log.EventSignature() {
		case sigRegistry.EventMintV2:
			return TypeLiquidityAdd
		case sigRegistry.EventBurnV2:
			return TypeLiquidityRemove
		}
	}

	switch selector {
	case sigRegistry.SelectorTransfer, sigRegistry.SelectorTransferFrom:
		// A 4-topic Transfer log means an indexed token id rather than a
		// value field, i.e. an NFT moved.
		for _, log := range receipt.Logs {
			if sigRegistry.ClassifyTransferLog(log) == sigRegistry.TransferShapeIndexed {
				return TypeNftTransfer
			}
		}
		return TypeTransfer

	case sigRegistry.SelectorSwapExactTokens,
		sigRegistry.SelectorSwapTokensForExact,
		sigRegistry.SelectorSwapExactNative,
		sigRegistry.SelectorSwapTokensForNative,
		sigRegistry.SelectorSwapNativeForTokens:
		return TypeSwap

	case sigRegistry.SelectorMulticall, sigRegistry.SelectorExecute:
		// Batched calls only count as a swap when a swap event surfaced,
		// which the event checks above already handled.
		if hasSwapEvent {
			return TypeSwap
		}
		return TypeGeneric

	case sigRegistry.SelectorAddLiquidity, sigRegistry.SelectorAddLiquidityNative:
		return TypeLiquidityAdd

	case sigRegistry.SelectorRemoveLiquidity, sigRegistry.SelectorRemoveLiquidityNative:
		return TypeLiquidityRemove

	case sigRegistry.SelectorStake, sigRegistry.SelectorDeposit:
		return TypeStake

	case sigRegistry.SelectorUnstake, sigRegistry.SelectorWithdraw:
		// The selector alone is ambiguous between a staking exit and a
		// lending withdrawal; disambiguate by destination reputation.
		if c.protocols.IdentifyLendingProtocol(to) != "" {
			return TypeWithdraw
		}
		return TypeUnstake

	case sigRegistry.SelectorClaimRewards:
		return TypeClaimRewards

	case sigRegistry.SelectorSwapBridge, sigRegistry.SelectorSendFrom:
		return TypeBridge
	}

	// No selector matched; fall back to destination-address reputation.
	if to != "" {
		if c.protocols.IdentifyBridge(to) != "" {
			return TypeBridge
		}
		if c.protocols.IdentifyStaking(to) != "" {
			return TypeStake
		}
		if c.protocols.IdentifyDex(to) != "" {
			return TypeSwap
		}
		if c.protocols.IdentifyLendingProtocol(to) != "" {
			if lendingType, ok := c.classifyLendingCall(selector, input); ok {
				return lendingType
			}
		}
		if c.protocols.IdentifyNftMarketplace(to) != "" {
			return TypeNftPurchase
		}
	}

	// Last resort before generic: NFT-style transfer evidence in the logs.
	for _, log := range receipt.Logs {
		if sigRegistry.ClassifyTransferLog(log) == sigRegistry.TransferShapeIndexed ||
			sigRegistry.IsNftBatchEvent(log.EventSignature()) {
			return TypeNftTransfer
		}
	}

	return TypeGeneric
}

// classifyLendingCall picks the specific lending action for a call to a
// recognized lending protocol whose selector is not in the fixed table. It
// matches the selector's known method name (or, failing that, the raw
// call-data text) against the lending verb vocabulary. This is a heuristic,
// not a certain decode.
func (c *Classifier) classifyLendingCall(selector string, input *calldata.Reader) (TransactionType, bool) {
	haystack := strings.ToLower(sigRegistry.MethodName(selector))
	contains := func(sub string) bool {
		if haystack != "" {
			return strings.Contains(haystack, sub)
		}
		return input.Contains(sub)
	}

	switch {
	case contains("borrow") && !contains("repay"):
		return TypeBorrow, true
	case contains("repay"):
		return TypeRepay, true
	case contains("supply"), contains("deposit"):
		return TypeSupply, true
	case contains("withdraw"):
		return TypeWithdraw, true
	}
	return TypeGeneric, false
}
