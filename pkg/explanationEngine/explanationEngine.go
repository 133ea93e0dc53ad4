// Package explanationEngine ties classification, explanation, gas and
// balance extraction together into a single parsed view of a transaction.
package explanationEngine

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/txlens/txlens/pkg/balanceChanges"
	"github.com/txlens/txlens/pkg/classifier"
	"github.com/txlens/txlens/pkg/ethereum"
	"github.com/txlens/txlens/pkg/explainer"
	"github.com/txlens/txlens/pkg/gasInfo"
	"github.com/txlens/txlens/pkg/protocolRegistry"
	"github.com/txlens/txlens/pkg/sigRegistry"
	"github.com/txlens/txlens/pkg/tokenRegistry"
	"go.uber.org/zap"
)

// ParsedTransaction is the engine's complete output for one transaction.
// ObjectChanges and MoveCalls are always empty on EVM chains and exist to
// keep the output shape stable for multi-chain consumers.
type ParsedTransaction struct {
	Digest         string                           `json:"digest"`
	Timestamp      string                           `json:"timestamp,omitempty"`
	Sender         string                           `json:"sender"`
	Status         string                           `json:"status"`
	Error          string                           `json:"error,omitempty"`
	Explanation    *explainer.ExplanationResult     `json:"explanation"`
	GasInfo        *gasInfo.GasInfo                 `json:"gasInfo"`
	ObjectChanges  []interface{}                    `json:"objectChanges"`
	BalanceChanges []*balanceChanges.BalanceChangeInfo `json:"balanceChanges"`
	MoveCalls      []interface{}                    `json:"moveCalls"`
	RawTransaction *RawTransaction                  `json:"rawTransaction"`
	Checkpoint     string                           `json:"checkpoint"`
}

// RawTransaction echoes the inputs back for consumers that need the
// undecoded record alongside the parsed view.
type RawTransaction struct {
	Tx      *ethereum.EthereumTransaction        `json:"tx"`
	Receipt *ethereum.EthereumTransactionReceipt `json:"receipt"`
}

const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

type builderFunc func(tx *ethereum.EthereumTransaction, receipt *ethereum.EthereumTransactionReceipt) *explainer.ExplanationResult

// Engine decodes, classifies and explains transactions. Construct once and
// reuse; all held state is immutable after construction.
type Engine struct {
	logger     *zap.Logger
	classifier *classifier.Classifier
	explainer  *explainer.Explainer
	balances   *balanceChanges.Extractor
	builders   map[classifier.TransactionType]builderFunc
}

// NewEngine creates a fully wired engine on top of the given registries.
//
// Parameters:
//   - logger: Logger shared by all components
//   - tokens: Token registry
//   - protocols: Protocol registry
//
// Returns:
//   - *Engine: A configured engine
//   - error: An error if the builder table does not cover every producible type
func NewEngine(logger *zap.Logger, tokens *tokenRegistry.Registry, protocols *protocolRegistry.Registry) (*Engine, error) {
	exp := explainer.NewExplainer(logger, tokens, protocols)

	e := &Engine{
		logger:     logger,
		classifier: classifier.NewClassifier(logger, protocols),
		explainer:  exp,
		balances:   balanceChanges.NewExtractor(logger, tokens),
	}

	e.builders = map[classifier.TransactionType]builderFunc{
		classifier.TypeTransfer:    exp.ExplainTransfer,
		classifier.TypeApproval:    exp.ExplainApproval,
		classifier.TypeSwap:        exp.ExplainSwap,
		classifier.TypeNftTransfer: exp.ExplainNftTransfer,
		classifier.TypeNftPurchase: exp.ExplainNftPurchase,
		classifier.TypeLiquidityAdd: func(tx *ethereum.EthereumTransaction, receipt *ethereum.EthereumTransactionReceipt) *explainer.ExplanationResult {
			return exp.ExplainLiquidity(tx, receipt, true)
		},
		classifier.TypeLiquidityRemove: func(tx *ethereum.EthereumTransaction, receipt *ethereum.EthereumTransactionReceipt) *explainer.ExplanationResult {
			return exp.ExplainLiquidity(tx, receipt, false)
		},
		classifier.TypeStake:        exp.ExplainStake,
		classifier.TypeUnstake:      exp.ExplainUnstake,
		classifier.TypeClaimRewards: exp.ExplainClaimRewards,
		classifier.TypeBorrow:       exp.ExplainBorrow,
		classifier.TypeRepay:        exp.ExplainRepay,
		classifier.TypeSupply:       exp.ExplainSupply,
		classifier.TypeWithdraw:     exp.ExplainWithdraw,
		classifier.TypeBridge:       exp.ExplainBridge,
		classifier.TypePublish:      exp.ExplainContractDeploy,
		classifier.TypeGeneric:      exp.ExplainGeneric,
	}

	for _, t := range classifier.ProducibleTypes() {
		if _, ok := e.builders[t]; !ok {
			return nil, errors.Errorf("no explanation builder registered for transaction type '%s'", t)
		}
	}
	return e, nil
}

// ParseTransaction produces the full parsed view of one settled
// transaction. It never returns an error for decodable input; unknown
// shapes land in the generic explanation.
//
// Parameters:
//   - tx: The transaction
//   - receipt: Its receipt
//   - block: The containing block, used only for the timestamp; may be nil
//
// Returns:
//   - *ParsedTransaction: The parsed view
//   - error: An error if tx or receipt is nil
func (e *Engine) ParseTransaction(tx *ethereum.EthereumTransaction, receipt *ethereum.EthereumTransactionReceipt, block *ethereum.EthereumBlock) (*ParsedTransaction, error) {
	if tx == nil || receipt == nil {
		return nil, errors.New("transaction and receipt are required")
	}

	status := StatusFailure
	if receipt.IsSuccess() {
		status = StatusSuccess
	}

	txType := e.classifier.Classify(tx, receipt)
	builder, ok := e.builders[txType]
	if !ok {
		e.logger.Sugar().Debugw("No builder for classified type, using generic",
			zap.String("transactionHash", tx.Hash.Value()),
			zap.String("type", string(txType)),
		)
		builder = e.explainer.ExplainGeneric
	}

	parsed := &ParsedTransaction{
		Digest:         tx.Hash.Value(),
		Sender:         tx.From.Value(),
		Status:         status,
		Explanation:    builder(tx, receipt),
		GasInfo:        gasInfo.Extract(tx, receipt),
		ObjectChanges:  []interface{}{},
		BalanceChanges: e.balances.Extract(tx, receipt),
		MoveCalls:      []interface{}{},
		RawTransaction: &RawTransaction{Tx: tx, Receipt: receipt},
		Checkpoint:     fmt.Sprintf("%d", receipt.BlockNumber.Value()),
	}

	if block != nil && block.Timestamp.Value() > 0 {
		// Block timestamps are seconds; consumers expect milliseconds.
		parsed.Timestamp = fmt.Sprintf("%d", block.Timestamp.Value()*1000)
	}
	if status == StatusFailure {
		parsed.Error = revertReason(tx)
	}

	return parsed, nil
}

// revertReason guesses why a failed transaction reverted from its call
// data. Receipts do not carry revert data, so this is selector heuristics
// rather than ABI decoding.
func revertReason(tx *ethereum.EthereumTransaction) string {
	input := strings.ToLower(tx.Input.Value())

	if strings.Contains(input, strings.TrimPrefix(sigRegistry.SelectorApprove, "0x")) {
		return "Token approval may have failed - check allowance"
	}
	if strings.Contains(input, strings.TrimPrefix(sigRegistry.SelectorTransfer, "0x")) {
		return "Transfer failed - insufficient balance or not approved"
	}
	swapSelectors := []string{
		sigRegistry.SelectorSwapExactTokens,
		sigRegistry.SelectorSwapExactNative,
		sigRegistry.SelectorSwapTokensForNative,
		sigRegistry.SelectorSwapNativeForTokens,
	}
	for _, s := range swapSelectors {
		if strings.Contains(input, strings.TrimPrefix(s, "0x")) {
			return "Swap failed - possibly due to slippage, insufficient liquidity, or expired deadline"
		}
	}
	return "Transaction reverted - check contract requirements"
}
