// Package balanceChanges derives the net asset movements a transaction
// caused for its sender. Changes are subject-centric: only entries whose
// owner is the transaction sender appear, except for the native recipient
// credit on a plain value transfer.
package balanceChanges

import (
	"math/big"

	"github.com/txlens/txlens/pkg/ethereum"
	"github.com/txlens/txlens/pkg/format"
	"github.com/txlens/txlens/pkg/sigRegistry"
	"github.com/txlens/txlens/pkg/tokenRegistry"
	"go.uber.org/zap"
)

// BalanceChangeInfo is one signed asset delta for one owner. Amount is a
// formatted display string carrying the sign; IsPositive duplicates the
// sign for renderers that color by direction.
type BalanceChangeInfo struct {
	Owner      string `json:"owner"`
	CoinType   string `json:"coinType"`
	Amount     string `json:"amount"`
	CoinName   string `json:"coinName"`
	IsPositive bool   `json:"isPositive"`
}

// Extractor computes balance changes from a transaction and its receipt.
type Extractor struct {
	logger *zap.Logger
	tokens *tokenRegistry.Registry
}

// NewExtractor creates a new Extractor.
//
// Parameters:
//   - logger: Logger for diagnostics
//   - tokens: Token registry for decimal and symbol resolution
//
// Returns:
//   - *Extractor: A configured extractor
func NewExtractor(logger *zap.Logger, tokens *tokenRegistry.Registry) *Extractor {
	return &Extractor{
		logger: logger,
		tokens: tokens,
	}
}

// Extract returns the sender-centric balance deltas of a transaction.
//
// The native debit always folds gas into the sent value, so even a failed
// or value-less transaction produces one negative native entry when gas
// was consumed. Token deltas come from value-carrying Transfer logs that
// name the sender on either side; a self-transfer yields both a debit and
// a credit entry.
//
// Parameters:
//   - tx: The transaction
//   - receipt: The transaction receipt
//
// Returns:
//   - []*BalanceChangeInfo: The balance deltas, in native-then-log order
func (e *Extractor) Extract(tx *ethereum.EthereumTransaction, receipt *ethereum.EthereumTransactionReceipt) []*BalanceChangeInfo {
	changes := make([]*BalanceChangeInfo, 0)
	sender := tx.From.Value()
	senderLower := tx.From.Lower()

	nativeName := "native"
	if info := e.tokens.Native(); info != nil {
		nativeName = info.Symbol
	}

	value := tx.Value.Value()
	gasPrice := receipt.EffectiveGasPrice.Value()
	if gasPrice.Sign() == 0 {
		gasPrice = tx.GasPrice.Value()
	}
	gasCost := new(big.Int).Mul(new(big.Int).SetUint64(receipt.GasUsed.Value()), gasPrice)

	totalSent := new(big.Int).Add(value, gasCost)
	if totalSent.Sign() > 0 {
		changes = append(changes, &BalanceChangeInfo{
			Owner:      sender,
			CoinType:   tokenRegistry.NativeAssetKey,
			Amount:     format.FormatNativeAmount(new(big.Int).Neg(totalSent)),
			CoinName:   nativeName,
			IsPositive: false,
		})
	}
	if value.Sign() > 0 && tx.To.Value() != "" {
		changes = append(changes, &BalanceChangeInfo{
			Owner:      tx.To.Value(),
			CoinType:   tokenRegistry.NativeAssetKey,
			Amount:     format.FormatNativeAmount(value),
			CoinName:   nativeName,
			IsPositive: true,
		})
	}

	for _, log := range receipt.Logs {
		if sigRegistry.ClassifyTransferLog(log) != sigRegistry.TransferShapeValue {
			continue
		}

		from := sigRegistry.TopicAddress(log.Topics[1])
		to := sigRegistry.TopicAddress(log.Topics[2])
		amount := logAmount(log)

		decimals := e.tokens.GetTokenDecimals(log.Address.Value())
		symbol := format.ShortenAddress(log.Address.Value())
		if info := e.tokens.GetTokenInfo(log.Address.Value()); info != nil {
			symbol = info.Symbol
		}

		if from == senderLower {
			changes = append(changes, &BalanceChangeInfo{
				Owner:      sender,
				CoinType:   log.Address.Value(),
				Amount:     format.FormatTokenAmount(new(big.Int).Neg(amount), decimals),
				CoinName:   symbol,
				IsPositive: false,
			})
		}
		if to == senderLower {
			changes = append(changes, &BalanceChangeInfo{
				Owner:      sender,
				CoinType:   log.Address.Value(),
				Amount:     format.FormatTokenAmount(amount, decimals),
				CoinName:   symbol,
				IsPositive: true,
			})
		}
	}

	return changes
}

func logAmount(log *ethereum.EthereumEventLog) *big.Int {
	data := log.Data.Lower()
	if len(data) > 2 && data[:2] == "0x" {
		data = data[2:]
	}
	if data == "" {
		return big.NewInt(0)
	}
	amount, ok := new(big.Int).SetString(data, 16)
	if !ok {
		return big.NewInt(0)
	}
	return amount
}
