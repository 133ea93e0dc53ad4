// Package gasInfo summarizes what a transaction paid for execution.
package gasInfo

import (
	"math/big"

	"github.com/txlens/txlens/pkg/ethereum"
	"github.com/txlens/txlens/pkg/format"
)

// GasInfo is the gas cost breakdown of a transaction. EVM execution has no
// separate storage cost or rebate, so those fields are always "0";
// ComputationCost equals TotalGas for the same reason.
type GasInfo struct {
	TotalGas        string `json:"totalGas"`
	ComputationCost string `json:"computationCost"`
	StorageCost     string `json:"storageCost"`
	StorageRebate   string `json:"storageRebate"`
	GasPayer        string `json:"gasPayer"`
	GasPrice        string `json:"gasPrice"`
	IsSponsored     bool   `json:"isSponsored"`
}

// Extract computes the gas summary for a transaction. The effective price
// from the receipt wins; legacy nodes that omit it fall back to the
// transaction's declared gas price.
//
// Parameters:
//   - tx: The transaction
//   - receipt: The transaction receipt
//
// Returns:
//   - *GasInfo: The gas cost breakdown
func Extract(tx *ethereum.EthereumTransaction, receipt *ethereum.EthereumTransactionReceipt) *GasInfo {
	gasPrice := receipt.EffectiveGasPrice.Value()
	if gasPrice.Sign() == 0 {
		gasPrice = tx.GasPrice.Value()
	}
	totalGas := new(big.Int).Mul(new(big.Int).SetUint64(receipt.GasUsed.Value()), gasPrice)

	total := format.FormatNativeAmount(totalGas)
	payer := tx.From.Value()

	return &GasInfo{
		TotalGas:        total,
		ComputationCost: total,
		StorageCost:     "0",
		StorageRebate:   "0",
		GasPayer:        payer,
		GasPrice:        format.FormatGwei(gasPrice),
		IsSponsored:     payer != tx.From.Value(),
	}
}
