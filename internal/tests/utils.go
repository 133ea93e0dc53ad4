package tests

import (
	"math/big"
	"os"
	"strings"

	"github.com/txlens/txlens/pkg/ethereum"
)

// Event topic 0 values used across fixtures.
const (
	TransferTopic = "0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef"
	SwapV2Topic   = "0xd78ad95fa46c994b6551d0da85fc275fe613ce37657fb8d5e3d130840159d822"
	SwapV3Topic   = "0xc42079f94a6350d7e6235f29174924f928cc2ac818eb64fed8004e115fbcca67"
	MintV2Topic   = "0x4c209b5fc8ad50758f13e2e1088ba56a560dff690a1c6fef26394f4c03821c4f"
	BurnV2Topic   = "0xdccd412f0b1252819cb1fd330b93224ca42612892bb3f4f789976e6d81936496"
)

// Well-known fixture addresses. Sender and Recipient are arbitrary EOAs;
// the rest are real BNB chain contract addresses so registry lookups
// resolve during tests.
const (
	Sender    = "0x1111111111111111111111111111111111111111"
	Recipient = "0x2222222222222222222222222222222222222222"

	UsdtToken        = "0x55d398326f99059ff775485246999027b3197955"
	CakeToken        = "0x0e09fabb73bd3ade0a17ecc321fd13a19e81ce82"
	PancakeV2Router  = "0x10ed43c718714eb63d5aa57b78b54704e256024e"
	VenusComptroller = "0xfd36e2c2a6789db23113685031d7f16329158384"
	OpenSeaSeaport   = "0x00000000006c3852cbef3e08e8df289169ede581"
	StargateRouter   = "0x4a364f8c717cad9a558c0a1e78c30a3c2c1e18e0"
	CakeStakingPool  = "0x45c54210128a065de780c4b0df3d16664f7f859e"
)

// PadTopic left-pads an address into a 32-byte topic value.
func PadTopic(address string) ethereum.EthereumHexString {
	hex := strings.TrimPrefix(strings.ToLower(address), "0x")
	return ethereum.EthereumHexString("0x" + strings.Repeat("0", 64-len(hex)) + hex)
}

// PadAmount encodes an integer as a 32-byte data word.
func PadAmount(amount *big.Int) ethereum.EthereumHexString {
	hex := amount.Text(16)
	return ethereum.EthereumHexString("0x" + strings.Repeat("0", 64-len(hex)) + hex)
}

// NewTransaction builds a transaction fixture with sane defaults. Value
// may be nil for a zero-value call.
func NewTransaction(to string, value *big.Int, input string) *ethereum.EthereumTransaction {
	if value == nil {
		value = big.NewInt(0)
	}
	return &ethereum.EthereumTransaction{
		Hash:     "0xabc0000000000000000000000000000000000000000000000000000000000001",
		From:     ethereum.EthereumHexString(Sender),
		To:       ethereum.EthereumHexString(to),
		Value:    ethereum.NewBigInt(value),
		Input:    ethereum.EthereumHexString(input),
		GasPrice: ethereum.NewBigIntFromUint64(3_000_000_000),
		Gas:      ethereum.EthereumQuantity(200_000),
		Nonce:    ethereum.EthereumQuantity(7),
	}
}

// NewReceipt builds a successful receipt around the given logs.
func NewReceipt(logs ...*ethereum.EthereumEventLog) *ethereum.EthereumTransactionReceipt {
	if logs == nil {
		logs = []*ethereum.EthereumEventLog{}
	}
	return &ethereum.EthereumTransactionReceipt{
		TransactionHash:   "0xabc0000000000000000000000000000000000000000000000000000000000001",
		Status:            ethereum.ReceiptStatusSuccess,
		GasUsed:           ethereum.EthereumQuantity(21_000),
		EffectiveGasPrice: ethereum.NewBigIntFromUint64(3_000_000_000),
		BlockNumber:       ethereum.EthereumQuantity(38_000_000),
		Logs:              logs,
	}
}

// NewFailedReceipt builds a reverted receipt.
func NewFailedReceipt() *ethereum.EthereumTransactionReceipt {
	receipt := NewReceipt()
	receipt.Status = ethereum.EthereumQuantity(0)
	return receipt
}

// NewTransferLog builds a 3-topic ERC-20 Transfer log.
func NewTransferLog(token, from, to string, amount *big.Int) *ethereum.EthereumEventLog {
	return &ethereum.EthereumEventLog{
		Address: ethereum.EthereumHexString(token),
		Topics: []ethereum.EthereumHexString{
			TransferTopic,
			PadTopic(from),
			PadTopic(to),
		},
		Data: PadAmount(amount),
	}
}

// NewNftTransferLog builds a 4-topic ERC-721 Transfer log.
func NewNftTransferLog(contract, from, to string, tokenId *big.Int) *ethereum.EthereumEventLog {
	return &ethereum.EthereumEventLog{
		Address: ethereum.EthereumHexString(contract),
		Topics: []ethereum.EthereumHexString{
			TransferTopic,
			PadTopic(from),
			PadTopic(to),
			PadAmount(tokenId),
		},
		Data: "0x",
	}
}

// NewEventLog builds a bare log carrying only an event signature topic.
func NewEventLog(address, topic0 string) *ethereum.EthereumEventLog {
	return &ethereum.EthereumEventLog{
		Address: ethereum.EthereumHexString(address),
		Topics:  []ethereum.EthereumHexString{ethereum.EthereumHexString(topic0)},
		Data:    "0x",
	}
}

// NewBlock builds a block fixture with the given unix timestamp.
func NewBlock(timestamp uint64) *ethereum.EthereumBlock {
	return &ethereum.EthereumBlock{
		Number:    ethereum.EthereumQuantity(38_000_000),
		Timestamp: ethereum.EthereumQuantity(timestamp),
	}
}

// ReplaceEnv swaps in env values, remembering the previous ones.
func ReplaceEnv(newValues map[string]string, previousValues *map[string]string) {
	for k, v := range newValues {
		(*previousValues)[k] = os.Getenv(k)
		os.Setenv(k, v)
	}
}

// RestoreEnv puts back env values saved by ReplaceEnv.
func RestoreEnv(previousValues map[string]string) {
	for k, v := range previousValues {
		os.Setenv(k, v)
	}
}
