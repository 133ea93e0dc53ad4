// Package ethereum defines the raw JSON-RPC shapes for transactions,
// receipts, event logs and blocks that the explanation engine consumes.
// The engine never fetches these itself; they are supplied by an upstream
// client and assumed to be well-formed.
package ethereum

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strings"
)

// EthereumHexString is a 0x-prefixed hex string as returned by an Ethereum
// JSON-RPC node (addresses, hashes, call data, log data).
type EthereumHexString string

// Value returns the underlying string.
func (s EthereumHexString) Value() string {
	return string(s)
}

// Lower returns the value lower-cased. Registry lookups are keyed by
// lower-case hex addresses.
func (s EthereumHexString) Lower() string {
	return strings.ToLower(string(s))
}

// IsEmptyCallData reports whether the hex string represents an empty
// call-data payload ("" or the canonical "0x" marker).
func (s EthereumHexString) IsEmptyCallData() bool {
	return s == "" || s == "0x"
}

func (s *EthereumHexString) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*s = EthereumHexString(str)
	return nil
}

// EthereumQuantity is a JSON-RPC quantity (block number, gas used, status,
// timestamp). Nodes return these as 0x-prefixed hex strings; fixtures may
// use plain numbers. Both are accepted.
type EthereumQuantity uint64

// Value returns the underlying uint64.
func (q EthereumQuantity) Value() uint64 {
	return uint64(q)
}

func (q *EthereumQuantity) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] != '"' {
		var n uint64
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*q = EthereumQuantity(n)
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	n, err := parseQuantityString(str)
	if err != nil {
		return err
	}
	*q = EthereumQuantity(n)
	return nil
}

func (q EthereumQuantity) MarshalJSON() ([]byte, error) {
	return json.Marshal(uint64(q))
}

func parseQuantityString(str string) (uint64, error) {
	if str == "" {
		return 0, nil
	}
	base := 10
	if strings.HasPrefix(str, "0x") || strings.HasPrefix(str, "0X") {
		str = str[2:]
		base = 16
	}
	n, ok := new(big.Int).SetString(str, base)
	if !ok {
		return 0, fmt.Errorf("invalid quantity '%s'", str)
	}
	return n.Uint64(), nil
}

// EthereumBigInt is a wei-scale integer (value, gas price). Values routinely
// exceed the float64 safe-integer range, so it always marshals as a decimal
// string. It accepts 0x-prefixed hex, decimal strings and JSON numbers.
type EthereumBigInt struct {
	value *big.Int
}

// NewBigInt wraps an existing big.Int. A nil input is treated as zero.
func NewBigInt(v *big.Int) EthereumBigInt {
	if v == nil {
		v = big.NewInt(0)
	}
	return EthereumBigInt{value: v}
}

// NewBigIntFromUint64 wraps a uint64.
func NewBigIntFromUint64(v uint64) EthereumBigInt {
	return EthereumBigInt{value: new(big.Int).SetUint64(v)}
}

// Value returns the underlying big.Int, never nil.
func (b EthereumBigInt) Value() *big.Int {
	if b.value == nil {
		return big.NewInt(0)
	}
	return b.value
}

// IsZero reports whether the value is unset or zero.
func (b EthereumBigInt) IsZero() bool {
	return b.value == nil || b.value.Sign() == 0
}

func (b *EthereumBigInt) UnmarshalJSON(data []byte) error {
	str := string(data)
	if len(str) >= 2 && str[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		str = s
	}
	if str == "" || str == "null" {
		b.value = big.NewInt(0)
		return nil
	}
	base := 10
	if strings.HasPrefix(str, "0x") || strings.HasPrefix(str, "0X") {
		str = str[2:]
		base = 16
	}
	v, ok := new(big.Int).SetString(str, base)
	if !ok {
		return fmt.Errorf("invalid big integer '%s'", str)
	}
	b.value = v
	return nil
}

func (b EthereumBigInt) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.Value().String())
}

// EthereumTransaction is a confirmed transaction in the conventional
// eth_getTransactionByHash shape.
type EthereumTransaction struct {
	Hash     EthereumHexString `json:"hash"`
	From     EthereumHexString `json:"from"`
	To       EthereumHexString `json:"to"`
	Value    EthereumBigInt    `json:"value"`
	Input    EthereumHexString `json:"input"`
	GasPrice EthereumBigInt    `json:"gasPrice"`
	Gas      EthereumQuantity  `json:"gas"`
	Nonce    EthereumQuantity  `json:"nonce"`
}

// IsContractCreation reports whether the transaction has no recipient.
func (t *EthereumTransaction) IsContractCreation() bool {
	return t.To == ""
}

// EthereumEventLog is a single log entry emitted during transaction
// execution. Topic 0, when present, identifies the event signature.
type EthereumEventLog struct {
	Address  EthereumHexString   `json:"address"`
	Topics   []EthereumHexString `json:"topics"`
	Data     EthereumHexString   `json:"data"`
	LogIndex EthereumQuantity    `json:"logIndex"`
}

// EventSignature returns topic 0 lower-cased, or the empty string for a
// log with no topics.
func (l *EthereumEventLog) EventSignature() string {
	if len(l.Topics) == 0 {
		return ""
	}
	return l.Topics[0].Lower()
}

const (
	// ReceiptStatusSuccess is the receipt status value for a successful transaction.
	ReceiptStatusSuccess = EthereumQuantity(1)
)

// EthereumTransactionReceipt is the settled outcome of a transaction in the
// conventional eth_getTransactionReceipt shape.
type EthereumTransactionReceipt struct {
	TransactionHash   EthereumHexString   `json:"transactionHash"`
	Status            EthereumQuantity    `json:"status"`
	GasUsed           EthereumQuantity    `json:"gasUsed"`
	EffectiveGasPrice EthereumBigInt      `json:"effectiveGasPrice"`
	ContractAddress   EthereumHexString   `json:"contractAddress"`
	BlockNumber       EthereumQuantity    `json:"blockNumber"`
	Logs              []*EthereumEventLog `json:"logs"`
}

// IsSuccess reports whether the transaction executed successfully.
func (r *EthereumTransactionReceipt) IsSuccess() bool {
	return r.Status == ReceiptStatusSuccess
}

// EthereumBlock carries the block context fields the engine needs.
type EthereumBlock struct {
	Number    EthereumQuantity `json:"number"`
	Timestamp EthereumQuantity `json:"timestamp"`
}
