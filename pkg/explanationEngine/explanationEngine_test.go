package explanationEngine

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/txlens/txlens/internal/tests"
	"github.com/txlens/txlens/pkg/classifier"
	"github.com/txlens/txlens/pkg/protocolRegistry"
	"github.com/txlens/txlens/pkg/tokenRegistry"
	"go.uber.org/zap"
)

func newEngine(t *testing.T) *Engine {
	engine, err := NewEngine(zap.NewNop(), tokenRegistry.NewRegistry(), protocolRegistry.NewRegistry())
	assert.Nil(t, err)
	return engine
}

var oneBnb = big.NewInt(1_000_000_000_000_000_000)

func oneToken(units int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(units), oneBnb)
}

func Test_NewEngine(t *testing.T) {
	engine := newEngine(t)
	for _, txType := range classifier.ProducibleTypes() {
		if _, ok := engine.builders[txType]; !ok {
			t.Errorf("no builder registered for type '%s'", txType)
		}
	}
}

func Test_ParseTransaction(t *testing.T) {
	engine := newEngine(t)

	t.Run("Requires a transaction and a receipt", func(t *testing.T) {
		_, err := engine.ParseTransaction(nil, tests.NewReceipt(), nil)
		assert.NotNil(t, err)

		_, err = engine.ParseTransaction(tests.NewTransaction(tests.Recipient, oneBnb, "0x"), nil, nil)
		assert.NotNil(t, err)
	})

	t.Run("Parses a native transfer end to end", func(t *testing.T) {
		tx := tests.NewTransaction(tests.Recipient, oneBnb, "0x")
		parsed, err := engine.ParseTransaction(tx, tests.NewReceipt(), tests.NewBlock(1_700_000_000))
		assert.Nil(t, err)

		assert.Equal(t, tx.Hash.Value(), parsed.Digest)
		assert.Equal(t, tests.Sender, parsed.Sender)
		assert.Equal(t, StatusSuccess, parsed.Status)
		assert.Equal(t, "", parsed.Error)
		assert.Equal(t, "1700000000000", parsed.Timestamp)
		assert.Equal(t, "38000000", parsed.Checkpoint)
		assert.Equal(t, classifier.TypeTransfer, parsed.Explanation.Type)
		assert.NotNil(t, parsed.GasInfo)
		assert.Len(t, parsed.BalanceChanges, 2)
		assert.NotNil(t, parsed.RawTransaction)
		assert.Equal(t, tx, parsed.RawTransaction.Tx)
	})

	t.Run("Parses a swap end to end", func(t *testing.T) {
		tx := tests.NewTransaction(tests.PancakeV2Router, nil, "0x38ed1739")
		receipt := tests.NewReceipt(
			tests.NewTransferLog(tests.UsdtToken, tests.Sender, tests.PancakeV2Router, oneToken(300)),
			tests.NewTransferLog(tests.CakeToken, tests.PancakeV2Router, tests.Sender, oneToken(100)),
			tests.NewEventLog(tests.PancakeV2Router, tests.SwapV2Topic),
		)

		parsed, err := engine.ParseTransaction(tx, receipt, nil)
		assert.Nil(t, err)

		assert.Equal(t, classifier.TypeSwap, parsed.Explanation.Type)
		assert.Contains(t, parsed.Explanation.Summary, "USDT")
		assert.Contains(t, parsed.Explanation.Summary, "CAKE")
		assert.Equal(t, "", parsed.Timestamp)
		assert.Len(t, parsed.BalanceChanges, 3)
	})

	t.Run("Omitted block leaves the timestamp empty", func(t *testing.T) {
		tx := tests.NewTransaction(tests.Recipient, oneBnb, "0x")
		parsed, err := engine.ParseTransaction(tx, tests.NewReceipt(), nil)
		assert.Nil(t, err)
		assert.Equal(t, "", parsed.Timestamp)

		parsed, err = engine.ParseTransaction(tx, tests.NewReceipt(), tests.NewBlock(0))
		assert.Nil(t, err)
		assert.Equal(t, "", parsed.Timestamp)
	})

	t.Run("Failed transactions carry a status and a revert hint", func(t *testing.T) {
		tests_ := []struct {
			input    string
			expected string
		}{
			{"0x095ea7b3" + "00", "Token approval may have failed - check allowance"},
			{"0xa9059cbb" + "00", "Transfer failed - insufficient balance or not approved"},
			{"0x38ed1739" + "00", "Swap failed - possibly due to slippage, insufficient liquidity, or expired deadline"},
			{"0xfb3bdb41" + "00", "Swap failed - possibly due to slippage, insufficient liquidity, or expired deadline"},
			{"0xdeadbeef", "Transaction reverted - check contract requirements"},
		}
		for _, tc := range tests_ {
			tx := tests.NewTransaction(tests.Recipient, nil, tc.input)
			parsed, err := engine.ParseTransaction(tx, tests.NewFailedReceipt(), nil)
			assert.Nil(t, err)
			assert.Equal(t, StatusFailure, parsed.Status)
			assert.Equal(t, tc.expected, parsed.Error)
		}
	})

	t.Run("Placeholder collections serialize as empty arrays", func(t *testing.T) {
		tx := tests.NewTransaction(tests.Recipient, oneBnb, "0x")
		parsed, err := engine.ParseTransaction(tx, tests.NewReceipt(), nil)
		assert.Nil(t, err)

		raw, err := json.Marshal(parsed)
		assert.Nil(t, err)
		assert.Contains(t, string(raw), `"objectChanges":[]`)
		assert.Contains(t, string(raw), `"moveCalls":[]`)
	})
}
