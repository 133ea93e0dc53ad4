package ethereum

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_EthereumQuantity(t *testing.T) {
	t.Run("Should unmarshal hex strings", func(t *testing.T) {
		var q EthereumQuantity
		assert.Nil(t, json.Unmarshal([]byte(`"0x5208"`), &q))
		assert.Equal(t, uint64(21000), q.Value())
	})

	t.Run("Should unmarshal decimal strings", func(t *testing.T) {
		var q EthereumQuantity
		assert.Nil(t, json.Unmarshal([]byte(`"21000"`), &q))
		assert.Equal(t, uint64(21000), q.Value())
	})

	t.Run("Should unmarshal plain numbers", func(t *testing.T) {
		var q EthereumQuantity
		assert.Nil(t, json.Unmarshal([]byte(`21000`), &q))
		assert.Equal(t, uint64(21000), q.Value())
	})

	t.Run("Should treat an empty string as zero", func(t *testing.T) {
		var q EthereumQuantity
		assert.Nil(t, json.Unmarshal([]byte(`""`), &q))
		assert.Equal(t, uint64(0), q.Value())
	})

	t.Run("Should reject garbage", func(t *testing.T) {
		var q EthereumQuantity
		assert.NotNil(t, json.Unmarshal([]byte(`"zz"`), &q))
	})
}

func Test_EthereumBigInt(t *testing.T) {
	oneAndAHalf, _ := new(big.Int).SetString("1500000000000000000", 10)

	t.Run("Should unmarshal hex strings", func(t *testing.T) {
		var b EthereumBigInt
		assert.Nil(t, json.Unmarshal([]byte(`"0x14d1120d7b160000"`), &b))
		assert.Equal(t, 0, b.Value().Cmp(oneAndAHalf))
	})

	t.Run("Should unmarshal decimal strings", func(t *testing.T) {
		var b EthereumBigInt
		assert.Nil(t, json.Unmarshal([]byte(`"1500000000000000000"`), &b))
		assert.Equal(t, 0, b.Value().Cmp(oneAndAHalf))
	})

	t.Run("Should marshal as a decimal string without precision loss", func(t *testing.T) {
		out, err := json.Marshal(NewBigInt(oneAndAHalf))
		assert.Nil(t, err)
		assert.Equal(t, `"1500000000000000000"`, string(out))
	})

	t.Run("Should round-trip", func(t *testing.T) {
		out, err := json.Marshal(NewBigInt(oneAndAHalf))
		assert.Nil(t, err)
		var back EthereumBigInt
		assert.Nil(t, json.Unmarshal(out, &back))
		assert.Equal(t, 0, back.Value().Cmp(oneAndAHalf))
	})

	t.Run("Should treat null as zero", func(t *testing.T) {
		var b EthereumBigInt
		assert.Nil(t, json.Unmarshal([]byte(`null`), &b))
		assert.True(t, b.IsZero())
	})

	t.Run("Zero value behaves as zero", func(t *testing.T) {
		var b EthereumBigInt
		assert.True(t, b.IsZero())
		assert.Equal(t, 0, b.Value().Sign())
		out, err := json.Marshal(b)
		assert.Nil(t, err)
		assert.Equal(t, `"0"`, string(out))
	})
}

func Test_IsEmptyCallData(t *testing.T) {
	assert.True(t, EthereumHexString("").IsEmptyCallData())
	assert.True(t, EthereumHexString("0x").IsEmptyCallData())
	assert.False(t, EthereumHexString("0xa9059cbb").IsEmptyCallData())
}

func Test_IsContractCreation(t *testing.T) {
	tx := &EthereumTransaction{To: ""}
	assert.True(t, tx.IsContractCreation())
	tx.To = "0x10ed43c718714eb63d5aa57b78b54704e256024e"
	assert.False(t, tx.IsContractCreation())
}

func Test_EventSignature(t *testing.T) {
	log := &EthereumEventLog{}
	assert.Equal(t, "", log.EventSignature())

	log.Topics = []EthereumHexString{"0xDDF252AD1BE2C89B69C2B068FC378DAA952BA7F163C4A11628F55A4DF523B3EF"}
	assert.Equal(t, "0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef", log.EventSignature())
}

func Test_ReceiptStatus(t *testing.T) {
	receipt := &EthereumTransactionReceipt{Status: ReceiptStatusSuccess}
	assert.True(t, receipt.IsSuccess())
	receipt.Status = 0
	assert.False(t, receipt.IsSuccess())
}

func Test_TransactionUnmarshal(t *testing.T) {
	raw := `{
		"hash": "0xabc0000000000000000000000000000000000000000000000000000000000001",
		"from": "0x1111111111111111111111111111111111111111",
		"to": "0x2222222222222222222222222222222222222222",
		"value": "0xde0b6b3a7640000",
		"input": "0x",
		"gasPrice": "0xb2d05e00",
		"gas": "0x5208",
		"nonce": "0x7"
	}`
	tx := &EthereumTransaction{}
	assert.Nil(t, json.Unmarshal([]byte(raw), tx))
	assert.Equal(t, "1000000000000000000", tx.Value.Value().String())
	assert.Equal(t, uint64(21000), tx.Gas.Value())
	assert.True(t, tx.Input.IsEmptyCallData())
}
