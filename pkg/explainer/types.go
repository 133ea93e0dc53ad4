package explainer

import (
	"github.com/txlens/txlens/pkg/classifier"
)

// Participant is an address together with the role it played in the
// transaction.
type Participant struct {
	Address string `json:"address"`
	Role    string `json:"role"`
}

// Action is the typed record of what a transaction did. Exactly one
// concrete action type exists per transaction category; the engine emits
// one action per classified transaction.
type Action interface {
	// ActionType returns the transaction type tag this action carries.
	ActionType() classifier.TransactionType
}

// ExplanationResult is the human-readable output of a builder: a one-line
// summary, an ordered detail list (one fact per line), the typed actions
// and the participants with their roles. Metadata carries display hints
// (logos) for downstream rendering and has no decoding semantics.
type ExplanationResult struct {
	Summary      string                     `json:"summary"`
	Details      []string                   `json:"details"`
	Type         classifier.TransactionType `json:"type"`
	Participants []Participant              `json:"participants"`
	Actions      []Action                   `json:"actions"`
	Metadata     map[string]interface{}     `json:"metadata,omitempty"`
}

type TransferAction struct {
	Type      classifier.TransactionType `json:"type"`
	From      string                     `json:"from"`
	To        string                     `json:"to"`
	Amount    string                     `json:"amount"`
	Token     string                     `json:"token"`
	CoinType  string                     `json:"coinType"`
	TokenLogo string                     `json:"tokenLogo,omitempty"`
}

func (a *TransferAction) ActionType() classifier.TransactionType { return a.Type }

type ApprovalAction struct {
	Type            classifier.TransactionType `json:"type"`
	Owner           string                     `json:"owner"`
	Spender         string                     `json:"spender"`
	Token           string                     `json:"token"`
	TokenAddress    string                     `json:"tokenAddress"`
	Amount          string                     `json:"amount"`
	IsUnlimited     bool                       `json:"isUnlimited"`
	SpenderProtocol string                     `json:"spenderProtocol,omitempty"`
	SpenderLogo     string                     `json:"spenderLogo,omitempty"`
}

func (a *ApprovalAction) ActionType() classifier.TransactionType { return a.Type }

type SwapAction struct {
	Type       classifier.TransactionType `json:"type"`
	Trader     string                     `json:"trader"`
	FromToken  string                     `json:"fromToken"`
	FromAmount string                     `json:"fromAmount"`
	FromLogo   string                     `json:"fromLogo,omitempty"`
	ToToken    string                     `json:"toToken"`
	ToAmount   string                     `json:"toAmount"`
	ToLogo     string                     `json:"toLogo,omitempty"`
	Dex        string                     `json:"dex,omitempty"`
	DexLogo    string                     `json:"dexLogo,omitempty"`
	IsMultiHop bool                       `json:"isMultiHop"`
	Hops       int                        `json:"hops"`
}

func (a *SwapAction) ActionType() classifier.TransactionType { return a.Type }

// LiquidityAction covers both liquidity_add and liquidity_remove.
type LiquidityAction struct {
	Type       classifier.TransactionType `json:"type"`
	Provider   string                     `json:"provider"`
	TokenA     string                     `json:"tokenA"`
	AmountA    string                     `json:"amountA"`
	TokenALogo string                     `json:"tokenALogo,omitempty"`
	TokenB     string                     `json:"tokenB"`
	AmountB    string                     `json:"amountB"`
	TokenBLogo string                     `json:"tokenBLogo,omitempty"`
	Dex        string                     `json:"dex,omitempty"`
	DexLogo    string                     `json:"dexLogo,omitempty"`
}

func (a *LiquidityAction) ActionType() classifier.TransactionType { return a.Type }

type NftTransferAction struct {
	Type       classifier.TransactionType `json:"type"`
	From       string                     `json:"from"`
	To         string                     `json:"to"`
	ObjectId   string                     `json:"objectId"`
	ObjectType string                     `json:"objectType"`
}

func (a *NftTransferAction) ActionType() classifier.TransactionType { return a.Type }

type NftPurchaseAction struct {
	Type            classifier.TransactionType `json:"type"`
	Buyer           string                     `json:"buyer"`
	Seller          string                     `json:"seller"`
	ObjectId        string                     `json:"objectId"`
	ObjectType      string                     `json:"objectType"`
	Price           string                     `json:"price"`
	Marketplace     string                     `json:"marketplace,omitempty"`
	MarketplaceLogo string                     `json:"marketplaceLogo,omitempty"`
}

func (a *NftPurchaseAction) ActionType() classifier.TransactionType { return a.Type }

// StakeAction covers both stake and unstake.
type StakeAction struct {
	Type         classifier.TransactionType `json:"type"`
	Staker       string                     `json:"staker"`
	Token        string                     `json:"token"`
	Amount       string                     `json:"amount"`
	Protocol     string                     `json:"protocol,omitempty"`
	ProtocolLogo string                     `json:"protocolLogo,omitempty"`
}

func (a *StakeAction) ActionType() classifier.TransactionType { return a.Type }

// Reward is a single claimed token amount.
type Reward struct {
	Token  string `json:"token"`
	Amount string `json:"amount"`
}

type ClaimRewardsAction struct {
	Type         classifier.TransactionType `json:"type"`
	Claimer      string                     `json:"claimer"`
	Rewards      []Reward                   `json:"rewards"`
	Protocol     string                     `json:"protocol,omitempty"`
	ProtocolLogo string                     `json:"protocolLogo,omitempty"`
}

func (a *ClaimRewardsAction) ActionType() classifier.TransactionType { return a.Type }

// LendingAction covers borrow, repay, supply and withdraw; the Role field
// names the acting side as the summary renders it.
type LendingAction struct {
	Type         classifier.TransactionType `json:"type"`
	Actor        string                     `json:"actor"`
	Token        string                     `json:"token"`
	Amount       string                     `json:"amount"`
	Protocol     string                     `json:"protocol,omitempty"`
	ProtocolLogo string                     `json:"protocolLogo,omitempty"`
}

func (a *LendingAction) ActionType() classifier.TransactionType { return a.Type }

type BridgeAction struct {
	Type       classifier.TransactionType `json:"type"`
	Sender     string                     `json:"sender"`
	Token      string                     `json:"token"`
	Amount     string                     `json:"amount"`
	Bridge     string                     `json:"bridge,omitempty"`
	BridgeLogo string                     `json:"bridgeLogo,omitempty"`
}

func (a *BridgeAction) ActionType() classifier.TransactionType { return a.Type }

type PublishAction struct {
	Type      classifier.TransactionType `json:"type"`
	Publisher string                     `json:"publisher"`
	PackageId string                     `json:"packageId"`
	Modules   []string                   `json:"modules"`
}

func (a *PublishAction) ActionType() classifier.TransactionType { return a.Type }

// ContractCallAction is the generic fallback action.
type ContractCallAction struct {
	Type         classifier.TransactionType `json:"type"`
	Caller       string                     `json:"caller"`
	Contract     string                     `json:"contract"`
	Method       string                     `json:"method"`
	Protocol     string                     `json:"protocol,omitempty"`
	ProtocolLogo string                     `json:"protocolLogo,omitempty"`
}

func (a *ContractCallAction) ActionType() classifier.TransactionType { return a.Type }
