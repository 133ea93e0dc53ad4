package explainer

import (
	"fmt"
	"math/big"

	"github.com/txlens/txlens/pkg/classifier"
	"github.com/txlens/txlens/pkg/ethereum"
	"github.com/txlens/txlens/pkg/format"
)

// movedAsset is a resolved amount+symbol pair for the defi builders. The
// amount is "?" when the receipt carried no transfer to resolve it from.
type movedAsset struct {
	amount string
	token  string
	logo   string
}

var unknownAsset = movedAsset{amount: "?", token: "tokens"}

// assetFromLog resolves a Transfer log into a display amount and symbol.
func (e *Explainer) assetFromLog(log *ethereum.EthereumEventLog) movedAsset {
	symbol, decimals, logo := e.tokenDisplay(log.Address.Value())
	return movedAsset{
		amount: format.FormatTokenAmount(transferAmount(log), decimals),
		token:  symbol,
		logo:   logo,
	}
}

// nativeAsset resolves a native-value amount into a display pair.
func (e *Explainer) nativeAsset(value *big.Int) movedAsset {
	asset := movedAsset{
		amount: format.FormatNativeAmount(value),
		token:  e.nativeSymbol(),
	}
	if info := e.tokens.Native(); info != nil {
		asset.logo = info.Image
	}
	return asset
}

// outgoingAsset finds what the sender paid in: the first transfer sent by
// the sender, then the transaction's native value, then unknown.
func (e *Explainer) outgoingAsset(tx *ethereum.EthereumTransaction, receipt *ethereum.EthereumTransactionReceipt) movedAsset {
	if log := firstTransferFromSender(receipt, tx.From.Value()); log != nil {
		return e.assetFromLog(log)
	}
	if !tx.Value.IsZero() {
		return e.nativeAsset(tx.Value.Value())
	}
	return unknownAsset
}

// incomingAsset finds what the sender received: the first transfer sent to
// the sender, or unknown. Receipts carry no native inflows, so amounts for
// withdraw-style operations stay unknown without a token transfer.
func (e *Explainer) incomingAsset(tx *ethereum.EthereumTransaction, receipt *ethereum.EthereumTransactionReceipt) movedAsset {
	if log := firstTransferToSender(receipt, tx.From.Value()); log != nil {
		return e.assetFromLog(log)
	}
	return unknownAsset
}

// protocolFor names the transaction counterparty, trying the given
// category first and falling back to the general protocol table.
func (e *Explainer) protocolFor(tx *ethereum.EthereumTransaction, identify func(string) string) (name string, logo string) {
	to := tx.To.Lower()
	name = identify(to)
	if name == "" {
		name = e.protocols.GetProtocolName(to)
	}
	return name, e.protocols.GetProtocolLogo(to)
}

// ExplainStake explains a staking deposit.
func (e *Explainer) ExplainStake(tx *ethereum.EthereumTransaction, receipt *ethereum.EthereumTransactionReceipt) *ExplanationResult {
	sender := tx.From.Value()
	asset := e.outgoingAsset(tx, receipt)
	protocolName, protocolLogo := e.protocolFor(tx, e.protocols.IdentifyStaking)

	protocolSuffix := ""
	if protocolName != "" {
		protocolSuffix = fmt.Sprintf(" with %s", protocolName)
	}

	details := []string{
		fmt.Sprintf("Staker: %s", format.ShortenAddress(sender)),
		fmt.Sprintf("Amount: %s %s", asset.amount, asset.token),
	}
	if protocolName != "" {
		details = append(details, fmt.Sprintf("Protocol: %s", protocolName))
	}

	metadata := map[string]interface{}{}
	if protocolLogo != "" {
		metadata["protocolLogo"] = protocolLogo
	}

	return &ExplanationResult{
		Summary: fmt.Sprintf("%s staked %s %s%s.",
			format.ShortenAddress(sender), asset.amount, asset.token, protocolSuffix),
		Details:      details,
		Type:         classifier.TypeStake,
		Participants: []Participant{{Address: sender, Role: "staker"}},
		Actions: []Action{&StakeAction{
			Type:         classifier.TypeStake,
			Staker:       sender,
			Token:        asset.token,
			Amount:       asset.amount,
			Protocol:     protocolName,
			ProtocolLogo: protocolLogo,
		}},
		Metadata: metadata,
	}
}

// ExplainUnstake explains a staking withdrawal. Many staking contracts pay
// out native coin directly, so the amount is often unknown here.
func (e *Explainer) ExplainUnstake(tx *ethereum.EthereumTransaction, receipt *ethereum.EthereumTransactionReceipt) *ExplanationResult {
	sender := tx.From.Value()
	asset := e.incomingAsset(tx, receipt)
	protocolName, protocolLogo := e.protocolFor(tx, e.protocols.IdentifyStaking)

	protocolSuffix := ""
	if protocolName != "" {
		protocolSuffix = fmt.Sprintf(" from %s", protocolName)
	}

	details := []string{
		fmt.Sprintf("Staker: %s", format.ShortenAddress(sender)),
		fmt.Sprintf("Amount: %s %s", asset.amount, asset.token),
	}
	if protocolName != "" {
		details = append(details, fmt.Sprintf("Protocol: %s", protocolName))
	}

	metadata := map[string]interface{}{}
	if protocolLogo != "" {
		metadata["protocolLogo"] = protocolLogo
	}

	return &ExplanationResult{
		Summary: fmt.Sprintf("%s unstaked %s %s%s.",
			format.ShortenAddress(sender), asset.amount, asset.token, protocolSuffix),
		Details:      details,
		Type:         classifier.TypeUnstake,
		Participants: []Participant{{Address: sender, Role: "staker"}},
		Actions: []Action{&StakeAction{
			Type:         classifier.TypeUnstake,
			Staker:       sender,
			Token:        asset.token,
			Amount:       asset.amount,
			Protocol:     protocolName,
			ProtocolLogo: protocolLogo,
		}},
		Metadata: metadata,
	}
}

// ExplainClaimRewards explains a reward claim. Every transfer paid to the
// sender is a separate reward line.
func (e *Explainer) ExplainClaimRewards(tx *ethereum.EthereumTransaction, receipt *ethereum.EthereumTransactionReceipt) *ExplanationResult {
	sender := tx.From.Value()
	senderLower := tx.From.Lower()
	protocolName, protocolLogo := e.protocolFor(tx, e.protocols.IdentifyStaking)

	rewards := make([]Reward, 0)
	for _, log := range valueTransferLogs(receipt) {
		if transferTo(log) != senderLower {
			continue
		}
		asset := e.assetFromLog(log)
		rewards = append(rewards, Reward{Token: asset.token, Amount: asset.amount})
	}
	if len(rewards) == 0 {
		rewards = append(rewards, Reward{Token: "tokens", Amount: "?"})
	}

	rewardDesc := fmt.Sprintf("%s %s", rewards[0].Amount, rewards[0].Token)
	if len(rewards) > 1 {
		rewardDesc = fmt.Sprintf("%d reward tokens", len(rewards))
	}

	protocolSuffix := ""
	if protocolName != "" {
		protocolSuffix = fmt.Sprintf(" from %s", protocolName)
	}

	details := []string{
		fmt.Sprintf("Claimer: %s", format.ShortenAddress(sender)),
	}
	for _, r := range rewards {
		details = append(details, fmt.Sprintf("Reward: %s %s", r.Amount, r.Token))
	}
	if protocolName != "" {
		details = append(details, fmt.Sprintf("Protocol: %s", protocolName))
	}

	metadata := map[string]interface{}{}
	if protocolLogo != "" {
		metadata["protocolLogo"] = protocolLogo
	}

	return &ExplanationResult{
		Summary: fmt.Sprintf("%s claimed %s%s.",
			format.ShortenAddress(sender), rewardDesc, protocolSuffix),
		Details:      details,
		Type:         classifier.TypeClaimRewards,
		Participants: []Participant{{Address: sender, Role: "claimer"}},
		Actions: []Action{&ClaimRewardsAction{
			Type:         classifier.TypeClaimRewards,
			Claimer:      sender,
			Rewards:      rewards,
			Protocol:     protocolName,
			ProtocolLogo: protocolLogo,
		}},
		Metadata: metadata,
	}
}

// lendingTemplate renders the four lending operations; they differ only in
// verb, direction and type tag.
func (e *Explainer) lendingTemplate(tx *ethereum.EthereumTransaction, receipt *ethereum.EthereumTransactionReceipt, txType classifier.TransactionType, verb, role string, incoming bool) *ExplanationResult {
	sender := tx.From.Value()

	var asset movedAsset
	if incoming {
		asset = e.incomingAsset(tx, receipt)
	} else {
		asset = e.outgoingAsset(tx, receipt)
	}

	protocolName, protocolLogo := e.protocolFor(tx, e.protocols.IdentifyLendingProtocol)
	protocolSuffix := ""
	if protocolName != "" {
		protocolSuffix = fmt.Sprintf(" on %s", protocolName)
	}

	details := []string{
		fmt.Sprintf("Account: %s", format.ShortenAddress(sender)),
		fmt.Sprintf("Amount: %s %s", asset.amount, asset.token),
	}
	if protocolName != "" {
		details = append(details, fmt.Sprintf("Protocol: %s", protocolName))
	}

	metadata := map[string]interface{}{}
	if protocolLogo != "" {
		metadata["protocolLogo"] = protocolLogo
	}

	return &ExplanationResult{
		Summary: fmt.Sprintf("%s %s %s %s%s.",
			format.ShortenAddress(sender), verb, asset.amount, asset.token, protocolSuffix),
		Details:      details,
		Type:         txType,
		Participants: []Participant{{Address: sender, Role: role}},
		Actions: []Action{&LendingAction{
			Type:         txType,
			Actor:        sender,
			Token:        asset.token,
			Amount:       asset.amount,
			Protocol:     protocolName,
			ProtocolLogo: protocolLogo,
		}},
		Metadata: metadata,
	}
}

// ExplainBorrow explains taking out a loan.
func (e *Explainer) ExplainBorrow(tx *ethereum.EthereumTransaction, receipt *ethereum.EthereumTransactionReceipt) *ExplanationResult {
	return e.lendingTemplate(tx, receipt, classifier.TypeBorrow, "borrowed", "borrower", true)
}

// ExplainRepay explains paying back a loan.
func (e *Explainer) ExplainRepay(tx *ethereum.EthereumTransaction, receipt *ethereum.EthereumTransactionReceipt) *ExplanationResult {
	return e.lendingTemplate(tx, receipt, classifier.TypeRepay, "repaid", "borrower", false)
}

// ExplainSupply explains depositing collateral.
func (e *Explainer) ExplainSupply(tx *ethereum.EthereumTransaction, receipt *ethereum.EthereumTransactionReceipt) *ExplanationResult {
	return e.lendingTemplate(tx, receipt, classifier.TypeSupply, "supplied", "lender", false)
}

// ExplainWithdraw explains withdrawing collateral.
func (e *Explainer) ExplainWithdraw(tx *ethereum.EthereumTransaction, receipt *ethereum.EthereumTransactionReceipt) *ExplanationResult {
	return e.lendingTemplate(tx, receipt, classifier.TypeWithdraw, "withdrew", "lender", true)
}

// ExplainBridge explains moving assets to another chain.
func (e *Explainer) ExplainBridge(tx *ethereum.EthereumTransaction, receipt *ethereum.EthereumTransactionReceipt) *ExplanationResult {
	sender := tx.From.Value()
	asset := e.outgoingAsset(tx, receipt)
	bridgeName, bridgeLogo := e.protocolFor(tx, e.protocols.IdentifyBridge)

	bridgeSuffix := ""
	if bridgeName != "" {
		bridgeSuffix = fmt.Sprintf(" via %s", bridgeName)
	}

	details := []string{
		fmt.Sprintf("Sender: %s", format.ShortenAddress(sender)),
		fmt.Sprintf("Amount: %s %s", asset.amount, asset.token),
	}
	if bridgeName != "" {
		details = append(details, fmt.Sprintf("Bridge: %s", bridgeName))
	}

	metadata := map[string]interface{}{}
	if bridgeLogo != "" {
		metadata["bridgeLogo"] = bridgeLogo
	}

	return &ExplanationResult{
		Summary: fmt.Sprintf("%s bridged %s %s to another chain%s.",
			format.ShortenAddress(sender), asset.amount, asset.token, bridgeSuffix),
		Details:      details,
		Type:         classifier.TypeBridge,
		Participants: []Participant{{Address: sender, Role: "sender"}},
		Actions: []Action{&BridgeAction{
			Type:       classifier.TypeBridge,
			Sender:     sender,
			Token:      asset.token,
			Amount:     asset.amount,
			Bridge:     bridgeName,
			BridgeLogo: bridgeLogo,
		}},
		Metadata: metadata,
	}
}
