// Package explainer re-derives the semantic actors and amounts of a
// classified transaction and renders them as a summary sentence, a detail
// list and a typed action record. One builder exists per transaction type;
// each builder re-scans the same receipt logs the classifier used, so there
// is no shared mutable state between classification and explanation.
package explainer

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/txlens/txlens/pkg/calldata"
	"github.com/txlens/txlens/pkg/classifier"
	"github.com/txlens/txlens/pkg/ethereum"
	"github.com/txlens/txlens/pkg/format"
	"github.com/txlens/txlens/pkg/protocolRegistry"
	"github.com/txlens/txlens/pkg/sigRegistry"
	"github.com/txlens/txlens/pkg/tokenRegistry"
	"go.uber.org/zap"
)

// actionTypeContractCall tags the generic fallback action. It is an action
// tag only, never a classification result.
const actionTypeContractCall = classifier.TransactionType("contract_call")

// unlimitedApprovalThreshold is the common "infinite allowance" sentinel:
// any approval amount at or above 2^128-1 displays as "Unlimited".
var unlimitedApprovalThreshold = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))

// Explainer builds ExplanationResults from raw transaction data. Safe for
// concurrent use; the registries it holds are read-only.
type Explainer struct {
	logger    *zap.Logger
	tokens    *tokenRegistry.Registry
	protocols *protocolRegistry.Registry
}

// NewExplainer creates a new Explainer.
//
// Parameters:
//   - logger: Logger for recording degraded decodes at debug level
//   - tokens: Token registry for symbol/decimal resolution
//   - protocols: Protocol registry for naming counterparties
//
// Returns:
//   - *Explainer: A configured explainer
func NewExplainer(logger *zap.Logger, tokens *tokenRegistry.Registry, protocols *protocolRegistry.Registry) *Explainer {
	return &Explainer{
		logger:    logger,
		tokens:    tokens,
		protocols: protocols,
	}
}

// nativeSymbol returns the display symbol of the chain's gas asset.
func (e *Explainer) nativeSymbol() string {
	if info := e.tokens.Native(); info != nil {
		return info.Symbol
	}
	return "native"
}

// tokenDisplay resolves a token contract to its display symbol, decimal
// count and logo, falling back to a shortened address and the default
// decimal count for unregistered tokens.
func (e *Explainer) tokenDisplay(address string) (symbol string, decimals int32, logo string) {
	if info := e.tokens.GetTokenInfo(address); info != nil {
		return info.Symbol, info.Decimals, info.Image
	}
	return format.ShortenAddress(address), tokenRegistry.DefaultDecimals, ""
}

// valueTransferLogs returns the receipt's value-carrying (3-topic)
// Transfer-event logs in emission order.
func valueTransferLogs(receipt *ethereum.EthereumTransactionReceipt) []*ethereum.EthereumEventLog {
	logs := make([]*ethereum.EthereumEventLog, 0)
	for _, log := range receipt.Logs {
		if sigRegistry.ClassifyTransferLog(log) == sigRegistry.TransferShapeValue {
			logs = append(logs, log)
		}
	}
	return logs
}

// transferFrom returns the "from" address of a Transfer log (topic 1).
func transferFrom(log *ethereum.EthereumEventLog) string {
	return sigRegistry.TopicAddress(log.Topics[1])
}

// transferTo returns the "to" address of a Transfer log (topic 2).
func transferTo(log *ethereum.EthereumEventLog) string {
	return sigRegistry.TopicAddress(log.Topics[2])
}

// transferAmount decodes the moved amount from a Transfer log's data field.
// Empty or malformed data decodes to zero.
func transferAmount(log *ethereum.EthereumEventLog) *big.Int {
	data := strings.TrimPrefix(log.Data.Lower(), "0x")
	if data == "" {
		return big.NewInt(0)
	}
	amount, ok := new(big.Int).SetString(data, 16)
	if !ok {
		return big.NewInt(0)
	}
	return amount
}

// firstTransferFromSender returns the first value transfer sent by the
// given address, or nil.
func firstTransferFromSender(receipt *ethereum.EthereumTransactionReceipt, sender string) *ethereum.EthereumEventLog {
	for _, log := range valueTransferLogs(receipt) {
		if transferFrom(log) == strings.ToLower(sender) {
			return log
		}
	}
	return nil
}

// firstTransferToSender returns the first value transfer received by the
// given address, or nil.
func firstTransferToSender(receipt *ethereum.EthereumTransactionReceipt, sender string) *ethereum.EthereumEventLog {
	for _, log := range valueTransferLogs(receipt) {
		if transferTo(log) == strings.ToLower(sender) {
			return log
		}
	}
	return nil
}

// ExplainTransfer explains a token or native transfer. A value-carrying
// Transfer log takes precedence; without one the transaction's native value
// is the moved amount.
func (e *Explainer) ExplainTransfer(tx *ethereum.EthereumTransaction, receipt *ethereum.EthereumTransactionReceipt) *ExplanationResult {
	sender := tx.From.Value()

	if logs := valueTransferLogs(receipt); len(logs) > 0 {
		log := logs[0]
		to := transferTo(log)
		symbol, decimals, logo := e.tokenDisplay(log.Address.Value())
		amount := format.FormatTokenAmount(transferAmount(log), decimals)

		metadata := map[string]interface{}{}
		if logo != "" {
			metadata["tokenLogo"] = logo
		}
		return &ExplanationResult{
			Summary: fmt.Sprintf("%s transferred %s %s to %s.",
				format.ShortenAddress(sender), amount, symbol, format.ShortenAddress(to)),
			Details: []string{
				fmt.Sprintf("Amount: %s %s", amount, symbol),
				fmt.Sprintf("From: %s", format.ShortenAddress(sender)),
				fmt.Sprintf("To: %s", format.ShortenAddress(to)),
				fmt.Sprintf("Token: %s", log.Address.Value()),
			},
			Type: classifier.TypeTransfer,
			Participants: []Participant{
				{Address: sender, Role: "sender"},
				{Address: to, Role: "recipient"},
			},
			Actions: []Action{&TransferAction{
				Type:      classifier.TypeTransfer,
				From:      sender,
				To:        to,
				Amount:    amount,
				Token:     symbol,
				CoinType:  log.Address.Value(),
				TokenLogo: logo,
			}},
			Metadata: metadata,
		}
	}

	// Native transfer
	to := tx.To.Value()
	amount := format.FormatNativeAmount(tx.Value.Value())
	native := e.nativeSymbol()

	return &ExplanationResult{
		Summary: fmt.Sprintf("%s transferred %s %s to %s.",
			format.ShortenAddress(sender), amount, native, format.ShortenAddress(to)),
		Details: []string{
			fmt.Sprintf("Amount: %s %s", amount, native),
			fmt.Sprintf("From: %s", format.ShortenAddress(sender)),
			fmt.Sprintf("To: %s", format.ShortenAddress(to)),
		},
		Type: classifier.TypeTransfer,
		Participants: []Participant{
			{Address: sender, Role: "sender"},
			{Address: to, Role: "recipient"},
		},
		Actions: []Action{&TransferAction{
			Type:     classifier.TypeTransfer,
			From:     sender,
			To:       to,
			Amount:   amount,
			Token:    native,
			CoinType: tokenRegistry.NativeAssetKey,
		}},
	}
}

// ExplainApproval explains a token approval. The spender and amount are
// decoded from fixed call-data offsets; truncated call data degrades to the
// zero address and a zero amount rather than failing.
func (e *Explainer) ExplainApproval(tx *ethereum.EthereumTransaction, _ *ethereum.EthereumTransactionReceipt) *ExplanationResult {
	sender := tx.From.Value()
	tokenAddress := tx.To.Value()
	input := calldata.NewReader(tx.Input.Value())

	spender := input.AddressWord(0)
	amount := input.BigIntWord(1)

	tokenSymbol, decimals, _ := e.tokenDisplay(tokenAddress)

	isUnlimited := amount.Cmp(unlimitedApprovalThreshold) >= 0
	formattedAmount := "Unlimited"
	if !isUnlimited {
		formattedAmount = format.FormatTokenAmount(amount, decimals)
	}

	spenderName := e.protocols.GetProtocolName(spender)
	spenderLogo := e.protocols.GetProtocolLogo(spender)
	if spenderName == "" {
		spenderName = format.ShortenAddress(spender)
	}

	details := []string{
		fmt.Sprintf("Token: %s", tokenSymbol),
		fmt.Sprintf("Amount: %s", formattedAmount),
		fmt.Sprintf("Spender: %s", spenderName),
		fmt.Sprintf("Spender Address: %s", format.ShortenAddress(spender)),
	}
	if isUnlimited {
		details = append(details, "Warning: this is an unlimited approval - the spender can use any amount of your tokens")
	}

	metadata := map[string]interface{}{
		"isUnlimitedApproval": isUnlimited,
	}
	if spenderLogo != "" {
		metadata["spenderLogo"] = spenderLogo
	}

	return &ExplanationResult{
		Summary: fmt.Sprintf("%s approved %s %s for %s.",
			format.ShortenAddress(sender), formattedAmount, tokenSymbol, spenderName),
		Details: details,
		Type:    classifier.TypeApproval,
		Participants: []Participant{
			{Address: sender, Role: "owner"},
			{Address: spender, Role: "spender"},
		},
		Actions: []Action{&ApprovalAction{
			Type:            classifier.TypeApproval,
			Owner:           sender,
			Spender:         spender,
			Token:           tokenSymbol,
			TokenAddress:    tokenAddress,
			Amount:          formattedAmount,
			IsUnlimited:     isUnlimited,
			SpenderProtocol: spenderName,
			SpenderLogo:     spenderLogo,
		}},
		Metadata: metadata,
	}
}

// swapLeg is one side of a swap as reconstructed from the transfer logs.
type swapLeg struct {
	address  string
	amount   *big.Int
	symbol   string
	decimals int32
	logo     string
}

// ExplainSwap explains a DEX trade. The leg the sender funded and the leg
// the sender received are reconstructed from the value transfers touching
// the sender; native value sent counts as the sold asset when no outgoing
// token transfer exists. Multiple swap events mean a multi-hop route.
func (e *Explainer) ExplainSwap(tx *ethereum.EthereumTransaction, receipt *ethereum.EthereumTransactionReceipt) *ExplanationResult {
	sender := tx.From.Value()
	senderLower := tx.From.Lower()
	to := tx.To.Lower()

	dexName := e.protocols.IdentifyDex(to)
	if dexName == "" {
		dexName = e.protocols.GetProtocolName(to)
	}
	dexLogo := e.protocols.GetProtocolLogo(to)

	hops := 0
	for _, log := range receipt.Logs {
		if sigRegistry.IsSwapEvent(log.EventSignature()) {
			hops++
		}
	}
	isMultiHop := hops > 1

	var tokenIn, tokenOut *swapLeg
	for _, log := range valueTransferLogs(receipt) {
		symbol, decimals, logo := e.tokenDisplay(log.Address.Value())
		leg := &swapLeg{
			address:  log.Address.Value(),
			amount:   transferAmount(log),
			symbol:   symbol,
			decimals: decimals,
			logo:     logo,
		}
		if transferFrom(log) == senderLower {
			tokenIn = leg
		}
		if transferTo(log) == senderLower {
			tokenOut = leg
		}
	}

	if tokenIn == nil && !tx.Value.IsZero() {
		native := e.tokens.Native()
		tokenIn = &swapLeg{
			address:  tokenRegistry.NativeAssetKey,
			amount:   tx.Value.Value(),
			symbol:   e.nativeSymbol(),
			decimals: format.NativeDecimals,
		}
		if native != nil {
			tokenIn.logo = native.Image
		}
	}

	spentAmount, spentName := "?", "?"
	if tokenIn != nil {
		spentAmount = format.FormatTokenAmount(tokenIn.amount, tokenIn.decimals)
		spentName = tokenIn.symbol
	}
	receivedAmount, receivedName := "?", "?"
	if tokenOut != nil {
		receivedAmount = format.FormatTokenAmount(tokenOut.amount, tokenOut.decimals)
		receivedName = tokenOut.symbol
	}

	details := []string{
		fmt.Sprintf("Sold: %s %s", spentAmount, spentName),
		fmt.Sprintf("Received: %s %s", receivedAmount, receivedName),
	}
	if tokenIn != nil && tokenOut != nil && tokenIn.amount.Sign() > 0 && tokenOut.amount.Sign() > 0 {
		rate := decimal.NewFromBigInt(tokenOut.amount, 0).Div(decimal.NewFromBigInt(tokenIn.amount, 0))
		details = append(details, fmt.Sprintf("Rate: 1 %s = %s %s", spentName, rate.StringFixed(6), receivedName))
	}
	details = append(details, fmt.Sprintf("Trader: %s", format.ShortenAddress(sender)))
	if dexName != "" {
		details = append(details, fmt.Sprintf("DEX: %s", dexName))
	}
	if isMultiHop {
		details = append(details, fmt.Sprintf("Route: %d hops", hops))
	}

	dexSuffix := ""
	if dexName != "" {
		dexSuffix = fmt.Sprintf(" on %s", dexName)
	}
	hopSuffix := ""
	if isMultiHop {
		hopSuffix = " (multi-hop)"
	}

	metadata := map[string]interface{}{
		"isMultiHop": isMultiHop,
	}
	if dexLogo != "" {
		metadata["dexLogo"] = dexLogo
	}
	if tokenIn != nil && tokenIn.logo != "" {
		metadata["fromTokenLogo"] = tokenIn.logo
	}
	if tokenOut != nil && tokenOut.logo != "" {
		metadata["toTokenLogo"] = tokenOut.logo
	}

	action := &SwapAction{
		Type:       classifier.TypeSwap,
		Trader:     sender,
		FromToken:  spentName,
		FromAmount: spentAmount,
		ToToken:    receivedName,
		ToAmount:   receivedAmount,
		Dex:        dexName,
		DexLogo:    dexLogo,
		IsMultiHop: isMultiHop,
		Hops:       hops,
	}
	if tokenIn != nil {
		action.FromLogo = tokenIn.logo
	}
	if tokenOut != nil {
		action.ToLogo = tokenOut.logo
	}

	return &ExplanationResult{
		Summary: fmt.Sprintf("%s swapped %s %s for %s %s%s%s.",
			format.ShortenAddress(sender), spentAmount, spentName, receivedAmount, receivedName, dexSuffix, hopSuffix),
		Details:      details,
		Type:         classifier.TypeSwap,
		Participants: []Participant{{Address: sender, Role: "trader"}},
		Actions:      []Action{action},
		Metadata:     metadata,
	}
}

// ExplainLiquidity explains adding or removing pool liquidity. Up to two
// outgoing (add) or incoming (remove) transfers from/to the sender are the
// pooled assets; native value on an add is an implicit first asset.
func (e *Explainer) ExplainLiquidity(tx *ethereum.EthereumTransaction, receipt *ethereum.EthereumTransactionReceipt, isAdd bool) *ExplanationResult {
	sender := tx.From.Value()
	senderLower := tx.From.Lower()
	to := tx.To.Lower()

	dexName := e.protocols.IdentifyDex(to)
	if dexName == "" {
		dexName = e.protocols.GetProtocolName(to)
	}
	dexLogo := e.protocols.GetProtocolLogo(to)

	type pooledToken struct {
		name   string
		amount string
		logo   string
	}
	tokens := make([]pooledToken, 0)

	for _, log := range valueTransferLogs(receipt) {
		matches := (isAdd && transferFrom(log) == senderLower) ||
			(!isAdd && transferTo(log) == senderLower)
		if !matches {
			continue
		}
		symbol, decimals, logo := e.tokenDisplay(log.Address.Value())
		tokens = append(tokens, pooledToken{
			name:   symbol,
			amount: format.FormatTokenAmount(transferAmount(log), decimals),
			logo:   logo,
		})
	}

	if isAdd && !tx.Value.IsZero() {
		tokens = append([]pooledToken{{
			name:   e.nativeSymbol(),
			amount: format.FormatNativeAmount(tx.Value.Value()),
		}}, tokens...)
	}

	verb := "added liquidity"
	label := "Add Liquidity"
	txType := classifier.TypeLiquidityAdd
	if !isAdd {
		verb = "removed liquidity"
		label = "Remove Liquidity"
		txType = classifier.TypeLiquidityRemove
	}

	tokenDesc := "tokens"
	switch {
	case len(tokens) >= 2:
		tokenDesc = fmt.Sprintf("%s %s + %s %s", tokens[0].amount, tokens[0].name, tokens[1].amount, tokens[1].name)
	case len(tokens) == 1:
		tokenDesc = fmt.Sprintf("%s %s", tokens[0].amount, tokens[0].name)
	}

	dexSuffix := ""
	if dexName != "" {
		dexSuffix = fmt.Sprintf(" on %s", dexName)
	}

	details := []string{
		fmt.Sprintf("Provider: %s", format.ShortenAddress(sender)),
		fmt.Sprintf("Action: %s", label),
	}
	for _, t := range tokens {
		details = append(details, fmt.Sprintf("%s: %s", t.name, t.amount))
	}
	if dexName != "" {
		details = append(details, fmt.Sprintf("Protocol: %s", dexName))
	}

	action := &LiquidityAction{
		Type:     txType,
		Provider: sender,
		Dex:      dexName,
		DexLogo:  dexLogo,
	}
	if len(tokens) > 0 {
		action.TokenA = tokens[0].name
		action.AmountA = tokens[0].amount
		action.TokenALogo = tokens[0].logo
	}
	if len(tokens) > 1 {
		action.TokenB = tokens[1].name
		action.AmountB = tokens[1].amount
		action.TokenBLogo = tokens[1].logo
	}

	metadata := map[string]interface{}{}
	if dexLogo != "" {
		metadata["dexLogo"] = dexLogo
	}

	return &ExplanationResult{
		Summary:      fmt.Sprintf("%s %s: %s%s.", format.ShortenAddress(sender), verb, tokenDesc, dexSuffix),
		Details:      details,
		Type:         txType,
		Participants: []Participant{{Address: sender, Role: "provider"}},
		Actions:      []Action{action},
		Metadata:     metadata,
	}
}

// ExplainNftTransfer explains an NFT movement identified by a 4-topic
// Transfer log. Without one it degrades to the generic explanation.
func (e *Explainer) ExplainNftTransfer(tx *ethereum.EthereumTransaction, receipt *ethereum.EthereumTransactionReceipt) *ExplanationResult {
	sender := tx.From.Value()

	var nftLog *ethereum.EthereumEventLog
	for _, log := range receipt.Logs {
		if sigRegistry.ClassifyTransferLog(log) == sigRegistry.TransferShapeIndexed {
			nftLog = log
			break
		}
	}
	if nftLog == nil {
		return e.ExplainGeneric(tx, receipt)
	}

	to := transferTo(nftLog)
	tokenId := new(big.Int)
	tokenId.SetString(strings.TrimPrefix(nftLog.Topics[3].Lower(), "0x"), 16)

	return &ExplanationResult{
		Summary: fmt.Sprintf("%s transferred NFT #%s to %s.",
			format.ShortenAddress(sender), tokenId.String(), format.ShortenAddress(to)),
		Details: []string{
			fmt.Sprintf("NFT Contract: %s", format.ShortenAddress(nftLog.Address.Value())),
			fmt.Sprintf("Token ID: %s", tokenId.String()),
			fmt.Sprintf("From: %s", format.ShortenAddress(sender)),
			fmt.Sprintf("To: %s", format.ShortenAddress(to)),
		},
		Type: classifier.TypeNftTransfer,
		Participants: []Participant{
			{Address: sender, Role: "sender"},
			{Address: to, Role: "recipient"},
		},
		Actions: []Action{&NftTransferAction{
			Type:       classifier.TypeNftTransfer,
			From:       sender,
			To:         to,
			ObjectId:   tokenId.String(),
			ObjectType: nftLog.Address.Value(),
		}},
	}
}

// ExplainNftPurchase explains a marketplace purchase priced in the
// transaction's native value.
func (e *Explainer) ExplainNftPurchase(tx *ethereum.EthereumTransaction, _ *ethereum.EthereumTransactionReceipt) *ExplanationResult {
	sender := tx.From.Value()
	to := tx.To.Lower()

	marketplace := e.protocols.IdentifyNftMarketplace(to)
	if marketplace == "" {
		marketplace = e.protocols.GetProtocolName(to)
	}
	marketplaceLogo := e.protocols.GetProtocolLogo(to)

	price := format.FormatNativeAmount(tx.Value.Value())
	native := e.nativeSymbol()

	marketplaceSuffix := ""
	if marketplace != "" {
		marketplaceSuffix = fmt.Sprintf(" on %s", marketplace)
	}

	details := []string{
		fmt.Sprintf("Buyer: %s", format.ShortenAddress(sender)),
		fmt.Sprintf("Price: %s %s", price, native),
	}
	if marketplace != "" {
		details = append(details, fmt.Sprintf("Marketplace: %s", marketplace))
	}

	metadata := map[string]interface{}{}
	if marketplaceLogo != "" {
		metadata["marketplaceLogo"] = marketplaceLogo
	}

	return &ExplanationResult{
		Summary: fmt.Sprintf("%s purchased an NFT for %s %s%s.",
			format.ShortenAddress(sender), price, native, marketplaceSuffix),
		Details:      details,
		Type:         classifier.TypeNftPurchase,
		Participants: []Participant{{Address: sender, Role: "buyer"}},
		Actions: []Action{&NftPurchaseAction{
			Type:            classifier.TypeNftPurchase,
			Buyer:           sender,
			Price:           fmt.Sprintf("%s %s", price, native),
			Marketplace:     marketplace,
			MarketplaceLogo: marketplaceLogo,
		}},
		Metadata: metadata,
	}
}

// ExplainContractDeploy explains a contract creation.
func (e *Explainer) ExplainContractDeploy(tx *ethereum.EthereumTransaction, receipt *ethereum.EthereumTransactionReceipt) *ExplanationResult {
	sender := tx.From.Value()
	contractAddress := receipt.ContractAddress.Value()
	if contractAddress == "" {
		contractAddress = "Unknown"
	}

	return &ExplanationResult{
		Summary: fmt.Sprintf("%s deployed a new smart contract.", format.ShortenAddress(sender)),
		Details: []string{
			fmt.Sprintf("Deployer: %s", format.ShortenAddress(sender)),
			fmt.Sprintf("Contract: %s", contractAddress),
		},
		Type:         classifier.TypePublish,
		Participants: []Participant{{Address: sender, Role: "creator"}},
		Actions: []Action{&PublishAction{
			Type:      classifier.TypePublish,
			Publisher: sender,
			PackageId: contractAddress,
			Modules:   []string{},
		}},
	}
}

// ExplainGeneric is the total fallback: it always produces a result, even
// for unrecognizable calls, reporting the raw 4-byte selector as a
// diagnostic.
func (e *Explainer) ExplainGeneric(tx *ethereum.EthereumTransaction, _ *ethereum.EthereumTransactionReceipt) *ExplanationResult {
	sender := tx.From.Value()
	to := tx.To.Value()
	if to == "" {
		to = "Contract Creation"
	}
	selector := calldata.NewReader(tx.Input.Value()).Selector()

	protocolName := e.protocols.GetProtocolName(tx.To.Lower())
	protocolLogo := e.protocols.GetProtocolLogo(tx.To.Lower())

	details := make([]string, 0)
	if !tx.Value.IsZero() {
		details = append(details, fmt.Sprintf("Value: %s %s", format.FormatNativeAmount(tx.Value.Value()), e.nativeSymbol()))
	}
	details = append(details,
		fmt.Sprintf("Sender: %s", format.ShortenAddress(sender)),
		fmt.Sprintf("To: %s", format.ShortenAddress(to)),
	)
	if selector != "" {
		details = append(details, fmt.Sprintf("Method: %s", selector))
		if name := sigRegistry.MethodName(selector); name != "" {
			details = append(details, fmt.Sprintf("Signature: %s", name))
		}
	}
	if protocolName != "" {
		details = append(details, fmt.Sprintf("Protocol: %s", protocolName))
	}

	summary := fmt.Sprintf("%s called %s.", format.ShortenAddress(sender), format.ShortenAddress(to))
	if protocolName != "" {
		summary = fmt.Sprintf("%s interacted with %s.", format.ShortenAddress(sender), protocolName)
	}

	metadata := map[string]interface{}{}
	if protocolLogo != "" {
		metadata["protocolLogo"] = protocolLogo
	}

	return &ExplanationResult{
		Summary:      summary,
		Details:      details,
		Type:         classifier.TypeGeneric,
		Participants: []Participant{{Address: sender, Role: "sender"}},
		Actions: []Action{&ContractCallAction{
			Type:         actionTypeContractCall,
			Caller:       sender,
			Contract:     to,
			Method:       selector,
			Protocol:     protocolName,
			ProtocolLogo: protocolLogo,
		}},
		Metadata: metadata,
	}
}
