package classifier

// TransactionType is the closed set of classification tags. Exactly one tag
// is assigned per transaction; classification is total and falls back to
// TypeGeneric rather than failing.
//
// The set is wider than what this engine emits: the system_* tags and a
// number of chain-model tags (merge_coins, split_coins, upgrade, ...) exist
// for parity with a richer non-EVM transaction model and are never produced
// here.
type TransactionType string

const (
	TypeTransfer         TransactionType = "transfer"
	TypeApproval         TransactionType = "approval"
	TypeNftTransfer      TransactionType = "nft_transfer"
	TypeNftMint          TransactionType = "nft_mint"
	TypeNftBurn          TransactionType = "nft_burn"
	TypeNftList          TransactionType = "nft_list"
	TypeNftPurchase      TransactionType = "nft_purchase"
	TypeNftCancelListing TransactionType = "nft_cancel_listing"
	TypeNftMakeOffer     TransactionType = "nft_make_offer"
	TypeNftAcceptOffer   TransactionType = "nft_accept_offer"
	TypeSwap             TransactionType = "swap"
	TypeLiquidityAdd     TransactionType = "liquidity_add"
	TypeLiquidityRemove  TransactionType = "liquidity_remove"
	TypeMint             TransactionType = "mint"
	TypeBurn             TransactionType = "burn"
	TypeMergeCoins       TransactionType = "merge_coins"
	TypeSplitCoins       TransactionType = "split_coins"
	TypeStake            TransactionType = "stake"
	TypeUnstake          TransactionType = "unstake"
	TypeClaimRewards     TransactionType = "claim_rewards"
	TypeBorrow           TransactionType = "borrow"
	TypeRepay            TransactionType = "repay"
	TypeSupply           TransactionType = "supply"
	TypeWithdraw         TransactionType = "withdraw"
	TypeLiquidate        TransactionType = "liquidate"
	TypeOpenPosition     TransactionType = "open_position"
	TypeClosePosition    TransactionType = "close_position"
	TypePerpTrade        TransactionType = "perp_trade"
	TypeFlashLoanArb     TransactionType = "flash_loan_arbitrage"
	TypeBridge           TransactionType = "bridge"
	TypeBridgeIn         TransactionType = "bridge_in"
	TypeBridgeOut        TransactionType = "bridge_out"
	TypeRegisterName     TransactionType = "register_name"
	TypeRenewName        TransactionType = "renew_name"
	TypeVote             TransactionType = "vote"
	TypePropose          TransactionType = "propose"
	TypePublish          TransactionType = "publish"
	TypeUpgrade          TransactionType = "upgrade"
	TypeAirdropClaim     TransactionType = "airdrop_claim"
	TypeMultisig         TransactionType = "multisig"
	TypeSponsored        TransactionType = "sponsored"
	TypeGeneric          TransactionType = "generic"

	// Reserved system tags, never produced for EVM data.
	TypeSystemConsensus     TransactionType = "system_consensus"
	TypeSystemEpochChange   TransactionType = "system_epoch_change"
	TypeSystemGenesis       TransactionType = "system_genesis"
	TypeSystemCheckpoint    TransactionType = "system_checkpoint"
	TypeSystemAuthenticator TransactionType = "system_authenticator"
	TypeSystemRandomness    TransactionType = "system_randomness"
)

// ProducibleTypes returns the tags this engine can actually emit for EVM
// inputs. The explanation engine must register a builder for each of these;
// a test enforces it so a new tag cannot silently fall through to generic.
func ProducibleTypes() []TransactionType {
	return []TransactionType{
		TypeTransfer,
		TypeApproval,
		TypeNftTransfer,
		TypeNftPurchase,
		TypeSwap,
		TypeLiquidityAdd,
		TypeLiquidityRemove,
		TypeStake,
		TypeUnstake,
		TypeClaimRewards,
		TypeBorrow,
		TypeRepay,
		TypeSupply,
		TypeWithdraw,
		TypeBridge,
		TypePublish,
		TypeGeneric,
	}
}
