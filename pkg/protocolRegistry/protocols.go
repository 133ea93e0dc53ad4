package protocolRegistry

type builtinProtocol struct {
	address string
	info    *ProtocolInfo
}

// builtinProtocols is the BNB Chain protocol table: router, comptroller and
// marketplace addresses grouped by category.
var builtinProtocols = []builtinProtocol{
	// DEXes
	{"0x10ed43c718714eb63d5aa57b78b54704e256024e", &ProtocolInfo{Name: "PancakeSwap", Description: "PancakeSwap V2 Router", Category: CategoryDex, Website: "https://pancakeswap.finance", Logo: "https://s2.coinmarketcap.com/static/img/coins/64x64/7186.png"}},
	{"0x13f4ea83d0bd40e75c8222255bc855a974568dd4", &ProtocolInfo{Name: "PancakeSwap V3", Description: "PancakeSwap V3 Router", Category: CategoryDex, Website: "https://pancakeswap.finance", Logo: "https://s2.coinmarketcap.com/static/img/coins/64x64/7186.png"}},
	{"0x556b9306565093c855aea9ae92a594704c2cd59e", &ProtocolInfo{Name: "PancakeSwap", Description: "PancakeSwap Smart Router", Category: CategoryDex, Website: "https://pancakeswap.finance", Logo: "https://s2.coinmarketcap.com/static/img/coins/64x64/7186.png"}},
	{"0x3a6d8ca21d1cf76f653a67577fa0d27453350dd8", &ProtocolInfo{Name: "BiSwap", Description: "BiSwap Router", Category: CategoryDex, Website: "https://biswap.org", Logo: "https://s2.coinmarketcap.com/static/img/coins/64x64/10746.png"}},
	{"0xcf0febd3f17cef5b47b0cd257acf6025c5bff3b7", &ProtocolInfo{Name: "ApeSwap", Description: "ApeSwap Router", Category: CategoryDex, Website: "https://apeswap.finance", Logo: "https://s2.coinmarketcap.com/static/img/coins/64x64/8497.png"}},
	{"0x325e343f1de602396e256b67efd1f61c3a6b38bd", &ProtocolInfo{Name: "BabySwap", Description: "BabySwap Router", Category: CategoryDex, Website: "https://babyswap.finance", Logo: "https://s2.coinmarketcap.com/static/img/coins/64x64/10334.png"}},
	{"0x7dae51bd3e3376b8c7c4900e9107f12be3af1ba8", &ProtocolInfo{Name: "MDEX", Description: "MDEX Router", Category: CategoryDex, Website: "https://mdex.com", Logo: "https://s2.coinmarketcap.com/static/img/coins/64x64/8335.png"}},
	{"0x8f8dd7db1bda5ed3da8c9daf3bfa471c12d58486", &ProtocolInfo{Name: "DODO", Description: "DODO Router", Category: CategoryDex, Website: "https://dodoex.io", Logo: "https://s2.coinmarketcap.com/static/img/coins/64x64/7224.png"}},
	{"0x1111111254eeb25477b68fb85ed929f73a960582", &ProtocolInfo{Name: "1inch", Description: "1inch Aggregator V5", Category: CategoryDex, Website: "https://1inch.io", Logo: "https://s2.coinmarketcap.com/static/img/coins/64x64/8104.png"}},
	{"0xb971ef87ede563556b2ed4b1c0b0019111dd85d2", &ProtocolInfo{Name: "Uniswap V3", Description: "Uniswap V3 Router", Category: CategoryDex, Website: "https://uniswap.org", Logo: "https://s2.coinmarketcap.com/static/img/coins/64x64/7083.png"}},

	// Lending protocols
	{"0xfd36e2c2a6789db23113685031d7f16329158384", &ProtocolInfo{Name: "Venus", Description: "Venus Comptroller", Category: CategoryLending, Website: "https://venus.io", Logo: "https://s2.coinmarketcap.com/static/img/coins/64x64/7288.png"}},
	{"0xecf44e2c4eaccddb7c5b9e6c4e3c7a6e8e2e7c6d", &ProtocolInfo{Name: "Venus", Description: "Venus vToken", Category: CategoryLending, Website: "https://venus.io", Logo: "https://s2.coinmarketcap.com/static/img/coins/64x64/7288.png"}},
	{"0xa625ab01b08ce023b2a342dbb12a16f2c8489a8f", &ProtocolInfo{Name: "Alpaca Finance", Description: "Alpaca Lending", Category: CategoryLending, Website: "https://alpacafinance.org", Logo: "https://s2.coinmarketcap.com/static/img/coins/64x64/8707.png"}},
	{"0x589de0f0ccf905477646599bb3e5c622c84cc0ba", &ProtocolInfo{Name: "Cream Finance", Description: "Cream Comptroller", Category: CategoryLending, Website: "https://cream.finance", Logo: "https://s2.coinmarketcap.com/static/img/coins/64x64/6193.png"}},
	{"0xd50cf00b6e600dd036ba8ef475677d816d6c4281", &ProtocolInfo{Name: "Radiant Capital", Description: "Radiant Lending", Category: CategoryLending, Website: "https://radiant.capital", Logo: "https://s2.coinmarketcap.com/static/img/coins/64x64/21106.png"}},

	// NFT marketplaces
	{"0x00000000006c3852cbef3e08e8df289169ede581", &ProtocolInfo{Name: "OpenSea", Description: "Seaport Protocol", Category: CategoryNftMarketplace, Website: "https://opensea.io", Logo: "https://storage.googleapis.com/opensea-static/Logomark/Logomark-Blue.png"}},
	{"0x00000000000000adc04c56bf30ac9d3c0aaf14dc", &ProtocolInfo{Name: "OpenSea", Description: "Seaport 1.5", Category: CategoryNftMarketplace, Website: "https://opensea.io", Logo: "https://storage.googleapis.com/opensea-static/Logomark/Logomark-Blue.png"}},
	{"0x8c07326a6e0a13a1d8e5e8fb1e8fa4a8e1f8e4c1", &ProtocolInfo{Name: "NFTKey", Description: "NFTKey Marketplace", Category: CategoryNftMarketplace, Website: "https://nftkey.app"}},
	{"0x20f780a973856b93f63670377900c1d2a50a77c4", &ProtocolInfo{Name: "Element", Description: "Element Market", Category: CategoryNftMarketplace, Website: "https://element.market"}},
	{"0x7bc8b1b5aba4df3be9f9a32dae501214dc0e0f3a", &ProtocolInfo{Name: "TofuNFT", Description: "TofuNFT Marketplace", Category: CategoryNftMarketplace, Website: "https://tofunft.com"}},

	// Staking protocols
	{"0x45c54210128a065de780c4b0df3d16664f7f859e", &ProtocolInfo{Name: "PancakeSwap CAKE Pool", Description: "CAKE Staking Pool", Category: CategoryStaking, Website: "https://pancakeswap.finance", Logo: "https://s2.coinmarketcap.com/static/img/coins/64x64/7186.png"}},
	{"0xa5f8c5dbd5f286960b9d90548680ae5ebff07652", &ProtocolInfo{Name: "PancakeSwap Farms", Description: "PancakeSwap LP Staking", Category: CategoryStaking, Website: "https://pancakeswap.finance", Logo: "https://s2.coinmarketcap.com/static/img/coins/64x64/7186.png"}},
	{"0x0000000000000000000000000000000000001000", &ProtocolInfo{Name: "BNB Staking", Description: "Native BNB Staking", Category: CategoryStaking, Website: "https://www.bnbchain.org", Logo: "https://s2.coinmarketcap.com/static/img/coins/64x64/1839.png"}},
	{"0x1adb950d8bb3da4be104211d5ab038628e477fe6", &ProtocolInfo{Name: "Lista DAO", Description: "BNB Liquid Staking", Category: CategoryStaking, Website: "https://lista.org", Logo: "https://s2.coinmarketcap.com/static/img/coins/64x64/30407.png"}},
	{"0x52f24a5e03aee338da5fd9df68d2b6fae1178827", &ProtocolInfo{Name: "Ankr Staking", Description: "Ankr BNB Liquid Staking", Category: CategoryStaking, Website: "https://ankr.com", Logo: "https://s2.coinmarketcap.com/static/img/coins/64x64/3783.png"}},
	{"0x7276241a669489e4bbb76f63d2a43bfe63080f2f", &ProtocolInfo{Name: "Stader", Description: "Stader BNB Staking", Category: CategoryStaking, Website: "https://staderlabs.com", Logo: "https://s2.coinmarketcap.com/static/img/coins/64x64/21200.png"}},

	// Bridges
	{"0xf9736ec3926703e85c843fc972bd89a7f8e827c0", &ProtocolInfo{Name: "Multichain", Description: "Multichain Bridge", Category: CategoryBridge, Website: "https://multichain.org"}},
	{"0xdd90e5e87a2081dcf0391920868ebc2ffb81a1af", &ProtocolInfo{Name: "Celer cBridge", Description: "Celer Network Bridge", Category: CategoryBridge, Website: "https://cbridge.celer.network", Logo: "https://s2.coinmarketcap.com/static/img/coins/64x64/3814.png"}},
	{"0x4a364f8c717cad9a558c0a1e78c30a3c2c1e18e0", &ProtocolInfo{Name: "Stargate", Description: "Stargate Bridge", Category: CategoryBridge, Website: "https://stargate.finance", Logo: "https://s2.coinmarketcap.com/static/img/coins/64x64/18934.png"}},
	{"0x98f3c9e6e3face36baad05fe09d375ef1464288b", &ProtocolInfo{Name: "Wormhole", Description: "Wormhole Bridge", Category: CategoryBridge, Website: "https://wormhole.com", Logo: "https://s2.coinmarketcap.com/static/img/coins/64x64/21638.png"}},
}
