package tokenRegistry

type builtinToken struct {
	address string
	info    *TokenInfo
}

// builtinTokens is the BNB Chain token table. Note that the major
// stablecoins carry 18 decimals on BNB Chain, unlike their 6-decimal
// Ethereum deployments.
var builtinTokens = []builtinToken{
	{NativeAssetKey, &TokenInfo{Symbol: "BNB", Name: "BNB", Decimals: 18, Image: "https://assets.coingecko.com/coins/images/825/small/bnb-icon2_2x.png"}},
	{"0xbb4cdb9cbd36b01bd1cbaebf2de08d9173bc095c", &TokenInfo{Symbol: "WBNB", Name: "Wrapped BNB", Decimals: 18, Image: "https://assets.coingecko.com/coins/images/825/small/bnb-icon2_2x.png"}},

	// Stablecoins
	{"0x55d398326f99059ff775485246999027b3197955", &TokenInfo{Symbol: "USDT", Name: "Tether USD", Decimals: 18, Image: "https://assets.coingecko.com/coins/images/325/small/Tether.png"}},
	{"0x8ac76a51cc950d9822d68b83fe1ad97b32cd580d", &TokenInfo{Symbol: "USDC", Name: "USD Coin", Decimals: 18, Image: "https://assets.coingecko.com/coins/images/6319/small/usdc.png"}},
	{"0xe9e7cea3dedca5984780bafc599bd69add087d56", &TokenInfo{Symbol: "BUSD", Name: "Binance USD", Decimals: 18, Image: "https://assets.coingecko.com/coins/images/9576/small/BUSD.png"}},
	{"0x1af3f329e8be154074d8769d1ffa4ee058b1dbc3", &TokenInfo{Symbol: "DAI", Name: "Dai Stablecoin", Decimals: 18, Image: "https://assets.coingecko.com/coins/images/9956/small/dai-multi-collateral-mcd.png"}},
	{"0x14016e85a25aeb13065688cafb43044c2ef86784", &TokenInfo{Symbol: "TUSD", Name: "TrueUSD", Decimals: 18, Image: "https://assets.coingecko.com/coins/images/3449/small/tusd.png"}},

	// Major tokens
	{"0x2170ed0880ac9a755fd29b2688956bd959f933f8", &TokenInfo{Symbol: "ETH", Name: "Ethereum Token", Decimals: 18, Image: "https://assets.coingecko.com/coins/images/279/small/ethereum.png"}},
	{"0x7130d2a12b9bcbfae4f2634d864a1ee1ce3ead9c", &TokenInfo{Symbol: "BTCB", Name: "Bitcoin BEP20", Decimals: 18, Image: "https://assets.coingecko.com/coins/images/14108/small/Binance-bitcoin.png"}},
	{"0x0e09fabb73bd3ade0a17ecc321fd13a19e81ce82", &TokenInfo{Symbol: "CAKE", Name: "PancakeSwap", Decimals: 18, Image: "https://assets.coingecko.com/coins/images/12632/small/pancakeswap-cake-logo.png"}},

	// DeFi tokens
	{"0xcf6bb5389c92bdda8a3747ddb454cb7a64626c63", &TokenInfo{Symbol: "XVS", Name: "Venus", Decimals: 18, Image: "https://assets.coingecko.com/coins/images/13161/small/venus.png"}},
	{"0x8f0528ce5ef7b51152a59745befdd91d97091d2f", &TokenInfo{Symbol: "ALPACA", Name: "Alpaca Finance", Decimals: 18, Image: "https://assets.coingecko.com/coins/images/14165/small/alpaca.png"}},
	{"0x965f527d9159dce6288a2219db51fc6eef120dd1", &TokenInfo{Symbol: "BSW", Name: "BiSwap", Decimals: 18, Image: "https://assets.coingecko.com/coins/images/16845/small/biswap.png"}},
	{"0x603c7f932ed1fc6575303d8fb018fdcbb0f39a95", &TokenInfo{Symbol: "BANANA", Name: "ApeSwap", Decimals: 18, Image: "https://assets.coingecko.com/coins/images/14870/small/banana.png"}},

	// Meme tokens
	{"0xba2ae424d960c26247dd6c32edc70b295c744c43", &TokenInfo{Symbol: "DOGE", Name: "Dogecoin", Decimals: 8, Image: "https://assets.coingecko.com/coins/images/5/small/dogecoin.png"}},
	{"0x2859e4544c4bb03966803b044a93563bd2d0dd4d", &TokenInfo{Symbol: "SHIB", Name: "Shiba Inu", Decimals: 18, Image: "https://assets.coingecko.com/coins/images/11939/small/shiba.png"}},
	{"0x4a2c860cecb1bf77348a6ed5ebd81d7c2b1a9533", &TokenInfo{Symbol: "FLOKI", Name: "Floki Inu", Decimals: 9, Image: "https://assets.coingecko.com/coins/images/16746/small/floki.png"}},

	// Liquid staking
	{"0xb0b84d294e0c75a6abe60171b70edeb2efd14a1b", &TokenInfo{Symbol: "stkBNB", Name: "Staked BNB", Decimals: 18, Image: "https://assets.coingecko.com/coins/images/26727/small/stkBNB.png"}},
	{"0x1bdd3cf7f79cfb8edbb955f20ad99211551ba275", &TokenInfo{Symbol: "BNBx", Name: "Stader BNBx", Decimals: 18, Image: "https://assets.coingecko.com/coins/images/26758/small/BNBx.png"}},

	// Other popular tokens
	{"0x3ee2200efb3400fabb9aacf31297cbdd1d435d47", &TokenInfo{Symbol: "ADA", Name: "Cardano Token", Decimals: 18, Image: "https://assets.coingecko.com/coins/images/975/small/cardano.png"}},
	{"0x7083609fce4d1d8dc0c979aab8c869ea2c873402", &TokenInfo{Symbol: "DOT", Name: "Polkadot Token", Decimals: 18, Image: "https://assets.coingecko.com/coins/images/12171/small/polkadot.png"}},
	{"0x1d2f0da169ceb9fc7b3144628db156f3f6c60dbe", &TokenInfo{Symbol: "XRP", Name: "XRP Token", Decimals: 18, Image: "https://assets.coingecko.com/coins/images/44/small/xrp-symbol-white-128.png"}},
	{"0xf8a0bf9cf54bb92f17374d9e9a321e6a111a51bd", &TokenInfo{Symbol: "LINK", Name: "Chainlink", Decimals: 18, Image: "https://assets.coingecko.com/coins/images/877/small/chainlink-new-logo.png"}},
	{"0x4338665cbb7b2485a8855a139b75d5e34ab0db94", &TokenInfo{Symbol: "LTC", Name: "Litecoin Token", Decimals: 18, Image: "https://assets.coingecko.com/coins/images/2/small/litecoin.png"}},
	{"0xcc42724c6683b7e57334c4e856f4c9965ed682bd", &TokenInfo{Symbol: "MATIC", Name: "Polygon", Decimals: 18, Image: "https://assets.coingecko.com/coins/images/4713/small/polygon.png"}},
	{"0x1ce0c2827e2ef14d5c4f29a091d735a204794041", &TokenInfo{Symbol: "AVAX", Name: "Avalanche", Decimals: 18, Image: "https://assets.coingecko.com/coins/images/12559/small/Avalanche_Circle_RedWhite_Trans.png"}},
}
