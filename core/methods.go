package core

import "context"

// fuelValidChains is the closed set of chain ids a Fuel-only query may name.
var fuelValidChains = map[ChainID]struct{}{
	ChainFuel:        {},
	ChainFuelTestnet: {},
}

// checkFuelChains rejects a request synchronously, before anything is sent,
// if its chain set names a chain outside the Fuel family.
func checkFuelChains(chains ChainSet) error {
	for id := range chains {
		if _, ok := fuelValidChains[id]; !ok {
			return &InvalidChainIDError{Chains: chains.Slice()}
		}
	}
	return nil
}

// GetBlocks streams EVM block headers.
func (c *Client) GetBlocks(ctx context.Context, req GetBlocksRequest, format Format, deltas bool) (Stream[[]byte], error) {
	return c.Request(ctx, OpGetBlocks, req, format, deltas)
}

// GetLogs streams EVM event logs.
func (c *Client) GetLogs(ctx context.Context, req GetLogsRequest, format Format, deltas bool) (Stream[[]byte], error) {
	return c.Request(ctx, OpGetLogs, req, format, deltas)
}

// GetTxs streams EVM transactions.
func (c *Client) GetTxs(ctx context.Context, req GetTxsRequest, format Format, deltas bool) (Stream[[]byte], error) {
	return c.Request(ctx, OpGetTxs, req, format, deltas)
}

// GetReceipts streams EVM transaction receipts.
func (c *Client) GetReceipts(ctx context.Context, req GetReceiptsRequest, format Format, deltas bool) (Stream[[]byte], error) {
	return c.Request(ctx, OpGetReceipts, req, format, deltas)
}

// GetTransfers streams native-asset transfers.
func (c *Client) GetTransfers(ctx context.Context, req GetTransfersRequest, format Format, deltas bool) (Stream[[]byte], error) {
	return c.Request(ctx, OpGetTransfers, req, format, deltas)
}

// GetDecodedLogs streams ABI-decoded EVM logs.
func (c *Client) GetDecodedLogs(ctx context.Context, req GetDecodedLogsRequest, format Format, deltas bool) (Stream[[]byte], error) {
	return c.Request(ctx, OpGetDecodedLogs, req, format, deltas)
}

// GetUniswapV2Pairs streams Uniswap V2 pair creation/state events.
func (c *Client) GetUniswapV2Pairs(ctx context.Context, req GetUniswapV2PairsRequest, format Format, deltas bool) (Stream[[]byte], error) {
	return c.Request(ctx, OpGetUniswapV2Pairs, req, format, deltas)
}

// GetUniswapV2Prices streams Uniswap V2 price observations.
func (c *Client) GetUniswapV2Prices(ctx context.Context, req GetUniswapV2PricesRequest, format Format, deltas bool) (Stream[[]byte], error) {
	return c.Request(ctx, OpGetUniswapV2Prices, req, format, deltas)
}

// GetUniswapV3Fees streams Uniswap V3 fee-tier events.
func (c *Client) GetUniswapV3Fees(ctx context.Context, req GetUniswapV3FeesRequest, format Format, deltas bool) (Stream[[]byte], error) {
	return c.Request(ctx, OpGetUniswapV3Fees, req, format, deltas)
}

// GetUniswapV3Pools streams Uniswap V3 pool creation/state events.
func (c *Client) GetUniswapV3Pools(ctx context.Context, req GetUniswapV3PoolsRequest, format Format, deltas bool) (Stream[[]byte], error) {
	return c.Request(ctx, OpGetUniswapV3Pools, req, format, deltas)
}

// GetUniswapV3Positions streams Uniswap V3 position mutations.
func (c *Client) GetUniswapV3Positions(ctx context.Context, req GetUniswapV3PositionsRequest, format Format, deltas bool) (Stream[[]byte], error) {
	return c.Request(ctx, OpGetUniswapV3Positions, req, format, deltas)
}

// GetUniswapV3Prices streams Uniswap V3 price observations.
func (c *Client) GetUniswapV3Prices(ctx context.Context, req GetUniswapV3PricesRequest, format Format, deltas bool) (Stream[[]byte], error) {
	return c.Request(ctx, OpGetUniswapV3Prices, req, format, deltas)
}

// GetCurveTokens streams Curve pool token metadata.
func (c *Client) GetCurveTokens(ctx context.Context, req GetCurveTokensRequest, format Format, deltas bool) (Stream[[]byte], error) {
	return c.Request(ctx, OpGetCurveTokens, req, format, deltas)
}

// GetCurvePools streams Curve pool creation/state events.
func (c *Client) GetCurvePools(ctx context.Context, req GetCurvePoolsRequest, format Format, deltas bool) (Stream[[]byte], error) {
	return c.Request(ctx, OpGetCurvePools, req, format, deltas)
}

// GetCurvePrices streams Curve price observations.
func (c *Client) GetCurvePrices(ctx context.Context, req GetCurvePricesRequest, format Format, deltas bool) (Stream[[]byte], error) {
	return c.Request(ctx, OpGetCurvePrices, req, format, deltas)
}

// GetErc20 streams ERC-20 token metadata.
func (c *Client) GetErc20(ctx context.Context, req GetErc20Request, format Format, deltas bool) (Stream[[]byte], error) {
	return c.Request(ctx, OpGetErc20, req, format, deltas)
}

// GetErc20Approvals streams ERC-20 Approval events.
func (c *Client) GetErc20Approvals(ctx context.Context, req GetErc20ApprovalsRequest, format Format, deltas bool) (Stream[[]byte], error) {
	return c.Request(ctx, OpGetErc20Approvals, req, format, deltas)
}

// GetErc20Transfers streams ERC-20 Transfer events.
func (c *Client) GetErc20Transfers(ctx context.Context, req GetErc20TransfersRequest, format Format, deltas bool) (Stream[[]byte], error) {
	return c.Request(ctx, OpGetErc20Transfers, req, format, deltas)
}

// GetBtcBlocks streams Bitcoin block headers. The chain set is pinned to
// {ChainBitcoin} regardless of the caller's request, since this query only
// ever targets Bitcoin.
func (c *Client) GetBtcBlocks(ctx context.Context, req GetBtcBlocksRequest, format Format, deltas bool) (Stream[[]byte], error) {
	req.Chains = NewChainSet(ChainBitcoin)
	return c.Request(ctx, OpGetBlocks, req, format, deltas)
}

// GetBtcTxs streams Bitcoin transactions, with the same chain-set pinning
// as GetBtcBlocks.
func (c *Client) GetBtcTxs(ctx context.Context, req GetBtcTxsRequest, format Format, deltas bool) (Stream[[]byte], error) {
	req.Chains = NewChainSet(ChainBitcoin)
	return c.Request(ctx, OpGetTxs, req, format, deltas)
}

// GetUnspentUtxos streams unspent Fuel UTXOs, rejecting any non-Fuel chain
// in the request's chain set before sending.
func (c *Client) GetUnspentUtxos(ctx context.Context, req GetUtxoRequest, format Format, deltas bool) (Stream[[]byte], error) {
	if err := checkFuelChains(req.Chains); err != nil {
		return nil, err
	}
	return c.Request(ctx, OpGetUnspentUtxos, req, format, deltas)
}

// GetFuelBlocks streams Fuel block headers.
func (c *Client) GetFuelBlocks(ctx context.Context, req GetFuelBlocksRequest, format Format, deltas bool) (Stream[[]byte], error) {
	if err := checkFuelChains(req.Chains); err != nil {
		return nil, err
	}
	return c.Request(ctx, OpGetBlocks, req, format, deltas)
}

// GetFuelLogs streams Fuel receipt logs.
func (c *Client) GetFuelLogs(ctx context.Context, req GetFuelLogsRequest, format Format, deltas bool) (Stream[[]byte], error) {
	if err := checkFuelChains(req.Chains); err != nil {
		return nil, err
	}
	return c.Request(ctx, OpGetLogs, req, format, deltas)
}

// GetFuelTxs streams Fuel transactions.
func (c *Client) GetFuelTxs(ctx context.Context, req GetFuelTxsRequest, format Format, deltas bool) (Stream[[]byte], error) {
	if err := checkFuelChains(req.Chains); err != nil {
		return nil, err
	}
	return c.Request(ctx, OpGetTxs, req, format, deltas)
}

// GetFuelReceipts streams Fuel transaction receipts.
func (c *Client) GetFuelReceipts(ctx context.Context, req GetFuelReceiptsRequest, format Format, deltas bool) (Stream[[]byte], error) {
	if err := checkFuelChains(req.Chains); err != nil {
		return nil, err
	}
	return c.Request(ctx, OpGetReceipts, req, format, deltas)
}

// GetFuelMessages streams Fuel bridge messages.
func (c *Client) GetFuelMessages(ctx context.Context, req GetFuelMessagesRequest, format Format, deltas bool) (Stream[[]byte], error) {
	if err := checkFuelChains(req.Chains); err != nil {
		return nil, err
	}
	return c.Request(ctx, OpGetMessages, req, format, deltas)
}

// GetSparkMarket streams Spark order-book market events.
func (c *Client) GetSparkMarket(ctx context.Context, req GetSparkMarketRequest, format Format, deltas bool) (Stream[[]byte], error) {
	if err := checkFuelChains(req.Chains); err != nil {
		return nil, err
	}
	return c.Request(ctx, OpGetSparkMarket, req, format, deltas)
}

// GetSparkOrder streams Spark order-book order events.
func (c *Client) GetSparkOrder(ctx context.Context, req GetSparkOrderRequest, format Format, deltas bool) (Stream[[]byte], error) {
	if err := checkFuelChains(req.Chains); err != nil {
		return nil, err
	}
	return c.Request(ctx, OpGetSparkOrder, req, format, deltas)
}

// GetSrc20 streams SRC-20 token metadata and mint/burn events.
func (c *Client) GetSrc20(ctx context.Context, req GetSrc20Request, format Format, deltas bool) (Stream[[]byte], error) {
	if err := checkFuelChains(req.Chains); err != nil {
		return nil, err
	}
	return c.Request(ctx, OpGetSrc20, req, format, deltas)
}

// GetSrc7 streams SRC-7 NFT metadata records.
func (c *Client) GetSrc7(ctx context.Context, req GetSrc7Request, format Format, deltas bool) (Stream[[]byte], error) {
	if err := checkFuelChains(req.Chains); err != nil {
		return nil, err
	}
	return c.Request(ctx, OpGetSrc7, req, format, deltas)
}

// GetMiraV1Pools streams Mira DEX pool creation/state events.
func (c *Client) GetMiraV1Pools(ctx context.Context, req GetMiraPoolsRequest, format Format, deltas bool) (Stream[[]byte], error) {
	if err := checkFuelChains(req.Chains); err != nil {
		return nil, err
	}
	return c.Request(ctx, OpGetMiraV1Pools, req, format, deltas)
}

// GetMiraV1Liquidity streams Mira DEX liquidity events.
func (c *Client) GetMiraV1Liquidity(ctx context.Context, req GetMiraLiquidityRequest, format Format, deltas bool) (Stream[[]byte], error) {
	if err := checkFuelChains(req.Chains); err != nil {
		return nil, err
	}
	return c.Request(ctx, OpGetMiraV1Liqudity, req, format, deltas)
}

// GetMiraV1Swaps streams Mira DEX swap events.
func (c *Client) GetMiraV1Swaps(ctx context.Context, req GetMiraSwapsRequest, format Format, deltas bool) (Stream[[]byte], error) {
	if err := checkFuelChains(req.Chains); err != nil {
		return nil, err
	}
	return c.Request(ctx, OpGetMiraV1Swaps, req, format, deltas)
}
