package core

// EVM-family request records. Each follows the same
// chains/from_block/to_block/__in-filter shape as the Fuel and Mira
// records, applied to the EVM-side fields (addresses, topics, token
// transfers).

// GetBlocksRequest queries EVM block headers across one or more chains.
type GetBlocksRequest struct {
	ChainRange
}

func NewGetBlocksRequest() GetBlocksRequest {
	return GetBlocksRequest{}
}

// GetLogsRequest queries EVM event logs filtered by emitting address and by
// up to four indexed topics.
type GetLogsRequest struct {
	ChainRange
	AddressIn StringSet `json:"address__in,omitempty"`
	Topic0In  StringSet `json:"topic0__in,omitempty"`
	Topic1In  StringSet `json:"topic1__in,omitempty"`
	Topic2In  StringSet `json:"topic2__in,omitempty"`
	Topic3In  StringSet `json:"topic3__in,omitempty"`
}

func NewGetLogsRequest() GetLogsRequest {
	return GetLogsRequest{}
}

// GetTxsRequest queries EVM transactions filtered by sender and recipient.
type GetTxsRequest struct {
	ChainRange
	FromIn StringSet `json:"from__in,omitempty"`
	ToIn   StringSet `json:"to__in,omitempty"`
}

func NewGetTxsRequest() GetTxsRequest {
	return GetTxsRequest{}
}

// GetReceiptsRequest queries EVM transaction receipts by recipient contract
// and status.
type GetReceiptsRequest struct {
	ChainRange
	ContractAddressIn StringSet `json:"contract_address__in,omitempty"`
	StatusIn          StringSet `json:"status__in,omitempty"`
}

func NewGetReceiptsRequest() GetReceiptsRequest {
	return GetReceiptsRequest{}
}

// GetTransfersRequest queries native-asset transfers filtered by sender and
// recipient address.
type GetTransfersRequest struct {
	ChainRange
	FromIn StringSet `json:"from__in,omitempty"`
	ToIn   StringSet `json:"to__in,omitempty"`
}

func NewGetTransfersRequest() GetTransfersRequest {
	return GetTransfersRequest{}
}

// GetDecodedLogsRequest queries ABI-decoded EVM logs filtered by emitting
// contract and event signature.
type GetDecodedLogsRequest struct {
	ChainRange
	ContractAddressIn StringSet `json:"contract_address__in,omitempty"`
	EventNameIn       StringSet `json:"event_name__in,omitempty"`
}

func NewGetDecodedLogsRequest() GetDecodedLogsRequest {
	return GetDecodedLogsRequest{}
}

// uniswapV2Filter is shared by the pair and price query kinds.
type uniswapV2Filter struct {
	ChainRange
	PairAddressIn StringSet `json:"pair_address__in,omitempty"`
	Token0In      StringSet `json:"token0__in,omitempty"`
	Token1In      StringSet `json:"token1__in,omitempty"`
}

type GetUniswapV2PairsRequest struct{ uniswapV2Filter }
type GetUniswapV2PricesRequest struct{ uniswapV2Filter }

func NewGetUniswapV2PairsRequest() GetUniswapV2PairsRequest {
	return GetUniswapV2PairsRequest{}
}

func NewGetUniswapV2PricesRequest() GetUniswapV2PricesRequest {
	return GetUniswapV2PricesRequest{}
}

// uniswapV3Filter is shared by the fee-tier, pool, position and price query
// kinds.
type uniswapV3Filter struct {
	ChainRange
	PoolAddressIn StringSet `json:"pool_address__in,omitempty"`
	Token0In      StringSet `json:"token0__in,omitempty"`
	Token1In      StringSet `json:"token1__in,omitempty"`
	FeeIn         StringSet `json:"fee__in,omitempty"`
}

type GetUniswapV3FeesRequest struct{ uniswapV3Filter }
type GetUniswapV3PoolsRequest struct{ uniswapV3Filter }
type GetUniswapV3PricesRequest struct{ uniswapV3Filter }

// GetUniswapV3PositionsRequest additionally filters by the owning account.
type GetUniswapV3PositionsRequest struct {
	uniswapV3Filter
	OwnerIn StringSet `json:"owner__in,omitempty"`
}

func NewGetUniswapV3FeesRequest() GetUniswapV3FeesRequest     { return GetUniswapV3FeesRequest{} }
func NewGetUniswapV3PoolsRequest() GetUniswapV3PoolsRequest   { return GetUniswapV3PoolsRequest{} }
func NewGetUniswapV3PricesRequest() GetUniswapV3PricesRequest { return GetUniswapV3PricesRequest{} }
func NewGetUniswapV3PositionsRequest() GetUniswapV3PositionsRequest {
	return GetUniswapV3PositionsRequest{}
}

// curveFilter is shared by the Curve token, pool and price query kinds.
type curveFilter struct {
	ChainRange
	PoolAddressIn StringSet `json:"pool_address__in,omitempty"`
	TokenIn       StringSet `json:"token__in,omitempty"`
}

type GetCurveTokensRequest struct{ curveFilter }
type GetCurvePoolsRequest struct{ curveFilter }
type GetCurvePricesRequest struct{ curveFilter }

func NewGetCurveTokensRequest() GetCurveTokensRequest { return GetCurveTokensRequest{} }
func NewGetCurvePoolsRequest() GetCurvePoolsRequest   { return GetCurvePoolsRequest{} }
func NewGetCurvePricesRequest() GetCurvePricesRequest { return GetCurvePricesRequest{} }

// GetErc20Request queries ERC-20 token metadata.
type GetErc20Request struct {
	ChainRange
	ContractAddressIn StringSet `json:"contract_address__in,omitempty"`
	SymbolIn          StringSet `json:"symbol__in,omitempty"`
}

func NewGetErc20Request() GetErc20Request { return GetErc20Request{} }

// GetErc20ApprovalsRequest queries ERC-20 Approval events.
type GetErc20ApprovalsRequest struct {
	ChainRange
	ContractAddressIn StringSet `json:"contract_address__in,omitempty"`
	OwnerIn           StringSet `json:"owner__in,omitempty"`
	SpenderIn         StringSet `json:"spender__in,omitempty"`
}

func NewGetErc20ApprovalsRequest() GetErc20ApprovalsRequest { return GetErc20ApprovalsRequest{} }

// GetErc20TransfersRequest queries ERC-20 Transfer events.
type GetErc20TransfersRequest struct {
	ChainRange
	ContractAddressIn StringSet `json:"contract_address__in,omitempty"`
	FromIn            StringSet `json:"from__in,omitempty"`
	ToIn              StringSet `json:"to__in,omitempty"`
}

func NewGetErc20TransfersRequest() GetErc20TransfersRequest { return GetErc20TransfersRequest{} }

// GetBtcBlocksRequest and GetBtcTxsRequest share the chain-range filter
// only; the facade methods in methods.go pin Chains to {ChainBitcoin}
// regardless of caller input before either is sent.
type GetBtcBlocksRequest struct {
	ChainRange
}

type GetBtcTxsRequest struct {
	ChainRange
	AddressIn StringSet `json:"address__in,omitempty"`
}

func NewGetBtcBlocksRequest() GetBtcBlocksRequest { return GetBtcBlocksRequest{} }
func NewGetBtcTxsRequest() GetBtcTxsRequest       { return GetBtcTxsRequest{} }
