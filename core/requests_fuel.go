package core

// Fuel-chain-only request records. Every constructor seeds Chains with
// {ChainFuel}; the facade methods in methods.go reject any caller override
// that includes a non-Fuel chain before a request is ever sent.

// GetFuelBlocksRequest queries Fuel block headers by DA block-number range.
type GetFuelBlocksRequest struct {
	ChainRange
	DABlockNumberGTE *uint64 `json:"da_block_number__gte,omitempty"`
	DABlockNumberLTE *uint64 `json:"da_block_number__lte,omitempty"`
}

// NewGetFuelBlocksRequest returns a record defaulted to the Fuel chain and
// an unbounded range.
func NewGetFuelBlocksRequest() GetFuelBlocksRequest {
	return GetFuelBlocksRequest{ChainRange: ChainRange{Chains: defaultFuelChains()}}
}

// GetFuelLogsRequest queries Fuel receipt logs filtered by emitting
// contract id and by the two 64-bit register values (ra, rb) Fuel log
// receipts carry.
type GetFuelLogsRequest struct {
	ChainRange
	IDIn StringSet `json:"id__in,omitempty"`
	RaIn StringSet `json:"ra__in,omitempty"`
	RbIn StringSet `json:"rb__in,omitempty"`
}

func NewGetFuelLogsRequest() GetFuelLogsRequest {
	return GetFuelLogsRequest{ChainRange: ChainRange{Chains: defaultFuelChains()}}
}

// GetFuelTxsRequest queries Fuel transactions by type and by the contract
// ids they touch, plus mint-amount bounds for Mint transactions.
type GetFuelTxsRequest struct {
	ChainRange
	TransactionTypeIn        StringSet `json:"transaction_type__in,omitempty"`
	MetadataContractIDIn     StringSet `json:"metadata_contract_id__in,omitempty"`
	InputContractContractIDIn StringSet `json:"input_contract_contract_id__in,omitempty"`
	MintAssetIDIn            StringSet `json:"mint_asset_id__in,omitempty"`
	MintAmountLTE            *uint64   `json:"mint_amount__lte,omitempty"`
	MintAmountGTE            *uint64   `json:"mint_amount__gte,omitempty"`
}

func NewGetFuelTxsRequest() GetFuelTxsRequest {
	return GetFuelTxsRequest{ChainRange: ChainRange{Chains: defaultFuelChains()}}
}

// GetFuelReceiptsRequest queries Fuel transaction receipts by receipt type.
type GetFuelReceiptsRequest struct {
	ChainRange
	ReceiptTypeIn StringSet `json:"receipt_type__in,omitempty"`
}

func NewGetFuelReceiptsRequest() GetFuelReceiptsRequest {
	return GetFuelReceiptsRequest{ChainRange: ChainRange{Chains: defaultFuelChains()}}
}

// GetFuelMessagesRequest queries Fuel bridge messages by sender, recipient,
// amount bounds, DA block-number bounds, and message type.
type GetFuelMessagesRequest struct {
	ChainRange
	DABlockNumberGTE *uint64   `json:"da_block_number__gte,omitempty"`
	DABlockNumberLTE *uint64   `json:"da_block_number__lte,omitempty"`
	SenderIn         StringSet `json:"sender__in,omitempty"`
	RecipientIn      StringSet `json:"recipient__in,omitempty"`
	AmountGTE        *uint64   `json:"amount__gte,omitempty"`
	AmountLTE        *uint64   `json:"amount__lte,omitempty"`
	MessageTypeIn    StringSet `json:"message_type__in,omitempty"`
}

func NewGetFuelMessagesRequest() GetFuelMessagesRequest {
	return GetFuelMessagesRequest{ChainRange: ChainRange{Chains: defaultFuelChains()}}
}

// GetUtxoRequest queries Fuel UTXOs, optionally constrained to those still
// unspent at a given block.
type GetUtxoRequest struct {
	ChainRange
	UnspentAt Bound     `json:"unspent_at"`
	AddressIn StringSet `json:"address__in,omitempty"`
}

func NewGetUtxoRequest() GetUtxoRequest {
	return GetUtxoRequest{ChainRange: ChainRange{Chains: defaultFuelChains()}}
}

// GetSparkMarketRequest queries Spark order-book market events.
type GetSparkMarketRequest struct {
	ChainRange
	EventTypeIn  StringSet `json:"event_type__in,omitempty"`
	BaseAssetIn  StringSet `json:"base_asset__in,omitempty"`
	QuoteAssetIn StringSet `json:"quote_asset__in,omitempty"`
	MarketIDIn   StringSet `json:"market_id__in,omitempty"`
}

func NewGetSparkMarketRequest() GetSparkMarketRequest {
	return GetSparkMarketRequest{ChainRange: ChainRange{Chains: defaultFuelChains()}}
}

// GetSparkOrderRequest queries Spark order-book order events.
type GetSparkOrderRequest struct {
	ChainRange
	OrderIDIn   StringSet `json:"order_id__in,omitempty"`
	OrderTypeIn StringSet `json:"order_type__in,omitempty"`
	EventTypeIn StringSet `json:"event_type__in,omitempty"`
	LimitTypeIn StringSet `json:"limit_type__in,omitempty"`
	UserIn      StringSet `json:"user__in,omitempty"`
	AssetIn     StringSet `json:"asset__in,omitempty"`
	MarketIDIn  StringSet `json:"market_id__in,omitempty"`
	AddressIn   StringSet `json:"address__in,omitempty"`
}

func NewGetSparkOrderRequest() GetSparkOrderRequest {
	return GetSparkOrderRequest{ChainRange: ChainRange{Chains: defaultFuelChains()}}
}

// GetSrc20Request queries SRC-20 (Fuel fungible token standard) metadata
// and mint/burn events. Defaults from_block to block 0 so a fresh
// subscription sees a token's full mint/burn history by default.
type GetSrc20Request struct {
	ChainRange
	ContractIDIn StringSet `json:"contract_id__in,omitempty"`
	AssetIDIn    StringSet `json:"asset_id__in,omitempty"`
	SymbolIn     StringSet `json:"symbol__in,omitempty"`
	NameIn       StringSet `json:"name__in,omitempty"`
	DecimalsGTE  *uint8    `json:"decimals__gte,omitempty"`
	DecimalsLTE  *uint8    `json:"decimals__lte,omitempty"`
}

func NewGetSrc20Request() GetSrc20Request {
	return GetSrc20Request{ChainRange: ChainRange{Chains: defaultFuelChains(), FromBlock: ExactBound(0)}}
}

// GetSrc7Request queries SRC-7 (Fuel NFT metadata standard) key/value
// records, also defaulting from_block to 0.
type GetSrc7Request struct {
	ChainRange
	AssetIn  StringSet `json:"asset__in,omitempty"`
	KeyIn    StringSet `json:"key__in,omitempty"`
	SenderIn StringSet `json:"sender__in,omitempty"`
}

func NewGetSrc7Request() GetSrc7Request {
	return GetSrc7Request{ChainRange: ChainRange{Chains: defaultFuelChains(), FromBlock: ExactBound(0)}}
}

// GetMiraPoolsRequest, GetMiraLiquidityRequest and GetMiraSwapsRequest share
// an identical filter shape (pool address plus the two pool asset
// addresses plus a combined asset filter) across the three Mira DEX
// query kinds.
type miraFilter struct {
	ChainRange
	PoolAddressIn   StringSet `json:"pool_address__in,omitempty"`
	Asset0AddressIn StringSet `json:"asset0_address__in,omitempty"`
	Asset1AddressIn StringSet `json:"asset1_address__in,omitempty"`
	AssetsIn        StringSet `json:"assets__in,omitempty"`
}

type GetMiraPoolsRequest struct{ miraFilter }
type GetMiraLiquidityRequest struct{ miraFilter }
type GetMiraSwapsRequest struct{ miraFilter }

func NewGetMiraPoolsRequest() GetMiraPoolsRequest {
	return GetMiraPoolsRequest{miraFilter{ChainRange: ChainRange{Chains: defaultFuelChains()}}}
}

func NewGetMiraLiquidityRequest() GetMiraLiquidityRequest {
	return GetMiraLiquidityRequest{miraFilter{ChainRange: ChainRange{Chains: defaultFuelChains()}}}
}

func NewGetMiraSwapsRequest() GetMiraSwapsRequest {
	return GetMiraSwapsRequest{miraFilter{ChainRange: ChainRange{Chains: defaultFuelChains()}}}
}
