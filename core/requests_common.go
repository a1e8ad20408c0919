package core

// ChainRange is the chain filter and block-range pair every request record
// embeds. It is deliberately anonymous-embedded in each record so its three
// fields flatten into the record's own JSON object: the wire format has no
// nested "range" object, just chains/from_block/to_block alongside the
// record's other fields.
type ChainRange struct {
	Chains    ChainSet `json:"chains,omitempty"`
	FromBlock Bound    `json:"from_block"`
	ToBlock   Bound    `json:"to_block"`
}

// defaultFuelChains seeds a Fuel-only request with {FUEL} rather than an
// empty chain set.
func defaultFuelChains() ChainSet {
	return NewChainSet(ChainFuel)
}
