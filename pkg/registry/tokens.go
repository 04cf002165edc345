package registry

// additionalTokenSpecs is the curated table of ERC-20 tokens from the unified
// registry that have deployments on chains the wallet supports but are not yet
// present in the wallet's own tables. Order here is emission order.
var additionalTokenSpecs = []TokenSpec{
	{
		Symbol:          "LDO",
		Name:            "Lido DAO",
		CMCID:           cmcID(8000),
		Category:        "DeFi",
		EthereumAddress: "0x5A98FcBEA516Cf06857215779Fd812CA3beF1B32",
	},
	{
		Symbol:          "IMX",
		Name:            "Immutable X",
		CMCID:           cmcID(10603),
		Category:        "Layer 2",
		EthereumAddress: "0xF57e7e7C23978C3cAEC3C3548E3D615c346e79fF",
	},
	{
		Symbol:          "ENA",
		Name:            "Ethena",
		CMCID:           cmcID(30171),
		Category:        "DeFi",
		EthereumAddress: "0x57e114B691Db790C35207b2e685D4A43181e6061",
	},
	{
		Symbol:          "ONDO",
		Name:            "Ondo Finance",
		CMCID:           cmcID(21159),
		Category:        "RWA",
		EthereumAddress: "0xfAbA6f8e4a5E8Ab82F62fe7C39859FA577269BE3",
	},
	{
		Symbol:          "HYPE",
		Name:            "Hyperliquid",
		CMCID:           cmcID(33021),
		Category:        "DEX",
		EthereumAddress: "0xEa66501Df1a00261e3bB79D1e90444fc6C7104e7",
	},
	{
		Symbol:          "MNT",
		Name:            "Mantle",
		CMCID:           cmcID(27075),
		Category:        "Layer 2",
		EthereumAddress: "0x3c3a81e81dc49A522A592e7622A7E711c06bf354",
	},
}

// AdditionalTokens expands the static table into a fresh TokenSet. Each call
// returns a new set so callers can subset or decorate without affecting the
// table.
func AdditionalTokens() *TokenSet {
	set := NewTokenSet()
	for _, spec := range additionalTokenSpecs {
		set.MustAdd(spec.Expand())
	}
	return set
}

func cmcID(id int) *int {
	return &id
}
