package registry

// ChainEntry maps a logical network name to the wallet-internal variant tags
// that represent it (address formats, script types, and so on).
type ChainEntry struct {
	Name     string
	Variants []string
}

// supportedChains lists every network the wallet ships support for, in the
// order the wallet documents them. The unified-registry filter consults this
// table when deciding which deployments survive extraction.
var supportedChains = []ChainEntry{
	{Name: "Bitcoin", Variants: []string{"BitcoinLegacy", "BitcoinSegwit", "BitcoinTaproot"}},
	{Name: "Ethereum", Variants: []string{"Ethereum"}},
	{Name: "Solana", Variants: []string{"Solana"}},
	{Name: "Tron", Variants: []string{"Tron"}},
	{Name: "Dogecoin", Variants: []string{"Dogecoin"}},
	{Name: "Filecoin", Variants: []string{"Filecoin"}},
	{Name: "Cosmos", Variants: []string{"Cosmos"}},
	{Name: "Osmosis", Variants: []string{"Osmosis"}},
	{Name: "Secret", Variants: []string{"Secret"}},
	{Name: "Juno", Variants: []string{"Juno"}},
	{Name: "Akash", Variants: []string{"Akash"}},
	{Name: "Celestia", Variants: []string{"Celestia"}},
	{Name: "Sei", Variants: []string{"Sei"}},
	{Name: "Injective", Variants: []string{"Injective"}},
	{Name: "Near", Variants: []string{"Near"}},
	{Name: "Sui", Variants: []string{"Sui"}},
	{Name: "Ripple", Variants: []string{"Ripple"}},
	{Name: "Tezos", Variants: []string{"Tezos"}},
}

// SupportedChains returns the supported-chain table in declaration order.
// Callers must treat the result as read-only.
func SupportedChains() []ChainEntry {
	return supportedChains
}

// ChainSupported reports whether the named network is one the wallet supports.
func ChainSupported(name string) bool {
	for _, entry := range supportedChains {
		if entry.Name == name {
			return true
		}
	}
	return false
}

// chainLogoIDs carries the CoinMarketCap image ids used for chain logos in
// emitted deployments. Chains without an entry render chain_logo as None.
var chainLogoIDs = map[string]int{
	"Ethereum": 1027,
}

// ChainLogoURL returns the logo URL emitted for deployments on the named
// chain, or the empty string when no logo id is on file.
func ChainLogoURL(chain string) string {
	id, ok := chainLogoIDs[chain]
	if !ok {
		return ""
	}
	return CMCLogoURL(id)
}
