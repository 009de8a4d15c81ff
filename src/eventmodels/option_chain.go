package eventmodels

// OptionChain holds both sides of the chain for one expiration.
type OptionChain struct {
	Expiration string
	Calls      []OptionQuote
	Puts       []OptionQuote
}
