package eventmodels

type OptionsChainResponse struct {
	SpotPrice   float64        `json:"spot_price"`
	OptionsData []OptionRecord `json:"options_data"`
}

func NewOptionsChainResponse(spotPrice float64) *OptionsChainResponse {
	return &OptionsChainResponse{
		SpotPrice:   spotPrice,
		OptionsData: []OptionRecord{},
	}
}

// Expiries returns the distinct expiry values in the order they first appear.
func (r *OptionsChainResponse) Expiries() []string {
	seen := make(map[string]struct{})
	var expiries []string

	for _, record := range r.OptionsData {
		if _, found := seen[record.Expiry]; found {
			continue
		}

		seen[record.Expiry] = struct{}{}
		expiries = append(expiries, record.Expiry)
	}

	return expiries
}
