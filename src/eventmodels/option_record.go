package eventmodels

type OptionRecord struct {
	Expiry     string   `json:"expiry" csv:"expiry"`
	Strike     float64  `json:"strike" csv:"strike"`
	CallPrice  *float64 `json:"call_price" csv:"call_price"`
	PutPrice   *float64 `json:"put_price" csv:"put_price"`
	TotalPrice *float64 `json:"total_price" csv:"total_price"`
}
