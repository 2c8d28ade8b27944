package models

// StockQuery holds the four query parameters of a stock price request.
// All values stay untyped strings; they are substituted into the upstream
// URL as received.
type StockQuery struct {
	Symbol     string
	From       string
	To         string
	Resolution string
}

// Complete reports whether every required parameter is present and non-empty.
func (q StockQuery) Complete() bool {
	return q.Symbol != "" && q.From != "" && q.To != "" && q.Resolution != ""
}

// ErrorResponse is the envelope used for every non-success response.
type ErrorResponse struct {
	Error string `json:"error"`
}
