// Package response defines the JSON envelope returned by every endpoint.
package response

// Envelope is the canonical wrapper. Success responses carry Data and the
// optional list metadata; failures carry Message and, in development mode,
// Error with the raw detail.
type Envelope struct {
	Success    bool        `json:"success"`
	Data       interface{} `json:"data,omitempty"`
	Message    string      `json:"message,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
	Filter     *Filter     `json:"filter,omitempty"`
	Query      *Query      `json:"query,omitempty"`
	Error      string      `json:"error,omitempty"`
}

// Pagination describes one list page. HasMore only means the page was full;
// it does not guarantee a next page exists.
type Pagination struct {
	Page          int  `json:"page"`
	PerPage       int  `json:"perPage"`
	TotalReturned int  `json:"totalReturned"`
	HasMore       bool `json:"hasMore"`
}

type Filter struct {
	Borough string `json:"borough"`
}

// Query echoes the normalized list parameters actually applied.
type Query struct {
	Page    int     `json:"page"`
	PerPage int     `json:"perPage"`
	Borough *string `json:"borough"`
}

// OK builds a success envelope. A nil data is kept out of the body.
func OK(data interface{}, message string) Envelope {
	return Envelope{Success: true, Data: data, Message: message}
}

// Fail builds a failure envelope; detail is only kept when showDetail is set.
func Fail(message, detail string, showDetail bool) Envelope {
	e := Envelope{Success: false, Message: message}
	if showDetail {
		e.Error = detail
	}
	return e
}
