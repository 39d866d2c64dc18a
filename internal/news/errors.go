package news

import "fmt"

// UpstreamError is a failure reported by the news provider itself.
// It is the caller's fault (bad category, bad query, bad key) and maps to 400.
type UpstreamError struct {
	Code    string
	Message string
}

func (e *UpstreamError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("news provider error %s: %s", e.Code, e.Message)
	}
	return "news provider error: " + e.Message
}

// NetworkError is a failure to obtain a usable response from the provider:
// connection failures, timeouts and undecodable bodies. It maps to 500.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return "fetching news: " + e.Err.Error()
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
