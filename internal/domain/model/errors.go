package model

import (
	"context"
	"errors"
	"fmt"
	"net/url"
)

var (
	// ErrGeocodeNoResult は逆ジオコーディングの結果が0件だったことを表す
	ErrGeocodeNoResult = errors.New("geocoding provider returned no results")
	// ErrUnknownCategory は未定義のカテゴリが指定されたことを表す
	ErrUnknownCategory = errors.New("unknown place category")
)

// StatusTransportError は外部APIに到達できなかったことを表すProviderErrorのステータス
const StatusTransportError = "transport_error"

// ValidationError はバリデーションエラーを表す
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ProviderError は外部APIとの通信エラーを表す
// Messageにはリクエスト URL（APIキーを含む）を入れない
type ProviderError struct {
	Provider   string
	StatusCode int
	Status     string
	Message    string
	Timeout    bool
	Err        error
}

// NewTransportError はHTTPクライアントのエラーをURLを除いたProviderErrorに変換する
func NewTransportError(provider string, err error) *ProviderError {
	providerErr := &ProviderError{Provider: provider, Status: StatusTransportError, Err: err}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		providerErr.Err = urlErr.Err
		providerErr.Timeout = urlErr.Timeout()
	}
	if errors.Is(providerErr.Err, context.DeadlineExceeded) {
		providerErr.Timeout = true
	}
	if providerErr.Err != nil {
		providerErr.Message = providerErr.Err.Error()
	}
	return providerErr
}

func (e *ProviderError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Provider, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Provider, e.Status)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Is はタイムアウトした通信エラーを context.DeadlineExceeded として扱う
func (e *ProviderError) Is(target error) bool {
	return e.Timeout && target == context.DeadlineExceeded
}
