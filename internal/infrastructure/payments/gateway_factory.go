package payments

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"payment_reconciler/internal/usecase/interfaces"
)

var ErrUnknownGatewayProvider = errors.New("unknown PAYMENT_GATEWAY_PROVIDER")

const (
	ProviderHTTP        = "http"
	ProviderMercadoPago = "mercadopago"
	ProviderMemory      = "memory"
)

// NewGatewayFromEnv builds the payment gateway selected by the environment.
//
// Supported env vars:
//   - PAYMENT_GATEWAY_MOCK / MERCADOPAGO_MOCK (any of 1,true,yes,on,mock selects the in-memory gateway)
//   - PAYMENT_GATEWAY_PROVIDER (http | mercadopago | memory; default: http)
//   - PAYMENT_API_URL, PAYMENT_API_PRIVATE_KEY, PAYMENT_API_TIMEOUT (http provider)
//   - MERCADOPAGO_ACCESS_TOKEN (mercadopago provider)
func NewGatewayFromEnv() (interfaces.IPaymentGateway, error) {
	provider := strings.ToLower(strings.TrimSpace(getenvDefault("PAYMENT_GATEWAY_PROVIDER", ProviderHTTP)))
	if isPaymentGatewayMockEnabled() && provider != ProviderMercadoPago {
		provider = ProviderMemory
	}
	log.Printf("[payment][gateway] provider=%s", provider)

	switch provider {
	case ProviderMemory:
		return NewInMemoryGateway(), nil
	case ProviderMercadoPago:
		gw, err := NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
		if err != nil {
			return nil, err
		}
		return gw, nil
	case ProviderHTTP:
		timeout := defaultPaymentAPITimeout
		if raw := strings.TrimSpace(os.Getenv("PAYMENT_API_TIMEOUT")); raw != "" {
			d, err := time.ParseDuration(raw)
			if err != nil {
				return nil, fmt.Errorf("invalid PAYMENT_API_TIMEOUT %q: %w", raw, err)
			}
			timeout = d
		}
		gw, err := NewHTTPGateway(HTTPGatewayConfig{
			BaseURL:    getenvDefault("PAYMENT_API_URL", defaultPaymentAPIURL),
			PrivateKey: os.Getenv("PAYMENT_API_PRIVATE_KEY"),
			Timeout:    timeout,
		})
		if err != nil {
			return nil, err
		}
		return gw, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownGatewayProvider, provider)
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
