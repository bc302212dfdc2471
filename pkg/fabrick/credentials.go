// Package fabrick defines the integration surface towards the Fabrick
// banking upstream: the credential bundle, the envelope codec for its
// wrapped JSON responses, the wire-level payload shapes, and the Gateway
// port the business services consume.
package fabrick

import "github.com/bdelibalta/fabrick-gateway/pkg/config"

// Credentials is the immutable upstream credential bundle: base URL,
// per-resource path templates, auth scheme and API key. Constructed once at
// startup from configuration and never mutated.
type Credentials struct {
	BaseURL          string
	AuthSchema       string
	ApiKey           string
	BalancePath      string
	TransactionsPath string
	TransfersPath    string
}

// NewCredentials builds the credential bundle from the loaded configuration.
func NewCredentials(cfg *config.Fabrick) Credentials {
	return Credentials{
		BaseURL:          cfg.BaseURL,
		AuthSchema:       cfg.AuthSchema,
		ApiKey:           cfg.ApiKey,
		BalancePath:      cfg.BalancePath,
		TransactionsPath: cfg.TransactionsPath,
		TransfersPath:    cfg.TransfersPath,
	}
}
