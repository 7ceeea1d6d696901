package app

import (
	"fmt"

	keysDomain "github.com/allisson/cryptokit/internal/keys/domain"
	keysHTTP "github.com/allisson/cryptokit/internal/keys/http"
	keysService "github.com/allisson/cryptokit/internal/keys/service"
	keysUseCase "github.com/allisson/cryptokit/internal/keys/usecase"
)

// KeyManager returns the RSA key manager service.
func (c *Container) KeyManager() keysService.Manager {
	c.keyManagerInit.Do(func() {
		c.keyManager = keysService.NewRSAKeyManager()
	})
	return c.keyManager
}

// KeyUseCase returns the key management use case, instrumented with business
// metrics when metrics are enabled.
func (c *Container) KeyUseCase() (keysUseCase.KeyUseCase, error) {
	var err error
	c.keyUseCaseInit.Do(func() {
		c.keyUseCase, err = c.initKeyUseCase()
		if err != nil {
			c.initErrors["keyUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["keyUseCase"]; exists {
		return nil, storedErr
	}
	return c.keyUseCase, nil
}

// KeyHandler returns the key management HTTP handler.
func (c *Container) KeyHandler() (*keysHTTP.KeyHandler, error) {
	useCase, err := c.KeyUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get key use case for handler: %w", err)
	}

	defaultKeySize, err := keysDomain.ParseRSAKeySize(c.config.DefaultRSAKeySize)
	if err != nil {
		return nil, fmt.Errorf("invalid default RSA key size: %w", err)
	}

	return keysHTTP.NewKeyHandler(useCase, defaultKeySize, c.Logger()), nil
}

// initKeyUseCase creates the key management use case instance.
func (c *Container) initKeyUseCase() (keysUseCase.KeyUseCase, error) {
	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for key use case: %w", err)
	}

	useCase := keysUseCase.NewKeyUseCase(c.KeyManager())
	return keysUseCase.NewKeyUseCaseWithMetrics(useCase, businessMetrics), nil
}
