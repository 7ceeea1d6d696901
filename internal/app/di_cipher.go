package app

import (
	"fmt"

	cipherHTTP "github.com/allisson/cryptokit/internal/cipher/http"
	cipherService "github.com/allisson/cryptokit/internal/cipher/service"
	cipherUseCase "github.com/allisson/cryptokit/internal/cipher/usecase"
)

// CipherEngine returns the symmetric cipher engine service.
func (c *Container) CipherEngine() cipherService.Engine {
	c.cipherEngineInit.Do(func() {
		c.cipherEngine = cipherService.NewCipherEngine()
	})
	return c.cipherEngine
}

// CipherUseCase returns the cipher use case, instrumented with business
// metrics when metrics are enabled.
func (c *Container) CipherUseCase() (cipherUseCase.CipherUseCase, error) {
	var err error
	c.cipherUseCaseInit.Do(func() {
		c.cipherUseCase, err = c.initCipherUseCase()
		if err != nil {
			c.initErrors["cipherUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["cipherUseCase"]; exists {
		return nil, storedErr
	}
	return c.cipherUseCase, nil
}

// CipherHandler returns the cipher HTTP handler.
func (c *Container) CipherHandler() (*cipherHTTP.CipherHandler, error) {
	useCase, err := c.CipherUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get cipher use case for handler: %w", err)
	}
	return cipherHTTP.NewCipherHandler(useCase, c.Logger()), nil
}

// initCipherUseCase creates the cipher use case instance.
func (c *Container) initCipherUseCase() (cipherUseCase.CipherUseCase, error) {
	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for cipher use case: %w", err)
	}

	useCase := cipherUseCase.NewCipherUseCase(c.CipherEngine())
	return cipherUseCase.NewCipherUseCaseWithMetrics(useCase, businessMetrics), nil
}
