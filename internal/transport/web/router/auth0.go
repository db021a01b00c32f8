package router

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/auth0/go-jwt-middleware/v2/jwks"
	"github.com/auth0/go-jwt-middleware/v2/validator"
)

const bearerPrefix = "Bearer "

// NewAuth0Validator validates Auth0-issued JWTs from the Authorization
// header. Requests without a bearer token don't apply.
func NewAuth0Validator(auth0Domain, auth0Audience string) (AuthValidator, error) {
	issuerURL, err := url.Parse("https://" + auth0Domain + "/")
	if err != nil {
		return nil, fmt.Errorf("failed to parse the issuer url: %w", err)
	}

	provider := jwks.NewCachingProvider(issuerURL, 5*time.Minute)
	jwtValidator, err := validator.New(
		provider.KeyFunc,
		validator.RS256,
		issuerURL.String(),
		[]string{auth0Audience},
		validator.WithAllowedClockSkew(time.Minute),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT validator: %w", err)
	}

	return func(r *http.Request) (*AuthResult, error) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			return nil, nil
		}

		token := strings.TrimPrefix(header, bearerPrefix)
		claims, err := jwtValidator.ValidateToken(r.Context(), token)
		if err != nil {
			return nil, fmt.Errorf("validating JWT: %w", err)
		}

		validated, ok := claims.(*validator.ValidatedClaims)
		if !ok {
			return nil, fmt.Errorf("unexpected claims type %T", claims)
		}

		return &AuthResult{UserID: validated.RegisteredClaims.Subject}, nil
	}, nil
}
