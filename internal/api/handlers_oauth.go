package api

import (
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
	"github.com/noesis-app/noesis/internal/services"
)

// OAuthBegin redirects the browser to the provider's consent screen. Gothic is
// net/http based, so the fiber context is bridged through the adaptor.
func (handler *Handler) OAuthBegin(c *fiber.Ctx) error {
	provider := strings.ToLower(strings.TrimSpace(c.Params("provider")))
	if _, err := goth.GetProvider(provider); err != nil {
		return apiError(c, fiber.StatusNotFound, "unknown provider")
	}

	return adaptor.HTTPHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r = withProviderParam(r, provider)
		gothic.BeginAuthHandler(w, r)
	})(c)
}

// OAuthCallback completes the provider handshake, resolves or creates the
// local account, grants the daily login bonus and hands back a signed token.
// With a client redirect configured the token travels as a query parameter;
// otherwise the response is plain JSON.
func (handler *Handler) OAuthCallback(c *fiber.Ctx) error {
	provider := strings.ToLower(strings.TrimSpace(c.Params("provider")))
	if _, err := goth.GetProvider(provider); err != nil {
		return apiError(c, fiber.StatusNotFound, "unknown provider")
	}

	var gothUser goth.User
	var completeErr error
	if err := adaptor.HTTPHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r = withProviderParam(r, provider)
		gothUser, completeErr = gothic.CompleteUserAuth(w, r)
	})(c); err != nil {
		return err
	}
	if completeErr != nil {
		log.Printf("oauth %s callback failed: %v", provider, completeErr)
		return handler.oauthFailure(c, "authentication failed")
	}

	claims := services.NormalizeProviderProfile(provider, gothUser)
	user, err := handler.oauthService.FindOrCreateFromClaims(claims)
	if err != nil {
		switch err {
		case services.ErrOAuthSubjectMissing, services.ErrOAuthEmailMissing:
			return handler.oauthFailure(c, err.Error())
		default:
			log.Printf("oauth %s account resolution failed: %v", provider, err)
			return handler.oauthFailure(c, "failed to sign in")
		}
	}

	award, err := handler.gamificationService.AwardLoginPoints(user.ID)
	if err != nil {
		log.Printf("oauth %s login bonus failed: %v", provider, err)
	} else {
		user.Points = award.Points
		user.Level = award.Level
	}

	token, err := handler.buildToken(&user)
	if err != nil {
		return handler.oauthFailure(c, "failed to create token")
	}

	if handler.clientRedirectURL != "" {
		return c.Redirect(handler.clientRedirectURL+"?token="+url.QueryEscape(token), fiber.StatusFound)
	}
	return c.JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

func (handler *Handler) oauthFailure(c *fiber.Ctx, message string) error {
	if handler.clientRedirectURL != "" {
		return c.Redirect(handler.clientRedirectURL+"?error="+url.QueryEscape(message), fiber.StatusFound)
	}
	return apiError(c, fiber.StatusUnauthorized, message)
}

// withProviderParam injects the provider into the query string, which is how
// gothic discovers which provider a request belongs to.
func withProviderParam(r *http.Request, provider string) *http.Request {
	query := r.URL.Query()
	query.Set("provider", provider)
	r.URL.RawQuery = query.Encode()
	return r
}
