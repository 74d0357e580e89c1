package events

import (
	"errors"
	"net/http"

	e "volunteercal/internal/core/domain/errors"
	"volunteercal/internal/core/domain/logging"
	"volunteercal/internal/core/domain/user"
	"volunteercal/internal/http/handlers/auth"
	"volunteercal/internal/http/handlers/response"

	"github.com/r3labs/sse/v2"
)

// Handler streams the notifications of the authenticated user.
// Browsers cannot set headers on an EventSource, so the access token comes
// in the "token" query parameter.
type Handler struct {
	log           logging.Logger
	sseServer     *sse.Server
	authenticator user.Authenticator
}

func New(
	log logging.Logger,
	sseServer *sse.Server,
	authenticator user.Authenticator,
) *Handler {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if sseServer == nil {
		panic(e.NewNilArgumentError("sseServer"))
	}
	if authenticator == nil {
		panic(e.NewNilArgumentError("authenticator"))
	}
	return &Handler{log: log, sseServer: sseServer, authenticator: authenticator}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	token, ok := auth.ParseToken(r)
	if !ok {
		raw := r.URL.Query().Get("token")
		if raw == "" || len(raw) > auth.AUTH_TOKEN_MAX_LEN {
			response.RenderUnauthorized(rw)
			return
		}
		token = user.AccessToken(raw)
	}

	userID, err := h.authenticator.Authenticate(r.Context(), token)
	if err != nil {
		if !errors.Is(err, user.ErrInvalidAccessToken) {
			logging.Error(r.Context(), h.log, err)
		}
		response.RenderUnauthorized(rw)
		return
	}

	// The stream is always the caller's own and the token stays out of
	// anything the SSE server sees.
	query := r.URL.Query()
	query.Del("token")
	query.Set("stream", string(userID))
	r.URL.RawQuery = query.Encode()

	go func() {
		<-r.Context().Done()
		h.log.Info(r.Context(), "Unsubscribed from notifications.", logging.Entry("userID", userID))
	}()

	h.log.Info(r.Context(), "Subscribed to notifications.", logging.Entry("userID", userID))
	h.sseServer.ServeHTTP(rw, r)
}
