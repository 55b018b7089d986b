package http

import (
	"errors"
	"net/http"

	"github.com/openboard/openboard/internal/api/service"
	"github.com/openboard/openboard/pkg/httpx"
	"github.com/openboard/openboard/pkg/slogx"
)

type SigninHandler struct {
	TokenService *service.TokenService
}

// ServeHTTP godoc
//
//	@Summary		Signin Endpoint
//	@Description	Verify credentials and return a bearer token for the authorization header
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		signinRequest	true	"Signin payload"
//	@Success		200		{object}	signinResponse	"token"
//	@Failure		400		{object}	messageResponse	"Incorrect Inputs"
//	@Failure		401		{object}	messageResponse	"Invalid Credentials"
//	@Failure		500		{object}	messageResponse	"error during signin"
//	@Router			/signin [post].
func (h *SigninHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req signinRequest
	if err := decodeJSON(r, &req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, messageResponse{Message: "Incorrect Inputs"})
		return
	}

	token, err := h.TokenService.SignIn(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			httpx.WriteJSON(w, http.StatusUnauthorized, messageResponse{Message: "Invalid Credentials"})
			return
		}
		log.Error("signin failed", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, messageResponse{Message: "error during signin"})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, signinResponse{Token: token})
}
