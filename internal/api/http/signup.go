package http

import (
	"errors"
	"net/http"

	"github.com/openboard/openboard/internal/api/service"
	"github.com/openboard/openboard/pkg/httpx"
	"github.com/openboard/openboard/pkg/slogx"
)

type SignupHandler struct {
	UserService *service.UserService
}

// ServeHTTP godoc
//
//	@Summary		Signup Endpoint
//	@Description	Create a new user account from username (email), password and display name
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		signupRequest	true	"Signup payload"
//	@Success		200		{object}	signupResponse	"userId"
//	@Failure		411		{object}	messageResponse	"user already exists"
//	@Router			/signup [post].
func (h *SignupHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req signupRequest
	if err := decodeJSON(r, &req); err != nil {
		// Known quirk kept for client compatibility: shape failures answer
		// 200 with a fixed message body, not a 4xx.
		httpx.WriteJSON(w, http.StatusOK, messageResponse{Message: "invalid inputs"})
		return
	}

	user, err := h.UserService.SignUp(ctx, req.Username, req.Password, req.Name)
	if err != nil {
		if errors.Is(err, service.ErrUsernameAlreadyTaken) {
			// 411 is what existing clients expect for duplicates.
			httpx.WriteJSON(w, http.StatusLengthRequired, messageResponse{Message: "user already exists"})
			return
		}
		log.Error("signup failed", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, messageResponse{Message: "error during signup"})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, signupResponse{UserID: user.ID})
}
