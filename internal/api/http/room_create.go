package http

import (
	"errors"
	"net/http"

	"github.com/openboard/openboard/internal/api/service"
	"github.com/openboard/openboard/pkg/httpx"
	"github.com/openboard/openboard/pkg/slogx"
)

type RoomCreateHandler struct {
	RoomService *service.RoomService
}

// ServeHTTP godoc
//
//	@Summary		Create Room Endpoint
//	@Description	Create a room owned by the authenticated user; the name becomes the unique slug
//	@Tags			Rooms
//	@Security		TokenAuth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		createRoomRequest	true	"Room payload"
//	@Success		200		{object}	createRoomResponse	"roomId"
//	@Failure		400		{object}	messageResponse		"Invalid Input"
//	@Failure		401		{object}	messageResponse		"Unauthorized"
//	@Failure		403		{object}	messageResponse		"Unauthorized (auth gate)"
//	@Failure		500		{object}	messageResponse		"Room already exists"
//	@Router			/room [post].
func (h *RoomCreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	// The auth gate already rejected unauthenticated requests; this re-check
	// is defensive in case the handler is ever mounted without it.
	userID, ok := httpx.UserIDFromCtx(ctx)
	if !ok {
		httpx.WriteJSON(w, http.StatusUnauthorized, messageResponse{Message: "Unauthorized"})
		return
	}

	var req createRoomRequest
	if err := decodeJSON(r, &req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, messageResponse{Message: "Invalid Input"})
		return
	}

	room, err := h.RoomService.CreateRoom(ctx, userID, req.Name)
	if err != nil {
		if errors.Is(err, service.ErrRoomAlreadyExists) {
			// Known quirk kept for client compatibility: slug conflicts answer
			// 500 rather than 409.
			httpx.WriteJSON(w, http.StatusInternalServerError, messageResponse{Message: "Room already exists"})
			return
		}
		log.Error("room creation failed", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, messageResponse{Message: "error during room creation"})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, createRoomResponse{RoomID: room.ID})
}
