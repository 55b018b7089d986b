package http

import (
	"encoding/json"
	"errors"
	"net/http"
)

var errInvalidShape = errors.New("request body has invalid shape")

// decodeJSON parses the request body into a typed request value and runs its
// shape check. Handlers get either a well-formed value or a single error to
// map; no handler logic runs on a bad body.
func decodeJSON[T interface{ validate() error }](r *http.Request, dst T) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errInvalidShape
	}
	return dst.validate()
}

type signupRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

func (req *signupRequest) validate() error {
	if req.Username == "" || req.Password == "" || req.Name == "" {
		return errInvalidShape
	}
	return nil
}

type signinRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (req *signinRequest) validate() error {
	if req.Username == "" || req.Password == "" {
		return errInvalidShape
	}
	return nil
}

type createRoomRequest struct {
	Name string `json:"name"`
}

func (req *createRoomRequest) validate() error {
	if req.Name == "" {
		return errInvalidShape
	}
	return nil
}
