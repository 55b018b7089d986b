package http

// messageResponse is the generic error body. Every failure path answers with
// a fixed message string; nothing internal leaks to clients.
type messageResponse struct {
	Message string `json:"message"`
}

type signupResponse struct {
	UserID string `json:"userId"`
}

type signinResponse struct {
	Token string `json:"token"`
}

type createRoomResponse struct {
	RoomID string `json:"roomId"`
}

// healthResponse is returned by the livez/readyz probes.
type healthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *healthChecks `json:"checks,omitempty"`
}

type healthChecks struct {
	Database string `json:"database"`
}
