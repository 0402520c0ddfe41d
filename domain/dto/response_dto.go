package dto

// Res is the envelope every endpoint replies with
type Res struct {
	ResponseCode    string      `json:"responseCode"`
	ResponseMessage string      `json:"responseMessage"`
	Data            interface{} `json:"data,omitempty"`
}

// SessionRes describes the current session. Token is only set right after a
// login, signup or director login.
type SessionRes struct {
	User          interface{} `json:"user"`
	Authenticated bool        `json:"authenticated"`
	Token         string      `json:"token,omitempty"`
}
