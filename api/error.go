package api

type Error struct {
	Code  string `json:"code,omitempty"`
	Error string `json:"error"`
	// Required and Available are set for message_too_large errors
	Required  int `json:"required,omitempty"`
	Available int `json:"available,omitempty"`
}
