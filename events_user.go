package eventsub

// UserUpdateEvent is sent when a user updates their account.
type UserUpdateEvent struct {
	UserID        string `json:"user_id"`
	UserLogin     string `json:"user_login"`
	UserName      string `json:"user_name"`
	Email         string `json:"email,omitempty"`
	EmailVerified bool   `json:"email_verified"`
	Description   string `json:"description"`
}

// UserAuthorizationGrantEvent is sent when a user grants authorization to
// the client ID named in the subscription condition.
type UserAuthorizationGrantEvent struct {
	ClientID  string `json:"client_id"`
	UserID    string `json:"user_id"`
	UserLogin string `json:"user_login"`
	UserName  string `json:"user_name"`
}

// UserAuthorizationRevokeEvent is sent when a user revokes authorization for
// the client ID named in the subscription condition. The login and display
// name are empty if the user no longer exists.
type UserAuthorizationRevokeEvent struct {
	ClientID  string `json:"client_id"`
	UserID    string `json:"user_id"`
	UserLogin string `json:"user_login,omitempty"`
	UserName  string `json:"user_name,omitempty"`
}

func (UserUpdateEvent) eventPayload()              {}
func (UserAuthorizationGrantEvent) eventPayload()  {}
func (UserAuthorizationRevokeEvent) eventPayload() {}
