package models

// UserSession is the auxiliary login state kept next to the core collections.
// Nothing is enforced with it; it only remembers who the client said it was.
type UserSession struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Role           Role   `json:"role"`
	ProfilePicture string `json:"profilePicture,omitempty"`
}
