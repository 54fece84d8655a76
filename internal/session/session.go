// Package session owns the client's authentication state machine. A Manager
// is the single component that reads or writes credential slots; everything
// else derives the authenticated/unauthenticated state from it.
package session

// Credential slot keys. The pair (SlotToken, SlotUserID) is the authority
// signal: a session exists exactly when both hold a value. Profile slots are
// optional decoration.
const (
	SlotToken       = "token"
	SlotUserID      = "userId"
	SlotDisplayName = "displayName"
	SlotPhoneNumber = "phoneNumber"
)

// Session is the authenticated identity reconstructed from the credential
// slots. DisplayName and PhoneNumber may be empty.
type Session struct {
	UserID      string
	Token       string
	DisplayName string
	PhoneNumber string
}

// Profile carries the optional user attributes returned by an authenticator.
type Profile struct {
	DisplayName string
	PhoneNumber string
}

// Grant is what an authenticator yields on successful sign-in or sign-up.
// Token is opaque: the session layer stores and forwards it, never inspects it.
type Grant struct {
	UserID  string
	Token   string
	Profile Profile
}
