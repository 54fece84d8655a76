package cli

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/eaterapp/eaterauth/internal/common"
	"github.com/eaterapp/eaterauth/internal/session"
)

// SignIn prompts for credentials and establishes a session.
func (a *App) SignIn(ctx context.Context) error {

	identifier, err := GetSimpleText(a.reader, "-Enter email", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	defer common.WipeByteArray(password)

	s, err := a.sessions.SignIn(ctx, identifier, string(password))
	if err != nil {
		log.Printf("Login unsuccessfull: %s", session.Message(err))
		return err
	}

	log.Printf("Login successfull, welcome %s", s.DisplayName)
	return nil
}

// SignUp prompts for new account details and establishes a session.
func (a *App) SignUp(ctx context.Context) error {

	identifier, err := GetSimpleText(a.reader, "-Enter email", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	displayName, err := GetSimpleText(a.reader, "-Enter display name (optional)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	defer common.WipeByteArray(password)

	s, err := a.sessions.SignUp(ctx, identifier, string(password), displayName)
	if err != nil {
		log.Printf("Registration unsuccessfull: %s", session.Message(err))
		return err
	}

	log.Printf("Registration successfull, welcome %s", s.DisplayName)
	return nil
}

// SignOut clears the stored session.
func (a *App) SignOut(ctx context.Context) error {
	if err := a.sessions.SignOut(ctx); err != nil {
		log.Printf("Logout unsuccessfull: %s", session.Message(err))
		return err
	}
	log.Println("Logged out")
	return nil
}

// WhoAmI prints the current session, if any.
func (a *App) WhoAmI(ctx context.Context) error {
	s, err := a.sessions.CurrentSession(ctx)
	if err != nil {
		log.Printf("error: %s", session.Message(err))
		return err
	}
	if s == nil {
		log.Println("Not signed in")
		return nil
	}
	log.Printf("User ID: %s", s.UserID)
	if s.DisplayName != "" {
		log.Printf("Display name: %s", s.DisplayName)
	}
	if s.PhoneNumber != "" {
		log.Printf("Phone number: %s", s.PhoneNumber)
	}
	return nil
}

// Refresh forces a token refresh for the current session.
func (a *App) Refresh(ctx context.Context) error {
	if _, err := a.sessions.RefreshToken(ctx, true); err != nil {
		log.Printf("Refresh unsuccessfull: %s", session.Message(err))
		return err
	}
	log.Println("Token refreshed")
	return nil
}

// Order builds an authorized order request and prints the header it would be
// sent with. The demo client has no backend to deliver it to.
func (a *App) Order(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, "https://api.eater.app/v1/orders", nil)
	if err != nil {
		return err
	}

	authorized, err := a.authorizer.Authorize(ctx, req)
	if err != nil {
		log.Printf("Order unsuccessfull: %s", session.Message(err))
		return err
	}

	log.Printf("Order request ready: %s %s", authorized.Method, authorized.URL)
	log.Printf("%s: %s", common.AuthorizationHeaderName, authorized.Header.Get(common.AuthorizationHeaderName))
	return nil
}
