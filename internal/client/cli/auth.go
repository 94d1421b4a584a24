package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/rizkyamal/nusaview/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates. On success the session
// holder flips, which moves navigation to the main screen; on failure the
// translated message is shown and nothing changes.
//
// The password byte slice is securely wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if email == "" || len(password) == 0 {
		fmt.Println("Email and password are required.")
		return nil
	}

	if err := a.auth.Login(ctx, email, string(password)); err != nil {
		log.Printf("Login unsuccessful: %s", err.Error())
		return nil
	}

	log.Printf("Login successful")
	return nil
}

// Register prompts for an email and password and attempts to create a new
// account. On success navigation moves to the email-verification notice; the
// user is not signed in until they verify and log in themselves.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if email == "" || len(password) == 0 {
		fmt.Println("Email and password are required.")
		return nil
	}

	if err := a.auth.Register(ctx, email, string(password)); err != nil {
		log.Printf("Registration unsuccessful: %s", err.Error())
		return nil
	}

	fmt.Println("Success! Check your email for a verification link.")
	a.nav.RegisterSucceeded()
	return nil
}

// Logout signs out. The session holder is always cleared, which resets
// navigation to the login screen.
func (a *App) Logout(ctx context.Context) {
	a.auth.Logout(ctx)
	log.Printf("Logged out")
}
