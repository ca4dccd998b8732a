package main

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// loginErrorMessage is shown verbatim above the login form on any failed
// attempt, without distinguishing bad email from bad password.
const loginErrorMessage = "Invalid email or password"

// checkCredentials verifies an admin login. The email comparison is constant
// time and bcrypt runs even on email mismatch so timing does not reveal
// which field was wrong.
func checkCredentials(cfg Config, email, password string) bool {
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(cfg.AdminEmail)) == 1
	passOK := bcrypt.CompareHashAndPassword([]byte(cfg.AdminPasswordHash), []byte(password)) == nil
	return emailOK && passOK
}
