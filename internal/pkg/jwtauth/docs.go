// Package jwtauth holds the crypto plumbing behind authentication: signing
// and verifying HS256 access tokens, hashing and checking passwords with
// bcrypt, and minting opaque refresh token strings.
//
// The package is deliberately domain-free. It deals in plain strings and
// Claims so the application layer stays the only place where users and
// refresh tokens meet.
package jwtauth
