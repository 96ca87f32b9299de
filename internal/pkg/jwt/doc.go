// Package jwt signs and verifies the service's bearer tokens.
//
// Tokens are HS256 JSON Web Tokens whose claims are an arbitrary caller
// object merged with a server timestamp and a fixed issuer. No expiry is
// added at signing time. Verified claims can be carried on a request context
// with SetAuth and read back with GetAuth.
package jwt
