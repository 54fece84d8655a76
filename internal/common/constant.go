// Package common contains shared constants and small helpers for working with
// random strings and secure memory wiping, used across the Eater session core.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the access
// token on outbound requests.
const AccessTokenHeaderName = "access_token"

// AuthorizationHeaderName is the HTTP header populated by the request
// authorizer. Values use the Bearer scheme.
const AuthorizationHeaderName = "Authorization"
