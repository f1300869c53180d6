// Package common contains shared constants and sentinel errors used across
// leaguefeed components.
package common

// AccessTokenHeaderName is the HTTP header used to carry the api key on
// outbound collection requests.
const AccessTokenHeaderName = "x-access-token"

// APIKeyStorageKey is the single secure-store slot holding the api key.
const APIKeyStorageKey = "api_key"
