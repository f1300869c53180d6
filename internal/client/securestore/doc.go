// Package securestore keeps short secrets, such as the API access token,
// encrypted at rest in the local metadata table.
//
// Values are sealed with AES-256-GCM (see cryptox.Sealer). The key comes
// from a Keyring on every call and is wiped right after, so the Store never
// holds key material between calls.
//
// A value that fails to decode or authenticate is reported as ErrCorrupted;
// the store never hands back unauthenticated plaintext.
package securestore
