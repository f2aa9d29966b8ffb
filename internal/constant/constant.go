package constant

const (
	// ContextKeyRequestID is the fiber ctx.Locals key under which the request id
	// injected by the logger middleware is re-exposed to handlers.
	ContextKeyRequestID = "requestId"

	// RequestIDHeader carries the request id back to the caller.
	RequestIDHeader = "X-Market-Request-ID"

	// KeyAuthorizationRealm prefixes API keys in the Authorization header.
	KeyAuthorizationRealm = "Bearer "

	// APIKeyLength is the length of a minted API key in characters. Keys are
	// uniuri tokens, so each character carries roughly 6 bits of entropy.
	APIKeyLength = 32

	// LoginMaxRetries bounds key minting attempts on the (practically
	// impossible) event of a collision with an already issued key.
	LoginMaxRetries = 100
)
