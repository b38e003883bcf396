// Package log builds the process logger: a slog text handler on stderr
// wrapped by SecureHandler, which masks credentials before they are written.
//
// carspecs logs URLs, proxy addresses, and request headers at debug level.
// Any of them can carry secrets (a proxy URL with user:pass, an
// Authorization or Cookie header from the config file), so SecureHandler
// redacts:
//   - attributes whose key names a credential (authorization, cookie, token, ...)
//   - values that look like a credential (bearer/basic tokens, JWTs)
//   - the user-info part of any URL in a string value, an error, or the message
//   - sensitive entries of map[string]string attributes such as "headers"
//
// # Usage
//
//	logger := log.NewSecureLogger(os.Stderr, verbose)
//	logger.Debug("proxy configured", "proxy", "socks5://me:pw@127.0.0.1:1080")
//	// proxy=socks5://***REDACTED***@127.0.0.1:1080
package log
