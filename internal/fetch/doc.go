// Package fetch retrieves and parses carspecs.us pages.
//
// A fetch is a single fallible operation: an existence probe (HTTP HEAD)
// followed, only when the probe succeeds, by a GET whose body is parsed into
// a goquery document. A probe with a non-success status yields a
// *StatusError carrying the status code and URL, and no document.
//
// There is no retry and no caching. Timeouts and redirects are whatever the
// configured *http.Client does.
//
// # Usage
//
//	client, err := fetch.NewHTTPClient(fetch.ClientConfig{Timeout: 30 * time.Second})
//	f := fetch.New(client, fetch.WithLogger(logger))
//	page, err := f.Fetch(ctx, "https://www.carspecs.us/cars/toyota")
package fetch
