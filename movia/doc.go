// Package movia provides a client for the Movia movie catalog API.
//
// The client covers the three API surfaces of the service: account
// authentication (login/register), the movie catalog (listing, single
// movies, the per-user liked set), and the user profile.
//
// # Authentication
//
// Requests carry a bearer token supplied by a TokenStore. The client
// attaches the token whenever one is present and otherwise sends the
// request without an Authorization header, leaving rejection to the
// server. A successful Login or Register persists the new token
// through the same store before returning, so callers may assume a
// success result implies an established session.
//
// # Usage
//
//	client, err := movia.New("https://host/api", sessionManager, logger,
//		movia.WithTimeout(30*time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	user, err := client.Login(ctx, email, password)
//	movies, err := client.Movies(ctx)
//
// # Error Handling
//
// Every failure is classified into one of a small set of types:
//
//   - RequestError: the request could not be built (programming defect)
//   - NetworkError: transport failure, no response obtained
//   - ErrNoData: empty body where one was expected
//   - ServerError: non-2xx status with a best-effort extracted message
//   - DecodeError: body received but not of the expected shape
//
// ServerError includes helper methods for classification:
//
//	var serr *movia.ServerError
//	if errors.As(err, &serr) && serr.IsNotFound() {
//		// Handle missing movie
//	}
package movia
