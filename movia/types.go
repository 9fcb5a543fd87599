package movia

// User is the account identity issued by the server. Read-only to the
// client; identity is ID.
type User struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Email   string `json:"email"`
}

// Profile is the authenticated user's full record as returned by
// GET /auth/me. The server uses Mongo-style field names for the id and
// the document version; Version is echoed back only, never computed
// client-side.
type Profile struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Surname     string `json:"surname"`
	Email       string `json:"email"`
	LikedMovies []int  `json:"likedMovies"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
	Version     int    `json:"__v"`
}

// User returns the identity subset of the profile.
func (p Profile) User() User {
	return User{ID: p.ID, Name: p.Name, Surname: p.Surname, Email: p.Email}
}

// Movie is an immutable catalog snapshot from the server.
type Movie struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Year        int      `json:"year"`
	Rating      float64  `json:"rating"`
	Actors      []string `json:"actors"`
	Category    string   `json:"category"`
	PosterURL   string   `json:"poster_url"`
	Description string   `json:"description"`
}

// authResponse is the success body of /auth/login and /auth/register.
type authResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	User    User   `json:"user"`
}

// updateProfileResponse is the success body of PUT /users/profile.
type updateProfileResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
}
