package controller

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

// ProfileData is the profile screen's payload: the editable fields and
// the read-only parts of the profile. After an update the fields hold
// exactly what the server echoed back.
type ProfileData struct {
	Name        string
	Surname     string
	Email       string
	LikedMovies []int
	CreatedAt   string
	UpdatedAt   string
	Success     string
}

// Profile drives the profile screen. Input validation lives here, not
// in the client: the client forwards whatever it is given.
type Profile struct {
	api    ProfileAPI
	logger zerolog.Logger

	mu   sync.Mutex
	gen  uint64
	snap Snapshot[ProfileData]
}

// NewProfile creates a profile controller in the Idle state.
func NewProfile(api ProfileAPI, logger zerolog.Logger) *Profile {
	return &Profile{api: api, logger: logger}
}

// Load fetches the profile.
func (p *Profile) Load(ctx context.Context) {
	p.mu.Lock()
	p.gen++
	gen := p.gen
	p.snap.Phase = Loading
	p.snap.Err = ""
	p.snap.Data.Success = ""
	p.mu.Unlock()

	profile, err := p.api.Profile(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()
	if gen != p.gen {
		p.logger.Debug().Msg("Dropping stale profile response")
		return
	}
	if err != nil {
		p.snap = Snapshot[ProfileData]{Phase: Failed, Err: errorText(err)}
		return
	}
	p.snap = Snapshot[ProfileData]{Phase: Ready, Data: ProfileData{
		Name:        profile.Name,
		Surname:     profile.Surname,
		Email:       profile.Email,
		LikedMovies: profile.LikedMovies,
		CreatedAt:   profile.CreatedAt,
		UpdatedAt:   profile.UpdatedAt,
	}}
}

// Update submits the three editable fields and adopts the server echo.
// Empty fields are rejected locally before any network call.
func (p *Profile) Update(ctx context.Context, name, surname, email string) {
	if name == "" || surname == "" || email == "" {
		p.mu.Lock()
		p.snap.Err = "All fields are required"
		p.snap.Data.Success = ""
		p.mu.Unlock()
		return
	}

	p.mu.Lock()
	p.gen++
	gen := p.gen
	p.snap.Phase = Loading
	p.snap.Err = ""
	p.snap.Data.Success = ""
	p.mu.Unlock()

	user, err := p.api.UpdateProfile(ctx, name, surname, email)

	p.mu.Lock()
	defer p.mu.Unlock()
	if gen != p.gen {
		return
	}
	if err != nil {
		p.snap.Phase = Ready
		p.snap.Err = errorText(err)
		return
	}
	// The server may normalize fields; adopt its echo, not the input.
	p.snap.Phase = Ready
	p.snap.Data.Name = user.Name
	p.snap.Data.Surname = user.Surname
	p.snap.Data.Email = user.Email
	p.snap.Data.Success = "Profile updated successfully"
}

// Snapshot returns the current screen state.
func (p *Profile) Snapshot() Snapshot[ProfileData] {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snap
}
