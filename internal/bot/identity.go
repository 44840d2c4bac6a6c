package bot

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// ErrNoOwner is returned when application info carries no owner.
var ErrNoOwner = errors.New("application info has no owner")

// ApplicationFetcher looks up the current application.
type ApplicationFetcher interface {
	CurrentApplication() (*discordgo.Application, error)
}

// SessionApplicationFetcher queries "@me" through a discordgo session.
type SessionApplicationFetcher struct {
	Session *discordgo.Session
}

// CurrentApplication implements ApplicationFetcher
func (f SessionApplicationFetcher) CurrentApplication() (*discordgo.Application, error) {
	return f.Session.Application("@me")
}

// Identity is who the bot is and who owns it.
type Identity struct {
	ApplicationID string
	Owners        map[string]struct{}
}

// OwnerIDs returns the owner set as a slice
func (i Identity) OwnerIDs() []string {
	ids := make([]string, 0, len(i.Owners))
	for id := range i.Owners {
		ids = append(ids, id)
	}
	return ids
}

// ResolveIdentity fetches application info once. The owner set holds exactly
// the application's owner.
func ResolveIdentity(f ApplicationFetcher) (Identity, error) {
	app, err := f.CurrentApplication()
	if err != nil {
		return Identity{}, fmt.Errorf("could not access application info: %w", err)
	}
	if app == nil || app.Owner == nil || app.Owner.ID == "" {
		return Identity{}, ErrNoOwner
	}

	return Identity{
		ApplicationID: app.ID,
		Owners:        map[string]struct{}{app.Owner.ID: {}},
	}, nil
}
