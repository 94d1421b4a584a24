package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/rizkyamal/nusaview/internal/client/config"
	"github.com/rizkyamal/nusaview/internal/client/nav"
	"github.com/rizkyamal/nusaview/internal/client/services"
	"github.com/rizkyamal/nusaview/internal/client/supabase"
)

type App struct {
	cfg     *config.Config
	session *services.Session
	auth    *services.AuthService
	nav     *nav.Controller
	tab     string

	destinations   *services.DestinationService
	culinary       *services.CulinaryService
	accommodations *services.AccommodationService
	souvenirs      *services.SouvenirService
	gallery        *services.GalleryService

	reader *bufio.Reader
}

// NewApp wires the whole client: two backend project clients, the session
// holder, the auth service, and one listing service per content tab. Nothing
// here is a package-level singleton; everything is passed down explicitly.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	primary := supabase.New(cfg.Primary.URL, cfg.Primary.AnonKey, cfg.HTTPTimeout)
	primaryStorage, err := supabase.NewS3Storage(ctx, cfg.Primary.URL, cfg.Storage.Region, cfg.Storage.AccessKey, cfg.Storage.SecretKey)
	if err != nil {
		return nil, err
	}
	primary.Storage = primaryStorage

	culinary := supabase.NewAnonymous(cfg.Culinary.URL, cfg.Culinary.AnonKey, cfg.HTTPTimeout)
	culinaryStorage, err := supabase.NewS3Storage(ctx, cfg.Culinary.URL, cfg.Storage.Region, cfg.Storage.AccessKey, cfg.Storage.SecretKey)
	if err != nil {
		return nil, err
	}
	culinary.Storage = culinaryStorage

	session := services.NewSession()

	return &App{
		cfg:            cfg,
		session:        session,
		auth:           services.NewAuthService(primary.Auth, session),
		tab:            nav.TabDestinations,
		destinations:   services.NewDestinationService(primary, session),
		culinary:       services.NewCulinaryService(culinary, session),
		accommodations: services.NewAccommodationService(primary, session),
		souvenirs:      services.NewSouvenirService(primary, session),
		gallery:        services.NewGalleryService(primary, session),
		reader:         bufio.NewReader(os.Stdin),
	}, nil
}

// Run checks the stored session, picks the initial route from it, and enters
// the command loop. Session flips drive the navigation controller for the
// rest of the app's lifetime.
func (a *App) Run(ctx context.Context) {
	a.auth.CheckStatus(ctx)
	a.nav = nav.NewController(a.session.Authenticated())
	a.session.Subscribe(a.nav.OnSessionChange)
	a.Root(ctx)
}

func (a *App) status() string {
	s := ""
	if a.session.Authenticated() {
		s = a.session.Email() + " "
	}
	s += string(a.nav.Current())
	if a.nav.Current() == nav.RouteMain {
		s += "/" + a.tab
	}
	return fmt.Sprintf("(%s)", s)
}
