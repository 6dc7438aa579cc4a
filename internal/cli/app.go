package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/shopadmin/internal/api"
	"github.com/dmitrijs2005/shopadmin/internal/config"
	"github.com/dmitrijs2005/shopadmin/internal/logging"
	"github.com/dmitrijs2005/shopadmin/internal/services"
	"github.com/dmitrijs2005/shopadmin/internal/session"
)

// App wires the session container, the API client, and the feature services
// into the interactive console.
type App struct {
	cfg     *config.Config
	log     logging.Logger
	session *session.Container

	users      services.UserService
	products   services.ProductService
	categories services.CategoryService
	orders     services.OrderService
	inventory  services.InventoryService
	stats      services.StatsService
	addresses  services.AddressService

	reader *bufio.Reader
	out    io.Writer
	screen Screen
}

// NewApp builds a fully wired App. Wiring order matters: the API client's
// bearer stage reads tokens from the container, while the container's login
// path runs through the API client — so the container is created first and
// the authenticator bound after the client exists.
func NewApp(cfg *config.Config, log logging.Logger) *App {
	store := session.NewFileStore(cfg.SessionFile, log)
	container := session.NewContainer(store, log)
	warmup := api.NewWarmupCoordinator(cfg.APIOrigin, log)

	app := &App{
		cfg:     cfg,
		log:     log,
		session: container,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
		screen:  ScreenLogin,
	}

	client := api.New(api.Options{
		Origin:         cfg.APIOrigin,
		Tokens:         container,
		Warmup:         warmup,
		OnUnauthorized: app.handleUnauthorized,
		Timeout:        cfg.RequestTimeout,
		Log:            log,
	})

	container.Bind(services.NewAuthService(client))

	app.users = services.NewUserService(client)
	app.products = services.NewProductService(client)
	app.categories = services.NewCategoryService(client)
	app.orders = services.NewOrderService(client)
	app.inventory = services.NewInventoryService(client)
	app.stats = services.NewStatsService(client)
	app.addresses = services.NewAddressService(client)

	// A persisted session skips the login screen.
	if container.CurrentUser() != nil {
		app.screen = ScreenOverview
	}
	return app
}

// Run starts the console loop and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	if user := a.session.CurrentUser(); user != nil {
		fmt.Fprintf(a.out, "Welcome back, %s\n", user.DisplayName())
	}
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.session.CurrentUser() != nil
}

// status renders the prompt fragment: who is logged in and where they are.
func (a *App) status() string {
	if user := a.session.CurrentUser(); user != nil {
		return fmt.Sprintf("%s @ %s", user.Email, a.screen)
	}
	return "anonymous"
}

// navigate applies the destination's guard and records where the user ended
// up. Returns the actual screen.
func (a *App) navigate(dst Screen) Screen {
	a.screen = guardFor(dst)(a.session.CurrentUser(), dst)
	return a.screen
}

// enter navigates to dst and reports whether the guard admitted it. A bounce
// prints a hint so the user knows why the command did nothing.
func (a *App) enter(dst Screen) bool {
	if a.navigate(dst) != dst {
		fmt.Fprintln(a.out, "please login first")
		return false
	}
	return true
}

// handleUnauthorized is the transport's 401 hook: the session is purged and,
// unless the user is already on the login screen, navigation is forced there.
func (a *App) handleUnauthorized() {
	a.session.Logout()
	if a.screen != ScreenLogin {
		a.screen = ScreenLogin
		fmt.Fprintln(a.out, "session expired, please login again")
	}
}
