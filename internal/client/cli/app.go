package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/leaguefeed/internal/client/cacheaside"
	"github.com/dmitrijs2005/leaguefeed/internal/client/client"
	"github.com/dmitrijs2005/leaguefeed/internal/client/config"
	"github.com/dmitrijs2005/leaguefeed/internal/client/models"
	"github.com/dmitrijs2005/leaguefeed/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/leaguefeed/internal/client/repositories/posts"
	"github.com/dmitrijs2005/leaguefeed/internal/client/repositories/users"
	"github.com/dmitrijs2005/leaguefeed/internal/client/securestore"
	"github.com/dmitrijs2005/leaguefeed/internal/client/services"
	"github.com/dmitrijs2005/leaguefeed/internal/common"
	"github.com/dmitrijs2005/leaguefeed/internal/filex"
	"github.com/dmitrijs2005/leaguefeed/internal/logging"
	"github.com/dmitrijs2005/leaguefeed/internal/netx"
)

type App struct {
	authService  services.AuthService
	feedService  services.FeedService
	userService  services.UserService
	cacheService services.CacheService
	log          logging.Logger
	reader       *bufio.Reader
	out          io.Writer
	db           *sql.DB

	// loggedIn caches the login state shown in the prompt. Reading the token
	// may run a full KDF, so it is only read once and then kept in sync by
	// Login and Logout.
	loggedIn *bool
}

// NewApp wires storage, the remote client and the services described by c.
// The returned App owns the database handle; call Close when done.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	if _, err := filex.EnsureDir(c.DataDir); err != nil {
		return nil, fmt.Errorf("error preparing data dir: %w", err)
	}

	db, err := client.InitDatabase(ctx, c.DatabasePath())
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	meta := metadata.NewSQLiteRepository(db)

	var keys securestore.Keyring
	if c.Passphrase != "" {
		keys = securestore.NewPassphraseKeyring(c.Passphrase, meta)
	} else {
		keys = securestore.NewFileKeyring(c.KeyPath())
	}
	store := securestore.New(meta, keys)
	token := store.Secret(common.APIKeyStorageKey)

	api := client.NewHTTPClient(c.BaseURL, netx.NewHTTPClient(c.RequestTimeout), log)

	userCache := users.NewSQLiteRepository(db)
	postCache := posts.NewSQLiteRepository(db)

	userRepo := cacheaside.New[models.User]("users", userCache, cacheaside.RemoteFunc[models.User](api.Users), token, log)
	postRepo := cacheaside.New[models.Post]("posts", postCache, cacheaside.RemoteFunc[models.Post](api.Posts), token, log)

	return &App{
		authService: services.NewAuthService(api, store, log),
		feedService: services.NewFeedService(postRepo, userRepo, log),
		userService: services.NewUserService(userRepo, postCache),
		cacheService: services.NewCacheService(log,
			services.NamedClearer{Name: "posts", Clearer: postCache},
			services.NamedClearer{Name: "users", Clearer: userCache},
		),
		log:    log,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		db:     db,
	}, nil
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

// Run starts the REPL and blocks until the user exits or stdin closes.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	fmt.Fprintln(a.out, "League feed CLI (type 'help' for commands)")
	runREPL(ctx, a, func() string { return a.status(ctx) }, a.reader)
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	if a.loggedIn != nil {
		return *a.loggedIn
	}
	token, _, err := a.authService.Token(ctx)
	if err != nil {
		return false
	}
	a.setLoggedIn(token != "")
	return *a.loggedIn
}

func (a *App) setLoggedIn(v bool) {
	a.loggedIn = &v
}

func (a *App) status(ctx context.Context) string {
	if a.isLoggedIn(ctx) {
		return "(logged in)"
	}
	return "(anonymous)"
}
