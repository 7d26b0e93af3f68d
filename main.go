// Command boardsync is a terminal client for the board service: signs in,
// browses and mutates boards, cards and tasks through a cached query layer,
// and follows realtime pushes.
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"boardsync/api"
	"boardsync/query"
	"boardsync/session"
	"boardsync/storage"
	"boardsync/subscription"
)

const defaultAPIURL = "http://localhost:8080"

type config struct {
	apiURL      string
	socketURL   string
	sessionFile string
	redisURL    string
	cacheTTL    time.Duration

	jwksURL  string
	audience string
	issuer   string

	githubClientID string
	githubCallback string
}

func loadConfig() config {
	cfg := config{
		apiURL:         os.Getenv("BOARDSYNC_API_URL"),
		socketURL:      os.Getenv("BOARDSYNC_SOCKET_URL"),
		sessionFile:    os.Getenv("BOARDSYNC_SESSION_FILE"),
		redisURL:       os.Getenv("BOARDSYNC_REDIS"),
		jwksURL:        os.Getenv("BOARDSYNC_JWKS_URL"),
		audience:       os.Getenv("BOARDSYNC_JWT_AUDIENCE"),
		issuer:         os.Getenv("BOARDSYNC_JWT_ISSUER"),
		githubClientID: os.Getenv("BOARDSYNC_GITHUB_CLIENT_ID"),
		githubCallback: os.Getenv("BOARDSYNC_GITHUB_CALLBACK"),
	}
	if cfg.apiURL == "" {
		cfg.apiURL = defaultAPIURL
	}
	if cfg.socketURL == "" {
		derived, err := subscription.SocketURL(cfg.apiURL)
		if err != nil {
			log.Fatalf("invalid BOARDSYNC_API_URL: %v", err)
		}
		cfg.socketURL = derived
	}
	if cfg.sessionFile == "" {
		cfg.sessionFile = session.DefaultPath()
	}
	cfg.cacheTTL = 24 * time.Hour
	if v := os.Getenv("BOARDSYNC_CACHE_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			log.Fatalf("invalid BOARDSYNC_CACHE_TTL: %v", err)
		}
		cfg.cacheTTL = d
	}
	return cfg
}

// app holds the wired layers every command runs against.
type app struct {
	cfg      config
	api      *api.Client
	sessions *session.Store
	queries  *query.Client
	verifier *session.Verifier
}

func newApp(cfg config) *app {
	sessions := session.Open(cfg.sessionFile)
	client := api.New(cfg.apiURL, sessions.Token)

	var store storage.Store = storage.NewMemory()
	if cfg.redisURL != "" {
		opts, err := redis.ParseURL(cfg.redisURL)
		if err != nil {
			log.Fatalf("invalid BOARDSYNC_REDIS: %v", err)
		}
		store = storage.NewRedis(redis.NewClient(opts), cfg.cacheTTL)
	}

	a := &app{
		cfg:      cfg,
		api:      client,
		sessions: sessions,
		queries:  query.New(client, store),
	}
	if cfg.jwksURL != "" {
		v, err := session.NewVerifier(cfg.jwksURL, cfg.audience, cfg.issuer)
		if err != nil {
			log.Fatalf("jwks: %v", err)
		}
		a.verifier = v
	}
	return a
}

// requireSession is the guard in front of every authenticated command.
func (a *app) requireSession() (session.Session, error) {
	sess, ok := a.sessions.Current()
	if !ok {
		return session.Session{}, fmt.Errorf("not signed in; run `boardsync login <email>` first")
	}
	return sess, nil
}

func main() {
	if dbg, err := strconv.ParseBool(os.Getenv("DEBUG")); err == nil && dbg {
		log.SetLevel(log.DebugLevel)
	}
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
