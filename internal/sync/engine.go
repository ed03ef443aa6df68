// ABOUTME: Sync engine pushing local notes to a GitHub repository.
// ABOUTME: One-way mirror over the contents API; local state always wins.

package sync

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/samk106/SimpleNotesMD/internal/github"
	"github.com/samk106/SimpleNotesMD/internal/store"
)

const (
	// Interval is the auto-sync period.
	Interval = 5 * time.Minute

	// TokenPrefix is the required personal-access-token prefix; anything
	// else is rejected before a network call is made.
	TokenPrefix = "ghp_"

	notesDir        = "notes"
	repoDescription = "SimpleMD Notes - Private markdown notes"
)

var (
	ErrInvalidToken = errors.New(`token must start with "` + TokenPrefix + `"`)
	ErrMissingRepo  = errors.New("repository name is required")
	ErrNotConnected = errors.New("not connected to GitHub")
	ErrSyncInFlight = errors.New("a sync pass is already running")
)

// Engine reconciles the note store against a remote GitHub repository.
//
// This is a deliberate one-way mirror, not a bidirectional sync: every pass
// pushes the full local snapshot and overwrites whatever is on the remote.
// Edits made to the repository outside this tool are not detected, not
// merged, and will be clobbered by the next pass.
type Engine struct {
	store   *store.Store
	configs *ConfigManager
	log     *log.Logger
	baseURL string

	// inFlight is a single-slot guard: a pass requested while another is
	// running is rejected, never run concurrently.
	inFlight atomic.Bool

	mu   sync.Mutex // guards stop
	stop chan struct{}
}

// Option configures an Engine.
type Option func(*Engine)

// WithBaseURL points the engine at an alternate API endpoint.
func WithBaseURL(u string) Option {
	return func(e *Engine) { e.baseURL = u }
}

// WithLogger replaces the engine's logger.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.log = l }
}

func NewEngine(s *store.Store, opts ...Option) *Engine {
	e := &Engine{
		store:   s,
		configs: NewConfigManager(s),
		log:     log.NewWithOptions(os.Stderr, log.Options{Prefix: "sync"}),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Configs exposes the engine's config manager.
func (e *Engine) Configs() *ConfigManager {
	return e.configs
}

func (e *Engine) client(token string) *github.Client {
	c := github.NewClient(token)
	if e.baseURL != "" {
		c.BaseURL = e.baseURL
	}
	return c
}

// Connect validates the credential, verifies it against the identity
// endpoint, provisions the repository if it does not exist, persists the
// config, and runs one full sync pass.
func (e *Engine) Connect(ctx context.Context, token, repo string) (*Config, error) {
	if !strings.HasPrefix(token, TokenPrefix) {
		return nil, ErrInvalidToken
	}
	if strings.TrimSpace(repo) == "" {
		return nil, ErrMissingRepo
	}

	client := e.client(token)

	user, err := client.User(ctx)
	if err != nil {
		return nil, fmt.Errorf("verify token: %w", err)
	}

	err = client.GetRepo(ctx, user.Login, repo)
	switch {
	case errors.Is(err, github.ErrNotFound):
		if err := client.CreateRepo(ctx, repo, repoDescription); err != nil {
			return nil, fmt.Errorf("create repository: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("check repository: %w", err)
	}

	cfg := &Config{
		Connected: true,
		Token:     token,
		Username:  user.Login,
		Repo:      repo,
		AutoSync:  false,
	}
	if err := e.configs.Save(cfg); err != nil {
		return nil, err
	}

	if res, err := e.Sync(ctx); err != nil {
		e.log.Warn("initial sync failed", "err", err)
	} else if res.Failed > 0 {
		e.log.Warn("initial sync incomplete", "synced", res.Synced, "failed", res.Failed)
	}

	return cfg, nil
}

// Disconnect stops the auto-sync timer and erases the sync config. Local
// notes are untouched, and a pass already in flight is not aborted.
func (e *Engine) Disconnect() error {
	e.StopAutoSync()
	return e.configs.Clear()
}

// Result summarizes a sync pass.
type Result struct {
	Synced int
	Failed int
}

// Sync pushes every stored note to the remote as notes/<slug>.md. Per-note
// failures are logged and counted; they never abort the pass. A pass
// requested while another is running returns ErrSyncInFlight.
func (e *Engine) Sync(ctx context.Context) (Result, error) {
	if !e.inFlight.CompareAndSwap(false, true) {
		return Result{}, ErrSyncInFlight
	}
	defer e.inFlight.Store(false)

	cfg, err := e.configs.Load()
	if err != nil {
		return Result{}, err
	}
	if !cfg.Connected {
		return Result{}, ErrNotConnected
	}

	notes, err := e.store.List("")
	if err != nil {
		return Result{}, err
	}

	client := e.client(cfg.Token)
	pass := uuid.NewString()[:8]

	var res Result
	for _, note := range notes {
		path := NotePath(note.Title)

		sha := ""
		file, err := client.GetFile(ctx, cfg.Username, cfg.Repo, path)
		switch {
		case err == nil:
			sha = file.SHA
		case !errors.Is(err, github.ErrNotFound):
			e.log.Error("read remote file", "pass", pass, "note", note.ID, "path", path, "err", err)
			res.Failed++
			continue
		}

		msg := "Update " + note.Title
		if err := client.PutFile(ctx, cfg.Username, cfg.Repo, path, msg, []byte(note.Content), sha); err != nil {
			e.log.Error("write remote file", "pass", pass, "note", note.ID, "path", path, "err", err)
			res.Failed++
			continue
		}
		res.Synced++
	}

	return res, nil
}

// SetAutoSync persists the auto-sync preference and starts or stops the
// recurring timer accordingly.
func (e *Engine) SetAutoSync(enabled bool) error {
	cfg, err := e.configs.Load()
	if err != nil {
		return err
	}
	if !cfg.Connected {
		return ErrNotConnected
	}

	cfg.AutoSync = enabled
	if err := e.configs.Save(cfg); err != nil {
		return err
	}

	if enabled {
		e.StartAutoSync()
	} else {
		e.StopAutoSync()
	}
	return nil
}

// StartAutoSync launches the recurring sync timer. Starting an already
// running timer is a no-op. Pass failures are logged and do not stop the
// timer.
func (e *Engine) StartAutoSync() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stop != nil {
		return
	}
	stop := make(chan struct{})
	e.stop = stop

	go func() {
		ticker := time.NewTicker(Interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				res, err := e.Sync(context.Background())
				if err != nil && !errors.Is(err, ErrSyncInFlight) {
					e.log.Error("auto-sync failed", "err", err)
				} else if err == nil && res.Failed > 0 {
					e.log.Warn("auto-sync incomplete", "synced", res.Synced, "failed", res.Failed)
				}
			case <-stop:
				return
			}
		}
	}()
}

// StopAutoSync stops the recurring timer if it is running. It does not
// cancel a pass already in flight.
func (e *Engine) StopAutoSync() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stop != nil {
		close(e.stop)
		e.stop = nil
	}
}

// NotePath derives the remote path for a note title: lower-cased, every
// non-alphanumeric character replaced by a hyphen, under the notes
// directory with a .md extension.
func NotePath(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('-')
		}
	}
	return notesDir + "/" + b.String() + ".md"
}
