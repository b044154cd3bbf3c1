package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/quiztris/internal/config"
	"github.com/vovakirdan/quiztris/internal/engine"
	"github.com/vovakirdan/quiztris/internal/session"
	"github.com/vovakirdan/quiztris/internal/storage"
)

// guestPlayer names sessions that log in without a user name.
const guestPlayer = "guest"

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.quiztris/host_key.
	HostKeyPath string

	// DBPath is the path to the scores database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	// Unfinished games not touched for this long are dropped as well.
	IdleTimeout time.Duration

	// Seed fixes the RNG seed of every session. 0 seeds from the clock.
	Seed int64

	// Game is the configuration each session plays with.
	Game config.Config
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	def := config.Default()
	return SSHServerConfig{
		Address:     def.Server.Address,
		DBPath:      "~/.quiztris/scores.db",
		IdleTimeout: def.Server.IdleTimeout(),
		Game:        def,
	}
}

// SSHServer wraps a Wish SSH server hosting one independent game per
// connection.
type SSHServer struct {
	config   SSHServerConfig
	server   *ssh.Server
	store    *storage.Store
	sessions *session.Store
	logger   *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
// A nil logger logs to stderr.
func NewSSHServer(cfg SSHServerConfig, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "quiztris-ssh",
		})
	}

	// Open storage
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage
		store = nil
	}

	srv := &SSHServer{
		config:   cfg,
		store:    store,
		sessions: session.NewStore(),
		logger:   logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".quiztris", "host_key")
	}

	// Ensure host key directory exists
	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}
	if cfg.IdleTimeout > 0 {
		opts = append(opts, wish.WithIdleTimeout(cfg.IdleTimeout))
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// playerName returns the session key for an SSH user.
func playerName(user string) string {
	if user == "" {
		return guestPlayer
	}
	return user
}

// newSessionModel builds the game model for one connection.
func (s *SSHServer) newSessionModel(player string, renderer *lipgloss.Renderer) Model {
	seed := s.config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	opts := Options{
		Player:   player,
		Sessions: s.sessions,
		Renderer: renderer,
	}
	if s.store != nil {
		opts.Results = s.store
	}

	eng := engine.NewSeeded(s.config.Game.Quiz.Options(), seed)
	return NewModel(eng, s.config.Game, opts)
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	if _, _, ok := sshSession.Pty(); !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	player := playerName(sshSession.User())
	model := s.newSessionModel(player, bubbletea.MakeRenderer(sshSession))
	if model.resumed {
		s.logger.Info("resuming game", "user", player, "score", model.State().Score)
	}

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		player := playerName(sshSession.User())
		s.logger.Info("session started",
			"user", player,
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)

		if st, ok := s.sessions.Get(session.ID(player)); ok {
			snap := st.Snapshot()
			s.logger.Info("session ended",
				"user", player,
				"remote", sshSession.RemoteAddr().String(),
				"phase", snap.Phase,
				"score", snap.Score,
				"wrong", snap.Wrong,
				"resumable", true,
			)
			return
		}
		s.logger.Info("session ended",
			"user", player,
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.pruneLoop(ctx)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// pruneLoop drops stale unfinished games until ctx is done.
func (s *SSHServer) pruneLoop(ctx context.Context) {
	if s.config.IdleTimeout <= 0 {
		return
	}
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.sessions.Prune(s.config.IdleTimeout); n > 0 {
				s.logger.Debug("pruned stale games", "count", n)
			}
		}
	}
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
