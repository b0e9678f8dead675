package botan

import (
	"fmt"
	"sync"

	"github.com/cdesjardins/botan/internal/app"
	"github.com/cdesjardins/botan/internal/domain/state"
	"github.com/cdesjardins/botan/internal/infrastructure/modules"
	"github.com/cdesjardins/botan/internal/pkg/config"
	"github.com/cdesjardins/botan/internal/pkg/logger"
)

// LibraryState is the runtime core owning configuration, allocators and the
// algorithm factory. See the app package for its full surface.
type LibraryState = app.LibraryState

// InitializerOptions carries the recognized initialization flags.
type InitializerOptions = state.InitializerOptions

var (
	globalMu    sync.Mutex
	globalState *app.LibraryState
)

// GlobalState returns the process-wide library state, lazily constructing
// and initializing it with default parameters on first call. The lazy
// initialization runs the same protocol as an explicit Initialize and can
// fail the same ways.
func GlobalState() (*LibraryState, error) {
	globalMu.Lock()
	defer globalMu.Unlock()

	if globalState == nil {
		s, err := newDefaultState(state.InitializerOptions{ThreadSafe: true})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize global library state: %w", err)
		}
		globalState = s
	}
	return globalState, nil
}

// SetGlobalState installs newState as the process-wide state, destroying
// whatever was previously installed. Passing nil resets to "no state
// installed" so the next GlobalState call re-initializes.
func SetGlobalState(newState *LibraryState) {
	if old := SwapGlobalState(newState); old != nil {
		old.Close()
	}
}

// SwapGlobalState installs newState and returns the previous state without
// destroying it; ownership of the returned state transfers to the caller.
func SwapGlobalState(newState *LibraryState) *LibraryState {
	globalMu.Lock()
	defer globalMu.Unlock()

	old := globalState
	globalState = newState
	return old
}

// Initialize constructs a library state from a space-separated option
// string such as "thread_safe=true self_test=true", initializes it with the
// built-in modules and installs it as the process-wide state.
func Initialize(options string) error {
	opts, err := state.ParseInitializerOptions(options)
	if err != nil {
		return err
	}

	s, err := newDefaultState(opts)
	if err != nil {
		return err
	}

	SetGlobalState(s)
	return nil
}

// InitializeWithSettings validates the given settings, constructs a library
// state from them and installs it as the process-wide state. A "locking"
// default allocator selects the secure module set so key material is backed
// by page-locked memory from the start.
func InitializeWithSettings(settings *config.LibrarySettings) error {
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("invalid library settings: %w", err)
	}

	log, err := defaultLogger()
	if err != nil {
		return err
	}

	opts := state.InitializerOptions{
		ThreadSafe: settings.ThreadSafe,
		FipsMode:   settings.FipsMode,
		SelfTest:   settings.SelfTest,
	}

	mods := modules.NewDefaultModules(log)
	if settings.DefaultAllocator == config.AllocatorLocking {
		mods = modules.NewSecureModules(log)
	}

	s := app.NewLibraryState(log)
	if err := s.Initialize(opts, mods); err != nil {
		return err
	}

	SetGlobalState(s)
	return nil
}

// NewLibraryState constructs an uninitialized library state logging through
// the shared console logger.
func NewLibraryState() (*LibraryState, error) {
	log, err := defaultLogger()
	if err != nil {
		return nil, err
	}
	return app.NewLibraryState(log), nil
}

func newDefaultState(opts state.InitializerOptions) (*app.LibraryState, error) {
	log, err := defaultLogger()
	if err != nil {
		return nil, err
	}

	s := app.NewLibraryState(log)
	if err := s.Initialize(opts, modules.NewDefaultModules(log)); err != nil {
		return nil, err
	}
	return s, nil
}

func defaultLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeConsole,
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger.GetLogger()
}
