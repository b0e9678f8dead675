package app

import (
	"github.com/cdesjardins/botan/internal/domain/state"
)

// Configuration sections. Aliases live in their own section of the same key
// space; options use the conf section.
const (
	sectionConf  = "conf"
	sectionAlias = "alias"
)

// maxAliasDepth bounds alias dereferencing so a cyclic chain cannot loop
// forever.
const maxAliasDepth = 16

// unlockedMutex stands in for the real configuration lock until
// initialization installs one from the mutex factory.
type unlockedMutex struct{}

func (unlockedMutex) Lock()   {}
func (unlockedMutex) Unlock() {}

// ConfigStore is the locked key/value table holding both persistent
// settings and name aliases. Keys are composite "section/key" strings.
// Queries never fail; absent entries read as empty.
type ConfigStore struct {
	lock    state.Mutex
	entries map[string]string
}

// NewConfigStore creates an empty configuration store. Until SetLock
// installs a real mutex the store is not safe for concurrent use, which
// matches the single-threaded pre-initialization phase.
func NewConfigStore() *ConfigStore {
	return &ConfigStore{
		lock:    unlockedMutex{},
		entries: make(map[string]string),
	}
}

// SetLock installs the configuration lock produced by the mutex factory.
func (c *ConfigStore) SetLock(mu state.Mutex) {
	c.lock = mu
}

// Get returns the stored value for section/key, or "" if absent.
func (c *ConfigStore) Get(section, key string) string {
	c.lock.Lock()
	defer c.lock.Unlock()

	return c.entries[section+"/"+key]
}

// IsSet reports whether section/key has an entry, independent of its
// content. An entry set to the empty string is still set.
func (c *ConfigStore) IsSet(section, key string) bool {
	c.lock.Lock()
	defer c.lock.Unlock()

	_, ok := c.entries[section+"/"+key]
	return ok
}

// Set writes value under section/key, replacing any prior entry.
func (c *ConfigStore) Set(section, key, value string) {
	c.set(section+"/"+key, value, true)
}

// SetDefault writes value under section/key only when no entry exists or
// the existing value is empty. First writer wins, so a default-load pass
// never clobbers a value the caller set earlier.
func (c *ConfigStore) SetDefault(section, key, value string) {
	c.set(section+"/"+key, value, false)
}

func (c *ConfigStore) set(fullKey, value string, overwrite bool) {
	c.lock.Lock()
	defer c.lock.Unlock()

	if existing, ok := c.entries[fullKey]; !overwrite && ok && existing != "" {
		return
	}
	c.entries[fullKey] = value
}

// SetOption writes an option value in the conf section.
func (c *ConfigStore) SetOption(key, value string) {
	c.Set(sectionConf, key, value)
}

// Option returns an option value from the conf section, or "" if unset.
func (c *ConfigStore) Option(key string) string {
	return c.Get(sectionConf, key)
}

// AddAlias records key -> value in the alias namespace.
func (c *ConfigStore) AddAlias(key, value string) {
	c.Set(sectionAlias, key, value)
}

// DerefAlias follows the alias mapping from key until a name with no alias
// is reached and returns that name. A name with no alias dereferences to
// itself. Chains longer than maxAliasDepth return the last name reached
// together with ErrAliasCycle.
func (c *ConfigStore) DerefAlias(key string) (string, error) {
	name := key
	for hop := 0; c.IsSet(sectionAlias, name); hop++ {
		if hop >= maxAliasDepth {
			return name, state.ErrAliasCycle
		}
		name = c.Get(sectionAlias, name)
	}
	return name, nil
}
