// Package pathenv manages the machine-wide executable search path.
//
// The PATH list is modeled as a single delimited string behind a Store
// with plain Get/Set operations. All add/remove logic runs in memory
// against the retrieved value and writes back once, so it can be tested
// against an in-memory store. The write is an unsynchronized
// read-modify-write against shared OS state: two simultaneous installer
// runs can race, which is a documented operational limitation.
package pathenv

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/ruping/ruping-setup/pkg/logger"
)

// Store reads and writes the machine-scoped PATH value as a single
// delimited string.
type Store interface {
	// Get returns the current PATH value.
	Get() (string, error)

	// Set replaces the PATH value.
	Set(value string) error
}

// Delimiter returns the platform's PATH list separator.
func Delimiter() string {
	return string(os.PathListSeparator)
}

// Mutator applies add/remove transactions to a PATH store.
type Mutator struct {
	store Store
	delim string
	log   logger.Logger
}

// NewMutator creates a Mutator using the platform delimiter.
func NewMutator(store Store, log logger.Logger) *Mutator {
	return NewMutatorWithDelimiter(store, Delimiter(), log)
}

// NewMutatorWithDelimiter creates a Mutator with an explicit delimiter.
func NewMutatorWithDelimiter(store Store, delim string, log logger.Logger) *Mutator {
	return &Mutator{
		store: store,
		delim: delim,
		log:   log,
	}
}

// Add appends dir to the PATH list if it is not already present and
// reports whether the list was written. An already-present directory is
// a no-op, not an error.
//
// Membership is a plain substring test against the raw PATH string, so
// an unrelated entry that merely contains dir also counts as present.
func (m *Mutator) Add(dir string) (bool, error) {
	current, err := m.store.Get()
	if err != nil {
		return false, errors.Wrap(err, "reading PATH")
	}

	if strings.Contains(current, dir) {
		m.log.Info("directory already on PATH", "dir", dir)

		return false, nil
	}

	updated := dir
	if current != "" {
		updated = current + m.delim + dir
	}

	if err := m.store.Set(updated); err != nil {
		return false, errors.Wrap(err, "writing PATH")
	}

	m.log.Info("added directory to PATH", "dir", dir)

	return true, nil
}

// Remove strips every entry exactly equal to dir from the PATH list and
// reports whether the list was written. Unrelated entries and their
// delimiters are left intact.
func (m *Mutator) Remove(dir string) (bool, error) {
	current, err := m.store.Get()
	if err != nil {
		return false, errors.Wrap(err, "reading PATH")
	}

	entries := strings.Split(current, m.delim)
	kept := make([]string, 0, len(entries))

	for _, entry := range entries {
		if entry == dir {
			continue
		}

		kept = append(kept, entry)
	}

	if len(kept) == len(entries) {
		return false, nil
	}

	if err := m.store.Set(strings.Join(kept, m.delim)); err != nil {
		return false, errors.Wrap(err, "writing PATH")
	}

	m.log.Info("removed directory from PATH", "dir", dir)

	return true, nil
}
