//go:build windows

package pathenv

import (
	"unsafe"

	"github.com/cockroachdb/errors"
	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
)

// environmentKey is the machine-scope environment registry key.
const environmentKey = `SYSTEM\CurrentControlSet\Control\Session Manager\Environment`

const (
	hwndBroadcast      = 0xFFFF
	wmSettingChange    = 0x001A
	smtoAbortIfHung    = 0x0002
	broadcastTimeoutMS = 3000
)

// registryStore reads and writes the machine PATH value in the registry.
type registryStore struct{}

// NewSystemStore returns the Store backed by the machine environment
// registry key. Writing requires an elevated process.
//
//nolint:ireturn // constructor returns the interface for injection
func NewSystemStore() Store {
	return &registryStore{}
}

// Get returns the raw PATH value.
func (*registryStore) Get() (string, error) {
	key, err := registry.OpenKey(registry.LOCAL_MACHINE, environmentKey, registry.QUERY_VALUE)
	if err != nil {
		return "", errors.Wrap(err, "opening environment key")
	}
	defer key.Close() //nolint:errcheck // read-only handle

	value, _, err := key.GetStringValue("Path")
	if err != nil {
		return "", errors.Wrap(err, "reading Path value")
	}

	return value, nil
}

// Set writes the PATH value as REG_EXPAND_SZ and broadcasts the
// environment change so new shells pick it up.
func (*registryStore) Set(value string) error {
	key, err := registry.OpenKey(registry.LOCAL_MACHINE, environmentKey, registry.SET_VALUE)
	if err != nil {
		return errors.Wrap(err, "opening environment key for write")
	}
	defer key.Close() //nolint:errcheck // write flushed by SetExpandStringValue

	if err := key.SetExpandStringValue("Path", value); err != nil {
		return errors.Wrap(err, "writing Path value")
	}

	broadcastEnvironmentChange()

	return nil
}

// broadcastEnvironmentChange notifies top-level windows that the
// environment block changed. Failure is ignored: the registry write has
// already succeeded and only freshly started shells need the update.
func broadcastEnvironmentChange() {
	user32 := windows.NewLazySystemDLL("user32.dll")
	sendMessageTimeout := user32.NewProc("SendMessageTimeoutW")

	env, err := windows.UTF16PtrFromString("Environment")
	if err != nil {
		return
	}

	var result uintptr

	//nolint:errcheck // best effort, SMTO_ABORTIFHUNG avoids hanging on dead windows
	sendMessageTimeout.Call(
		uintptr(hwndBroadcast),
		uintptr(wmSettingChange),
		0,
		uintptr(unsafe.Pointer(env)),
		uintptr(smtoAbortIfHung),
		uintptr(broadcastTimeoutMS),
		uintptr(unsafe.Pointer(&result)),
	)
}
