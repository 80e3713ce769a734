package event

import (
	"sync"

	"github.com/CodewithAN/paper-fortune-teller/parameter"
)

var (
	registryMu sync.RWMutex
	nameToType = make(map[string]EventType)
	typeToName = make(map[EventType]string)
)

func init() {
	RegisterType("tap", EventTap)
	RegisterType("stateChanged", EventStateChanged)
	RegisterType(parameter.FortuneRevealedName, EventFortuneRevealed)
	RegisterType("playReset", EventPlayReset)
}

// RegisterType maps a string name to an EventType
// Hosts use names to subscribe without importing the constants
func RegisterType(name string, et EventType) {
	registryMu.Lock()
	defer registryMu.Unlock()

	nameToType[name] = et
	typeToName[et] = name
}

// GetEventType returns the EventType for a given name
func GetEventType(name string) (EventType, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	et, ok := nameToType[name]
	return et, ok
}

// GetEventName returns the string name for an EventType
func GetEventName(et EventType) string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return typeToName[et]
}

func (t EventType) String() string {
	if name := GetEventName(t); name != "" {
		return name
	}
	return "unknown"
}
