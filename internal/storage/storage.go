// Package storage defines the key-value persistence boundary for the local
// app state. Values are JSON-serializable records stored under fixed keys;
// the core only relies on get-after-set returning the last written value
// within a session.
package storage

// Key names a stored record.
type Key string

const (
	KeyTasks    Key = "superacao-tasks"
	KeyProfile  Key = "superacao-user"
	KeySettings Key = "superacao-settings"
	KeyChat     Key = "superacao-chat"
	KeyRanking  Key = "superacao-ranking"

	// KeyActivities stores completed GPS activity records.
	KeyActivities Key = "gps_activities"
)

// Store is the generic get/set/remove interface consumed by the engine.
// Get returns a not-found error when the key has never been written.
type Store interface {
	Get(key Key, out interface{}) error
	Set(key Key, value interface{}) error
	Remove(key Key) error
}
