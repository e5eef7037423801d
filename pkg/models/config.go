package models

// Config is the persisted tool configuration. The file holds at most one key.
type Config struct {
	Mirror string `json:"mirror"`
}
