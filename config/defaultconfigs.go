package config

import "morris/meta"

// PlayerKinds lists the players the CLI can build.
var PlayerKinds = []string{"random", "uniform", "human"}

var DefaultConfig Config

func init() {
	DefaultConfig = Config{
		MoveLimit:   meta.MOVES_WITHOUT_MILL,
		MaxTurns:    meta.MAX_TURNS,
		Games:       10,
		Workers:     4,
		Seed:        1,
		Players:     [2]string{"random", "random"},
		Temperature: 1,
		RecordDir:   "experiments",
		Server: ServerConfig{
			Addr: ":8080",
		},
		LogLevel: "info",
	}
}
