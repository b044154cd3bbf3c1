package config

import (
	_ "embed"
)

//go:embed defaults/quiztris.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Quiz: QuizConfig{
			DedupeAnswers: false,
		},
		Feedback: FeedbackConfig{
			CorrectDelayMs: 500,
			WrongDelayMs:   1000,
		},
		Display: DisplayConfig{
			Filled:     "■",
			Preview:    "□",
			Empty:      "·",
			StackColor: "12",
			Colors: map[string]string{
				"I": "12",
				"O": "11",
				"T": "13",
				"S": "10",
				"Z": "9",
			},
		},
		Server: ServerConfig{
			Address:            ":23234",
			IdleTimeoutMinutes: 30,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
