package internal

import (
	"bufio"
	"fmt"
	"io"
)

type promptValidator func(string) (bool, string)

type promptConfig struct {
	tries     int
	validator promptValidator
}

type promptOption func(*promptConfig)

func WithValidator(v promptValidator) promptOption {
	return func(cfg *promptConfig) {
		cfg.validator = v
	}
}

func WithMaxTries(i int) promptOption {
	return func(cfg *promptConfig) {
		cfg.tries = i
	}
}

// Prompt writes a prompt and reads one line of input, optionally looping
// until the validator accepts it.
func Prompt(rw io.ReadWriter, prompt string, opts ...promptOption) (string, error) {
	config := &promptConfig{}
	for _, opt := range opts {
		opt(config)
	}

	br := bufio.NewReader(rw)

	tries := 0
	var input []byte
	for {
		_, err := rw.Write([]byte(prompt))
		if err != nil {
			return "", err
		}

		input, _, err = br.ReadLine()
		if err != nil {
			return "", err
		}

		if config.validator != nil {
			ok, msg := config.validator(string(input))
			if !ok {
				rw.Write([]byte(msg))

				tries++
				if config.tries > 0 && config.tries == tries {
					return "", fmt.Errorf("too many tries")
				}

				continue
			}
		}

		return string(input), nil
	}
}
