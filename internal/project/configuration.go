package project

import (
	"fmt"
	"strings"
)

// Build configuration passed to CMake, MSBuild, and the dotnet CLI.
type Configuration string

const (
	Debug   Configuration = "Debug"
	Release Configuration = "Release"
)

// Parses a configuration name, ignoring case.
func ParseConfiguration(s string) (Configuration, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return Debug, nil
	case "release":
		return Release, nil
	}
	return "", fmt.Errorf("%w: unknown configuration %q (want debug or release)", ErrConfig, s)
}

// Implements encoding.TextUnmarshaler so the type can be used as a flag.
func (c *Configuration) UnmarshalText(text []byte) error {
	parsed, err := ParseConfiguration(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c Configuration) String() string {
	return string(c)
}
