package main

import (
	"fmt"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// ErrMissingToken indicates no GitHub token was found in the
// environment. Fatal before any remote call.
var ErrMissingToken = errors.New("GITHUB_TOKEN is not set")

// Config holds all configuration for one run.
type Config struct {
	Repository string // owner/repo
	Author     string
	Threshold  VersionBump
	Method     MergeMethod
	Token      string

	// Runtime flags
	DryRun    bool
	Quiet     bool
	DebugMode bool
}

type envConfig struct {
	Token string `env:"GITHUB_TOKEN"`
}

// LoadToken reads the GitHub token from the environment, after a
// best-effort .env load for local runs.
func LoadToken() (string, error) {
	_ = godotenv.Load()

	var env envConfig
	if err := cleanenv.ReadEnv(&env); err != nil {
		return "", errors.Wrap(err, "reading environment configuration")
	}
	if env.Token == "" {
		return "", ErrMissingToken
	}

	return env.Token, nil
}

// Validate checks the configuration once at startup, before any remote
// call is made.
func (c *Config) Validate() error {
	if _, _, err := SplitRepository(c.Repository); err != nil {
		return err
	}
	if c.Author == "" {
		return fmt.Errorf("PR author must not be empty")
	}
	if _, ok := bumpRank[c.Threshold]; !ok || c.Threshold == BumpNone {
		return fmt.Errorf("invalid auto-merge threshold %q", c.Threshold)
	}
	switch c.Method {
	case MethodMerge, MethodSquash, MethodRebase:
	default:
		return fmt.Errorf("invalid merge method %q", c.Method)
	}
	if c.Token == "" {
		return ErrMissingToken
	}
	return nil
}

// SplitRepository splits an "owner/repo" slug.
func SplitRepository(repository string) (owner, name string, err error) {
	parts := strings.Split(repository, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid repository %q (want owner/repo)", repository)
	}
	return parts[0], parts[1], nil
}
