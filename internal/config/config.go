// Package config provides configuration loading for the sprout CLI.
package config

// AuthorConfig contains default author identity for new projects.
type AuthorConfig struct {
	// Name is the default author name offered by the wizard.
	// Env: SPROUT_AUTHOR_NAME
	Name string `mapstructure:"name"`

	// Email is the default author email offered by the wizard.
	// Env: SPROUT_AUTHOR_EMAIL
	Email string `mapstructure:"email"`
}

// Config represents the sprout CLI configuration.
// Loaded from ~/.sprout/config.yaml; every field is optional.
type Config struct {
	// Author contains default author identity.
	Author AuthorConfig `mapstructure:"author"`

	// GitHub is the default GitHub username offered by the wizard.
	// Env: SPROUT_GITHUB
	GitHub string `mapstructure:"github"`

	// Python is the interpreter used for virtual environment bootstrap.
	// Env: SPROUT_PYTHON, Default: "python3"
	Python string `mapstructure:"python"`
}

// Fallback values used when neither the operator nor the config file
// supplies one.
const (
	DefaultAuthorName  = "Your Name"
	DefaultAuthorEmail = "your.email@example.com"
	DefaultGitHubUser  = "yourusername"
	DefaultPython      = "python3"
)

// DefaultConfig returns a Config with all default values populated.
// Used by `sprout config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		Author: AuthorConfig{
			Name:  DefaultAuthorName,
			Email: DefaultAuthorEmail,
		},
		GitHub: DefaultGitHubUser,
		Python: DefaultPython,
	}
}

// WithDefaults returns a copy of the config with empty fields filled in.
func (c *Config) WithDefaults() *Config {
	out := *c
	if out.Author.Name == "" {
		out.Author.Name = DefaultAuthorName
	}
	if out.Author.Email == "" {
		out.Author.Email = DefaultAuthorEmail
	}
	if out.GitHub == "" {
		out.GitHub = DefaultGitHubUser
	}
	if out.Python == "" {
		out.Python = DefaultPython
	}
	return &out
}
