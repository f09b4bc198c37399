package environment

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownEnvironment is returned by Parse for names outside the known set.
var ErrUnknownEnvironment = errors.New("environment: unknown environment")

// Parse normalizes an environment name. The short aliases "dev", "prod" and
// "stage" are accepted, case is ignored and an empty name means Development.
func Parse(name string) (Environment, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "dev", string(Development):
		return Development, nil
	case "prod", string(Production):
		return Production, nil
	case "stage", string(Staging):
		return Staging, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownEnvironment, name)
}

// IsProduction reports whether env is production or its alias.
func (env Environment) IsProduction() bool {
	return env == Production || env == "prod"
}

// IsDevelopment reports whether env is development or its alias.
func (env Environment) IsDevelopment() bool {
	return env == Development || env == "dev"
}

// IsStaging reports whether env is staging or its alias.
func (env Environment) IsStaging() bool {
	return env == Staging || env == "stage"
}

func (env Environment) String() string {
	return string(env)
}
