// Package environment names the environment a datekit process runs in
// (development, staging, production) and carries it through context.Context
// and structured logs.
//
// The typed string Environment has the constants Development, Staging and
// Production. Parse turns a configuration value such as DATEKIT_ENV into an
// Environment, accepting the short aliases "dev", "stage" and "prod".
//
// # Usage
//
//	env, err := environment.Parse(os.Getenv("DATEKIT_ENV"))
//	if err != nil {
//	    return err
//	}
//	ctx = environment.WithContext(ctx, env)
//
//	if environment.IsProduction(ctx) {
//	    // production-specific behaviour
//	}
//
// Add the environment to every record of a logger built by package logger:
//
//	log := logger.New(logger.WithContextExtractors(environment.LoggerExtractor()))
//
// # Error Handling
//
// Only Parse returns an error, ErrUnknownEnvironment, for names outside the
// known set. Missing context values result in the zero value ("").
package environment
