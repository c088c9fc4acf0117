// Package scafferrors provides structured error types for the scafftools library.
//
// Import path: github.com/erraggy/scafftools/scafferrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish between different categories of errors and implement
// appropriate recovery strategies.
//
// # Error Types
//
// The package provides three core error types:
//
//   - [ArgumentCountError]: a lambda operation's argument text did not split
//     into the exact number of required fields
//   - [TemplateError]: a template failed to render
//   - [ConfigError]: invalid scaffolding configuration or input options
//
// # Sentinel Errors
//
// Each error type matches a sentinel via [errors.Is], so callers can check
// categories without type assertions:
//
//	if errors.Is(err, scafferrors.ErrArgumentCount) {
//		// malformed operation argument in a template
//	}
//
// # Usage with errors.As
//
//	out, err := render.Render(text, ctx)
//	if err != nil {
//		var argErr *scafferrors.ArgumentCountError
//		if errors.As(err, &argErr) {
//			// argErr.Raw pinpoints the malformed template expression
//		}
//	}
package scafferrors
