package cmd

import (
	"log/slog"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/ardnew/scopelog/log"
)

// paramEnv returns the expression environment of one log message.
func paramEnv(level log.Level, msg string, scope log.Scope) map[string]any {
	return map[string]any{
		"level":   string(level),
		"message": msg,
		"scope":   map[string]any(scope),
	}
}

// compileParams compiles each expression into one template parameter.
// The expressions see the identifiers level, message, and scope.
//
// A nil function is returned when there are no expressions, keeping the
// console's default parameters.
func compileParams(sources []string) (log.FormatParameters, error) {
	if len(sources) == 0 {
		return nil, nil
	}

	env := paramEnv("", "", log.Scope{})
	programs := make([]*vm.Program, 0, len(sources))

	for _, source := range sources {
		program, err := expr.Compile(source, expr.Env(env))
		if err != nil {
			return nil, ErrParam.Wrap(err).
				With(slog.String("source", source))
		}

		programs = append(programs, program)
	}

	return func(level log.Level, msg string, scope log.Scope) []any {
		env := paramEnv(level, msg, scope)
		params := make([]any, len(programs))

		for i, program := range programs {
			result, err := expr.Run(program, env)
			if err != nil {
				// Rendered in place of the value.
				result = err
			}

			params[i] = result
		}

		return params
	}, nil
}
