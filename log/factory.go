package log

import "errors"

// Discard is a [Factory] whose functions do nothing.
var Discard Factory = func(Scope) Func { return discard }

func discard(Level, string, Meta) error { return nil }

// Tee returns a [Factory] that binds the scope with every given factory and
// delivers each message to all of them, in order.
//
// Every function is called even when an earlier one fails; the errors are
// joined.
func Tee(factories ...Factory) Factory {
	return func(scope Scope) Func {
		fns := make([]Func, 0, len(factories))

		for _, factory := range factories {
			if factory != nil {
				fns = append(fns, factory(merge(scope)))
			}
		}

		return func(level Level, msg string, meta Meta) error {
			var errs []error

			for _, fn := range fns {
				if err := fn(level, msg, meta); err != nil {
					errs = append(errs, err)
				}
			}

			return errors.Join(errs...)
		}
	}
}
