package http

import (
	stdhttp "net/http"

	"chartbox/internal/platform/net/http/bind"
)

// JSONHandler decodes and validates a T body, then runs fn. A handler may
// return a Response directly when it needs a status other than 200
func JSONHandler[T any](fn func(*stdhttp.Request, T) (any, error)) Handler {
	return Handle(func(r *stdhttp.Request) Response {
		in, err := bind.ParseJSON[T](r)
		if err != nil {
			return Error(err)
		}
		return outcome(fn(r, in))
	})
}

// CallHandler runs a body-less handler and wraps the result
func CallHandler(fn func(*stdhttp.Request) (any, error)) Handler {
	return Handle(func(r *stdhttp.Request) Response {
		return outcome(fn(r))
	})
}

func outcome(out any, err error) Response {
	if err != nil {
		return Error(err)
	}
	if resp, ok := out.(Response); ok {
		return resp
	}
	return OK(out)
}
