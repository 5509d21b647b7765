package catalog

import "errors"

var (
	ErrIO       = errors.New("cannot read seed file")
	ErrParse    = errors.New("malformed seed row")
	ErrQuery    = errors.New("could not retrieve beers")
	ErrNotFound = errors.New("no such beer found")
	ErrInternal = errors.New("internal storage error")
)
