//go:build !linux

package source

import "errors"

func newPeak() (Source, error) {
	return nil, errors.New("peak memory source is only available on linux")
}
