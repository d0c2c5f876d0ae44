//go:build !(darwin || linux)

package mediainfo

import (
	"errors"
	"runtime"
)

func loadNative() (Library, error) {
	return nil, errors.New("no libmediainfo binding for " + runtime.GOOS)
}
