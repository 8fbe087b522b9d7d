package app

import "errors"

// ErrUnavailable is returned by Run in builds without the ebiten tag.
var ErrUnavailable = errors.New("the window display requires building with the 'ebiten' tag")
