package gin

import "errors"

// ErrNilFacadeHandler signals that a nil facade handler has been provided
var ErrNilFacadeHandler = errors.New("nil facade handler")

// ErrNilHttpServer signals that a nil http server has been provided
var ErrNilHttpServer = errors.New("nil http server")

// ErrInvalidAntifloodConfig signals that the web server anti-flood values are not valid
var ErrInvalidAntifloodConfig = errors.New("invalid web server antiflood config")
