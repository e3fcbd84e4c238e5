//go:build !govips || !cgo

package codec

// Startup and Shutdown are no-ops for the pure-Go backend.
func Startup() error {
	return nil
}

func Shutdown() {}

func newCodec() (Codec, error) {
	return stdCodec{}, nil
}
