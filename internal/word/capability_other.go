//go:build !amd64 && !arm64

package word

func init() {
	initCapabilities()
}
