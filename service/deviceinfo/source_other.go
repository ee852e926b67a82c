//go:build !linux && !darwin && !windows && !freebsd

package deviceinfo

func hostSource() VersionSource {
	return nil
}
