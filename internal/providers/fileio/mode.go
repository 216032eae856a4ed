package fileio

import (
	"context"
	"io/fs"

	"github.com/veldtdb/fileiod/internal/types"
)

// Raw stat mode bits. Declared locally instead of via syscall so the
// formatter stays pure and identical on every platform: the mode value
// arrives as an integer from the engine, not from the local filesystem.
const (
	modeTypeMask = 0170000
	modeSymlink  = 0120000
	modeRegular  = 0100000
	modeDir      = 0040000
)

// FormatMode renders a raw stat mode as a 10-character "ls -l" style
// string: entity kind first, then rwx triads for owner, group and other.
// It is total: any input yields a valid string.
func FormatMode(mode int64) string {
	var z [10]byte
	switch uint32(mode) & modeTypeMask {
	case modeSymlink:
		z[0] = 'l'
	case modeRegular:
		z[0] = '-'
	case modeDir:
		z[0] = 'd'
	default:
		z[0] = '?'
	}
	for i := 0; i < 3; i++ {
		m := mode >> ((2 - i) * 3)
		a := z[1+i*3:]
		a[0] = '-'
		a[1] = '-'
		a[2] = '-'
		if m&0x4 != 0 {
			a[0] = 'r'
		}
		if m&0x2 != 0 {
			a[1] = 'w'
		}
		if m&0x1 != 0 {
			a[2] = 'x'
		}
	}
	return string(z[:])
}

// unixMode converts an fs.FileMode into raw stat mode bits. Used on
// platforms where the native stat buffer is not exposed.
func unixMode(m fs.FileMode) uint32 {
	mode := uint32(m.Perm())
	switch {
	case m&fs.ModeSymlink != 0:
		mode |= modeSymlink
	case m.IsDir():
		mode |= modeDir
	case m.IsRegular():
		mode |= modeRegular
	}
	return mode
}

// Lsmode implements the lsmode tool
func (p *Provider) Lsmode(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	mode, ok, err := intParam(params, "mode")
	if err != nil {
		return Failure(err.Error())
	}
	if !ok {
		return Failure("mode parameter required")
	}

	return Success(map[string]interface{}{"mode": FormatMode(mode)})
}
