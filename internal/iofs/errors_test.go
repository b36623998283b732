package iofs

import (
	"errors"
	"testing"

	"github.com/gnames/acervo/pkg/errcode"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrors(t *testing.T) {
	orig := errors.New("permission denied")

	tests := []struct {
		msg   string
		err   error
		code  gn.ErrorCode
		path  string
		inErr string
	}{
		{"dir", CreateDirError("/test/dir", orig), errcode.CreateDirError,
			"/test/dir", "mkdir /test/dir"},
		{"config", WriteConfigError("/test/config.yaml", orig), errcode.WriteConfigError,
			"/test/config.yaml", "write default config /test/config.yaml"},
		{"read", ReadFileError("/test/seed.yaml", orig), errcode.ReadFileError,
			"/test/seed.yaml", "read /test/seed.yaml"},
	}

	for _, v := range tests {
		gnErr, ok := v.err.(*gn.Error)
		require.True(t, ok, v.msg)
		assert.Equal(t, v.code, gnErr.Code, v.msg)
		assert.Contains(t, gnErr.Msg, "%s", v.msg)
		require.Len(t, gnErr.Vars, 1, v.msg)
		assert.Equal(t, v.path, gnErr.Vars[0], v.msg)
		assert.ErrorIs(t, gnErr.Err, orig, v.msg)
		assert.Contains(t, gnErr.Err.Error(), v.inErr, v.msg)
		assert.Contains(t, gnErr.Err.Error(), "iofs", "caller is recorded")
	}
}
