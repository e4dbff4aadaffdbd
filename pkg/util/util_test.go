package util

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapErrorf(t *testing.T) {
	orig := errors.New("dial tcp: connection refused")
	err := WrapErrorf(orig, ErrInternalServerError, "osrm: call %s", "route")

	assert.Equal(t, "osrm: call route: dial tcp: connection refused", err.Error())
	assert.ErrorIs(t, err, orig)

	var uerr *Error
	require.True(t, errors.As(err, &uerr))
	assert.Equal(t, ErrInternalServerError, uerr.Code())

	assert.Equal(t, "no route", WrapErrorf(nil, ErrNotFound, "no route").Error())
}

func TestHelpers(t *testing.T) {
	assert.Equal(t, []int{3, 2, 1}, ReverseG([]int{1, 2, 3}))
	assert.Empty(t, ReverseG([]string{}))

	in := []string{"a", "b"}
	_ = ReverseG(in)
	assert.Equal(t, []string{"a", "b"}, in)

	assert.Equal(t, 1, ClampInt(-4, 1, 10))
	assert.Equal(t, 10, ClampInt(40, 1, 10))
	assert.Equal(t, 5, ClampInt(5, 1, 10))

	assert.Equal(t, 79.94, RoundFloat(79.9407, 2))
	assert.Equal(t, 3, CountDecimalPlacesF64(1.125))
	assert.Equal(t, 0, CountDecimalPlacesF64(7))

	v, err := StringToFloat64("-7.2575")
	require.NoError(t, err)
	assert.Equal(t, -7.2575, v)
	_, err = StringToFloat64("south")
	assert.Error(t, err)
}

func TestReadConfig(t *testing.T) {
	t.Cleanup(viper.Reset)

	t.Run("missing file keeps defaults", func(t *testing.T) {
		viper.Reset()
		require.NoError(t, ReadConfig(t.TempDir()))
		assert.Equal(t, 6060, viper.GetInt("API_PORT"))
		assert.Equal(t, 10.0, viper.GetFloat64("SNAP_RADIUS_KM"))
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		viper.Reset()
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"),
			[]byte("API_PORT: 7070\nOSRM_ENABLED: true\n"), 0o644))

		require.NoError(t, ReadConfig(dir))
		assert.Equal(t, 7070, viper.GetInt("API_PORT"))
		assert.True(t, viper.GetBool("OSRM_ENABLED"))
		assert.Equal(t, 4, viper.GetInt("ANNOTATOR_WORKERS"))
	})
}
