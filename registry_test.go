// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proj4

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAliasRegistryResolvesCodes(t *testing.T) {
	reg := NewAliasRegistry()
	reg.Set("EPSG:3857", "+proj=webmerc +ellps=WGS84")

	SetGlobalAliasRegistry(reg)
	defer SetGlobalAliasRegistry(nil)

	pj, err := Build("EPSG:3857")
	require.NoError(t, err)
	require.Equal(t, "webmerc", pj.Name())

	v, ok := reg.Lookup("EPSG:3857")
	require.True(t, ok)
	require.Equal(t, "+proj=webmerc +ellps=WGS84", v)

	_, ok = reg.Lookup("EPSG:4326")
	require.False(t, ok)
}

func TestAliasRegistryUnsetCodeFallsThrough(t *testing.T) {
	SetGlobalAliasRegistry(nil)

	_, err := Build("EPSG:9999")
	require.Error(t, err)
}
