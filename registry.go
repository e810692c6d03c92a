// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proj4

import (
	"strings"
	"sync"
)

// AliasRegistry is the optional process-wide code -> proj-string table from
// spec.md §5 ("a named alias registry mapping codes (e.g. EPSG:3857) to
// proj-strings"). The engine itself never requires one: Build falls back to
// treating its input as a literal proj-string whenever the registry has no
// entry (or is empty). Safe for concurrent use; population is expected to
// happen once at startup, but the mutex makes later updates safe too.
type AliasRegistry struct {
	mu      sync.RWMutex
	aliases map[string]string
}

// NewAliasRegistry returns an empty, ready-to-use registry.
func NewAliasRegistry() *AliasRegistry {
	return &AliasRegistry{aliases: make(map[string]string)}
}

// Set registers code (e.g. "EPSG:3857") to resolve to projString.
func (r *AliasRegistry) Set(code, projString string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.aliases[code] = projString
}

// Lookup returns the proj-string registered for code, if any.
func (r *AliasRegistry) Lookup(code string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.aliases[code]
	return v, ok
}

// globalAliasRegistry backs the package-level resolveAlias used by Build.
// It starts out nil (unset): an engine that never calls
// SetGlobalAliasRegistry pays no synchronization cost and has no shared
// mutable state, matching spec.md §5's "the engine itself must not require
// such a registry."
var globalAliasRegistry *AliasRegistry
var globalAliasRegistryMu sync.RWMutex

// SetGlobalAliasRegistry installs the process-wide registry Build consults
// for non proj-string inputs. Passing nil removes it.
func SetGlobalAliasRegistry(r *AliasRegistry) {
	globalAliasRegistryMu.Lock()
	defer globalAliasRegistryMu.Unlock()
	globalAliasRegistry = r
}

func resolveAlias(spec string) string {
	trimmed := strings.TrimSpace(spec)
	if trimmed == "" || strings.HasPrefix(trimmed, "+") {
		return spec
	}
	if !strings.Contains(trimmed, ":") {
		return spec
	}

	globalAliasRegistryMu.RLock()
	reg := globalAliasRegistry
	globalAliasRegistryMu.RUnlock()
	if reg == nil {
		return spec
	}
	if resolved, ok := reg.Lookup(trimmed); ok {
		return resolved
	}
	return spec
}
