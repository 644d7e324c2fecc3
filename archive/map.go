// SPDX-License-Identifier: MIT

package archive

import "sort"

// Map is a flat in-memory DataAdaptor.
type Map map[string]string

// SetValue stores value under key.
func (m Map) SetValue(key, value string) { m[key] = value }

// GetValue returns the value stored under key.
func (m Map) GetValue(key string) (string, bool) {
	v, ok := m[key]

	return v, ok
}

// Keys returns the stored keys in sorted order.
func (m Map) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
