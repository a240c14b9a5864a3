package zdict

import (
	"fmt"
	"sort"
)

type Dict map[string]any

func (d Dict) Copy() Dict {
	out := Dict{}
	for k, v := range d {
		sub, got := v.(map[string]any)
		if got {
			out[k] = Dict(sub).Copy()
			continue
		}
		dsub, got := v.(Dict)
		if got {
			out[k] = dsub.Copy()
			continue
		}
		out[k] = v
	}
	return out
}

func (d Dict) SortedKeys() (keys []string) {
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return
}

// Join returns the key/values as key+equal+value, divided by sep, in key order.
func (d Dict) Join(equal, sep string) string {
	str := ""
	for _, k := range d.SortedKeys() {
		if str != "" {
			str += sep
		}
		str += fmt.Sprint(k, equal, d[k])
	}
	return str
}
