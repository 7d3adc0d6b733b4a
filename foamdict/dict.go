// Package foamdict models OpenFOAM dictionary files as a tagged value
// tree: scalars (bool, int, float64, bare words, quoted strings),
// sequences (List) and insertion-ordered mappings (Dict). Building the
// tree is kept separate from writing it so renders stay pure and
// testable without touching the filesystem.
package foamdict

// Dict is a string-keyed mapping that remembers insertion order.
// OpenFOAM dictionaries are order-sensitive in practice (includes,
// directives), so iteration always follows the order keys were first
// set.
type Dict struct {
	keys []string
	vals map[string]interface{}
}

// List is a heterogeneous sequence, rendered as ( e0 e1 ... ).
// Elements may themselves be Lists or *Dicts.
type List []interface{}

// String is a value rendered double-quoted, e.g. file names inside
// feature entries. Plain Go strings render as bare OpenFOAM words.
type String string

func New() *Dict {
	return &Dict{vals: make(map[string]interface{})}
}

// Set stores v under key, appending the key to the order on first use.
// Re-setting an existing key overwrites the value in place.
func (d *Dict) Set(key string, v interface{}) {
	if _, ok := d.vals[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.vals[key] = v
}

func (d *Dict) Get(key string) (interface{}, bool) {
	v, ok := d.vals[key]
	return v, ok
}

func (d *Dict) Len() int {
	return len(d.keys)
}

// Keys returns the keys in insertion order.
func (d *Dict) Keys() []string {
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}

// SubDict returns the nested Dict stored under key, creating it if the
// key is unset. If the key holds a non-Dict value it is replaced.
func (d *Dict) SubDict(key string) *Dict {
	if v, ok := d.vals[key]; ok {
		if sub, ok := v.(*Dict); ok {
			return sub
		}
	}
	sub := New()
	d.Set(key, sub)
	return sub
}

// Update merges o into d. Keys new to d keep o's relative order; when
// both sides hold a Dict under the same key the merge recurses,
// otherwise o's value replaces d's.
func (d *Dict) Update(o *Dict) {
	for _, k := range o.keys {
		ov := o.vals[k]
		if dv, ok := d.vals[k]; ok {
			dsub, dok := dv.(*Dict)
			osub, ook := ov.(*Dict)
			if dok && ook {
				dsub.Update(osub)
				continue
			}
		}
		d.Set(k, ov)
	}
}
