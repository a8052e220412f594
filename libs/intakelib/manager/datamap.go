package manager

import (
	"fmt"

	"github.com/venahealth/backend/libs/errors"
)

// dataMap wraps the generic map produced by decoding a server supplied
// template payload and provides typed accessors. The mustGet variants
// panic on a type mismatch; parse entry points recover and surface the
// panic as an error.
type dataMap map[string]interface{}

func getDataMap(v interface{}) (dataMap, error) {
	switch m := v.(type) {
	case map[string]interface{}:
		return dataMap(m), nil
	case dataMap:
		return m, nil
	}
	return nil, errors.Errorf("expected map for value but got %T", v)
}

func (d dataMap) exists(key string) bool {
	_, ok := d[key]
	return ok
}

func (d dataMap) get(key string) interface{} {
	return d[key]
}

// requiredKeys returns an error naming the object type if any of the
// provided keys are missing.
func (d dataMap) requiredKeys(objectType string, keys ...string) error {
	for _, k := range keys {
		if !d.exists(k) {
			return errors.Errorf("required key '%s' missing for %s", k, objectType)
		}
	}
	return nil
}

func (d dataMap) mustGetString(key string) string {
	v := d.get(key)
	if v == nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		panic(fmt.Errorf("expected string for key '%s' but got %T", key, v))
	}
	return s
}

func (d dataMap) mustGetBool(key string) bool {
	v := d.get(key)
	if v == nil {
		return false
	}
	b, ok := v.(bool)
	if !ok {
		panic(fmt.Errorf("expected bool for key '%s' but got %T", key, v))
	}
	return b
}

// getFloat64Ptr returns a pointer to the numeric value for the key, or
// nil when the key is absent. JSON numbers decode as float64; integer
// values are accepted for template payloads built in process.
func (d dataMap) getFloat64Ptr(key string) (*float64, error) {
	v := d.get(key)
	if v == nil {
		return nil, nil
	}
	switch n := v.(type) {
	case float64:
		return &n, nil
	case int:
		f := float64(n)
		return &f, nil
	}
	return nil, errors.Errorf("expected number for key '%s' but got %T", key, v)
}

func (d dataMap) getStringSlice(key string) ([]string, error) {
	v := d.get(key)
	if v == nil {
		return nil, nil
	}
	switch items := v.(type) {
	case []string:
		return items, nil
	case []interface{}:
		strs := make([]string, len(items))
		for i, item := range items {
			s, ok := item.(string)
			if !ok {
				return nil, errors.Errorf("expected string at index %d of key '%s' but got %T", i, key, item)
			}
			strs[i] = s
		}
		return strs, nil
	}
	return nil, errors.Errorf("expected string list for key '%s' but got %T", key, v)
}

func (d dataMap) getInterfaceSlice(key string) ([]interface{}, error) {
	v := d.get(key)
	if v == nil {
		return nil, nil
	}
	items, ok := v.([]interface{})
	if !ok {
		return nil, errors.Errorf("expected list for key '%s' but got %T", key, v)
	}
	return items, nil
}

func (d dataMap) dataMapForKey(key string) (dataMap, error) {
	v := d.get(key)
	if v == nil {
		return nil, nil
	}
	return getDataMap(v)
}
