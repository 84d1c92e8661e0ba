package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"gopkg.in/yaml.v3"
)

/* yamlLoader lets a YAML file provide flag defaults. Keys are flag names with
 * either hyphens or underscores. */
func yamlLoader(r io.Reader) (kong.Resolver, error) {
	values := map[string]interface{}{}
	if err := yaml.NewDecoder(r).Decode(&values); err != nil && err != io.EOF {
		return nil, err
	}

	var f kong.ResolverFunc = func(context *kong.Context, parent *kong.Path, flag *kong.Flag) (interface{}, error) {
		raw, ok := values[flag.Name]
		if !ok {
			raw, ok = values[strings.ReplaceAll(flag.Name, "-", "_")]
		}
		if !ok || raw == nil {
			return nil, nil
		}

		switch v := raw.(type) {
		case map[string]interface{}, []interface{}:
			return nil, fmt.Errorf("config key %q must be a scalar", flag.Name)
		default:
			return fmt.Sprint(v), nil
		}
	}

	return f, nil
}
