package config

import (
	"reflect"
	"sort"

	"github.com/raglet/raglet/settings"
)

// EnvVar maps one environment override variable to the settings key it
// controls.
type EnvVar struct {
	// Name is the full environment variable name, e.g.
	// RAGLET_APP_PROJECT_NAME.
	Name string
	// Key is the dotted TOML path of the overridden field, e.g.
	// app.project_name.
	Key string
}

// EnvVars returns every environment override the schema defines, sorted by
// variable name. Derived from the env/envPrefix struct tags, so it never
// drifts from the schema.
func EnvVars() []EnvVar {
	var vars []EnvVar
	collectEnvVars(reflect.TypeOf(settings.Settings{}), "", "", &vars)

	sort.Slice(vars, func(i, j int) bool { return vars[i].Name < vars[j].Name })

	return vars
}

func collectEnvVars(t reflect.Type, envPrefix, keyPrefix string, out *[]EnvVar) {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}

		key := tomlKey(f)
		if key == "" {
			continue
		}
		keyPath := key
		if keyPrefix != "" {
			keyPath = keyPrefix + "." + key
		}

		if f.Type.Kind() == reflect.Struct {
			collectEnvVars(f.Type, envPrefix+f.Tag.Get("envPrefix"), keyPath, out)
			continue
		}

		envTag := f.Tag.Get("env")
		if envTag == "" {
			continue
		}
		*out = append(*out, EnvVar{
			Name: envPrefix + envTag,
			Key:  keyPath,
		})
	}
}
