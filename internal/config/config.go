package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"jwtgen/internal/apperr"
	"jwtgen/internal/claims"
)

const (
	PayloadKey   = "payload"
	SecretKeyKey = "secretkey"
	SecretValue  = "value"
)

// Format selects the parser used for the input file.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// Config is the content of the input file: the claims to sign and the key to
// sign them with.
type Config struct {
	Payload claims.Mapping
	Secret  string
}

// FormatFor picks the parser for path. Anything that is not YAML is read as TOML.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// LoadFromPath reads the file at path and returns its payload and secret.
func LoadFromPath(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, apperr.FileRead(err, "reading config file %q", path)
	}

	if !utf8.Valid(data) {
		return Config{}, apperr.FileRead(nil, "config file %q is not valid UTF-8", path)
	}

	format := FormatFor(path)
	log.Debug().Str("path", path).Str("format", string(format)).Int("bytes", len(data)).Msg("Read config file")

	return Parse(data, format)
}

// Parse decodes data and extracts the payload table and secretkey.value.
func Parse(data []byte, format Format) (Config, error) {
	doc, err := decode(data, format)
	if err != nil {
		return Config{}, err
	}

	rawPayload, ok := doc[PayloadKey]
	if !ok {
		return Config{}, apperr.Parse(nil, "missing required table %q", PayloadKey)
	}

	payloadTable, ok := asTable(rawPayload)
	if !ok {
		return Config{}, apperr.Parse(nil, "%q must be a table, got %T", PayloadKey, rawPayload)
	}

	payload, err := claims.MappingFromNative(PayloadKey, payloadTable)
	if err != nil {
		return Config{}, apperr.Parse(err, "invalid claim")
	}

	secret, err := extractSecret(doc)
	if err != nil {
		return Config{}, err
	}

	return Config{Payload: payload, Secret: secret}, nil
}

func decode(data []byte, format Format) (map[string]any, error) {
	var doc map[string]any

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, apperr.Parse(err, "decoding yaml")
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &doc); err != nil {
			var derr *toml.DecodeError
			if errors.As(err, &derr) {
				row, col := derr.Position()
				return nil, apperr.Parse(err, "decoding toml at line %d, column %d", row, col)
			}
			return nil, apperr.Parse(err, "decoding toml")
		}
	default:
		return nil, apperr.Parse(nil, "unknown config format %q", format)
	}

	return doc, nil
}

func extractSecret(doc map[string]any) (string, error) {
	path := SecretKeyKey + "." + SecretValue

	rawTable, ok := doc[SecretKeyKey]
	if !ok {
		return "", apperr.Parse(nil, "missing required table %q", SecretKeyKey)
	}

	table, ok := asTable(rawTable)
	if !ok {
		return "", apperr.Parse(nil, "%q must be a table, got %T", SecretKeyKey, rawTable)
	}

	rawSecret, ok := table[SecretValue]
	if !ok {
		return "", apperr.Parse(nil, "missing required key %q", path)
	}

	secret, ok := rawSecret.(string)
	if !ok {
		return "", apperr.Parse(nil, "%q must be a string, got %T", path, rawSecret)
	}

	return secret, nil
}

func asTable(v any) (map[string]any, bool) {
	switch t := v.(type) {
	case map[string]any:
		return t, true
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			key, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[key] = item
		}
		return out, true
	default:
		return nil, false
	}
}
