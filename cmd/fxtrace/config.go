package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cwbudde/algo-sid/sid/effect"
	"gopkg.in/yaml.v3"
)

// chainFile is the YAML layout accepted by -config.
type chainFile struct {
	Voice   voiceConfig     `yaml:"voice"`
	Effects []effect.Params `yaml:"effects"`
}

type voiceConfig struct {
	Frequency *float64 `yaml:"frequency,omitempty"`
	Gate      *bool    `yaml:"gate,omitempty"`
}

func loadChainFile(path string) (chainFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return chainFile{}, err
	}
	defer f.Close()

	cfg, err := decodeChain(f)
	if err != nil {
		return chainFile{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func decodeChain(r io.Reader) (chainFile, error) {
	var cfg chainFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return chainFile{}, err
	}
	for i, p := range cfg.Effects {
		if strings.TrimSpace(p.Type) == "" {
			return chainFile{}, fmt.Errorf("effect %d: missing type", i)
		}
		cfg.Effects[i].Type = strings.ToLower(strings.TrimSpace(p.Type))
	}
	return cfg, nil
}

// effectsFromFlags builds the chain described by -effects and the per-effect
// rate/depth flags.
func effectsFromFlags(list string, vibratoRate, vibratoDepth, gateRate float64) []effect.Params {
	var nodes []effect.Params
	for _, name := range strings.Split(list, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		switch name {
		case "":
			continue
		case effect.TypeVibrato:
			nodes = append(nodes, effect.Params{Type: name, Num: map[string]float64{
				"frequency": vibratoRate,
				"depth":     vibratoDepth,
			}})
		case effect.TypeGate:
			nodes = append(nodes, effect.Params{Type: name, Num: map[string]float64{
				"frequency": gateRate,
			}})
		default:
			nodes = append(nodes, effect.Params{Type: name})
		}
	}
	return nodes
}
