package assets

import (
	_ "embed"
)

// DefaultConfigYAML contains the embedded default configuration.
//
//go:embed defaults/config.yaml
var DefaultConfigYAML []byte

// ProbeScript is run inside the layer's interpreter to exercise the packaged library.
//
//go:embed probe/probe.py
var ProbeScript string
