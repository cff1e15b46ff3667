package domain

import "path/filepath"

// LayerEnv locates a layer for probing.
type LayerEnv struct {
	Root       string
	SearchPath SearchPath
}

// DataDir is the conventional data directory inside a layer root.
func DataDir(root string) string {
	return filepath.Join(root, DataDirName)
}

// LayerLookups are the lookup paths the verifier expects, labelled for output.
func LayerLookups() []LabeledPath {
	return []LabeledPath{
		{Label: "vader_lexicon", Path: "vader_lexicon"},
		{Label: "punkt tokenizer", Path: "tokenizers/punkt"},
	}
}

// LayerPaths are the filesystem entries a built layer must contain.
func LayerPaths(root string) []string {
	data := DataDir(root)
	return []string{
		filepath.Join(root, "nltk"),
		data,
		filepath.Join(data, "vader_lexicon"),
		filepath.Join(data, "tokenizers"),
	}
}

// LabeledPath pairs a display label with a path.
type LabeledPath struct {
	Label string
	Path  string
}
