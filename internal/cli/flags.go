package cli

import "stp/internal/config"

// Flags holds command-line flags
type Flags struct {
	CorpusPath string
	Manifest   string
	Suffix     string
	Label      string
	NameFilter string
	Units      bool
	FailFast   bool
	OpenFaills bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		CorpusPath: f.CorpusPath,
		Manifest:   f.Manifest,
		Suffix:     f.Suffix,
		Label:      f.Label,
		NameFilter: f.NameFilter,
		Units:      f.Units,
		FailFast:   f.FailFast,
		OpenFaills: f.OpenFaills,
	}
}
