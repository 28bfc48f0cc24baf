package config

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
)

// StringSliceFlag implements flag.Value for repeated/comma-separated string flags
type StringSliceFlag []string

func (s *StringSliceFlag) String() string {
	return strings.Join(*s, ",")
}

func (s *StringSliceFlag) Set(value string) error {
	for _, v := range strings.Split(value, ",") {
		v = strings.TrimSpace(v)
		if v != "" {
			*s = append(*s, v)
		}
	}
	return nil
}

// IntSliceFlag implements flag.Value for repeated/comma-separated integers.
type IntSliceFlag []int

func (s *IntSliceFlag) String() string {
	parts := make([]string, len(*s))
	for i, v := range *s {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func (s *IntSliceFlag) Set(value string) error {
	for _, v := range strings.Split(value, ",") {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return fmt.Errorf("invalid index %q", v)
		}
		*s = append(*s, n)
	}
	return nil
}

// Overrides records which kind toggles were set on the command line so they
// can be applied on top of a loaded file.
type Overrides struct {
	fs        *flag.FlagSet
	filenames bool
	cookies   bool
	query     bool
	headers   bool
	all       bool
}

// BindFlags registers the kind toggles on fs.
func BindFlags(fs *flag.FlagSet) *Overrides {
	o := &Overrides{fs: fs}
	fs.BoolVar(&o.filenames, "fuzz-filenames", false, "Generate URL filename mutants")
	fs.BoolVar(&o.cookies, "fuzz-cookies", false, "Generate cookie mutants")
	fs.BoolVar(&o.query, "fuzz-query", false, "Generate query string mutants")
	fs.BoolVar(&o.headers, "fuzz-headers", false, "Generate header mutants")
	fs.BoolVar(&o.all, "all", false, "Enable every mutant kind")
	return o
}

// Apply copies explicitly set toggles into cfg.
func (o *Overrides) Apply(cfg *FuzzerConfig) {
	if o.all {
		cfg.EnableAll()
	}
	o.fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "fuzz-filenames":
			cfg.FuzzURLFilenames = o.filenames
		case "fuzz-cookies":
			cfg.FuzzCookies = o.cookies
		case "fuzz-query":
			cfg.FuzzQueryString = o.query
		case "fuzz-headers":
			cfg.FuzzHeaders = o.headers
		}
	})
}
