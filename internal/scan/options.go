package scan

import "regexp"

// Options configures which directory entries a listing includes.
type Options struct {
	// All includes hidden entries plus the synthetic . and .. entries.
	All bool

	// AlmostAll includes hidden entries but never . and ..
	AlmostAll bool

	// DirectoriesOnly drops everything that is not a directory.
	DirectoriesOnly bool

	// NoDirectories drops directories, including . and ..
	NoDirectories bool

	// ExcludePatterns are regular expressions matched against entry names.
	ExcludePatterns []*regexp.Regexp
}

// DefaultOptions returns the options of a plain listing.
func DefaultOptions() *Options {
	return &Options{}
}

// WithAll sets -a behavior.
func (o *Options) WithAll(all bool) *Options {
	o.All = all
	return o
}

// WithAlmostAll sets -A behavior.
func (o *Options) WithAlmostAll(almostAll bool) *Options {
	o.AlmostAll = almostAll
	return o
}

// WithDirectoriesOnly sets -d behavior.
func (o *Options) WithDirectoriesOnly(only bool) *Options {
	o.DirectoriesOnly = only
	return o
}

// WithNoDirectories sets -n behavior.
func (o *Options) WithNoDirectories(none bool) *Options {
	o.NoDirectories = none
	return o
}

// AddExcludePattern adds a pattern to exclude.
func (o *Options) AddExcludePattern(pattern string) error {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return err
	}
	o.ExcludePatterns = append(o.ExcludePatterns, re)
	return nil
}

// ShouldExclude checks if a name matches any exclude pattern.
func (o *Options) ShouldExclude(name string) bool {
	for _, re := range o.ExcludePatterns {
		if re.MatchString(name) {
			return true
		}
	}
	return false
}

// ShowHidden reports whether names starting with a dot are listed.
func (o *Options) ShowHidden() bool {
	return o.All || o.AlmostAll
}

// DotEntries reports whether . and .. are listed.
func (o *Options) DotEntries() bool {
	return o.All && !o.AlmostAll && !o.NoDirectories
}
