package argparse

import "errors"

// registry stores declared options keyed by canonical name. The canonical
// name is the long name when one is declared, the short name otherwise.
// Options declaring both names are additionally recorded in the short-to-long
// alias map so either form resolves to the same option.
type registry struct {
	options     map[string]*Option
	shortToLong map[string]string
	longToShort map[string]string

	// order keeps canonical names in registration order so the usage text is
	// deterministic.
	order []string
}

func newRegistry() *registry {
	return &registry{
		options:     make(map[string]*Option),
		shortToLong: make(map[string]string),
		longToShort: make(map[string]string),
	}
}

// canonicalName returns an option's primary lookup identity, preferring its
// long name.
func canonicalName(opt *Option) string {
	if opt.LongName != "" {
		return opt.LongName
	}
	return opt.ShortName
}

// register stores opt under its canonical name and records the alias pair
// when both names are declared. An option with neither name is rejected.
func (r *registry) register(opt *Option) error {
	if opt.ShortName == "" && opt.LongName == "" {
		return NewError(ErrInvalidOption,
			errors.New("both shortName and longName are empty, at least one must be given"))
	}
	if opt.Prefix == "" {
		opt.Prefix = DefaultPrefix
	}
	key := canonicalName(opt)
	if _, exists := r.options[key]; !exists {
		r.order = append(r.order, key)
	}
	r.options[key] = opt
	if opt.ShortName != "" && opt.LongName != "" {
		r.shortToLong[opt.ShortName] = opt.LongName
		r.longToShort[opt.LongName] = opt.ShortName
	}
	return nil
}

// resolve looks name up as a canonical key first, then retries through the
// short-name alias map.
func (r *registry) resolve(name string) (*Option, bool) {
	if opt, ok := r.options[name]; ok {
		return opt, true
	}
	if long, ok := r.shortToLong[name]; ok {
		if opt, ok := r.options[long]; ok {
			return opt, true
		}
	}
	return nil, false
}

// all returns the registered options in registration order.
func (r *registry) all() []*Option {
	opts := make([]*Option, 0, len(r.order))
	for _, key := range r.order {
		opts = append(opts, r.options[key])
	}
	return opts
}

// names returns the canonical names in registration order.
func (r *registry) names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

func (r *registry) len() int {
	return len(r.options)
}
