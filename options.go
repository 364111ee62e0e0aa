package microorm

type Options struct {
	Validators map[string]ValidatorFunc // column -> check run on the encoded value before a write completes
}

type Option func(*Options)

// WithValidator registers fn for column. A later registration for the same column
// replaces the earlier one.
func WithValidator(column string, fn ValidatorFunc) Option {
	return func(o *Options) {
		if o.Validators == nil {
			o.Validators = make(map[string]ValidatorFunc)
		}
		o.Validators[column] = fn
	}
}
