package microorm

// Builder provides a fluent API to declare the mapping of T and construct its Adapter.
type Builder[T any] struct {
	opts   []Option
	fields []FieldAdapter[T]
	inits  []EmbeddedFieldInitializer[T]
	vals   map[string]ValidatorFunc
}

// NewBuilder creates a new builder.
func NewBuilder[T any]() *Builder[T] {
	return &Builder[T]{vals: make(map[string]ValidatorFunc)}
}

// Field appends field adapters in declaration order. Adapters that are also
// embedded-field initializers are registered as such.
func (b *Builder[T]) Field(fields ...FieldAdapter[T]) *Builder[T] {
	b.fields = append(b.fields, fields...)
	b.inits = append(b.inits, initializersOf(fields)...)
	return b
}

// Initializer appends initializers that are not tied to a field adapter.
func (b *Builder[T]) Initializer(inits ...EmbeddedFieldInitializer[T]) *Builder[T] {
	b.inits = append(b.inits, inits...)
	return b
}

// WithOptions appends adapter options to the builder.
func (b *Builder[T]) WithOptions(opts ...Option) *Builder[T] { b.opts = append(b.opts, opts...); return b }

// AddValidator registers a validator for a column.
func (b *Builder[T]) AddValidator(column string, fn ValidatorFunc) *Builder[T] {
	b.vals[column] = fn
	return b
}

// Build constructs the Adapter. Validators added on the builder win over ones
// passed through WithOptions.
func (b *Builder[T]) Build() *Adapter[T] {
	opts := append([]Option(nil), b.opts...)
	for c, fn := range b.vals {
		opts = append(opts, WithValidator(c, fn))
	}
	return New(b.fields, b.inits, opts...)
}
