package draft

// Option configures an entity being created through the engine.
type Option func(*options)

// options holds configuration via the extensions map. All options use the
// unified OptKey system for type safety.
type options struct {
	extensions map[string]any
}

// OptKey is a typed key for options with a default value returned when
// the option is not set.
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey creates a typed option key with a default value.
func NewOptKey[T any](name string, defaultValue T) OptKey[T] {
	return OptKey[T]{name: name, def: defaultValue}
}

// Name returns the key name (useful for debugging).
func (k OptKey[T]) Name() string { return k.name }

// Default returns the default value for this key.
func (k OptKey[T]) Default() T { return k.def }

// WithOpt sets an option value using a typed key.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o *options) {
		if o.extensions == nil {
			o.extensions = make(map[string]any)
		}
		o.extensions[key.name] = value
	}
}

// GetOpt retrieves an option value with type safety, falling back to the
// key's default.
func GetOpt[T any](o options, key OptKey[T]) T {
	if o.extensions == nil {
		return key.def
	}
	v, ok := o.extensions[key.name]
	if !ok {
		return key.def
	}
	typed, ok := v.(T)
	if !ok {
		return key.def
	}
	return typed
}

// HasOpt returns true if the option was explicitly set.
func HasOpt[T any](o options, key OptKey[T]) bool {
	if o.extensions == nil {
		return false
	}
	_, ok := o.extensions[key.name]
	return ok
}

// applyOptions applies all options and returns the configuration.
func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// --- Opening creation options ---
var (
	OptWidth    = NewOptKey[float64]("width", 0)
	OptHeight   = NewOptKey[float64]("height", 0)
	OptSill     = NewOptKey[float64]("sill", 0)
	OptStyleTag = NewOptKey("styleTag", "")
)

// WithWidth sets an opening's width in mm.
func WithWidth(mm float64) Option { return WithOpt(OptWidth, mm) }

// WithHeight sets an opening's height in mm.
func WithHeight(mm float64) Option { return WithOpt(OptHeight, mm) }

// WithSill sets a window's sill height in mm. Ignored for doors.
func WithSill(mm float64) Option { return WithOpt(OptSill, mm) }

// WithStyleTag attaches a presentation tag to the entity.
func WithStyleTag(tag string) Option { return WithOpt(OptStyleTag, tag) }
