package coagent

// Mode says who owns a coagent's state value.
type Mode int

const (
	// ModeInternal: the shared store owns the value, seeded with EmptyObject.
	ModeInternal Mode = iota
	// ModeInternalWithInitial: the shared store owns the value, seeded once
	// with InitialState.
	ModeInternalWithInitial
	// ModeExternal: the caller owns the value and it is mirrored into the
	// shared store whenever it changes.
	ModeExternal
)

func (m Mode) String() string {
	switch m {
	case ModeInternalWithInitial:
		return "internal-with-initial"
	case ModeExternal:
		return "external"
	default:
		return "internal"
	}
}

// Options configures one coagent binding. Build it with Internal,
// InternalWithInitial or External; Mode is the discriminator and fields that
// do not belong to the mode are ignored.
type Options[T any] struct {
	Mode         Mode
	Name         string
	InitialState T
	State        T
	SetState     func(Update)
}

// Internal lets the shared store own the state, starting from EmptyObject.
func Internal[T any](name string) Options[T] {
	return Options[T]{Mode: ModeInternal, Name: name}
}

// InternalWithInitial lets the shared store own the state, starting from
// initial. Later changes to initial are ignored once the entry exists.
func InternalWithInitial[T any](name string, initial T) Options[T] {
	return Options[T]{Mode: ModeInternalWithInitial, Name: name, InitialState: initial}
}

// External mirrors a caller-owned state into the shared store. setState is
// the caller's own setter; it is carried for the caller's convenience and is
// never invoked here.
func External[T any](name string, state T, setState func(Update)) Options[T] {
	return Options[T]{Mode: ModeExternal, Name: name, State: state, SetState: setState}
}

// Classify returns the ownership mode of opts. Unknown tags fall back to
// ModeInternal.
func Classify[T any](opts Options[T]) Mode {
	switch opts.Mode {
	case ModeInternalWithInitial, ModeExternal:
		return opts.Mode
	default:
		return ModeInternal
	}
}

// DefaultState is the value a missing entry starts from.
func DefaultState[T any](opts Options[T]) any {
	if Classify(opts) == ModeInternalWithInitial {
		return opts.InitialState
	}
	return EmptyObject()
}

// Validate reports malformed options.
func (o Options[T]) Validate() error {
	if o.Name == "" {
		return ErrEmptyName
	}
	return nil
}
