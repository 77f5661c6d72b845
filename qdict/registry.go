package qdict

import (
	"github.com/quickbits/q-utils/qlist"
)

// Registry is a Dict specialized for indexing objects by their declared name.
// Unlike qlist.Register, which records only names, RegisterIn stores the
// object itself under its name, so registered symbols can be looked up later.
type Registry struct {
	Dict
}

// NewRegistry returns an empty Registry.
func NewRegistry() Registry {
	return Registry{Dict: New()}
}

// RegisterIn stores obj under its declared name in r and returns obj
// unchanged, so a registration can wrap the definition of the symbol it
// records:
//
//	var codecs = qdict.NewRegistry()
//
//	var JSONCodec = qdict.RegisterIn(codecs, newCodec("json"))
func RegisterIn[T qlist.Named](r Registry, obj T) T {
	r.Dict[obj.Name()] = obj

	return obj
}
