package pretty

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Object returns a structured logging field that emits one string entry per
// pretty field of v, so any value with a discoverable field list can be
// logged structured without extra marshaling code:
//
//	logger.Info("dialing", pretty.Object("conn", conn))
func Object(key string, v any) zap.Field {
	return zap.Object(key, objectMarshaler{v: v})
}

type objectMarshaler struct {
	v any
}

func (o objectMarshaler) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	for _, name := range FieldsOf(o.v) {
		enc.AddString(name, renderField(o.v, name))
	}

	return nil
}
