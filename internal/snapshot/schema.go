package snapshot

import (
	_ "embed"
	"fmt"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
)

//go:embed snapshot.cue
var schemaCUE string

var (
	schemaOnce sync.Once
	schemaCtx  *cue.Context
	schemaVal  cue.Value
)

// compiledSchema compiles the embedded schema once and returns the CUE
// context and the #Snapshot definition. Data values must be built in the
// same context to unify against it.
func compiledSchema() (*cue.Context, cue.Value) {
	schemaOnce.Do(func() {
		schemaCtx = cuecontext.New()
		schemaVal = schemaCtx.CompileString(schemaCUE).LookupPath(cue.ParsePath("#Snapshot"))
	})
	return schemaCtx, schemaVal
}

// validateShape checks raw JSON bytes against the snapshot schema.
// JSON is a subset of CUE, so the bytes compile directly to a value.
func validateShape(data []byte) error {
	ctx, schema := compiledSchema()
	if err := schema.Err(); err != nil {
		return fmt.Errorf("snapshot schema: %w", err)
	}

	value := ctx.CompileBytes(data)
	if err := value.Err(); err != nil {
		return shapeError(err)
	}

	unified := schema.Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return shapeError(err)
	}
	return nil
}

// shapeError flattens a CUE error into one message, keeping position
// info when the error carries it.
func shapeError(err error) error {
	errs := errors.Errors(err)
	if len(errs) == 0 {
		return err
	}
	first := errs[0]
	if positions := errors.Positions(first); len(positions) > 0 && positions[0].IsValid() {
		pos := positions[0]
		return fmt.Errorf("%d:%d: %s", pos.Line(), pos.Column(), first.Error())
	}
	return first
}
