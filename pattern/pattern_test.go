package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pat     Pattern
		wantErr string
	}{
		{
			name: "valid reference pattern",
			pat: Obj(map[string]Pattern{
				"callee": Obj(map[string]Pattern{
					"kind": Lit("Id"),
					"name": Lit("RegExp"),
				}),
				"args": Cap("args"),
			}),
		},
		{
			name: "valid scalar kinds",
			pat:  Seq(Lit("s"), Lit(42), Lit(3.14), Lit(true)),
		},
		{
			name:    "unsupported literal kind",
			pat:     Lit(map[string]any{"kind": "Id"}),
			wantErr: "unsupported literal kind",
		},
		{
			name:    "nil literal",
			pat:     Lit(nil),
			wantErr: "unsupported literal kind",
		},
		{
			name:    "empty capture name",
			pat:     Cap(""),
			wantErr: "empty tag name",
		},
		{
			name: "duplicate tag across branches",
			pat: Obj(map[string]Pattern{
				"a": Cap("x"),
				"b": Cap("x"),
			}),
			wantErr: `duplicate capture tag "x"`,
		},
		{
			name:    "duplicate tag in sequence",
			pat:     Seq(Cap("x"), Cap("x")),
			wantErr: `duplicate capture tag "x"`,
		},
		{
			name:    "nil sub-pattern",
			pat:     Obj(map[string]Pattern{"a": nil}),
			wantErr: "nil pattern",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.pat)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestObjectTraversalOrderIsSorted(t *testing.T) {
	t.Parallel()

	o := Obj(map[string]Pattern{
		"zeta":  Lit(1),
		"alpha": Lit(2),
		"mid":   Lit(3),
	})
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, o.Keys())
}

func TestPatternString(t *testing.T) {
	t.Parallel()

	p := Obj(map[string]Pattern{
		"kind": Lit("Id"),
		"args": Cap("args"),
	})
	assert.Equal(t, `Object{args: Capture(args), kind: Literal("Id")}`, p.String())
	assert.Equal(t, "Sequence[Literal(1), Capture(x)]", Seq(Lit(1), Cap("x")).String())
}

func TestNodeTypeString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "literal", Lit(1).Type().String())
	assert.Equal(t, "capture", Cap("x").Type().String())
	assert.Equal(t, "object", Obj(nil).Type().String())
	assert.Equal(t, "sequence", Seq().Type().String())
}
