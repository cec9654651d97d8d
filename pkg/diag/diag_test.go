package diag_test

import (
	"strings"
	"testing"

	"minicc/pkg/diag"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		err  *diag.Error
		want string
	}{
		{
			name: "mid-line",
			err:  diag.Errorf(diag.Lex, "1*2", 1, "cannot tokenize"),
			want: "1*2\n ^ cannot tokenize\n",
		},
		{
			name: "position zero",
			err:  diag.Errorf(diag.Syntax, "", 0, "expected a number"),
			want: "\n^ expected a number\n",
		},
		{
			name: "past the end",
			err:  diag.Errorf(diag.Syntax, "1+", 2, "expected a number"),
			want: "1+\n  ^ expected a number\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out strings.Builder
			tt.err.Render(&out)
			if out.String() != tt.want {
				t.Errorf("expected %q, got %q", tt.want, out.String())
			}
		})
	}
}

func TestErrorf(t *testing.T) {
	err := diag.Errorf(diag.Syntax, "1?", 1, "expected '%c'", '-')
	if err.Error() != "expected '-'" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if err.Pos != 1 || err.Src != "1?" || err.Kind != diag.Syntax {
		t.Errorf("unexpected fields: %+v", err)
	}
}
