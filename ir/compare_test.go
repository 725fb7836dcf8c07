package ir

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func seq(key string, nodes ...*Node) *Node {
	return NewNode(key, FromSequence(NewSequence(nodes...)))
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b *Node
		want bool
	}{
		{"both nil", nil, nil, true},
		{"one nil", nil, NewNode("", Nil()), false},
		{"nil values", NewNode("x", Nil()), NewNode("x", Nil()), true},
		{"keys differ", NewNode("x", FromInt(1)), NewNode("y", FromInt(1)), false},
		{"types differ", NewNode("x", FromInt(1)), NewNode("x", FromFloat(1)), false},
		{"ints", NewNode("x", FromInt(7)), NewNode("x", FromInt(7)), true},
		{"floats", NewNode("x", FromFloat(0.5)), NewNode("x", FromFloat(0.5)), true},
		{"signed zero", NewNode("x", FromFloat(0)), NewNode("x", FromFloat(math.Copysign(0, -1))), false},
		{"nan", NewNode("x", FromFloat(math.NaN())), NewNode("x", FromFloat(math.NaN())), true},
		{"strings", NewNode("x", FromString("a")), NewNode("x", FromString("b")), false},
		{"bools", NewNode("x", FromBool(true)), NewNode("x", FromBool(true)), true},
		{"arrays", NewNode("x", FromArray(NewArray(FromInt(1), FromString("s")))),
			NewNode("x", FromArray(NewArray(FromInt(1), FromString("s")))), true},
		{"array length", NewNode("x", FromArray(NewArray(FromInt(1)))),
			NewNode("x", FromArray(NewArray(FromInt(1), FromInt(2)))), false},
		{"sequence order",
			seq("s", NewNode("a", FromInt(1)), NewNode("b", FromInt(2))),
			seq("s", NewNode("b", FromInt(2)), NewNode("a", FromInt(1))), false},
		{"nested",
			seq("s", seq("t", NewNode("a", FromInt(1)))),
			seq("s", seq("t", NewNode("a", FromInt(1)))), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal = %v, want %v", got, tt.want)
			}
			if got := Equal(tt.b, tt.a); got != tt.want {
				t.Errorf("Equal(b, a) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEqualFuncOrder(t *testing.T) {
	a := seq("root", seq("window", NewNode("width", FromInt(1920))))
	b := seq("root", seq("window", NewNode("width", FromInt(1024))))
	var keys []string
	if EqualFunc(a, b, func(x, y *Node) {
		keys = append(keys, x.Key)
	}) {
		t.Fatal("trees should differ")
	}
	if diff := cmp.Diff([]string{"width", "window", "root"}, keys); diff != "" {
		t.Errorf("callback order (-want +got):\n%s", diff)
	}
}
