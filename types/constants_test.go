package types

import (
	"encoding/json"
	"testing"
)

func TestUFFromStringKnown(t *testing.T) {
	cases := map[string]UF{
		"SP": SP,
		"sp": SP,
		"MG": MG,
		"EX": EX,
		"RR": RR,
	}
	for in, want := range cases {
		if got := UFFromString(in); got != want {
			t.Errorf("UFFromString(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestUFFromStringUnknownFallsBackToMG(t *testing.T) {
	for _, in := range []string{"", "XX", "zz", "123"} {
		if got := UFFromString(in); got != MG {
			t.Errorf("UFFromString(%q) = %v, want fallback MG", in, got)
		}
	}
}

func TestUFMarshalJSON(t *testing.T) {
	b, err := json.Marshal(SP)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(b) != `"SP"` {
		t.Errorf("got %s, want \"SP\"", b)
	}
}

func TestModeloFromString(t *testing.T) {
	cases := map[string]ModeloNFe{
		"55": ModeloNFe55,
		"65": ModeloNFCe65,
		"57": ModeloCTe57,
		"99": ModeloDesconhecido,
	}
	for in, want := range cases {
		if got := ModeloFromString(in); got != want {
			t.Errorf("ModeloFromString(%q) = %v, want %v", in, got, want)
		}
	}
}
