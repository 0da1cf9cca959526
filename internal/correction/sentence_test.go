package correction_test

import (
	"testing"

	"github.com/calvinalkan/espacy/internal/correction"
)

func Test_SentenceOf_Finds_Sentence_When_Word_Present(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		text   string
		word   string
		want   string
		wantOK bool
	}{
		{name: "plain", text: "El perro ladra. La casa es azul. Fin", word: "casa", want: " La casa es azul", wantOK: true},
		{name: "first_match", text: "casa uno. casa dos", word: "casa", want: "casa uno", wantOK: true},
		{name: "missing", text: "El perro ladra.", word: "gato", wantOK: false},
		{name: "abbreviation", text: "Vino el Sr. Pérez. Luego se fue", word: "Sr.", want: "Vino el Sr. Pérez", wantOK: true},
		{name: "abbreviation_last", text: "Hola Sr", word: "Sr.", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := correction.SentenceOf(tt.text, tt.word)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("SentenceOf=(%q,%v), want=(%q,%v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
