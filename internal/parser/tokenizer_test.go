package parser

import (
	"reflect"
	"testing"
)

func TestSplitLine(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{`a,"b,c",d`, []string{"a", "b,c", "d"}},
		{`"R$ 1.234,56",x`, []string{"R$ 1.234,56", "x"}},
		{` a , b `, []string{"a", "b"}},
		{`a,,c`, []string{"a", "", "c"}},
		{`""`, []string{""}},
	}
	for _, c := range cases {
		if got := SplitLine(c.in, ','); !reflect.DeepEqual(got, c.want) {
			t.Errorf("SplitLine(%q) = %#v, want %#v", c.in, got, c.want)
		}
	}
}

func TestTextRows(t *testing.T) {
	text := "a,b\n\n1,\"2,5\"\n   \n3,4\n"
	got := TextRows(text)
	want := [][]string{{"a", "b"}, {"1", "2,5"}, {"3", "4"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("TextRows = %#v, want %#v", got, want)
	}
}

func TestTextRowsEmpty(t *testing.T) {
	if got := TextRows("   \n  \n"); len(got) != 0 {
		t.Fatalf("texto em branco deveria não gerar linhas, veio %#v", got)
	}
}
