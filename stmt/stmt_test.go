package stmt

import "testing"

func TestFormat(t *testing.T) {
	stmts := Statements{
		ScopeMarker{"global"},
		TypeMarker{"float"},
		OperatorMarker{"*"},
		DeclareVar{"x"},
		LoadRef{"x"},
		SetDefault{"0"},
		PushLiteral{"2.5"},
		PushVarValue{"y"},
		TestOperand{"x"},
		Compare{">="},
		BranchUnless{},
		BlockBegin{},
		BlockEnd{},
	}
	expected := `scope global
type float
op *
var x
load x
set 0
push 2.5
get y
test x
cmp >=
branch
begin
end
`
	if got := Format(stmts); got != expected {
		t.Errorf("expected listing:\n%s\ngot:\n%s", expected, got)
	}
	if stmts.String() != expected {
		t.Errorf("Statements.String() should match Format")
	}
}

func TestFormatEmpty(t *testing.T) {
	if got := Format(nil); got != "" {
		t.Errorf("expected empty listing, got %q", got)
	}
}

func TestOpensBlock(t *testing.T) {
	for _, s := range (Statements{BranchUnless{}, BlockBegin{}}) {
		if !OpensBlock(s) {
			t.Errorf("expected %s to open a block", s)
		}
	}
	for _, s := range (Statements{BlockEnd{}, TestOperand{"x"}, Compare{"=="}, DeclareVar{"x"}}) {
		if OpensBlock(s) {
			t.Errorf("expected %s not to open a block", s)
		}
	}
}
