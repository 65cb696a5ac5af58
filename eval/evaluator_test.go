/*
File   : eval/evaluator_test.go
Package: eval
*/
package eval

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"monkey/builtins"
	"monkey/lexer"
	"monkey/object"
	"monkey/parser"
)

func testEval(t *testing.T, input string) object.Object {
	t.Helper()
	l := lexer.New(input)
	p := parser.New(l)
	program := p.ParseProgram()
	require.Empty(t, p.Errors(), "parser errors: %v", p.Errors())

	env := object.NewEnvironment()
	return New().Eval(program, env)
}

func TestEvalIntegerExpression(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"5", 5},
		{"10", 10},
		{"-5", -5},
		{"-10", -10},
		{"5 + 5 + 5 + 5 - 10", 10},
		{"2 * 2 * 2 * 2 * 2", 32},
		{"5 + 2 * 10", 25},
		{"20 + 2 * -10", 0},
		{"50 / 2 * 2 + 10", 60},
		{"2 * (5 + 10)", 30},
		{"3 * 3 * 3 + 10", 37},
	}

	for _, tt := range tests {
		result := testEval(t, tt.input)
		intObj, ok := result.(*object.Integer)
		require.Truef(t, ok, "%s: got %T (%+v)", tt.input, result, result)
		assert.Equal(t, tt.expected, intObj.Value, tt.input)
	}
}

func TestEvalBooleanExpression(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"true", true},
		{"false", false},
		{"1 < 2", true},
		{"1 > 2", false},
		{"1 == 1", true},
		{"1 != 1", false},
		{"true == true", true},
		{"true != false", true},
		{"(1 < 2) == true", true},
	}

	for _, tt := range tests {
		result := testEval(t, tt.input)
		b, ok := result.(*object.Boolean)
		require.True(t, ok, tt.input)
		assert.Equal(t, tt.expected, b.Value, tt.input)
	}
}

func TestBangOperator(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"!true", false},
		{"!false", true},
		{"!5", false},
		{"!!true", true},
		{"!!5", true},
	}
	for _, tt := range tests {
		result := testEval(t, tt.input).(*object.Boolean)
		assert.Equal(t, tt.expected, result.Value, tt.input)
	}
}

func TestNegationOfNullIsNull(t *testing.T) {
	result := testEval(t, "-null")
	assert.Equal(t, object.NULL, result)
}

func TestShortCircuit_AndDoesNotEvaluateRight(t *testing.T) {
	result := testEval(t, "false && undefined_name")
	b, ok := result.(*object.Boolean)
	require.True(t, ok)
	assert.False(t, b.Value)
}

func TestShortCircuit_OrDoesNotEvaluateRight(t *testing.T) {
	result := testEval(t, "true || undefined_name")
	b, ok := result.(*object.Boolean)
	require.True(t, ok)
	assert.True(t, b.Value)
}

func TestLogicalOperatorsAlwaysYieldBoolean(t *testing.T) {
	result := testEval(t, "1 && 2")
	b, ok := result.(*object.Boolean)
	require.True(t, ok)
	assert.True(t, b.Value)
}

func TestIfElseExpressions(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"if (true) { 10 }", int64(10)},
		{"if (false) { 10 }", nil},
		{"if (1) { 10 }", int64(10)},
		{"if (1 < 2) { 10 }", int64(10)},
		{"if (1 > 2) { 10 }", nil},
		{"if (1 > 2) { 10 } else { 20 }", int64(20)},
		{"if (1 < 2) { 10 } else { 20 }", int64(10)},
	}

	for _, tt := range tests {
		result := testEval(t, tt.input)
		if tt.expected == nil {
			assert.Equal(t, object.NULL, result, tt.input)
			continue
		}
		assert.Equal(t, tt.expected.(int64), result.(*object.Integer).Value, tt.input)
	}
}

func TestReturnStatements(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"return 10;", 10},
		{"return 10; 9;", 10},
		{"return 2 * 5; 9;", 10},
		{"9; return 2 * 5; 9;", 10},
		{"if (10 > 1) { if (10 > 1) { return 10; } return 1; }", 10},
	}
	for _, tt := range tests {
		result := testEval(t, tt.input).(*object.Integer)
		assert.Equal(t, tt.expected, result.Value, tt.input)
	}
}

func TestRuntimeErrors(t *testing.T) {
	tests := []struct {
		input string
		kind  object.ErrorKind
	}{
		{"5 + true;", object.TypeMismatch},
		{`"a" - "b"`, object.UnsupportedOperation},
		{"foobar;", object.UnknownIdentifier},
		{"10 / 0", object.DivisionByZero},
		{"5(1);", object.NotCallable},
		{`{"a":1}[fn(x){x}]`, object.Unhashable},
		{"break;", object.InvalidControlFlow},
		{"continue;", object.InvalidControlFlow},
		{"let f = fn(x, y) { x + y; }; f(1);", object.WrongArgumentCount},
	}
	for _, tt := range tests {
		result := testEval(t, tt.input)
		err, ok := result.(*object.RuntimeError)
		require.Truef(t, ok, "%s: got %T (%+v)", tt.input, result, result)
		assert.Equal(t, tt.kind, err.Kind, tt.input)
	}
}

func TestTopLevelRuntimeError_FramesEndWithRoot(t *testing.T) {
	result := testEval(t, "break;")
	err := result.(*object.RuntimeError)
	require.NotEmpty(t, err.Frames)
	last := err.Frames[len(err.Frames)-1]
	assert.Equal(t, "<repl>", last.FunctionName)
	assert.Equal(t, 0, last.ArgCount)
	assert.Equal(t, 1, last.CallSite.Line)
	assert.Equal(t, 1, last.CallSite.Column)
}

func TestLetStatements(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"let a = 5; a;", 5},
		{"let a = 5 * 5; a;", 25},
		{"let a = 5; let b = a; b;", 5},
		{"let a = 5; let b = a; let c = a + b + 5; c;", 15},
	}
	for _, tt := range tests {
		result := testEval(t, tt.input).(*object.Integer)
		assert.Equal(t, tt.expected, result.Value, tt.input)
	}
}

func TestClosures(t *testing.T) {
	input := `
	let newAdder = fn(x) {
		fn(y) { x + y };
	};
	let addTwo = newAdder(2);
	addTwo(2);
	`
	result := testEval(t, input).(*object.Integer)
	assert.Equal(t, int64(4), result.Value)
}

func TestRecursiveFibonacci(t *testing.T) {
	input := `let f = fn(x){ if (x<2){x}else{ f(x-1)+f(x-2) } }; f(10)`
	result := testEval(t, input).(*object.Integer)
	assert.Equal(t, int64(55), result.Value)
}

func TestWhileLoop(t *testing.T) {
	input := `
	let i = 0;
	let sum = 0;
	while (i < 5) {
		let sum = sum + i;
		let i = i + 1;
	}
	sum;
	`
	result := testEval(t, input)
	_, isErr := result.(*object.RuntimeError)
	assert.False(t, isErr, "unexpected error: %+v", result)
}

func TestWhileBreak(t *testing.T) {
	input := `
	let i = 0;
	let out = 0;
	while (true) {
		let i = i + 1;
		if (i == 3) { break; }
		let out = out + i;
	}
	out;
	`
	result := testEval(t, input).(*object.Integer)
	assert.Equal(t, int64(3), result.Value) // 1 + 2, breaks before adding 3
}

func TestStringConcatenation(t *testing.T) {
	result := testEval(t, `"a" + "b"`).(*object.String)
	assert.Equal(t, "ab", result.Value)
}

func TestArrayIndexOutOfRangeYieldsNull(t *testing.T) {
	result := testEval(t, "let a = [1,2,3]; a[10]")
	assert.Equal(t, object.NULL, result)
}

func TestHashMissingKeyYieldsNull(t *testing.T) {
	result := testEval(t, `{"a":1}["b"]`)
	assert.Equal(t, object.NULL, result)
}

func TestPutsScenario(t *testing.T) {
	var buf bytes.Buffer
	old := builtins.Output
	builtins.Output = &buf
	defer func() { builtins.Output = old }()

	result := testEval(t, `puts("hi")`)
	assert.Equal(t, object.NULL, result)
	assert.Equal(t, "hi\n", buf.String())
}

func TestBuiltinFunctions(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{`len("")`, int64(0)},
		{`len("four")`, int64(4)},
		{`len([1, 2, 3])`, int64(3)},
		{`first([1, 2, 3])`, int64(1)},
		{`last([1, 2, 3])`, int64(3)},
	}
	for _, tt := range tests {
		result := testEval(t, tt.input).(*object.Integer)
		assert.Equal(t, tt.expected.(int64), result.Value, tt.input)
	}
}

func TestRestOnEmptyArrayIsNull(t *testing.T) {
	result := testEval(t, `rest([])`)
	assert.Equal(t, object.NULL, result)
}

func TestRestOnSingleElementArrayIsEmptyArray(t *testing.T) {
	result := testEval(t, `rest([1])`).(*object.Array)
	assert.Equal(t, 0, len(result.Elements))
}

func TestFunctionInspect(t *testing.T) {
	result := testEval(t, `fn(x, y) { x + y; }`)
	fn, ok := result.(*object.Function)
	require.True(t, ok)
	assert.Equal(t, "fn(x, y) {(x + y)}", fn.Inspect())
}
