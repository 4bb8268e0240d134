package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/resolver/instance"
)

func TestDecodeArgs(t *testing.T) {
	var testCases = []struct {
		description      string
		YAML             string
		expectLen        int
		expectNamed      map[string]instance.Kind
		expectPositional map[int]instance.Kind
		expectErr        bool
	}{
		{
			description: "named arguments",
			YAML:        "aString: string\nanInt: 5\nanArray: []\nrate: 1.5\nenabled: true\nnothing: null\n",
			expectLen:   6,
			expectNamed: map[string]instance.Kind{
				"aString": instance.KindString,
				"anInt":   instance.KindInt,
				"anArray": instance.KindCollection,
				"rate":    instance.KindFloat,
				"enabled": instance.KindBool,
				"nothing": instance.Invalid,
			},
		},
		{
			description: "positional sequence",
			YAML:        "- x\n- 1\n- {a: 1}\n",
			expectLen:   3,
			expectPositional: map[int]instance.Kind{
				0: instance.KindString,
				1: instance.KindInt,
				2: instance.KindCollection,
			},
		},
		{
			description:      "mixed keys",
			YAML:             "0: x\nname: y\n2: [1, 2]\n",
			expectLen:        3,
			expectNamed:      map[string]instance.Kind{"name": instance.KindString},
			expectPositional: map[int]instance.Kind{0: instance.KindString, 2: instance.KindCollection},
		},
		{
			description: "quoted integer key is named",
			YAML:        "\"1\": x\n",
			expectLen:   1,
			expectNamed: map[string]instance.Kind{"1": instance.KindString},
		},
		{
			description: "anchor and alias",
			YAML:        "first: &v 10\nsecond: *v\n",
			expectLen:   2,
			expectNamed: map[string]instance.Kind{"first": instance.KindInt, "second": instance.KindInt},
		},
		{
			description: "empty document",
			YAML:        "",
		},
		{
			description: "scalar document",
			YAML:        "just text\n",
			expectErr:   true,
		},
		{
			description: "negative positional key",
			YAML:        "-1: x\n",
			expectErr:   true,
		},
		{
			description: "invalid YAML",
			YAML:        "a: [\n",
			expectErr:   true,
		},
	}

	for _, testCase := range testCases {
		args, err := DecodeArgs([]byte(testCase.YAML))
		if testCase.expectErr {
			assert.NotNil(t, err, testCase.description)
			continue
		}
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.Equal(t, testCase.expectLen, args.Len(), testCase.description)
		for name, kind := range testCase.expectNamed {
			value, ok := args.Named(name)
			assert.True(t, ok, testCase.description+" "+name)
			assert.Equal(t, kind, value.Kind(), testCase.description+" "+name)
		}
		for index, kind := range testCase.expectPositional {
			value, ok := args.Positional(index)
			assert.True(t, ok, testCase.description)
			assert.Equal(t, kind, value.Kind(), testCase.description)
		}
	}
}
