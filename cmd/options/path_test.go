package options

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAbsLocation(t *testing.T) {
	home, err := os.UserHomeDir()
	if !assert.Nil(t, err) {
		return
	}
	wd, err := os.Getwd()
	if !assert.Nil(t, err) {
		return
	}
	var testCases = []struct {
		description string
		location    string
		expect      string
	}{
		{description: "url with scheme", location: "mem://localhost/a/b.go", expect: "mem://localhost/a/b.go"},
		{description: "absolute path", location: "/tmp/a.go", expect: "/tmp/a.go"},
		{description: "home directory", location: "~/src/a.go", expect: filepath.Join(home, "src/a.go")},
		{description: "home only", location: "~", expect: home},
		{description: "relative path", location: "model/a.go", expect: filepath.Join(wd, "model/a.go")},
		{description: "tilde inside name", location: "~model/a.go", expect: filepath.Join(wd, "~model/a.go")},
	}

	for _, testCase := range testCases {
		actual, err := absLocation(testCase.location)
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}
}
