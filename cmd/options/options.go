package options

import (
	"fmt"
	"strings"
)

type Options struct {
	Resolve  *Resolve  `command:"resolve" description:"prints fully qualified name of the type declared in source"`
	Make     *Make     `command:"make" description:"instantiates the type declared in source and prints it as JSON"`
	Generate *Generate `command:"gen" description:"generates registration file for the type declared in source"`
	Version  bool      `short:"v" long:"version" description:"show resolver version"`
}

// Arguments represents command line arguments
type Arguments []string

// SubMode returns true if the first argument is a command
func (a Arguments) SubMode() bool {
	return len(a) > 0 && !strings.HasPrefix(a[0], "-")
}

// IsHelp returns true if help was requested
func (a Arguments) IsHelp() bool {
	for _, arg := range a {
		if arg == "-h" || arg == "--help" {
			return true
		}
	}
	return false
}

func (o *Options) Init() error {
	if o.Resolve != nil {
		return o.Resolve.Init()
	}
	if o.Make != nil {
		return o.Make.Init()
	}
	if o.Generate != nil {
		return o.Generate.Init()
	}
	if o.Version {
		return nil
	}
	return fmt.Errorf("command was empty")
}

// Source returns active command source options
func (o *Options) Source() *Source {
	switch {
	case o.Resolve != nil:
		return &o.Resolve.Source
	case o.Make != nil:
		return &o.Make.Source
	case o.Generate != nil:
		return &o.Generate.Source
	}
	return nil
}

func NewOptions(args Arguments) *Options {
	ret := &Options{}
	if !args.SubMode() {
		return ret
	}
	switch args[0] {
	case "resolve":
		ret.Resolve = &Resolve{}
	case "make":
		ret.Make = &Make{}
	case "gen":
		ret.Generate = &Generate{}
	}
	return ret
}
